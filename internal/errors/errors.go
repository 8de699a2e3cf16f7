package errors

import "errors"

// Profile errors indicate a netctl profile that cannot be converted.
var (
	// ErrNotWireless indicates the Connection field is missing or not "wireless".
	ErrNotWireless = errors.New("not a wireless profile")

	// ErrMissingKeys indicates the Key field is absent for a PSK-secured profile.
	ErrMissingKeys = errors.New("key information missing")

	// ErrMissingSSID indicates the ESSID field is absent or empty.
	ErrMissingSSID = errors.New("SSID missing")

	// ErrUnsupportedSecurity indicates a Security value other than "none" or "wpa".
	ErrUnsupportedSecurity = errors.New("unsupported security type")
)

// File errors classify I/O failures at the conversion boundary.
var (
	// ErrPermissionDenied indicates the OS denied access to a file.
	ErrPermissionDenied = errors.New("unable to open file")

	// ErrFileExists indicates the destination already exists and will not be overwritten.
	ErrFileExists = errors.New("file exists, refusing to overwrite")

	// ErrOS covers any other I/O failure.
	ErrOS = errors.New("unknown error")
)
