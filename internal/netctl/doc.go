// Package netctl parses netctl wireless profiles.
//
// A profile is a flat key=value document. The recognized keys are
// Connection, ESSID, Security and Key; everything else is ignored. The
// Key field follows netctl's special quoting rules, where the absence of
// a leading quote mark means a human-entered passphrase and a leading
// (escaped) quote mark marks a raw hex pre-shared key.
//
// The package also locates profiles on disk, either by enumerating a
// profile directory or by expanding explicit path arguments.
package netctl
