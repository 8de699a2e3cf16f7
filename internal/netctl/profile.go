package netctl

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	kerrors "netctl2iwd/internal/errors"
	"netctl2iwd/internal/network"
)

// ParseError reports a profile that could not be read as a key/value
// document at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse profile: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// netctl profiles are flat key=value documents. Inline comment handling is
// disabled so passphrases containing '#' or ';' survive intact.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// ParseProfile reads a netctl profile and returns the network it
// describes.
//
// Connection is validated first: anything that is not a wireless profile
// fails with ErrNotWireless before any other field is looked at, even if
// those fields are also invalid. Security defaults to "none" when absent;
// "wpa" requires a Key, any other value is unsupported.
func ParseProfile(r io.Reader) (network.Network, error) {
	cfg, err := ini.LoadSources(loadOptions, r)
	if err != nil {
		return network.Network{}, &ParseError{Err: err}
	}
	sec := cfg.Section(ini.DefaultSection)

	if sec.Key("Connection").String() != "wireless" {
		return network.Network{}, kerrors.ErrNotWireless
	}

	var security network.Security
	switch sec.Key("Security").MustString("none") {
	case "none":
		security = network.Open{}
	case "wpa":
		key, quoted, err := readQuoted(sec, "Key")
		if err != nil {
			return network.Network{}, err
		}
		if quoted {
			security = network.PreSharedKey{Secret: network.Password(key)}
		} else {
			security = network.PreSharedKey{Secret: network.RawKey(key)}
		}
	default:
		return network.Network{}, kerrors.ErrUnsupportedSecurity
	}

	ssid := sec.Key("ESSID").String()
	if ssid == "" {
		return network.Network{}, kerrors.ErrMissingSSID
	}
	return network.New(ssid, security), nil
}

// readQuoted returns the value for key with netctl's special quoting rules
// applied. See man netctl.profile, "SPECIAL QUOTING RULES".
//
// The polarity is inverted from the naive expectation: a value with no
// leading quote mark is "quoted", meaning a literal human-entered string
// such as a passphrase. A value carrying a leading quote mark is an
// already-encoded raw literal (a hex key); the marker is stripped and the
// remainder passed through undecoded. In profile files the marker is
// written escaped (\"), which the ini layer leaves untouched, so both the
// escaped and the bare form are recognized here.
func readQuoted(sec *ini.Section, key string) (value string, quoted bool, err error) {
	if !sec.HasKey(key) {
		return "", false, kerrors.ErrMissingKeys
	}

	v := sec.Key(key).String()
	switch {
	case strings.HasPrefix(v, `\"`):
		return v[2:], false, nil
	case strings.HasPrefix(v, `"`):
		return v[1:], false, nil
	default:
		return v, true, nil
	}
}
