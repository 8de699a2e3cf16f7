package netctl

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/ini.v1"

	kerrors "netctl2iwd/internal/errors"
	"netctl2iwd/internal/network"
)

func loadSection(t *testing.T, content string) *ini.Section {
	t.Helper()
	cfg, err := ini.LoadSources(loadOptions, []byte(content))
	if err != nil {
		t.Fatalf("Failed to load test document: %v", err)
	}
	return cfg.Section(ini.DefaultSection)
}

func TestReadQuoted_PlainValue(t *testing.T) {
	sec := loadSection(t, "quoted=quoted_value\n")

	value, quoted, err := readQuoted(sec, "quoted")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !quoted {
		t.Error("Value without a leading quote mark must report quoted")
	}
	if value != "quoted_value" {
		t.Errorf("value = %q, want %q", value, "quoted_value")
	}
}

func TestReadQuoted_EscapedQuoteMarker(t *testing.T) {
	// In profile files the raw-literal marker is written as an escaped
	// quote, which the ini layer leaves in place.
	sec := loadSection(t, "non_quoted=\\\"non_quoted_value\n")

	value, quoted, err := readQuoted(sec, "non_quoted")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if quoted {
		t.Error("Value with a leading quote mark must report not quoted")
	}
	if value != "non_quoted_value" {
		t.Errorf("value = %q, want %q", value, "non_quoted_value")
	}
}

func TestReadQuoted_BareQuoteMarker(t *testing.T) {
	// An unbalanced leading quote reaches us verbatim; exactly one marker
	// character is stripped.
	sec := loadSection(t, "key=\"abc123\n")

	value, quoted, err := readQuoted(sec, "key")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if quoted {
		t.Error("Value with a leading quote mark must report not quoted")
	}
	if value != "abc123" {
		t.Errorf("value = %q, want %q", value, "abc123")
	}
}

func TestReadQuoted_MissingKey(t *testing.T) {
	sec := loadSection(t, "other=value\n")

	if _, _, err := readQuoted(sec, "key"); !errors.Is(err, kerrors.ErrMissingKeys) {
		t.Errorf("Expected ErrMissingKeys, got: %v", err)
	}
}

func TestParseProfile_PassphraseNetwork(t *testing.T) {
	sample := "Connection=wireless\nESSID=foo_network\nKey=foo_password\nSecurity=wpa"

	got, err := ParseProfile(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}

	want := network.New("foo_network",
		network.PreSharedKey{Secret: network.Password("foo_password")})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseProfile = %#v, want %#v", got, want)
	}
}

func TestParseProfile_RawKeyNetwork(t *testing.T) {
	sample := "Connection=wireless\nESSID=foo_network\nSecurity=wpa\nKey=\\\"0123456789abcdef\n"

	got, err := ParseProfile(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}

	want := network.New("foo_network",
		network.PreSharedKey{Secret: network.RawKey("0123456789abcdef")})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseProfile = %#v, want %#v", got, want)
	}
}

func TestParseProfile_OpenNetwork(t *testing.T) {
	tests := []struct {
		name   string
		sample string
	}{
		{"explicit none", "Connection=wireless\nESSID=foo_network\nSecurity=none\n"},
		{"security absent", "Connection=wireless\nESSID=foo_network\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(strings.NewReader(tt.sample))
			if err != nil {
				t.Fatalf("ParseProfile failed: %v", err)
			}
			if _, ok := got.Security.(network.Open); !ok {
				t.Errorf("Security = %#v, want Open", got.Security)
			}
		})
	}
}

func TestParseProfile_QuotedSSID(t *testing.T) {
	sample := "Connection=wireless\nESSID=\"my net\"\nSecurity=none\n"

	got, err := ParseProfile(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}
	if got.SSID != "my net" {
		t.Errorf("SSID = %q, want %q", got.SSID, "my net")
	}
}

func TestParseProfile_NotWireless(t *testing.T) {
	tests := []struct {
		name   string
		sample string
	}{
		{"ethernet connection", "Connection=ethernet\nESSID=foo_network\n"},
		{"connection absent", "ESSID=foo_network\nSecurity=wpa\n"},
		// Connection is checked first, so even a profile that is broken in
		// other ways reports NotWireless.
		{"other fields also invalid", "Connection=ethernet\nSecurity=wep\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile(strings.NewReader(tt.sample))
			if !errors.Is(err, kerrors.ErrNotWireless) {
				t.Errorf("Expected ErrNotWireless, got: %v", err)
			}
		})
	}
}

func TestParseProfile_UnsupportedSecurity(t *testing.T) {
	sample := "Connection=wireless\nESSID=foo_network\nSecurity=wpa-configsection\n"

	if _, err := ParseProfile(strings.NewReader(sample)); !errors.Is(err, kerrors.ErrUnsupportedSecurity) {
		t.Errorf("Expected ErrUnsupportedSecurity, got: %v", err)
	}
}

func TestParseProfile_MissingKey(t *testing.T) {
	sample := "Connection=wireless\nESSID=foo_network\nSecurity=wpa\n"

	if _, err := ParseProfile(strings.NewReader(sample)); !errors.Is(err, kerrors.ErrMissingKeys) {
		t.Errorf("Expected ErrMissingKeys, got: %v", err)
	}
}

func TestParseProfile_MissingSSID(t *testing.T) {
	sample := "Connection=wireless\nSecurity=none\n"

	if _, err := ParseProfile(strings.NewReader(sample)); !errors.Is(err, kerrors.ErrMissingSSID) {
		t.Errorf("Expected ErrMissingSSID, got: %v", err)
	}
}

func TestParseProfile_Malformed(t *testing.T) {
	sample := "this line has no delimiter\n"

	_, err := ParseProfile(strings.NewReader(sample))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected *ParseError, got: %v", err)
	}
}
