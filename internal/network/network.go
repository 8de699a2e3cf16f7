package network

// Security describes how a network authenticates clients. Exactly two
// implementations exist: Open and PreSharedKey.
type Security interface {
	fileSuffix() string
}

// Open is a network without credentials.
type Open struct{}

func (Open) fileSuffix() string { return ".open" }

// PreSharedKey is a WPA-personal network.
type PreSharedKey struct {
	Secret PSKSecret
}

func (PreSharedKey) fileSuffix() string { return ".psk" }

// PSKSecret records how the secret was supplied in the source profile.
// Exactly two implementations exist: Password and RawKey.
type PSKSecret interface {
	pskSecret()
}

// Password is a human passphrase; the actual key must be derived from it
// together with the SSID.
type Password string

func (Password) pskSecret() {}

// RawKey is an already-derived pre-shared key, hex encoded, used verbatim.
type RawKey string

func (RawKey) pskSecret() {}

// Network is a single parsed wireless network. It is constructed once per
// successfully parsed profile and never mutated.
type Network struct {
	SSID     string
	Security Security
}

// New constructs a Network. The SSID must be non-empty and the security
// fully resolved; the parser enforces both before calling here.
func New(ssid string, security Security) Network {
	return Network{SSID: ssid, Security: security}
}
