package network

import "encoding/hex"

// FileName returns the iwd configuration file name for the network,
// matching iwd's own on-disk naming byte for byte.
//
// An SSID made entirely of safe characters is used verbatim; anything else
// becomes "=" followed by the lowercase hex encoding of the SSID's raw
// bytes. The safe set is ASCII letters, digits, hyphen and underscore.
// Space is deliberately not safe and gets hex-escaped like any other
// character outside the set.
func (n Network) FileName() string {
	base := n.SSID
	if !safeName(n.SSID) {
		base = "=" + hex.EncodeToString([]byte(n.SSID))
	}
	return base + n.Security.fileSuffix()
}

// safeName iterates bytes, not runes: any multi-byte character forces the
// hex form.
func safeName(ssid string) bool {
	for i := 0; i < len(ssid); i++ {
		c := ssid[i]
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
