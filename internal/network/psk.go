package network

import (
	"crypto/sha1" // #nosec G505 -- SHA-1 is what the WPA-PSK derivation specifies.

	"golang.org/x/crypto/pbkdf2"
)

// DerivePSK derives the WPA pre-shared key for an SSID and passphrase:
// PBKDF2 with HMAC-SHA1, 4096 iterations, the SSID as salt, producing
// 32 bytes (IEEE 802.11, Annex J). Deterministic: the same inputs always
// yield the same key.
func DerivePSK(ssid, passphrase []byte) [32]byte {
	var psk [32]byte
	copy(psk[:], pbkdf2.Key(passphrase, ssid, 4096, len(psk), sha1.New))
	return psk
}
