package network

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"gopkg.in/ini.v1"
)

func init() {
	// iwd expects key=value lines without alignment padding.
	ini.PrettyFormat = false
}

// ConfigDocument serializes the network into iwd's per-network
// configuration format.
//
// Open networks produce an empty document: iwd needs no [Security] section
// for them. Raw keys are written verbatim as PreSharedKey. For passphrases
// both Passphrase and the derived PreSharedKey are written, so iwd may use
// the cached key or re-derive it. Field order is fixed for reproducible
// output.
func (n Network) ConfigDocument() ([]byte, error) {
	cfg := ini.Empty()

	if psk, ok := n.Security.(PreSharedKey); ok {
		sec, err := cfg.NewSection("Security")
		if err != nil {
			return nil, err
		}

		switch secret := psk.Secret.(type) {
		case RawKey:
			if _, err := sec.NewKey("PreSharedKey", string(secret)); err != nil {
				return nil, err
			}
		case Password:
			if _, err := sec.NewKey("Passphrase", string(secret)); err != nil {
				return nil, err
			}
			key := DerivePSK([]byte(n.SSID), []byte(secret))
			if _, err := sec.NewKey("PreSharedKey", hex.EncodeToString(key[:])); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown PSK secret type %T", secret)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
