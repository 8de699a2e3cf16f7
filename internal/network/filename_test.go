package network

import "testing"

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		security Security
		want     string
	}{
		{
			name:     "safe ssid open network",
			ssid:     "foo_network",
			security: Open{},
			want:     "foo_network.open",
		},
		{
			name:     "safe ssid psk network",
			ssid:     "Office-WiFi_5G",
			security: PreSharedKey{Secret: Password("hunter22")},
			want:     "Office-WiFi_5G.psk",
		},
		{
			name:     "question mark forces hex form",
			ssid:     "foo?bar",
			security: PreSharedKey{Secret: Password("hunter22")},
			want:     "=666f6f3f626172.psk",
		},
		{
			name:     "space is not a safe character",
			ssid:     "my net",
			security: Open{},
			want:     "=6d79206e6574.open",
		},
		{
			name:     "non-ascii forces hex form",
			ssid:     "caf\xc3\xa9",
			security: Open{},
			want:     "=636166c3a9.open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.ssid, tt.security)
			if got := n.FileName(); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
