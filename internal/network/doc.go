// Package network models a parsed wireless network and everything derived
// from it: the destination file name, the WPA pre-shared key, and the iwd
// configuration document.
//
// Security and PSKSecret are closed sum types, implemented as interfaces
// with unexported marker methods. There are exactly two Security variants
// (Open, PreSharedKey) and two PSKSecret variants (Password, RawKey); no
// extension point is intended.
package network
