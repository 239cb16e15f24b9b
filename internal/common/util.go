// Package common contains small helpers shared across the client packages.
package common

import "crypto/subtle"

// WipeByteArray overwrites b with zeros. Callers use it to drop passwords
// from memory once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// EqualBytes compares a and b in constant time.
func EqualBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
