// Package secure provides the minimal set of memory-hygiene primitives
// this module's split/combine paths actually need: zeroing sensitive
// byte buffers after use, and comparing checksums without leaking timing
// information about where they first differ.
package secure

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zero bytes in place.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ConstantTimeCompare reports whether x and y are equal, without leaking
// timing information about where they first differ. Unequal lengths are
// reported as unequal (also without leaking which length is shorter).
func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}
