package rsapad

import "crypto/subtle"

// constantTimeEqual reports whether a and b hold the same bytes,
// without branching on the comparison result or stopping early on a
// mismatch. Used by the PKCS#1 signature check and the PSS final
// digest comparison, the two places spec.md calls out as requiring a
// non-short-circuiting compare. a and b must have equal length;
// unequal lengths are treated as unequal without leaking which byte
// differed.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// wipe overwrites buf with zeros. Scratch regions that held
// intermediate plaintext material (DB, seed, masks) should be wiped
// on return; see spec.md's Memory discipline notes.
func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
