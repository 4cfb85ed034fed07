package rsapad

import "hash"

// HashStateSize returns the nominal scratch size, in bytes, spec.md's
// scratch-size formulas (e.g. OAEP's hashStateSize + 2*hLen + 2*(k -
// hLen - 1)) attribute to the hash's streaming state. Go's standard
// hash.Hash implementations own their state internally rather than
// exposing it as a byte buffer the caller sizes, so codecs in this
// package take the live hash.Hash directly instead of carving its
// state out of a Scratch Region; this function exists only so callers
// who want to budget a single combined allocation against spec.md's
// formulas have a number to use. It is never read by the codecs
// themselves.
func HashStateSize(h hash.Hash) int {
	return h.Size() + h.BlockSize()
}

// oneShotHash resets h, hashes data, and returns Sum(dst[:0]) so
// repeated calls (as MGF1 and the signature padding codecs make) never
// allocate beyond dst's capacity.
func oneShotHash(h hash.Hash, dst []byte, data ...[]byte) []byte {
	h.Reset()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(dst[:0])
}
