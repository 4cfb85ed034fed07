package rsapad

import (
	"encoding/binary"
	"hash"
)

// MGF1 fills out with the MGF1 mask generation function output for
// seed, per PKCS#1 v2.2 (RFC 8017 appendix B.2.1). h is reset and
// reused across iterations; it is the caller's Hash State and must
// not be used concurrently with this call.
//
// For each counter i = 0, 1, ..., ceil(len(out)/h.Size())-1, MGF1
// computes H(seed || I2OSP(i, 4)) and concatenates the results,
// truncating the final block to fit out. The counter is encoded
// big-endian; SymCrypt's source notes that when the iteration count is
// under 256 only the low byte of the 4-byte counter is ever nonzero,
// and so writes only that byte into an otherwise-zeroed buffer as an
// optimization. We always emit the full big-endian encoding, which is
// equivalent for every reachable counter value and avoids maintaining
// two code paths.
func MGF1(h hash.Hash, seed []byte, out []byte) {
	var counter [4]byte
	var block []byte

	remaining := out
	for i := uint32(0); len(remaining) > 0; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		block = oneShotHash(h, block, seed, counter[:])

		n := copy(remaining, block)
		remaining = remaining[n:]
	}
}
