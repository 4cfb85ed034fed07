package rsapad

import "hash"

// OAEPScratchSize returns the minimum scratch length
// ApplyOAEPPadding/RemoveOAEPPadding need for a block of size k under
// hash h, per spec.md's "Scratch layout and minimum size" note:
// 2*hLen + 2*(k - hLen - 1).
func OAEPScratchSize(h hash.Hash, k int) int {
	hLen := h.Size()
	return 2*hLen + 2*(k-hLen-1)
}

// ApplyOAEPPadding fills em (length k) with the RSAES-OAEP encoding of
// plaintext m under label, per RFC 8017 section 7.1.1:
//
//	EM = 0x00 || maskedSeed || maskedDB
//	DB = lHash || PS || 0x01 || M
//
// If seed is nil, a fresh hLen-byte seed is drawn from random (seed
// must then have length 0); if non-nil it must be at most hLen bytes
// and is left-justified into an hLen-byte field, the remainder
// zeroed. flags must be 0. scratch must be at least
// OAEPScratchSize(h, k) bytes and is used exclusively for the
// duration of the call.
func ApplyOAEPPadding(m []byte, h hash.Hash, label []byte, seed []byte, random RandomSource, flags uint32, em []byte, scratch []byte) error {
	k := len(em)
	hLen := h.Size()

	if flags != 0 ||
		k < len(m)+2*hLen+2 ||
		(seed != nil && len(seed) > hLen) ||
		(seed == nil && len(seed) != 0) {
		return ErrInvalidArgument
	}
	if len(scratch) < OAEPScratchSize(h, k) {
		return ErrInvalidArgument
	}

	dbLen := k - hLen - 1
	psLen := k - len(m) - 2*hLen - 2

	seedBuf := scratch[:hLen]
	seedMask := scratch[hLen : 2*hLen]
	db := scratch[2*hLen : 2*hLen+dbLen]
	dbMask := scratch[2*hLen+dbLen : 2*hLen+2*dbLen]

	lHash := oneShotHash(h, nil, label)
	copy(db, lHash)
	wipe(db[hLen : hLen+psLen])
	db[hLen+psLen] = 0x01
	copy(db[hLen+psLen+1:], m)

	if seed == nil {
		if err := random(seedBuf); err != nil {
			return err
		}
	} else {
		wipe(seedBuf)
		copy(seedBuf, seed)
	}

	em[0] = 0x00
	maskedDB := em[hLen+1:]

	MGF1(h, seedBuf, dbMask)
	for i := 0; i < dbLen; i++ {
		maskedDB[i] = db[i] ^ dbMask[i]
	}

	MGF1(h, maskedDB, seedMask)
	maskedSeed := em[1 : 1+hLen]
	for i := 0; i < hLen; i++ {
		maskedSeed[i] = seedBuf[i] ^ seedMask[i]
	}

	wipe(scratch)
	return nil
}

// RemoveOAEPPadding parses em (length k) as an RSAES-OAEP encoding
// under label and hash h. If out is nil, the required plaintext
// length is computed and returned without an error. If out is
// non-nil but shorter than the recovered plaintext, it returns a
// *BufferTooSmallError. scratch must be at least OAEPScratchSize(h, k)
// bytes.
//
// Per spec.md's documented security note, the label-hash comparison
// and the PS scan below are not fully constant-time (they return as
// soon as a mismatch is found); defending against Manger-style timing
// oracles is a higher-layer responsibility this package preserves
// rather than papers over.
func RemoveOAEPPadding(em []byte, h hash.Hash, label []byte, flags uint32, out []byte, scratch []byte) (int, error) {
	k := len(em)
	hLen := h.Size()

	if flags != 0 || k < hLen+1 || em[0] != 0x00 {
		return 0, ErrInvalidArgument
	}
	if len(scratch) < OAEPScratchSize(h, k) {
		return 0, ErrInvalidArgument
	}

	dbLen := k - hLen - 1
	// DB must be long enough to hold lHash for the comparison below.
	if dbLen < hLen {
		return 0, ErrInvalidArgument
	}
	seedMask := scratch[:hLen]
	seedBuf := scratch[hLen : 2*hLen]
	dbMask := scratch[2*hLen : 2*hLen+dbLen]
	db := scratch[2*hLen+dbLen : 2*hLen+2*dbLen]

	maskedSeed := em[1 : 1+hLen]
	maskedDB := em[hLen+1:]

	MGF1(h, maskedDB, seedMask)
	for i := 0; i < hLen; i++ {
		seedBuf[i] = maskedSeed[i] ^ seedMask[i]
	}

	MGF1(h, seedBuf, dbMask)
	for i := 0; i < dbLen; i++ {
		db[i] = maskedDB[i] ^ dbMask[i]
	}

	lHash := oneShotHash(h, nil, label)
	for i := 0; i < hLen; i++ {
		if lHash[i] != db[i] {
			wipe(scratch)
			return 0, ErrInvalidArgument
		}
	}

	i := hLen
	found := false
	for ; i < dbLen; i++ {
		if db[i] == 0x01 {
			i++
			found = true
			break
		} else if db[i] != 0x00 {
			wipe(scratch)
			return 0, ErrInvalidArgument
		}
	}
	if !found {
		wipe(scratch)
		return 0, ErrInvalidArgument
	}

	plainLen := dbLen - i

	if out == nil {
		wipe(scratch)
		return plainLen, nil
	}
	if len(out) < plainLen {
		wipe(scratch)
		return 0, &BufferTooSmallError{Required: plainLen}
	}
	copy(out, db[i:])
	wipe(scratch)
	return plainLen, nil
}
