package rsapad

import "hash"

// pssEMLen returns emLen = ceil((nBits-1)/8), the byte length of the
// PSS-encoded message as defined by RFC 8017 section 9.1.
func pssEMLen(nBits int) int {
	return (nBits - 1 + 7) / 8
}

// PSSApplyScratchSize returns the minimum scratch length
// ApplyPSSPadding needs for the given modulus size and salt length:
// (8 + hLen + saltLen) + 2*(emLen - hLen - 1).
func PSSApplyScratchSize(h hash.Hash, nBits, saltLen int) int {
	hLen := h.Size()
	emLen := pssEMLen(nBits)
	cbDB := emLen - hLen - 1
	cbMPrime := 8 + hLen + saltLen
	return cbMPrime + 2*cbDB
}

// PSSVerifyScratchSize returns the minimum scratch length
// VerifyPSSPadding needs for the given modulus size and salt length:
// (emLen - hLen - 1) + (8 + hLen + saltLen) + hLen.
func PSSVerifyScratchSize(h hash.Hash, nBits, saltLen int) int {
	hLen := h.Size()
	emLen := pssEMLen(nBits)
	cbDB := emLen - hLen - 1
	cbMPrime := 8 + hLen + saltLen
	return cbDB + cbMPrime + hLen
}

// ApplyPSSPadding fills em with the RSASSA-PSS encoding of mHash under
// hash h and a salt of length saltLen, per RFC 8017 section 9.1.1:
//
//	M' = 0x00^8 || mHash || salt
//	DB = 0x00^(emLen-sLen-hLen-2) || 0x01 || salt
//	EM = maskedDB || H' || 0xBC
//
// len(em) must equal k = ceil(nBits/8); when nBits mod 8 == 1, em has
// one extra leading byte which is set to 0x00 and excluded from the
// working emLen-byte encoding, per the corner case RFC 8017 section
// 9.1.1 step 12 describes and spec.md §4.5 restates. If salt is nil, a
// fresh saltLen-byte salt is drawn from random; if non-nil its length
// must equal saltLen and it is used as supplied. flags must be 0.
func ApplyPSSPadding(mHash []byte, h hash.Hash, saltLen int, salt []byte, random RandomSource, nBits int, flags uint32, em []byte, scratch []byte) error {
	if len(em) == 0 || (salt != nil && len(salt) != saltLen) {
		return ErrInvalidArgument
	}

	if nBits%8 == 1 {
		em[0] = 0x00
		em = em[1:]
	}

	hLen := h.Size()

	if flags != 0 || len(em) < hLen+saltLen+2 {
		return ErrInvalidArgument
	}

	emLen := len(em)
	cbDB := emLen - hLen - 1
	cbMPrime := 8 + hLen + saltLen

	if len(scratch) < cbMPrime+2*cbDB {
		return ErrInvalidArgument
	}

	mPrime := scratch[:cbMPrime]
	db := scratch[cbMPrime : cbMPrime+cbDB]
	dbMask := scratch[cbMPrime+cbDB : cbMPrime+2*cbDB]

	wipe(mPrime[:8])
	copy(mPrime[8:], mHash)
	if salt != nil {
		copy(mPrime[8+len(mHash):], salt)
	} else if saltLen > 0 {
		if err := random(mPrime[8+len(mHash):]); err != nil {
			return err
		}
	}

	hPrime := em[cbDB : cbDB+hLen]
	oneShotHash(h, hPrime[:0], mPrime)

	padding2 := cbDB - saltLen - 1
	wipe(db[:padding2])
	db[padding2] = 0x01
	copy(db[padding2+1:], mPrime[8+hLen:])

	MGF1(h, hPrime, dbMask)
	for i := 0; i < cbDB; i++ {
		em[i] = db[i] ^ dbMask[i]
	}

	zeroBits := 8*emLen + 1 - nBits
	em[0] &= byte(0xff >> uint(zeroBits))
	em[emLen-1] = 0xbc

	wipe(scratch)
	return nil
}

// VerifyPSSPadding checks that em is a valid RSASSA-PSS encoding of
// mHash under hash h with a salt of length saltLen, per RFC 8017
// section 9.1.2. Any structural mismatch returns ErrInvalidArgument;
// a clean encoding returns nil. scratch must be at least
// PSSVerifyScratchSize(h, nBits, saltLen) bytes.
func VerifyPSSPadding(mHash []byte, h hash.Hash, saltLen int, em []byte, nBits int, flags uint32, scratch []byte) error {
	if flags != 0 || len(em) == 0 {
		return ErrInvalidArgument
	}

	if nBits%8 == 1 {
		if em[0] != 0x00 {
			return ErrInvalidArgument
		}
		em = em[1:]
	}

	emLen := len(em)
	hLen := h.Size()

	// Operative bound per spec.md §9 open question (b): SymCrypt's
	// commented-out upper-bound check is replaced with this explicit
	// lower bound on emLen.
	if saltLen+hLen+2 > emLen {
		return ErrInvalidArgument
	}

	zeroBits := 8*emLen + 1 - nBits
	if em[0]&byte(0xff<<uint(8-zeroBits)) != 0 || em[emLen-1] != 0xbc {
		return ErrInvalidArgument
	}

	cbDB := emLen - hLen - 1
	cbMPrime := 8 + hLen + saltLen

	if len(scratch) < cbDB+cbMPrime+hLen {
		return ErrInvalidArgument
	}

	dbMask := scratch[:cbDB]
	mPrime := scratch[cbDB : cbDB+cbMPrime]
	mPrimeHash := scratch[cbDB+cbMPrime : cbDB+cbMPrime+hLen]

	hPrime := em[cbDB : cbDB+hLen]

	MGF1(h, hPrime, dbMask)
	for i := 0; i < cbDB; i++ {
		dbMask[i] ^= em[i]
	}
	dbMask[0] &= byte(0xff >> uint(zeroBits))

	padding2 := cbDB - saltLen - 1
	for i := 0; i < padding2; i++ {
		if dbMask[i] != 0x00 {
			wipe(scratch)
			return ErrInvalidArgument
		}
	}
	if dbMask[padding2] != 0x01 {
		wipe(scratch)
		return ErrInvalidArgument
	}

	wipe(mPrime[:8])
	copy(mPrime[8:], mHash)
	copy(mPrime[8+len(mHash):], dbMask[cbDB-saltLen:])

	oneShotHash(h, mPrimeHash[:0], mPrime)

	ok := constantTimeEqual(hPrime, mPrimeHash)
	wipe(scratch)
	if !ok {
		return ErrInvalidArgument
	}
	return nil
}
