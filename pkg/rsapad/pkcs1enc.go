package rsapad

// PKCS#1 v1.5 encryption padding, RFC 8017 section 7.2:
//
//	EM = 0x00 || 0x02 || PS || 0x00 || M
//
// PS is a string of pseudorandom nonzero bytes, |PS| = k - |M| - 3.

// ApplyPKCS1EncryptionPadding fills em (length k) with the PKCS#1 v1.5
// encryption encoding of plaintext m, drawing the padding string PS
// from random. It requires k >= len(m) + 11; flags must be 0.
func ApplyPKCS1EncryptionPadding(m []byte, flags uint32, em []byte, random RandomSource) error {
	k := len(em)
	if flags != 0 || k < len(m)+11 {
		return ErrInvalidArgument
	}

	psLen := k - len(m) - 3

	em[0] = 0x00
	em[1] = 0x02

	if err := random(em[2 : 2+psLen]); err != nil {
		return err
	}

	// None of the bytes in PS may be zero.
	for i := 0; i < psLen; i++ {
		for em[2+i] == 0x00 {
			if err := random(em[2+i : 3+i]); err != nil {
				return err
			}
		}
	}

	em[2+psLen] = 0x00
	copy(em[3+psLen:], m)

	return nil
}

// RemovePKCS1EncryptionPadding parses em (length k, k >= 2) as a
// PKCS#1 v1.5 encryption encoding. If out is nil, the required
// plaintext length is still computed; RemovePKCS1EncryptionPadding
// returns it without copying anything. If out is non-nil but shorter
// than the recovered plaintext, it returns a *BufferTooSmallError with
// Required set. Otherwise the plaintext is copied into out and its
// length is returned.
//
// The format-byte checks are accumulated into a single validity flag
// without an early return, matching spec.md's documented behavior:
// the zero-delimiter scan itself is still allowed to stop at the
// first match, since a timing-safe oracle here would require
// protocol-level Bleichenbacher mitigations rather than a
// constant-time padding check alone.
func RemovePKCS1EncryptionPadding(em []byte, flags uint32, out []byte) (int, error) {
	k := len(em)
	if flags != 0 || k < 2 {
		return 0, ErrInvalidArgument
	}

	valid := em[0] == 0x00
	valid = valid && em[1] == 0x02

	i := 2
	for i < k && em[i] != 0x00 {
		i++
	}
	valid = valid && i < k

	if !valid {
		return 0, ErrInvalidArgument
	}
	i++

	plainLen := k - i

	if out == nil {
		return plainLen, nil
	}
	if len(out) < plainLen {
		return 0, &BufferTooSmallError{Required: plainLen}
	}

	copy(out, em[i:])
	return plainLen, nil
}
