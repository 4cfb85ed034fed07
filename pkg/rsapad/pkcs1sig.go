package rsapad

const (
	asn1SequenceTag    = 0x30
	asn1OctetStringTag = 0x04
)

// PKCS1SigFlags is a bitmask of the flags recognized by the PKCS#1
// v1.5 signature padding operations. Only the bits named below are
// valid; any other bit set is rejected with ErrInvalidArgument.
type PKCS1SigFlags uint32

const (
	// NoASN1 makes apply/check/verify treat T as the raw digest
	// bytes, skipping the DigestInfo ASN.1 wrapper entirely.
	NoASN1 PKCS1SigFlags = 1 << iota

	// OptionalHashOID, recognized only by VerifyPKCS1SignaturePadding,
	// retries with NoASN1 if the OID set is empty or every entry in
	// it fails to match.
	OptionalHashOID
)

// ApplyPKCS1SignaturePadding fills em (length k) with the PKCS#1 v1.5
// signature encoding of digest, per RFC 8017 section 9.2:
//
//	EM = 0x00 || 0x01 || PS || 0x00 || T
//
// PS is all 0xFF and at least 8 bytes long. T is the DigestInfo
// encoding of digest under oid (when NoASN1 is clear and oid is
// non-empty), the historical MD5-special-case T = 0x04 || len(digest)
// || digest (when NoASN1 is clear and oid is empty), or digest itself
// (when NoASN1 is set).
func ApplyPKCS1SignaturePadding(digest []byte, oid OID, flags PKCS1SigFlags, em []byte) error {
	if flags & ^NoASN1 != 0 {
		return ErrInvalidArgument
	}

	insertASN1 := flags&NoASN1 == 0

	// The original C API distinguishes a NULL OID pointer with a
	// nonzero length (an error) from a genuinely absent OID; a Go
	// slice collapses that distinction; a zero-length oid always means
	// "no OID supplied" below.
	var tLen int
	switch {
	case !insertASN1:
		tLen = len(digest)
	case len(oid) > 0:
		// 2 SEQUENCE tag/length pairs + 1 OCTET STRING tag/length pair.
		tLen = 6 + len(oid) + len(digest)
	default:
		// Historical MD5 special case: T = 0x04 || len(digest) || digest.
		tLen = 2 + len(digest)
	}

	// Every embedded length must fit in a single DER length byte.
	if tLen > 0x80 {
		return ErrInvalidArgument
	}
	// At least 8 bytes of 0xFF padding are required.
	if 3+8+tLen > len(em) {
		return ErrInvalidArgument
	}

	psLen := len(em) - 3 - tLen

	em[0] = 0x00
	em[1] = 0x01
	for i := 0; i < psLen; i++ {
		em[2+i] = 0xff
	}
	em[2+psLen] = 0x00

	t := em[3+psLen:]
	if !insertASN1 {
		copy(t, digest)
		return nil
	}

	if len(oid) > 0 {
		t[0] = asn1SequenceTag
		t[1] = byte(tLen - 2)
		t[2] = asn1SequenceTag
		t[3] = byte(len(oid))
		off := 4
		copy(t[off:], oid)
		off += len(oid)
		t[off] = asn1OctetStringTag
		t[off+1] = byte(len(digest))
		copy(t[off+2:], digest)
		return nil
	}

	t[0] = asn1OctetStringTag
	t[1] = byte(len(digest))
	copy(t[2:], digest)
	return nil
}

// CheckPKCS1SignaturePadding re-applies the expected padding into
// scratch (length len(em), wiped first) and compares it against em in
// constant time. A mismatch returns ErrSignatureVerificationFailure,
// never ErrInvalidArgument — any malformed-input condition surfaces
// while building the expected encoding, before the comparison.
func CheckPKCS1SignaturePadding(digest []byte, oid OID, flags PKCS1SigFlags, em []byte, scratch []byte) error {
	if len(scratch) != len(em) {
		return ErrInvalidArgument
	}
	wipe(scratch)

	if err := ApplyPKCS1SignaturePadding(digest, oid, flags, scratch); err != nil {
		return err
	}

	if constantTimeEqual(scratch, em) {
		return nil
	}
	return ErrSignatureVerificationFailure
}

// VerifyPKCS1SignaturePadding checks em against each OID in oids, in
// order, stopping at the first match. If oids is empty, or every
// entry fails and OptionalHashOID is set, it retries once with
// NoASN1. The returned error is whichever attempt was last made.
func VerifyPKCS1SignaturePadding(digest []byte, oids OIDSet, em []byte, flags PKCS1SigFlags, scratch []byte) error {
	if flags & ^OptionalHashOID != 0 {
		return ErrInvalidArgument
	}

	var err error = ErrSignatureVerificationFailure
	for _, oid := range oids {
		err = CheckPKCS1SignaturePadding(digest, oid, 0, em, scratch)
		if err == nil {
			break
		}
	}

	if len(oids) == 0 || (err != nil && flags&OptionalHashOID != 0) {
		err = CheckPKCS1SignaturePadding(digest, nil, NoASN1, em, scratch)
	}

	return err
}
