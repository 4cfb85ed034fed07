package rsapad

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestApplyPKCS1SignaturePaddingS2 reproduces spec.md scenario S2: a
// SHA-256 digest wrapped in a DigestInfo, apply then verify round-trip.
func TestApplyPKCS1SignaturePaddingS2(t *testing.T) {
	digest := sha256.Sum256([]byte("rsapad scenario S2"))
	em := make([]byte, 256)

	err := ApplyPKCS1SignaturePadding(digest[:], SHA256OIDs[0], 0, em)
	require.NoError(t, err)

	require.Equal(t, byte(0x00), em[0])
	require.Equal(t, byte(0x01), em[1])

	scratch := make([]byte, len(em))
	err = CheckPKCS1SignaturePadding(digest[:], SHA256OIDs[0], 0, em, scratch)
	require.NoError(t, err)

	err = VerifyPKCS1SignaturePadding(digest[:], SHA256OIDs, em, 0, scratch)
	require.NoError(t, err)
}

// TestVerifyPKCS1SignaturePaddingEveryOIDTable implements round-trip
// law #4: for every digest/OID-table pair spec.md's OID tables name,
// apply+verify round-trips.
func TestVerifyPKCS1SignaturePaddingEveryOIDTable(t *testing.T) {
	tables := []struct {
		name   string
		oids   OIDSet
		digest []byte
	}{
		{"MD5", MD5OIDs, make([]byte, 16)},
		{"SHA1", SHA1OIDs, make([]byte, 20)},
		{"SHA256", SHA256OIDs, make([]byte, 32)},
		{"SHA384", SHA384OIDs, make([]byte, 48)},
		{"SHA512", SHA512OIDs, make([]byte, 64)},
	}

	for _, tc := range tables {
		t.Run(tc.name, func(t *testing.T) {
			for i, oid := range tc.oids {
				em := make([]byte, 512)
				require.NoError(t, ApplyPKCS1SignaturePadding(tc.digest, oid, 0, em), "form %d", i)

				scratch := make([]byte, len(em))
				require.NoError(t, VerifyPKCS1SignaturePadding(tc.digest, tc.oids, em, 0, scratch), "form %d", i)
			}
		})
	}
}

func TestApplyPKCS1SignaturePaddingNoASN1(t *testing.T) {
	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}
	em := make([]byte, 64)

	require.NoError(t, ApplyPKCS1SignaturePadding(digest, nil, NoASN1, em))
	require.Equal(t, digest, em[len(em)-len(digest):])

	scratch := make([]byte, len(em))
	require.NoError(t, CheckPKCS1SignaturePadding(digest, nil, NoASN1, em, scratch))
}

func TestApplyPKCS1SignaturePaddingMD5SpecialCase(t *testing.T) {
	digest := make([]byte, 16)
	em := make([]byte, 64)

	// Empty oid with ASN.1 enabled takes the historical MD5 special
	// case: T = 0x04 || len(digest) || digest, no SEQUENCE wrapper.
	require.NoError(t, ApplyPKCS1SignaturePadding(digest, nil, 0, em))
	tStart := len(em) - 2 - len(digest)
	require.Equal(t, byte(asn1OctetStringTag), em[tStart])
	require.Equal(t, byte(len(digest)), em[tStart+1])
}

func TestApplyPKCS1SignaturePaddingRejectsFlags(t *testing.T) {
	digest := make([]byte, 32)
	em := make([]byte, 64)
	err := ApplyPKCS1SignaturePadding(digest, SHA256OIDs[0], OptionalHashOID, em)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestApplyPKCS1SignaturePaddingRejectsShortBuffer(t *testing.T) {
	digest := make([]byte, 32)
	em := make([]byte, 10) // far too small for a SHA-256 DigestInfo + 8 bytes PS
	err := ApplyPKCS1SignaturePadding(digest, SHA256OIDs[0], 0, em)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCheckPKCS1SignaturePaddingRejectsWrongDigest(t *testing.T) {
	digest := sha256.Sum256([]byte("message one"))
	other := sha256.Sum256([]byte("message two"))
	em := make([]byte, 256)
	require.NoError(t, ApplyPKCS1SignaturePadding(digest[:], SHA256OIDs[0], 0, em))

	scratch := make([]byte, len(em))
	err := CheckPKCS1SignaturePadding(other[:], SHA256OIDs[0], 0, em, scratch)
	require.ErrorIs(t, err, ErrSignatureVerificationFailure)
}

func TestCheckPKCS1SignaturePaddingRejectsScratchLengthMismatch(t *testing.T) {
	digest := make([]byte, 32)
	em := make([]byte, 256)
	scratch := make([]byte, 255)
	err := CheckPKCS1SignaturePadding(digest, SHA256OIDs[0], 0, em, scratch)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestVerifyPKCS1SignaturePaddingOptionalHashOIDFallback checks that a
// NoASN1-encoded signature verifies against a non-matching OID set
// only when OptionalHashOID is set.
func TestVerifyPKCS1SignaturePaddingOptionalHashOIDFallback(t *testing.T) {
	digest := make([]byte, 32)
	em := make([]byte, 256)
	require.NoError(t, ApplyPKCS1SignaturePadding(digest, nil, NoASN1, em))

	scratch := make([]byte, len(em))

	err := VerifyPKCS1SignaturePadding(digest, SHA256OIDs, em, 0, scratch)
	require.ErrorIs(t, err, ErrSignatureVerificationFailure)

	err = VerifyPKCS1SignaturePadding(digest, SHA256OIDs, em, OptionalHashOID, scratch)
	require.NoError(t, err)
}

func TestVerifyPKCS1SignaturePaddingEmptyOIDSetFallsBackToNoASN1(t *testing.T) {
	digest := make([]byte, 32)
	em := make([]byte, 256)
	require.NoError(t, ApplyPKCS1SignaturePadding(digest, nil, NoASN1, em))

	scratch := make([]byte, len(em))
	err := VerifyPKCS1SignaturePadding(digest, nil, em, 0, scratch)
	require.NoError(t, err)
}
