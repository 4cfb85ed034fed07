package rsapad

// OID is a DigestInfo AlgorithmIdentifier encoding: the DER bytes of
// an OID plus its optional NULL parameters, already including the OID
// tag and length prefix. Apply uses it verbatim as the inner SEQUENCE
// contents of a PKCS#1 v1.5 signature's DigestInfo.
type OID []byte

// OIDSet is an ordered list of candidate DigestInfo encodings for a
// single digest. VerifyPKCS1SignaturePadding tries each in turn and
// stops at the first match.
type OIDSet []OID

// The DigestInfo OID tables below match spec.md §6 and SymCrypt's
// SymCryptXxxOidList tables byte for byte: each digest has a "long"
// form (explicit NULL parameters) and a "short" form (NULL omitted).
// Either must verify successfully.
var (
	MD5OIDs = OIDSet{
		{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05, 0x05, 0x00},
		{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05},
	}

	SHA1OIDs = OIDSet{
		{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a, 0x05, 0x00},
		{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a},
	}

	SHA256OIDs = OIDSet{
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00},
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01},
	}

	SHA384OIDs = OIDSet{
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00},
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02},
	}

	SHA512OIDs = OIDSet{
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00},
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03},
	}
)
