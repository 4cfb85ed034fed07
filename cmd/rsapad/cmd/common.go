package cmd

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"rsapad/pkg/rsapad"
)

// newHash resolves a hash name to a fresh hash.Hash and its DigestInfo
// OID table, the way a caller wiring this package into a real signer
// would pick both from a single negotiated algorithm name.
func newHash(name string) (hash.Hash, rsapad.OIDSet, error) {
	switch name {
	case "md5":
		return md5.New(), rsapad.MD5OIDs, nil
	case "sha1":
		return sha1.New(), rsapad.SHA1OIDs, nil
	case "sha256":
		return sha256.New(), rsapad.SHA256OIDs, nil
	case "sha384":
		return sha512.New384(), rsapad.SHA384OIDs, nil
	case "sha512":
		return sha512.New(), rsapad.SHA512OIDs, nil
	default:
		return nil, nil, fmt.Errorf("unrecognized hash %q", name)
	}
}
