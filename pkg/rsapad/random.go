package rsapad

import "crypto/rand"

// RandomSource fills buf with uniformly random bytes. It is the
// callback apply paths use to generate PKCS#1 padding bytes, OAEP
// seeds, and PSS salts when the caller doesn't supply one explicitly.
// Implementations must be safe for concurrent use; failures propagate
// unchanged to the apply path's caller.
type RandomSource func(buf []byte) error

// DefaultRandomSource reads from crypto/rand.Reader, the standard
// library's cryptographically secure source.
func DefaultRandomSource(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
