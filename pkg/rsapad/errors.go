// Package rsapad implements the RSA message-encoding schemes that sit
// between raw application payloads (plaintexts, message digests) and
// the fixed-width byte blocks an RSA modular-exponentiation primitive
// consumes and produces: PKCS#1 v1.5 encryption and signature padding,
// RSAES-OAEP, and RSASSA-PSS (with the MGF1 mask generation function
// they share).
//
// Every function here is a pure, reentrant transform over caller-owned
// byte slices. The package never generates RSA keys, never performs
// the modular exponentiation itself, and never allocates scratch
// memory on the caller's behalf.
package rsapad

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed padding, unrecognized
// flag bits, violated length preconditions, a required buffer that is
// absent, a structural parse failure in a remove/verify path, or an
// OAEP label-hash/PS mismatch.
var ErrInvalidArgument = errors.New("rsapad: invalid argument")

// ErrSignatureVerificationFailure is returned when a PKCS#1 v1.5
// signature padding check's byte comparison fails.
var ErrSignatureVerificationFailure = errors.New("rsapad: signature verification failure")

// ErrBufferTooSmall is the sentinel a *BufferTooSmallError matches via
// errors.Is. Callers that only care whether the output buffer was too
// small, without the required length, can test against this directly.
var ErrBufferTooSmall = errors.New("rsapad: buffer too small")

// BufferTooSmallError is returned by remove/verify paths when the
// caller supplied a plaintext output buffer shorter than the
// recovered plaintext. Required is populated even though the error is
// returned, matching spec.md's "BufferTooSmall carries the required
// length via an out-parameter populated before the error".
type BufferTooSmallError struct {
	Required int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("rsapad: buffer too small, need %d bytes", e.Required)
}

// Is reports whether target is ErrBufferTooSmall, so callers can use
// errors.Is(err, ErrBufferTooSmall) without caring about the length.
func (e *BufferTooSmallError) Is(target error) bool {
	return target == ErrBufferTooSmall
}
