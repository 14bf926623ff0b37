package crypto

import "errors"

// Sentinel errors returned by the cipher and key store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCipher is returned when the underlying block cipher cannot be
	// initialized or an encryption pass fails.
	ErrCipher = errors.New("cipher operation failed")

	// ErrMalformedCiphertext is returned by [Decrypt] when the input is not a
	// whole number of cipher blocks or the padding does not verify — which is
	// also what a key mismatch looks like from the outside.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrKeyFile is returned when a key file cannot be read, written, or
	// Base64-decoded.
	ErrKeyFile = errors.New("key file operation failed")
)
