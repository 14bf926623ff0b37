// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the symmetric cipher and key management for the
// help registry: AES-128 in ECB mode with PKCS#7 padding over raw byte
// payloads, plus generate/load-or-create handling of the two key files.
//
// The cipher parameters are pinned for compatibility with existing key and
// backup files: keys longer than 16 bytes are truncated, shorter keys are
// zero-extended, and no IV or nonce is used. ECB is a known weakness
// (identical plaintext blocks encrypt to identical ciphertext blocks);
// upgrading to an authenticated, nonce-based scheme is a breaking format
// change and is deliberately not done here.
package crypto

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// KeySize is the fixed key length in bytes (AES-128).
const KeySize = 16

// Encrypt encrypts plaintext with the given key material and returns the
// ciphertext. The key is normalized to exactly [KeySize] bytes before use.
// The output length is always a whole number of cipher blocks.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipher, err)
	}

	bs := block.BlockSize()
	padded := pad(plaintext, bs)

	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		block.Encrypt(ciphertext[i:i+bs], padded[i:i+bs])
	}

	return ciphertext, nil
}

// Decrypt is the inverse of [Encrypt]. It returns [ErrMalformedCiphertext]
// when the input is empty, not block-aligned, or the padding fails to verify
// after decryption (which is how a wrong key typically surfaces).
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipher, err)
	}

	bs := block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
		return nil, ErrMalformedCiphertext
	}

	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += bs {
		block.Decrypt(plaintext[i:i+bs], ciphertext[i:i+bs])
	}

	return unpad(plaintext, bs)
}

// normalizeKey forces the key material to exactly [KeySize] bytes: longer
// input is truncated to its first 16 bytes, shorter input is zero-extended.
// This matches the historical key handling and must not change while
// existing key files are in circulation.
func normalizeKey(key []byte) []byte {
	fixed := make([]byte, KeySize)
	copy(fixed, key)
	return fixed
}

// pad appends PKCS#7 padding: n bytes of value n, where 1 <= n <= blockSize.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	copy(padded[len(data):], bytes.Repeat([]byte{byte(n)}, n))
	return padded
}

// unpad strips and verifies PKCS#7 padding.
func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrMalformedCiphertext
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrMalformedCiphertext
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrMalformedCiphertext
		}
	}

	return data[:len(data)-n], nil
}
