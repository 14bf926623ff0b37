// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// Conventional key file names. The credential key protects user passwords,
// the content key protects restricted article bodies. The two key materials
// are independent.
const (
	PasswordKeyFile = "passwordKey.key"
	ArticleKeyFile  = "articleKey.key"
)

// GenerateKey returns [KeySize] cryptographically random bytes read from the
// OS CSPRNG.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipher, err)
	}
	return key, nil
}

// KeyStore loads key material from Base64-encoded key files with
// load-or-create bootstrap semantics and caches each loaded key for the
// process lifetime.
//
// The mutex serializes concurrent first-time bootstrap attempts so that two
// callers racing on the same missing file cannot mint two different keys.
type KeyStore struct {
	mu   sync.Mutex
	keys map[string][]byte
}

// NewKeyStore constructs an empty KeyStore.
func NewKeyStore() *KeyStore {
	return &KeyStore{
		keys: make(map[string][]byte),
	}
}

// LoadOrCreate returns the key material stored at path. If the file does not
// exist, a fresh key is generated, persisted Base64-encoded, and returned.
// The call is idempotent: repeated invocations against an existing file
// always return the same bytes, and results are cached per path.
func (s *KeyStore) LoadOrCreate(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.keys[path]; ok {
		return key, nil
	}

	key, err := loadOrCreateFile(path)
	if err != nil {
		return nil, err
	}

	s.keys[path] = key
	return key, nil
}

func loadOrCreateFile(path string) ([]byte, error) {
	encoded, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return generateAndStore(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}

	return key, nil
}

func generateAndStore(path string) ([]byte, error) {
	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFile, err)
	}

	return key, nil
}
