package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	k1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	k2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestLoadOrCreate_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwordKey.key")

	ks := NewKeyStore()
	key, err := ks.LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate error: %v", err)
	}
	if len(key) != KeySize {
		t.Fatalf("key length = %d, want %d", len(key), KeySize)
	}

	// The file must now exist and hold the Base64 encoding of the key.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading key file: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		t.Fatalf("key file is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, key) {
		t.Fatalf("persisted key does not match returned key")
	}
}

func TestLoadOrCreate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articleKey.key")

	first, err := NewKeyStore().LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate error: %v", err)
	}

	// A separate store instance must load the same bytes from disk.
	second, err := NewKeyStore().LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical key bytes on repeated load")
	}
}

func TestLoadOrCreate_CachesPerPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cached.key")

	ks := NewKeyStore()
	first, err := ks.LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate error: %v", err)
	}

	// Removing the file must not matter once the key is cached.
	if err := os.Remove(path); err != nil {
		t.Fatalf("removing key file: %v", err)
	}
	second, err := ks.LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected cached key bytes after file removal")
	}
}

func TestLoadOrCreate_GarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.key")
	if err := os.WriteFile(path, []byte("%%% not base64 %%%"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := NewKeyStore().LoadOrCreate(path); !errors.Is(err, ErrKeyFile) {
		t.Fatalf("LoadOrCreate = %v, want ErrKeyFile", err)
	}
}
