// Package secrets keeps RPC endpoint URLs out of config.json. Hosted
// endpoints usually carry a provider API key in the path or query.
package secrets

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/99designs/keyring"
)

const keychainService = "plzscan"

// ErrNotFound is returned when a reference has no stored secret.
var ErrNotFound = errors.New("secret not found")

// Store saves and retrieves endpoint URLs by name.
type Store interface {
	Store(name, secret string) (ref string, err error)
	Retrieve(ref string) (string, error)
	Delete(ref string) error
}

// Keystore wraps OS keychain access.
type Keystore struct {
	ring keyring.Keyring
}

// DefaultKeystore returns a keystore backed by the OS keychain. On headless
// Linux it falls back to an encrypted file under dir.
func DefaultKeystore(dir string) *Keystore {
	fileDir := filepath.Join(dir, "keyring")
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.TerminalPrompt,
	}

	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		ring, _ = keyring.Open(keyring.Config{
			ServiceName:      keychainService,
			AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
			FileDir:          fileDir,
			FilePasswordFunc: keyring.TerminalPrompt,
		})
	}

	return &Keystore{ring: ring}
}

// Ref returns the keychain reference used for name.
func Ref(name string) string { return keychainService + "." + name }

// Store saves secret under name and returns its reference.
func (k *Keystore) Store(name, secret string) (string, error) {
	if k.ring == nil {
		return "", errors.New("keychain not available")
	}
	ref := Ref(name)
	err := k.ring.Set(keyring.Item{
		Key:   ref,
		Data:  []byte(secret),
		Label: "plzscan RPC endpoint",
	})
	if err != nil {
		return "", fmt.Errorf("keychain store: %w", err)
	}
	return ref, nil
}

// Retrieve fetches a secret by its reference.
func (k *Keystore) Retrieve(ref string) (string, error) {
	if k.ring == nil {
		return "", errors.New("keychain not available")
	}
	item, err := k.ring.Get(ref)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// Delete removes a stored secret.
func (k *Keystore) Delete(ref string) error {
	if k.ring == nil {
		return nil
	}
	if err := k.ring.Remove(ref); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("keychain delete: %w", err)
	}
	return nil
}

// InMemoryKeystore stores secrets in memory (for tests).
type InMemoryKeystore struct {
	data map[string]string
}

// NewInMemoryKeystore creates an in-memory keystore.
func NewInMemoryKeystore() *InMemoryKeystore {
	return &InMemoryKeystore{data: make(map[string]string)}
}

func (k *InMemoryKeystore) Store(name, secret string) (string, error) {
	ref := Ref(name)
	k.data[ref] = secret
	return ref, nil
}

func (k *InMemoryKeystore) Retrieve(ref string) (string, error) {
	v, ok := k.data[ref]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return v, nil
}

func (k *InMemoryKeystore) Delete(ref string) error {
	delete(k.data, ref)
	return nil
}

// ResolveEndpoint returns the URL to connect to: an explicit url wins,
// then a keychain reference, then nothing.
func ResolveEndpoint(s Store, url, ref string) (string, error) {
	if url != "" {
		return url, nil
	}
	if ref == "" {
		return "", nil
	}
	v, err := s.Retrieve(ref)
	if err != nil {
		return "", fmt.Errorf("loading saved endpoint: %w", err)
	}
	return v, nil
}
