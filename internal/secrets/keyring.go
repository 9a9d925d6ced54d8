package secrets

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/99designs/keyring"
)

// KeyringStore implements the Store interface using the OS keyring.
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore opens the OS keyring for the given service.
// dir is used only by the keyring's own file backend.
// Returns an error if the keyring is unavailable on this platform.
func NewKeyringStore(service, dir string) (*KeyringStore, error) {
	cfg := keyring.Config{
		ServiceName:              service,
		KeychainTrustApplication: true, // macOS: don't prompt every access
		FileDir:                  filepath.Join(dir, "keyring"),
		FilePasswordFunc:         keyring.TerminalPrompt,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if errors.Is(err, keyring.ErrNoAvailImpl) {
			return nil, fmt.Errorf("failed to open keyring: %w", ErrUnavailable)
		}
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	return NewKeyringStoreFrom(ring), nil
}

// NewKeyringStoreFrom wraps an already opened keyring.
func NewKeyringStoreFrom(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

// Get retrieves a secret by account from the keyring.
func (s *KeyringStore) Get(account string) ([]byte, error) {
	item, err := s.ring.Get(account)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("keyring get failed: %w", err)
	}
	return item.Data, nil
}

// Set stores a secret in the keyring, replacing any existing value.
func (s *KeyringStore) Set(account string, value []byte) error {
	item := keyring.Item{
		Key:   account,
		Data:  value,
		Label: account,
	}
	if err := s.ring.Set(item); err != nil {
		return fmt.Errorf("keyring set failed: %w", err)
	}
	return nil
}

// Delete removes a secret from the keyring.
func (s *KeyringStore) Delete(account string) error {
	// Some backends treat removal of a missing key as success
	if _, err := s.Get(account); err != nil {
		return err
	}
	if err := s.ring.Remove(account); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("keyring delete failed: %w", err)
	}
	return nil
}

// List returns all account names stored for the service.
func (s *KeyringStore) List() ([]string, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("keyring list failed: %w", err)
	}
	return keys, nil
}

// Backend returns the backend identifier.
func (s *KeyringStore) Backend() string {
	return BackendKeyring
}
