package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	gokeyring "github.com/zalando/go-keyring"
)

// go-keyring has no enumeration call, so the store keeps its own index: a JSON
// list of accounts held under a separate service key, out of reach of account names.
const (
	indexSuffix  = "/index"
	indexAccount = "accounts"
)

// NativeStore implements the Store interface with generic-password items
// through zalando/go-keyring (Keychain, Secret Service, Windows Credential Manager).
type NativeStore struct {
	service      string
	indexService string
	mu           sync.Mutex
}

// NewNativeStore creates a store for the given service name.
func NewNativeStore(service string) *NativeStore {
	return &NativeStore{service: service, indexService: service + indexSuffix}
}

// Get retrieves a secret by account.
func (s *NativeStore) Get(account string) ([]byte, error) {
	value, err := gokeyring.Get(s.service, account)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("native keyring get failed: %w", err)
	}
	return []byte(value), nil
}

// Set stores a secret, replacing any existing value, and records the account in the index.
func (s *NativeStore) Set(account string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := gokeyring.Set(s.service, account, string(value)); err != nil {
		return fmt.Errorf("native keyring set failed: %w", err)
	}

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	if _, ok := index[account]; ok {
		return nil
	}
	index[account] = struct{}{}
	return s.writeIndex(index)
}

// Delete removes a secret and drops it from the index.
func (s *NativeStore) Delete(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := gokeyring.Delete(s.service, account); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("native keyring delete failed: %w", err)
	}

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	delete(index, account)
	return s.writeIndex(index)
}

// List returns the indexed accounts that still have an entry.
func (s *NativeStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	accounts := make([]string, 0, len(index))
	for account := range index {
		// Entries removed outside this store stay in the index until the next write
		if _, err := gokeyring.Get(s.service, account); err != nil {
			if errors.Is(err, gokeyring.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("native keyring list failed: %w", err)
		}
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	return accounts, nil
}

// Backend returns the backend identifier.
func (s *NativeStore) Backend() string {
	return BackendNative
}

func (s *NativeStore) readIndex() (map[string]struct{}, error) {
	index := make(map[string]struct{})

	raw, err := gokeyring.Get(s.indexService, indexAccount)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return index, nil
		}
		return nil, fmt.Errorf("failed to read account index: %w", err)
	}

	var accounts []string
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse account index: %w", err)
	}
	for _, account := range accounts {
		index[account] = struct{}{}
	}

	return index, nil
}

func (s *NativeStore) writeIndex(index map[string]struct{}) error {
	accounts := make([]string, 0, len(index))
	for account := range index {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to serialize account index: %w", err)
	}

	if err := gokeyring.Set(s.indexService, indexAccount, string(data)); err != nil {
		return fmt.Errorf("failed to write account index: %w", err)
	}
	return nil
}
