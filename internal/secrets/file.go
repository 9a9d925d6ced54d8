package secrets

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/flock"
)

// DefaultLockTimeout bounds how long FileStore waits for the file lock
const DefaultLockTimeout = 10 * time.Second

// FileStore implements the Store interface using an AES-256-GCM encrypted file.
// This is a fallback for environments where OS keyring is unavailable (WSL, headless, Docker).
// Every write happens under an exclusive file lock, so upserts are atomic across processes.
type FileStore struct {
	path        string
	lockPath    string
	key         []byte
	LockTimeout time.Duration
}

// NewFileStore creates a file-backed store for service under dir.
// If password is empty, uses a machine-specific default (less secure, prints warning).
func NewFileStore(dir, service, password string) (*FileStore, error) {
	var key []byte
	if password == "" {
		// Machine-specific default (less secure than user-provided password)
		hostname, _ := os.Hostname()
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME") // Windows fallback
		}
		hash := sha256.Sum256([]byte(fmt.Sprintf("%s@%s", username, hostname)))
		key = hash[:]
		warnOnce(dir, "WARNING: Using machine-specific encryption key. For better security, set a password via PURSE_STORE_PASSWORD env var.")
	} else {
		// TODO: derive the key with scrypt once the file format carries a salt
		hash := sha256.Sum256([]byte(password))
		key = hash[:]
	}

	// Create parent directory with 0700 permissions
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	path := filepath.Join(dir, fileName(service))
	return &FileStore{
		path:        path,
		lockPath:    path + ".lock",
		key:         key,
		LockTimeout: DefaultLockTimeout,
	}, nil
}

// fileName maps a service to a file name that is safe on every platform.
func fileName(service string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(service)) + ".enc"
}

// Path returns the location of the encrypted file.
func (s *FileStore) Path() string {
	return s.path
}

// encrypt encrypts plaintext using AES-256-GCM with a random 12-byte nonce.
// The nonce is prepended to the ciphertext.
func (s *FileStore) encrypt(plaintext []byte) ([]byte, error) {
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// decrypt reverses encrypt, reading the nonce from the front of ciphertext.
func (s *FileStore) decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

func (s *FileStore) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// withLock runs fn while holding the exclusive file lock.
// Acquisition is retried with exponential backoff until LockTimeout elapses.
func (s *FileStore) withLock(fn func() error) error {
	lock := flock.New(s.lockPath)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = s.LockTimeout

	ctx, cancel := context.WithTimeout(context.Background(), s.LockTimeout)
	defer cancel()

	err := backoff.Retry(func() error {
		locked, err := lock.TryLock()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to acquire lock: %w", err))
		}
		if !locked {
			return ErrLocked
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrLocked
		}
		return err
	}
	defer lock.Unlock()

	return fn()
}

// readStore decrypts and parses the credential file.
// Returns an empty map if the file doesn't exist.
func (s *FileStore) readStore() (map[string][]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]byte), nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if len(data) == 0 {
		return make(map[string][]byte), nil
	}

	plaintext, err := s.decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credentials: %w: %w", ErrCorrupt, err)
	}

	var store map[string][]byte
	if err := json.Unmarshal(plaintext, &store); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w: %w", ErrCorrupt, err)
	}
	if store == nil {
		store = make(map[string][]byte)
	}

	return store, nil
}

// writeStore encrypts the map and replaces the file via rename.
func (s *FileStore) writeStore(store map[string][]byte) error {
	plaintext, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	ciphertext, err := s.encrypt(plaintext)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}

	return nil
}

// Get retrieves a secret by account from the encrypted file.
func (s *FileStore) Get(account string) ([]byte, error) {
	var value []byte
	err := s.withLock(func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}

		v, ok := store[account]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})
	return value, err
}

// Set stores a secret in the encrypted file, replacing any existing value.
func (s *FileStore) Set(account string, value []byte) error {
	return s.withLock(func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}

		store[account] = value
		return s.writeStore(store)
	})
}

// Delete removes a secret from the encrypted file.
func (s *FileStore) Delete(account string) error {
	return s.withLock(func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}

		if _, ok := store[account]; !ok {
			return ErrNotFound
		}

		delete(store, account)
		return s.writeStore(store)
	})
}

// List returns all account names from the encrypted file.
func (s *FileStore) List() ([]string, error) {
	var accounts []string
	err := s.withLock(func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}

		accounts = make([]string, 0, len(store))
		for k := range store {
			accounts = append(accounts, k)
		}
		sort.Strings(accounts)
		return nil
	})
	return accounts, err
}

// Backend returns the backend identifier.
func (s *FileStore) Backend() string {
	return BackendFile
}
