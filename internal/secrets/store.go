package secrets

import "errors"

// Store is a secure key-value store scoped to a single service name.
// Keys are account identifiers; values are opaque secret bytes.
type Store interface {
	Get(account string) ([]byte, error)
	// Set inserts or overwrites the value for account in a single call.
	Set(account string, value []byte) error
	Delete(account string) error
	List() ([]string, error)
	// Backend names the storage mechanism (keyring, native, file).
	Backend() string
}

var (
	// ErrNotFound is returned when an account has no entry in the store
	ErrNotFound = errors.New("secret not found")

	// ErrUnavailable is returned when the backend cannot be reached on this platform
	ErrUnavailable = errors.New("secure storage unavailable")

	// ErrLocked is returned when the store lock could not be acquired in time
	ErrLocked = errors.New("secure storage is locked by another process")

	// ErrCorrupt is returned when stored data cannot be decrypted or parsed
	ErrCorrupt = errors.New("secure storage is unreadable")
)

// DefaultService is the service name used when none is configured
const DefaultService = "Popviewers"

// Backend identifiers accepted by NewStore
const (
	BackendAuto    = "auto"
	BackendKeyring = "keyring"
	BackendNative  = "native"
	BackendFile    = "file"
)

// Backends lists every accepted backend identifier
var Backends = []string{BackendAuto, BackendKeyring, BackendNative, BackendFile}
