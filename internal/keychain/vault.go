// Package keychain reads and writes text tokens in a secure store, scoped by
// a service name and an account identifier, and maps backend failures onto a
// small closed set of errors.
package keychain

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"unicode/utf8"

	"github.com/keysinmypurse/purse/internal/secrets"
)

// Outcome reports what Save did.
type Outcome int

const (
	Inserted Outcome = iota + 1
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// Entry is one stored account/token pair.
type Entry struct {
	Account string `json:"account"`
	Token   string `json:"token"`
}

// Vault is the token adapter over a secrets.Store. It is safe for concurrent use.
type Vault struct {
	store   secrets.Store
	service string
	logger  *slog.Logger
	locks   *accountLocks
}

// Option configures a Vault.
type Option func(*Vault)

// WithService records the service name the store is scoped to.
func WithService(service string) Option {
	return func(v *Vault) {
		v.service = service
	}
}

// WithLogger sets the logger used by the best-effort helpers.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Vault) {
		v.logger = logger
	}
}

// New creates a Vault over store.
func New(store secrets.Store, opts ...Option) *Vault {
	v := &Vault{
		store:   store,
		service: secrets.DefaultService,
		logger:  slog.New(slog.DiscardHandler),
		locks:   newAccountLocks(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Service returns the service name the vault is scoped to.
func (v *Vault) Service() string {
	return v.service
}

// Backend returns the identifier of the underlying store.
func (v *Vault) Backend() string {
	return v.store.Backend()
}

// Read returns the token stored for account.
//
// It fails with ErrNoPassword when nothing is stored, ErrUnexpectedPasswordData
// when the stored bytes are not UTF-8 text, and *UnhandledError otherwise.
func (v *Vault) Read(account string) (string, error) {
	if account == "" {
		return "", ErrInvalidAccount
	}

	data, err := v.store.Get(account)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return "", ErrNoPassword
		}
		return "", unhandled(err)
	}

	if !utf8.Valid(data) {
		return "", ErrUnexpectedPasswordData
	}
	return string(data), nil
}

// Save stores token for account, overwriting any existing value.
// Saves for the same account are serialized; the write itself is a single upsert.
func (v *Vault) Save(account, token string) (Outcome, error) {
	if account == "" {
		return 0, ErrInvalidAccount
	}

	unlock := v.locks.lock(account)
	defer unlock()

	outcome := Updated
	if _, err := v.store.Get(account); err != nil {
		if !errors.Is(err, secrets.ErrNotFound) {
			return 0, unhandled(err)
		}
		outcome = Inserted
	}

	if err := v.store.Set(account, []byte(token)); err != nil {
		return 0, unhandled(err)
	}

	v.logger.Debug("token saved", "service", v.service, "account", account, "outcome", outcome.String())
	return outcome, nil
}

// Delete removes the entry for account. It returns ErrNoItem when there is none.
func (v *Vault) Delete(account string) error {
	if account == "" {
		return ErrInvalidAccount
	}

	unlock := v.locks.lock(account)
	defer unlock()

	if err := v.store.Delete(account); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return ErrNoItem
		}
		return unhandled(err)
	}

	v.logger.Debug("token deleted", "service", v.service, "account", account)
	return nil
}

// ListAll is not implemented and always returns an empty map.
// Use Entries to enumerate stored tokens.
func (v *Vault) ListAll(account string) (map[string]string, error) {
	return map[string]string{}, nil
}

// Entries returns every stored account/token pair for the service, sorted by account.
func (v *Vault) Entries() ([]Entry, error) {
	accounts, err := v.store.List()
	if err != nil {
		return nil, unhandled(err)
	}
	sort.Strings(accounts)

	entries := make([]Entry, 0, len(accounts))
	for _, account := range accounts {
		token, err := v.Read(account)
		if err != nil {
			// Removed between List and Read
			if errors.Is(err, ErrNoPassword) {
				continue
			}
			return nil, fmt.Errorf("account %s: %w", account, err)
		}
		entries = append(entries, Entry{Account: account, Token: token})
	}

	return entries, nil
}
