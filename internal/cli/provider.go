package cli

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/keysinmypurse/purse/internal/config"
	"github.com/keysinmypurse/purse/internal/keychain"
	"github.com/keysinmypurse/purse/internal/output"
	"github.com/keysinmypurse/purse/internal/secrets"
)

// VaultProvider lazily opens the secure store and caches the vault over it.
// Commands that never touch tokens never open the keyring.
type VaultProvider struct {
	cfg    *config.Config
	logger *slog.Logger

	once  sync.Once
	vault *keychain.Vault
	err   error
}

// NewVaultProvider creates a VaultProvider with the given config.
func NewVaultProvider(cfg *config.Config, logger *slog.Logger) *VaultProvider {
	return &VaultProvider{cfg: cfg, logger: logger}
}

// Vault returns the vault, opening the store on first call.
func (p *VaultProvider) Vault() (*keychain.Vault, error) {
	p.once.Do(func() {
		store, err := secrets.NewStore(p.cfg.StoreOptions())
		if err != nil {
			p.err = &output.CLIError{
				ExitCode: output.ExitStorage,
				Message:  fmt.Sprintf("Failed to initialize secrets store: %v", err),
				Hint:     "Try: purse --backend file ...",
			}
			return
		}

		p.logger.Debug("secure store opened", "service", p.cfg.Service(), "backend", store.Backend())
		p.vault = keychain.New(store,
			keychain.WithService(p.cfg.Service()),
			keychain.WithLogger(p.logger),
		)
	})
	return p.vault, p.err
}
