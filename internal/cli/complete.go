package cli

import (
	"os"

	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/keysinmypurse/purse/internal/config"
	"github.com/keysinmypurse/purse/internal/secrets"
)

// Predictors returns the shell completion predictors referenced by predictor tags
func Predictors() []kongplete.Option {
	return []kongplete.Option{
		kongplete.WithPredictor("backend", complete.PredictSet(secrets.Backends...)),
		kongplete.WithPredictor("account", complete.PredictFunc(predictAccounts)),
	}
}

// predictAccounts lists stored accounts for the configured service.
// Completion must never prompt or fail, so any error yields no suggestions.
func predictAccounts(complete.Args) []string {
	cfg, err := config.Load()
	if err != nil {
		return nil
	}
	return completionAccounts(cfg)
}

// completionAccounts lists accounts for cfg, with the same env overrides the flags honour.
func completionAccounts(cfg *config.Config) []string {
	resolved := *cfg
	if service := os.Getenv("PURSE_SERVICE"); service != "" {
		resolved.ServiceName = service
	}
	if backend := os.Getenv("PURSE_BACKEND"); backend != "" {
		resolved.Backend = backend
	}

	opts := resolved.StoreOptions()
	// The OS keyring may prompt for a password; only the file store is safe here
	if opts.Backend != secrets.BackendFile {
		return nil
	}

	store, err := secrets.NewStore(opts)
	if err != nil {
		return nil
	}

	accounts, err := store.List()
	if err != nil {
		return nil
	}
	return accounts
}
