package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keysinmypurse/purse/internal/config"
	"github.com/keysinmypurse/purse/internal/secrets"
)

func TestCompletionAccounts(t *testing.T) {
	t.Setenv("PURSE_QUIET", "1")
	t.Setenv("PURSE_STORE_PASSWORD", "pw")
	t.Setenv("PURSE_SERVICE", "")
	dir := t.TempDir()

	store, err := secrets.NewFileStore(dir, "completion-svc", "pw")
	require.NoError(t, err)
	require.NoError(t, store.Set("bravo", []byte("b")))
	require.NoError(t, store.Set("alpha", []byte("a")))

	tests := []struct {
		name    string
		cfg     config.Config
		backend string
		service string
		want    []string
	}{
		{name: "file backend from config", cfg: config.Config{Backend: "file", ServiceName: "completion-svc", FileDir: dir}, want: []string{"alpha", "bravo"}},
		{name: "file backend from env", cfg: config.Config{ServiceName: "completion-svc", FileDir: dir}, backend: "file", want: []string{"alpha", "bravo"}},
		{name: "service from env", cfg: config.Config{Backend: "file", FileDir: dir}, service: "completion-svc", want: []string{"alpha", "bravo"}},
		{name: "env overrides config backend", cfg: config.Config{Backend: "file", ServiceName: "completion-svc", FileDir: dir}, backend: "keyring", want: nil},
		{name: "keyring backend never opened", cfg: config.Config{Backend: "keyring", ServiceName: "completion-svc", FileDir: dir}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PURSE_BACKEND", tt.backend)
			t.Setenv("PURSE_SERVICE", tt.service)

			cfg := tt.cfg
			assert.Equal(t, tt.want, completionAccounts(&cfg))
		})
	}
}
