package secrets

import (
	"sort"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyringStore(t *testing.T) {
	store := NewKeyringStoreFrom(keyring.NewArrayKeyring(nil))

	t.Run("missing account", func(t *testing.T) {
		_, err := store.Get("nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set("acct", []byte("t1")))
		got, err := store.Get("acct")
		require.NoError(t, err)
		assert.Equal(t, []byte("t1"), got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set("acct", []byte("t2")))
		got, err := store.Get("acct")
		require.NoError(t, err)
		assert.Equal(t, []byte("t2"), got)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.Set("other", []byte("x")))
		keys, err := store.List()
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{"acct", "other"}, keys)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete("acct"))
		_, err := store.Get("acct")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.ErrorIs(t, store.Delete("acct"), ErrNotFound)
	})

	assert.Equal(t, BackendKeyring, store.Backend())
}
