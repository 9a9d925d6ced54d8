package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestNativeStoreCRUD(t *testing.T) {
	gokeyring.MockInit()
	store := NewNativeStore("purse-test")

	_, err := store.Get("acct")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("acct", []byte("t1")))
	require.NoError(t, store.Set("acct", []byte("t2")))

	got, err := store.Get("acct")
	require.NoError(t, err)
	assert.Equal(t, []byte("t2"), got)

	require.NoError(t, store.Delete("acct"))
	assert.ErrorIs(t, store.Delete("acct"), ErrNotFound)
}

func TestNativeStoreListUsesIndex(t *testing.T) {
	gokeyring.MockInit()
	store := NewNativeStore("purse-list")

	require.NoError(t, store.Set("bravo", []byte("b")))
	require.NoError(t, store.Set("alpha", []byte("a")))
	require.NoError(t, store.Set("alpha", []byte("a2")))

	accounts, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, accounts)
}

func TestNativeStoreListSkipsExternallyDeleted(t *testing.T) {
	gokeyring.MockInit()
	store := NewNativeStore("purse-stale")

	require.NoError(t, store.Set("alpha", []byte("a")))
	require.NoError(t, store.Set("bravo", []byte("b")))
	require.NoError(t, gokeyring.Delete("purse-stale", "bravo"))

	accounts, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, accounts)
}

func TestNativeStoreServicesAreIsolated(t *testing.T) {
	gokeyring.MockInit()
	a := NewNativeStore("svc-a")
	b := NewNativeStore("svc-b")

	require.NoError(t, a.Set("acct", []byte("x")))

	_, err := b.Get("acct")
	assert.ErrorIs(t, err, ErrNotFound)

	accounts, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestNativeStoreIndexNotReachableByAccountNames(t *testing.T) {
	gokeyring.MockInit()
	store := NewNativeStore("purse-reserved")

	require.NoError(t, store.Set("acct", []byte("t1")))
	for _, account := range []string{".purse-index", "accounts", "index"} {
		require.NoError(t, store.Set(account, []byte("hello")))
	}
	require.NoError(t, store.Set("other", []byte("t2")))

	got, err := store.Get("accounts")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	accounts, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{".purse-index", "accounts", "acct", "index", "other"}, accounts)

	require.NoError(t, store.Delete("accounts"))
	accounts, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{".purse-index", "acct", "index", "other"}, accounts)
}
