package prefstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyActiveFilter, "unread"))
	got, ok, err := store.Get(KeyActiveFilter)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "unread", got)

	// Set replaces the previous value.
	require.NoError(t, store.Set(KeyActiveFilter, "archived"))
	got, _, _ = store.Get(KeyActiveFilter)
	assert.Equal(t, "archived", got)

	require.NoError(t, store.Delete(KeyActiveFilter))
	_, ok, _ = store.Get(KeyActiveFilter)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(KeyActiveFilter))
}

func TestStore_TypedHelpers(t *testing.T) {
	store := openTestStore(t)

	assert.True(t, store.GetBool(KeyAutoRefreshEnabled, true))
	require.NoError(t, store.SetBool(KeyAutoRefreshEnabled, false))
	assert.False(t, store.GetBool(KeyAutoRefreshEnabled, true))

	assert.Equal(t, 30, store.GetInt(KeyRefreshInterval, 30))
	require.NoError(t, store.SetInt(KeyRefreshInterval, 15))
	assert.Equal(t, 15, store.GetInt(KeyRefreshInterval, 30))

	// Malformed values fall back.
	require.NoError(t, store.Set(KeyRefreshInterval, "soon"))
	assert.Equal(t, 30, store.GetInt(KeyRefreshInterval, 30))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}
