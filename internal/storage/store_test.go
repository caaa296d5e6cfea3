package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	err := store.Put(KeyExpenses, []byte(`[{"id":1}]`))
	require.NoError(t, err)

	data, ok, err := store.Get(KeyExpenses)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestFileStore_MissingKey(t *testing.T) {
	store := NewFileStore(t.TempDir())

	data, ok, err := store.Get(KeyBudgets)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestFileStore_Overwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Put(KeyBudgets, []byte(`{"food":"300"}`)))
	require.NoError(t, store.Put(KeyBudgets, []byte(`{"food":"450"}`)))

	data, ok, err := store.Get(KeyBudgets)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"food":"450"}`, string(data))
}

func TestFileStore_CreatesDirOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := NewFileStore(dir)

	require.NoError(t, store.Put(KeyExpenses, []byte(`[]`)))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
