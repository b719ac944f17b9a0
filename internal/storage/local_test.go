package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("sigorta.pdf", strings.NewReader("poliçe içeriği"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotContains(t, key, "sigorta")

	reader, err := store.Open(key)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "poliçe içeriği", string(data))

	require.NoError(t, store.Delete(key))
	_, err = store.Open(key)
	assert.Error(t, err)
}

func TestLocalStorageKeysAreUnique(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("ruhsat.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("ruhsat.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestLocalStorageRejectsPathKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("../etc/passwd")
	assert.Error(t, err)
	assert.Error(t, store.Delete("../etc/passwd"))
}

func TestLocalStorageDeleteMissingIsNoError(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("deadbeef.pdf"))
}
