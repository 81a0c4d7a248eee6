package keyfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")

	key, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, []byte(key), 64)

	// A second call must load the identical key, not regenerate
	same, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, key, same)
	assert.Equal(t, key.PublicKey(), same.PublicKey())
}

func TestFileFormatIsIntegerArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")

	key, _, err := LoadOrCreate(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var ints []int
	require.NoError(t, json.Unmarshal(data, &ints))
	require.Len(t, ints, 64)
	for i, b := range []byte(key) {
		assert.Equal(t, int(b), ints[i])
	}
}

func TestSaveRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")

	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	require.NoError(t, Save(path, key))

	other, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	err = Save(path, other)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestSaveRejectsShortKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	err := Save(path, solana.PrivateKey{1, 2, 3})
	assert.Error(t, err)
}

func TestLoadRejectsWrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2,3]"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
