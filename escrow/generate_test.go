package escrow

import (
	"path/filepath"
	"testing"

	"escrowclient/internal/crypto"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWallet(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt key derivation is slow")
	}

	path := filepath.Join(t.TempDir(), "wallet.cwt")
	password := []byte("test-password")

	address, err := GenerateWallet(path, password)
	require.NoError(t, err)

	// Address is a valid public key and matches the keystore
	_, err = solana.PublicKeyFromBase58(address)
	require.NoError(t, err)

	stored, err := crypto.ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, address, stored)

	// Existing keystore is never overwritten
	_, err = GenerateWallet(path, password)
	require.Error(t, err)
	assert.True(t, IsFileExistsError(err))
}

func TestGenerateWalletRejectsWrongExtension(t *testing.T) {
	_, err := GenerateWallet(filepath.Join(t.TempDir(), "wallet.txt"), []byte("p"))
	assert.Error(t, err)
	assert.False(t, IsFileExistsError(err))
}
