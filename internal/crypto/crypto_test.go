package crypto

import (
	"path/filepath"
	"testing"

	"escrowclient/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt key derivation is slow")
	}

	path := filepath.Join(t.TempDir(), "wallet.cwt")
	password := []byte("test-password")

	secret := make([]byte, 64)
	for i := range secret {
		secret[i] = byte(i)
	}
	walletData := &model.WalletData{
		PrivateKey: secret,
		CreatedAt:  "2026-01-02T15:04:05Z",
	}

	err := EncryptWallet(path, "solana", "SomeAddress", "qr", walletData, password)
	require.NoError(t, err)

	cwtFile, decrypted, err := DecryptWallet(path, password)
	require.NoError(t, err)
	assert.Equal(t, "solana", cwtFile.Network)
	assert.Equal(t, "SomeAddress", cwtFile.Address)

	want := make([]byte, 64)
	for i := range want {
		want[i] = byte(i)
	}
	assert.Equal(t, want, decrypted.PrivateKey)
	assert.Equal(t, "2026-01-02T15:04:05Z", decrypted.CreatedAt)

	_, _, err = DecryptWallet(path, []byte("wrong-password"))
	assert.EqualError(t, err, "invalid password")

	address, err := ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "SomeAddress", address)
}

func TestEncryptWalletRejectsWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	err := EncryptWallet(path, "solana", "addr", "", &model.WalletData{}, []byte("p"))
	assert.Error(t, err)
}

func TestDecryptWalletMissingFile(t *testing.T) {
	_, _, err := DecryptWallet(filepath.Join(t.TempDir(), "missing.cwt"), []byte("p"))
	assert.EqualError(t, err, "file does not exist")
}
