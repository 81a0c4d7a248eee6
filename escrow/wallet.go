package escrow

import (
	"errors"
	"fmt"

	"escrowclient/internal/config"
	"escrowclient/internal/crypto"
	"escrowclient/internal/keyfile"

	"github.com/gagliardetto/solana-go"
)

// LoadWallet returns the service wallet keypair. With a keystore configured
// the wallet is decrypted using the startup password; otherwise the plain
// keypair file is used, generated and persisted on first use.
func LoadWallet() (solana.PrivateKey, error) {
	if path := config.GetKeystorePath(); path != "" {
		password, err := config.GetKeystorePasswordBytes()
		if err != nil {
			return nil, err
		}
		defer clear(password)

		_, walletData, err := crypto.DecryptWallet(path, password)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
		}
		defer clear(walletData.PrivateKey)

		if len(walletData.PrivateKey) != 64 {
			return nil, errors.New("invalid private key length in keystore")
		}

		key := make(solana.PrivateKey, 64)
		copy(key, walletData.PrivateKey)
		return key, nil
	}

	key, _, err := keyfile.LoadOrCreate(config.GetWalletFilePath())
	return key, err
}

// LoadLoggerState returns the logger-state keypair, generated and persisted
// on first use.
func LoadLoggerState() (solana.PrivateKey, error) {
	key, _, err := keyfile.LoadOrCreate(config.GetLoggerStateFilePath())
	return key, err
}

// ConfiguredMint returns the token mint from configuration.
func ConfiguredMint() (solana.PublicKey, error) {
	mintStr := config.GetTokenMint()
	if mintStr == "" {
		return solana.PublicKey{}, errors.New("TOKEN_MINT not set")
	}

	mint, err := solana.PublicKeyFromBase58(mintStr)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid token mint address: %w", err)
	}
	return mint, nil
}
