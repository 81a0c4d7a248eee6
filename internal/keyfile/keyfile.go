package keyfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

// Keypair files use the solana-keygen format: a JSON array of the 64
// secret-key bytes as integers. Files written here are mode 0600.

// Load reads a keypair file.
func Load(path string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keypair file %s: %w", path, err)
	}
	if len(key) != 64 {
		return nil, fmt.Errorf("invalid secret key length in %s: expected 64 bytes, got %d", path, len(key))
	}
	return key, nil
}

// Save writes a keypair file. Fails if the file already exists and is not empty.
func Save(path string, key solana.PrivateKey) error {
	if len(key) != 64 {
		return fmt.Errorf("invalid secret key length: expected 64 bytes, got %d", len(key))
	}

	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return fmt.Errorf("keypair file %s already exists: %w", path, os.ErrExist)
	}

	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return fmt.Errorf("failed to marshal keypair: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write keypair file: %w", err)
	}
	return nil
}

// LoadOrCreate returns the keypair stored at path. When the file does not
// exist (or is empty) a new keypair is generated and persisted first, so a
// second call returns the identical key. The second return value reports
// whether a new keypair was created.
func LoadOrCreate(path string) (solana.PrivateKey, bool, error) {
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		key, err := Load(path)
		if err != nil {
			return nil, false, err
		}
		return key, false, nil
	}

	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate keypair: %w", err)
	}
	if err := Save(path, key); err != nil {
		return nil, false, err
	}
	return key, true, nil
}
