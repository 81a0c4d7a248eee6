package program

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Seed prefixes for derived addresses.
var (
	stateSeed  = []byte("escrow")
	vaultSeed  = []byte("vault")
	loggerSeed = []byte("logger")
)

// DeriveStateAddress returns the escrow state PDA for a mint.
func DeriveStateAddress(programID, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{stateSeed, mint.Bytes()}, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive escrow state address: %w", err)
	}
	return addr, nil
}

// DeriveVaultAddress returns the vault PDA for a mint. The same address acts
// as the vault token account and its own transfer authority.
func DeriveVaultAddress(programID, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{vaultSeed, mint.Bytes()}, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive vault address: %w", err)
	}
	return addr, nil
}

// DeriveMessageAddress returns the logger message PDA for a sequence number.
func DeriveMessageAddress(loggerProgramID solana.PublicKey, sequence uint64) (solana.PublicKey, error) {
	seq := make([]byte, 8)
	binary.LittleEndian.PutUint64(seq, sequence)

	addr, _, err := solana.FindProgramAddress([][]byte{loggerSeed, seq}, loggerProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive message address for sequence %d: %w", sequence, err)
	}
	return addr, nil
}
