package escrow

import (
	"errors"
	"fmt"
	"time"

	"escrowclient/internal/client"
	"escrowclient/internal/model"

	"github.com/gagliardetto/solana-go/rpc"
)

// GetState reads the escrow state and vault balance for the configured mint.
func GetState() (*model.EscrowStateResponse, error) {
	mint, err := ConfiguredMint()
	if err != nil {
		return nil, err
	}

	solanaClient, err := client.NewSolanaClient()
	if err != nil {
		return nil, err
	}

	state, stateAddress, err := solanaClient.GetEscrowState(mint)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("escrow not initialized for mint %s: no deposit has been made yet", mint)
		}
		return nil, err
	}

	vaultBalance, err := solanaClient.GetVaultBalance(mint)
	if err != nil {
		return nil, err
	}

	return &model.EscrowStateResponse{
		Mint:           state.TokenMint.String(),
		StateAddress:   stateAddress.String(),
		Vault:          state.Vault.String(),
		TotalDeposited: state.TotalDeposited,
		VaultBalance:   vaultBalance,
	}, nil
}

// GetMessages reads the logger message feed recorded for the wallet's
// transfers: every sequence-numbered entry up to the current counter.
func GetMessages() (*model.MessagesResponse, error) {
	loggerState, err := LoadLoggerState()
	if err != nil {
		return nil, fmt.Errorf("failed to load logger state keypair: %w", err)
	}

	solanaClient, err := client.NewSolanaClient()
	if err != nil {
		return nil, err
	}

	sequence, messages, err := solanaClient.GetMessages(loggerState.PublicKey())
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			// State account not created yet: nothing logged
			return &model.MessagesResponse{Sequence: -1, Messages: []model.MessageEntry{}}, nil
		}
		return nil, err
	}

	entries := make([]model.MessageEntry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, model.MessageEntry{
			Sequence:  m.Sequence,
			Address:   m.Address.String(),
			From:      m.From.String(),
			To:        m.To.String(),
			Amount:    m.Amount,
			Timestamp: time.Unix(int64(m.Timestamp), 0).UTC(),
		})
	}

	return &model.MessagesResponse{
		Sequence: int64(sequence),
		Messages: entries,
	}, nil
}
