package escrow

import (
	"errors"
	"fmt"

	"escrowclient/internal/client"
	"escrowclient/internal/model"

	"github.com/gagliardetto/solana-go"
)

// Deposit moves amount base units from the wallet's token account into the
// escrow vault and returns the confirmed transaction with its program logs.
func Deposit(amount uint64) (*model.TransferResponse, error) {
	return submitTransfer(amount, (*client.SolanaClient).Deposit)
}

// Withdraw moves amount base units from the escrow vault back to the wallet's
// token account and returns the confirmed transaction with its program logs.
func Withdraw(amount uint64) (*model.TransferResponse, error) {
	return submitTransfer(amount, (*client.SolanaClient).Withdraw)
}

type transferFunc func(c *client.SolanaClient, wallet solana.PrivateKey, loggerState, mint solana.PublicKey, amount uint64) (string, uint64, error)

func submitTransfer(amount uint64, submit transferFunc) (*model.TransferResponse, error) {
	if amount == 0 {
		return nil, errors.New("amount must be greater than zero")
	}

	wallet, err := LoadWallet()
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	loggerState, err := LoadLoggerState()
	if err != nil {
		return nil, fmt.Errorf("failed to load logger state keypair: %w", err)
	}

	mint, err := ConfiguredMint()
	if err != nil {
		return nil, err
	}

	solanaClient, err := client.NewSolanaClient()
	if err != nil {
		return nil, err
	}

	// First transfer against a fresh logger state bootstraps the counter account
	if _, err := solanaClient.EnsureLoggerState(wallet, loggerState); err != nil {
		return nil, err
	}

	txID, sequence, err := submit(solanaClient, wallet, loggerState.PublicKey(), mint, amount)
	if err != nil {
		return nil, err
	}

	logs, err := solanaClient.GetTransactionLogs(txID)
	if err != nil {
		return nil, fmt.Errorf("transfer confirmed but log retrieval failed: %w", err)
	}

	return &model.TransferResponse{
		TxID:     txID,
		Sequence: sequence,
		Logs:     logs,
	}, nil
}
