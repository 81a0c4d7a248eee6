package escrow

import (
	"fmt"

	"escrowclient/internal/client"
	"escrowclient/internal/common"
	"escrowclient/internal/config"
	"escrowclient/internal/model"

	"github.com/gagliardetto/solana-go"
)

// GetBalance gets the wallet SOL balance and, when a mint is configured, the
// wallet's token balance for it.
func GetBalance() (*model.BalanceResponse, error) {
	wallet, err := LoadWallet()
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	walletPubkey := wallet.PublicKey()

	solanaClient, err := client.NewSolanaClient()
	if err != nil {
		return nil, err
	}

	solLamports, err := solanaClient.GetSOLBalance(walletPubkey)
	if err != nil {
		return nil, err
	}

	var tokens uint64
	if config.GetTokenMint() != "" {
		mint, err := ConfiguredMint()
		if err != nil {
			return nil, err
		}

		ataAddress, _, err := solana.FindAssociatedTokenAddress(walletPubkey, mint)
		if err != nil {
			return nil, fmt.Errorf("failed to find associated token account address: %w", err)
		}

		tokens, err = solanaClient.GetTokenBalance(ataAddress)
		if err != nil {
			return nil, err
		}
	}

	return &model.BalanceResponse{
		Address: walletPubkey.String(),
		SOL:     common.LamportsToSOL(solLamports),
		Tokens:  tokens,
	}, nil
}

// Airdrop tops up the wallet when its balance is below the configured
// threshold.
func Airdrop() (*model.AirdropResponse, error) {
	wallet, err := LoadWallet()
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	walletPubkey := wallet.PublicKey()

	thresholdLamports, err := common.SOLToLamports(config.GetAirdropThresholdSOL())
	if err != nil {
		return nil, fmt.Errorf("invalid airdrop threshold: %w", err)
	}
	airdropLamports, err := common.SOLToLamports(config.GetAirdropAmountSOL())
	if err != nil {
		return nil, fmt.Errorf("invalid airdrop amount: %w", err)
	}

	solanaClient, err := client.NewSolanaClient()
	if err != nil {
		return nil, err
	}

	txID, skipped, err := solanaClient.EnsureFunds(walletPubkey, thresholdLamports, airdropLamports)
	if err != nil {
		return nil, err
	}

	solLamports, err := solanaClient.GetSOLBalance(walletPubkey)
	if err != nil {
		return nil, err
	}

	return &model.AirdropResponse{
		TxID:    txID,
		Skipped: skipped,
		SOL:     common.LamportsToSOL(solLamports),
	}, nil
}
