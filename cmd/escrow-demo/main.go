// escrow-demo drives the escrow and logger programs end to end: it loads or
// creates the local identities, tops up the wallet, sets up a token mint,
// deposits into and withdraws from the escrow vault, and prints the program
// logs and the on-chain message feed.
package main

import (
	"fmt"
	"os"

	"escrowclient/internal/client"
	"escrowclient/internal/common"
	"escrowclient/internal/config"
	"escrowclient/internal/keyfile"

	"github.com/gagliardetto/solana-go"
)

const (
	mintDecimals      = 0
	initialMintAmount = 100
	depositAmount     = 50
	withdrawAmount    = 30
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}

	solanaClient, err := client.NewSolanaClient()
	if err != nil {
		return err
	}

	// Identities: loaded from disk when present, generated and persisted otherwise
	wallet, created, err := keyfile.LoadOrCreate(config.GetWalletFilePath())
	if err != nil {
		return err
	}
	walletPubkey := wallet.PublicKey()
	fmt.Printf("wallet: %s (new: %v)\n", walletPubkey, created)

	loggerState, created, err := keyfile.LoadOrCreate(config.GetLoggerStateFilePath())
	if err != nil {
		return err
	}
	fmt.Printf("logger state: %s (new: %v)\n", loggerState.PublicKey(), created)

	// Top up when below threshold
	thresholdLamports, err := common.SOLToLamports(config.GetAirdropThresholdSOL())
	if err != nil {
		return fmt.Errorf("invalid airdrop threshold: %w", err)
	}
	airdropLamports, err := common.SOLToLamports(config.GetAirdropAmountSOL())
	if err != nil {
		return fmt.Errorf("invalid airdrop amount: %w", err)
	}
	airdropTx, skipped, err := solanaClient.EnsureFunds(walletPubkey, thresholdLamports, airdropLamports)
	if err != nil {
		return err
	}
	if skipped {
		fmt.Println("airdrop: skipped, balance above threshold")
	} else {
		fmt.Printf("airdrop: %s\n", airdropTx)
	}

	mint, err := setupMint(solanaClient, wallet)
	if err != nil {
		return err
	}

	if _, err := solanaClient.EnsureLoggerState(wallet, loggerState); err != nil {
		return err
	}

	// Deposit, then withdraw
	fmt.Printf("\ndepositing %d tokens...\n", depositAmount)
	depositTx, sequence, err := solanaClient.Deposit(wallet, loggerState.PublicKey(), mint, depositAmount)
	if err != nil {
		return err
	}
	fmt.Printf("deposit confirmed: %s (sequence %d)\n", depositTx, sequence)
	if err := printLogs(solanaClient, depositTx); err != nil {
		return err
	}

	fmt.Printf("\nwithdrawing %d tokens...\n", withdrawAmount)
	withdrawTx, sequence, err := solanaClient.Withdraw(wallet, loggerState.PublicKey(), mint, withdrawAmount)
	if err != nil {
		return err
	}
	fmt.Printf("withdraw confirmed: %s (sequence %d)\n", withdrawTx, sequence)
	if err := printLogs(solanaClient, withdrawTx); err != nil {
		return err
	}

	return printState(solanaClient, mint, loggerState.PublicKey())
}

// setupMint returns the configured mint, or creates a fresh one with an
// initial supply in the wallet's associated token account.
func setupMint(solanaClient *client.SolanaClient, wallet solana.PrivateKey) (solana.PublicKey, error) {
	if mintStr := config.GetTokenMint(); mintStr != "" {
		mint, err := solana.PublicKeyFromBase58(mintStr)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("invalid token mint address: %w", err)
		}
		fmt.Printf("mint: %s (configured)\n", mint)

		if _, _, err := solanaClient.EnsureAssociatedTokenAccount(wallet, wallet.PublicKey(), mint); err != nil {
			return solana.PublicKey{}, err
		}
		return mint, nil
	}

	mintKeypair, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to generate mint keypair: %w", err)
	}
	mint := mintKeypair.PublicKey()

	if _, err := solanaClient.CreateMint(wallet, mintKeypair, mintDecimals); err != nil {
		return solana.PublicKey{}, err
	}
	fmt.Printf("mint: %s (created)\n", mint)

	ataAddress, _, err := solanaClient.EnsureAssociatedTokenAccount(wallet, wallet.PublicKey(), mint)
	if err != nil {
		return solana.PublicKey{}, err
	}

	if _, err := solanaClient.MintTo(wallet, mint, ataAddress, initialMintAmount); err != nil {
		return solana.PublicKey{}, err
	}
	fmt.Printf("minted %d tokens to %s\n", initialMintAmount, ataAddress)

	return mint, nil
}

func printLogs(solanaClient *client.SolanaClient, txID string) error {
	logs, err := solanaClient.GetTransactionLogs(txID)
	if err != nil {
		return err
	}
	for _, line := range logs {
		fmt.Println("  ", line)
	}
	return nil
}

func printState(solanaClient *client.SolanaClient, mint, loggerState solana.PublicKey) error {
	state, stateAddress, err := solanaClient.GetEscrowState(mint)
	if err != nil {
		return err
	}
	vaultBalance, err := solanaClient.GetVaultBalance(mint)
	if err != nil {
		return err
	}

	fmt.Printf("\nescrow state %s:\n", stateAddress)
	fmt.Printf("  vault:           %s\n", state.Vault)
	fmt.Printf("  total deposited: %d\n", state.TotalDeposited)
	fmt.Printf("  vault balance:   %d\n", vaultBalance)

	sequence, messages, err := solanaClient.GetMessages(loggerState)
	if err != nil {
		return err
	}
	fmt.Printf("\nlogged transfers (sequence %d):\n", sequence)
	for _, m := range messages {
		fmt.Printf("  #%d %s -> %s amount=%d ts=%d\n", m.Sequence, m.From, m.To, m.Amount, m.Timestamp)
	}
	return nil
}
