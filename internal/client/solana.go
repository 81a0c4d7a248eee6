package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"escrowclient/internal/config"
	"escrowclient/internal/program"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	mintAccountSize  = 82  // SPL mint account layout
	tokenAccountSize = 165 // SPL token account layout

	confirmPollInterval = time.Second
	confirmMaxPolls     = 60
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient       *rpc.Client
	rpcURL          string
	escrowProgramID solana.PublicKey
	loggerProgramID solana.PublicKey
}

// NewSolanaClient creates a new Solana client from configuration.
func NewSolanaClient() (*SolanaClient, error) {
	escrowProgramID, err := solana.PublicKeyFromBase58(config.GetEscrowProgramID())
	if err != nil {
		return nil, fmt.Errorf("invalid escrow program ID: %w", err)
	}

	loggerProgramID, err := solana.PublicKeyFromBase58(config.GetLoggerProgramID())
	if err != nil {
		return nil, fmt.Errorf("invalid logger program ID: %w", err)
	}

	rpcURL := config.GetSolanaRPCURL()
	return &SolanaClient{
		rpcClient:       rpc.New(rpcURL),
		rpcURL:          rpcURL,
		escrowProgramID: escrowProgramID,
		loggerProgramID: loggerProgramID,
	}, nil
}

// EscrowProgramID returns the configured escrow program address.
func (c *SolanaClient) EscrowProgramID() solana.PublicKey {
	return c.escrowProgramID
}

// LoggerProgramID returns the configured logger program address.
func (c *SolanaClient) LoggerProgramID() solana.PublicKey {
	return c.loggerProgramID
}

// GetSOLBalance gets SOL balance in lamports
func (c *SolanaClient) GetSOLBalance(account solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(
		context.Background(),
		account,
		rpc.CommitmentConfirmed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// EnsureFunds requests an airdrop when the account balance is below
// thresholdLamports. Returns the airdrop signature, or skipped=true when the
// balance was already sufficient.
func (c *SolanaClient) EnsureFunds(account solana.PublicKey, thresholdLamports, airdropLamports uint64) (txID string, skipped bool, err error) {
	balance, err := c.GetSOLBalance(account)
	if err != nil {
		return "", false, err
	}
	if balance >= thresholdLamports {
		return "", true, nil
	}

	sig, err := c.rpcClient.RequestAirdrop(
		context.Background(),
		account,
		airdropLamports,
		rpc.CommitmentConfirmed,
	)
	if err != nil {
		return "", false, fmt.Errorf("failed to request airdrop: %w", err)
	}

	if err := c.waitForSignature(sig); err != nil {
		return "", false, fmt.Errorf("airdrop not confirmed: %w", err)
	}
	return sig.String(), false, nil
}

// CreateMint creates and initializes a new SPL token mint with the payer as
// mint authority.
func (c *SolanaClient) CreateMint(payer solana.PrivateKey, mint solana.PrivateKey, decimals uint8) (string, error) {
	rentLamports, err := c.rpcClient.GetMinimumBalanceForRentExemption(
		context.Background(),
		mintAccountSize,
		rpc.CommitmentFinalized,
	)
	if err != nil {
		return "", fmt.Errorf("failed to get mint rent exemption: %w", err)
	}

	payerPubkey := payer.PublicKey()
	mintPubkey := mint.PublicKey()

	createAccountInstruction := system.NewCreateAccountInstruction(
		rentLamports,
		mintAccountSize,
		solana.TokenProgramID,
		payerPubkey,
		mintPubkey,
	).Build()

	initializeMintInstruction := token.NewInitializeMintInstruction(
		decimals,
		payerPubkey, // mint authority
		payerPubkey, // freeze authority
		mintPubkey,
		solana.SysVarRentPubkey,
	).Build()

	return c.sendInstructions(
		[]solana.Instruction{createAccountInstruction, initializeMintInstruction},
		payerPubkey,
		payer, mint,
	)
}

// EnsureAssociatedTokenAccount finds the owner's associated token account for
// the mint, creating it on chain when it does not exist yet.
func (c *SolanaClient) EnsureAssociatedTokenAccount(payer solana.PrivateKey, owner, mint solana.PublicKey) (solana.PublicKey, bool, error) {
	ataAddress, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, false, fmt.Errorf("failed to find associated token account address: %w", err)
	}

	_, err = c.rpcClient.GetAccountInfo(context.Background(), ataAddress)
	if err == nil {
		return ataAddress, false, nil
	}
	if !isAccountNotFoundError(err) {
		return solana.PublicKey{}, false, fmt.Errorf("failed to check token account: %w", err)
	}

	createATAInstruction := associatedtokenaccount.NewCreateInstruction(
		payer.PublicKey(), // payer
		owner,             // owner
		mint,              // mint
	).Build()

	if _, err := c.sendInstructions(
		[]solana.Instruction{createATAInstruction},
		payer.PublicKey(),
		payer,
	); err != nil {
		return solana.PublicKey{}, false, fmt.Errorf("failed to create associated token account: %w", err)
	}

	return ataAddress, true, nil
}

// MintTo mints amount base units to the destination token account. The payer
// must be the mint authority.
func (c *SolanaClient) MintTo(payer solana.PrivateKey, mint, destination solana.PublicKey, amount uint64) (string, error) {
	mintToInstruction := token.NewMintToInstruction(
		amount,
		mint,
		destination,
		payer.PublicKey(),
		[]solana.PublicKey{},
	).Build()

	return c.sendInstructions(
		[]solana.Instruction{mintToInstruction},
		payer.PublicKey(),
		payer,
	)
}

// GetTokenBalance gets a token account balance in base units. A missing
// account reads as zero.
func (c *SolanaClient) GetTokenBalance(tokenAccount solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetTokenAccountBalance(context.Background(), tokenAccount, rpc.CommitmentConfirmed)
	if err != nil {
		if isAccountNotFoundError(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get token account balance: %w", err)
	}

	if balance.Value == nil {
		return 0, nil
	}

	amount, err := strconv.ParseUint(balance.Value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse token balance amount: %w", err)
	}
	return amount, nil
}

// EnsureLoggerState creates the logger sequence-counter account when it does
// not exist. The account is a plain keypair account owned by the logger
// program, holding the 8-byte sequence.
func (c *SolanaClient) EnsureLoggerState(payer solana.PrivateKey, state solana.PrivateKey) (bool, error) {
	statePubkey := state.PublicKey()

	_, err := c.rpcClient.GetAccountInfo(context.Background(), statePubkey)
	if err == nil {
		return false, nil
	}
	if !isAccountNotFoundError(err) {
		return false, fmt.Errorf("failed to check logger state account: %w", err)
	}

	rentLamports, err := c.rpcClient.GetMinimumBalanceForRentExemption(
		context.Background(),
		program.LoggerStateSize,
		rpc.CommitmentFinalized,
	)
	if err != nil {
		return false, fmt.Errorf("failed to get logger state rent exemption: %w", err)
	}

	createAccountInstruction := system.NewCreateAccountInstruction(
		rentLamports,
		program.LoggerStateSize,
		c.loggerProgramID,
		payer.PublicKey(),
		statePubkey,
	).Build()

	if _, err := c.sendInstructions(
		[]solana.Instruction{createAccountInstruction},
		payer.PublicKey(),
		payer, state,
	); err != nil {
		return false, fmt.Errorf("failed to create logger state account: %w", err)
	}
	return true, nil
}

// GetSequence reads the current sequence from the logger state account.
func (c *SolanaClient) GetSequence(state solana.PublicKey) (uint64, error) {
	data, err := c.getAccountData(state)
	if err != nil {
		return 0, fmt.Errorf("failed to read logger state: %w", err)
	}
	return program.DecodeSequence(data)
}

// Deposit submits a deposit instruction and returns the transaction signature
// and the logger sequence the transfer was recorded under.
func (c *SolanaClient) Deposit(wallet solana.PrivateKey, loggerState, mint solana.PublicKey, amount uint64) (string, uint64, error) {
	accounts, sequence, err := c.transferAccounts(wallet.PublicKey(), loggerState, mint)
	if err != nil {
		return "", 0, err
	}

	instruction := program.NewDepositInstruction(c.escrowProgramID, accounts, amount)
	txID, err := c.sendInstructions([]solana.Instruction{instruction}, wallet.PublicKey(), wallet)
	if err != nil {
		return "", 0, fmt.Errorf("failed to submit deposit: %w", err)
	}
	return txID, sequence, nil
}

// Withdraw submits a withdraw instruction and returns the transaction
// signature and the logger sequence the transfer was recorded under.
func (c *SolanaClient) Withdraw(wallet solana.PrivateKey, loggerState, mint solana.PublicKey, amount uint64) (string, uint64, error) {
	accounts, sequence, err := c.transferAccounts(wallet.PublicKey(), loggerState, mint)
	if err != nil {
		return "", 0, err
	}

	instruction := program.NewWithdrawInstruction(c.escrowProgramID, accounts, amount)
	txID, err := c.sendInstructions([]solana.Instruction{instruction}, wallet.PublicKey(), wallet)
	if err != nil {
		return "", 0, fmt.Errorf("failed to submit withdraw: %w", err)
	}
	return txID, sequence, nil
}

// transferAccounts resolves every account a deposit or withdraw instruction
// references. The logger program increments the sequence before deriving the
// message address, so the next entry lands at sequence+1.
func (c *SolanaClient) transferAccounts(wallet, loggerState, mint solana.PublicKey) (program.TransferAccounts, uint64, error) {
	userToken, _, err := solana.FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return program.TransferAccounts{}, 0, fmt.Errorf("failed to find associated token account address: %w", err)
	}

	stateAddress, err := program.DeriveStateAddress(c.escrowProgramID, mint)
	if err != nil {
		return program.TransferAccounts{}, 0, err
	}

	vaultAddress, err := program.DeriveVaultAddress(c.escrowProgramID, mint)
	if err != nil {
		return program.TransferAccounts{}, 0, err
	}

	sequence, err := c.GetSequence(loggerState)
	if err != nil {
		return program.TransferAccounts{}, 0, err
	}
	nextSequence := sequence + 1

	messageAddress, err := program.DeriveMessageAddress(c.loggerProgramID, nextSequence)
	if err != nil {
		return program.TransferAccounts{}, 0, err
	}

	return program.TransferAccounts{
		User:          wallet,
		UserToken:     userToken,
		EscrowState:   stateAddress,
		Vault:         vaultAddress,
		LoggerProgram: c.loggerProgramID,
		LoggerState:   loggerState,
		Message:       messageAddress,
		Mint:          mint,
	}, nextSequence, nil
}

// GetEscrowState reads and decodes the escrow state account for a mint.
// Returns rpc.ErrNotFound when no deposit has initialized it yet.
func (c *SolanaClient) GetEscrowState(mint solana.PublicKey) (*program.State, solana.PublicKey, error) {
	stateAddress, err := program.DeriveStateAddress(c.escrowProgramID, mint)
	if err != nil {
		return nil, solana.PublicKey{}, err
	}

	data, err := c.getAccountData(stateAddress)
	if err != nil {
		return nil, stateAddress, err
	}

	state, err := program.DecodeState(data)
	if err != nil {
		return nil, stateAddress, err
	}
	return state, stateAddress, nil
}

// GetVaultBalance reads the vault token account balance for a mint.
func (c *SolanaClient) GetVaultBalance(mint solana.PublicKey) (uint64, error) {
	vaultAddress, err := program.DeriveVaultAddress(c.escrowProgramID, mint)
	if err != nil {
		return 0, err
	}
	return c.GetTokenBalance(vaultAddress)
}

// LoggedMessage is a decoded logger entry together with its account address.
type LoggedMessage struct {
	Address solana.PublicKey
	program.Message
}

// GetMessages reads the logger sequence and decodes every message account up
// to it. Sequence numbers whose account is missing are skipped: a previous
// run may have advanced the counter under a different state account.
func (c *SolanaClient) GetMessages(loggerState solana.PublicKey) (uint64, []LoggedMessage, error) {
	sequence, err := c.GetSequence(loggerState)
	if err != nil {
		return 0, nil, err
	}

	messages := make([]LoggedMessage, 0, sequence)
	for n := uint64(1); n <= sequence; n++ {
		address, err := program.DeriveMessageAddress(c.loggerProgramID, n)
		if err != nil {
			return 0, nil, err
		}

		data, err := c.getAccountData(address)
		if err != nil {
			if isAccountNotFoundError(err) {
				continue
			}
			return 0, nil, fmt.Errorf("failed to read message %d: %w", n, err)
		}

		message, err := program.DecodeMessage(data)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to decode message %d: %w", n, err)
		}
		messages = append(messages, LoggedMessage{Address: address, Message: *message})
	}
	return sequence, messages, nil
}

// GetTransactionLogs fetches the program log messages of a confirmed transaction.
func (c *SolanaClient) GetTransactionLogs(txID string) ([]string, error) {
	sig, err := solana.SignatureFromBase58(txID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction signature: %w", err)
	}

	maxVersion := uint64(0)
	tx, err := c.rpcClient.GetTransaction(
		context.Background(),
		sig,
		&rpc.GetTransactionOpts{
			Encoding:                       solana.EncodingBase64,
			Commitment:                     rpc.CommitmentConfirmed,
			MaxSupportedTransactionVersion: &maxVersion,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if tx.Meta == nil {
		return nil, nil
	}
	return tx.Meta.LogMessages, nil
}

// sendInstructions assembles, signs, submits and confirms a transaction.
func (c *SolanaClient) sendInstructions(instructions []solana.Instruction, payer solana.PublicKey, signers ...solana.PrivateKey) (string, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(context.Background(), rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := c.rpcClient.SendTransactionWithOpts(
		context.Background(),
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	if err := c.waitForSignature(sig); err != nil {
		return "", err
	}
	return sig.String(), nil
}

// waitForSignature polls until the signature reaches confirmed commitment.
func (c *SolanaClient) waitForSignature(sig solana.Signature) error {
	for i := 0; i < confirmMaxPolls; i++ {
		statuses, err := c.rpcClient.GetSignatureStatuses(context.Background(), true, sig)
		if err != nil {
			return fmt.Errorf("failed to get signature status: %w", err)
		}

		if len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed: %v", sig, status.Err)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
		time.Sleep(confirmPollInterval)
	}
	return fmt.Errorf("transaction %s not confirmed after %s", sig, time.Duration(confirmMaxPolls)*confirmPollInterval)
}

// getAccountData fetches raw account data.
func (c *SolanaClient) getAccountData(account solana.PublicKey) ([]byte, error) {
	info, err := c.rpcClient.GetAccountInfo(context.Background(), account)
	if err != nil {
		return nil, err
	}
	if info.Value == nil {
		return nil, rpc.ErrNotFound
	}
	return info.Value.Data.GetBinary(), nil
}

// isAccountNotFoundError checks if error indicates that an account doesn't exist
func isAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
