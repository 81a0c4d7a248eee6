package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the keystore password is prompted at runtime and stored in memory -
// use GetKeystorePasswordBytes()
type Config struct {
	Port                string `envconfig:"PORT" default:"8080"`
	SolanaRPCURL        string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	WalletFilePath      string `envconfig:"WALLET_FILE_PATH" default:"wallet.json"`
	KeystorePath        string `envconfig:"WALLET_KEYSTORE_PATH"` // optional encrypted .cwt keystore, overrides WALLET_FILE_PATH
	LoggerStateFilePath string `envconfig:"LOGGER_STATE_FILE_PATH" default:"logger-state.json"`
	EscrowProgramID     string `envconfig:"ESCROW_PROGRAM_ID" required:"true"`
	LoggerProgramID     string `envconfig:"LOGGER_PROGRAM_ID" required:"true"`
	TokenMint           string `envconfig:"TOKEN_MINT"` // empty: escrow-demo creates a fresh mint
	AirdropThresholdSOL string `envconfig:"AIRDROP_THRESHOLD_SOL" default:"1"`
	AirdropAmountSOL    string `envconfig:"AIRDROP_AMOUNT_SOL" default:"2"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetWalletFilePath returns path to the wallet keypair file
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetKeystorePath returns path to the encrypted keystore, empty if unset
func GetKeystorePath() string {
	return Get().KeystorePath
}

// GetLoggerStateFilePath returns path to the logger-state keypair file
func GetLoggerStateFilePath() string {
	return Get().LoggerStateFilePath
}

// GetEscrowProgramID returns the escrow program address
func GetEscrowProgramID() string {
	return Get().EscrowProgramID
}

// GetLoggerProgramID returns the logger program address
func GetLoggerProgramID() string {
	return Get().LoggerProgramID
}

// GetTokenMint returns the configured token mint address, empty if unset
func GetTokenMint() string {
	return Get().TokenMint
}

// GetAirdropThresholdSOL returns the balance below which a top-up is requested
func GetAirdropThresholdSOL() string {
	return Get().AirdropThresholdSOL
}

// GetAirdropAmountSOL returns the airdrop request size
func GetAirdropAmountSOL() string {
	return Get().AirdropAmountSOL
}

var passwordBytes []byte

// PromptForPassword prompts the user for the keystore password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter keystore password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetKeystorePasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetKeystorePasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
