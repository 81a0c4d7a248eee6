package program

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// On-chain account sizes.
const (
	StateSize       = 73 // 1 init flag + 32 mint + 32 vault + 8 total deposited
	LoggerStateSize = 8  // little-endian sequence counter
	MessageSize     = 88 // 32 from + 32 to + 8 amount + 8 timestamp + 8 sequence
)

// State is the escrow program's per-mint state account.
type State struct {
	Initialized    bool
	TokenMint      solana.PublicKey
	Vault          solana.PublicKey
	TotalDeposited uint64
}

// DecodeState decodes an escrow state account.
func DecodeState(data []byte) (*State, error) {
	if len(data) < StateSize {
		return nil, fmt.Errorf("invalid escrow state length: expected %d bytes, got %d", StateSize, len(data))
	}

	var initialized bool
	switch data[0] {
	case 0:
		initialized = false
	case 1:
		initialized = true
	default:
		return nil, fmt.Errorf("invalid escrow state init flag: %d", data[0])
	}

	return &State{
		Initialized:    initialized,
		TokenMint:      solana.PublicKeyFromBytes(data[1:33]),
		Vault:          solana.PublicKeyFromBytes(data[33:65]),
		TotalDeposited: binary.LittleEndian.Uint64(data[65:73]),
	}, nil
}

// DecodeSequence reads the sequence counter from a logger state account.
func DecodeSequence(data []byte) (uint64, error) {
	if len(data) < LoggerStateSize {
		return 0, fmt.Errorf("invalid logger state length: expected %d bytes, got %d", LoggerStateSize, len(data))
	}
	return binary.LittleEndian.Uint64(data[:8]), nil
}

// Message is one sequence-numbered log entry written by the logger program.
type Message struct {
	From      solana.PublicKey
	To        solana.PublicKey
	Amount    uint64
	Timestamp uint64
	Sequence  uint64
}

// DecodeMessage decodes a logger message account.
func DecodeMessage(data []byte) (*Message, error) {
	if len(data) < MessageSize {
		return nil, fmt.Errorf("invalid message length: expected %d bytes, got %d", MessageSize, len(data))
	}
	return &Message{
		From:      solana.PublicKeyFromBytes(data[0:32]),
		To:        solana.PublicKeyFromBytes(data[32:64]),
		Amount:    binary.LittleEndian.Uint64(data[64:72]),
		Timestamp: binary.LittleEndian.Uint64(data[72:80]),
		Sequence:  binary.LittleEndian.Uint64(data[80:88]),
	}, nil
}
