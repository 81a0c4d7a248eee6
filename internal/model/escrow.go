package model

import "time"

// EscrowStateResponse represents response for GET /escrow/state
type EscrowStateResponse struct {
	Mint           string `json:"mint"`
	StateAddress   string `json:"stateAddress"`
	Vault          string `json:"vault"`
	TotalDeposited uint64 `json:"totalDeposited"` // base token units
	VaultBalance   uint64 `json:"vaultBalance"`   // base token units
}

// MessageEntry is one decoded logger message account.
type MessageEntry struct {
	Sequence  uint64    `json:"sequence"`
	Address   string    `json:"address"` // message PDA
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    uint64    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// MessagesResponse represents response for GET /escrow/messages
type MessagesResponse struct {
	Sequence int64          `json:"sequence"` // current logger sequence, -1 when the state account does not exist
	Messages []MessageEntry `json:"messages"`
}
