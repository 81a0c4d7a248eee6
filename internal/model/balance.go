package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	SOL     string `json:"sol"`
	Tokens  uint64 `json:"tokens"` // balance of the configured mint, base units
}

// AirdropResponse represents response for POST /wallet/airdrop
type AirdropResponse struct {
	TxID    string `json:"txId,omitempty"` // empty when the balance was already above the threshold
	Skipped bool   `json:"skipped"`
	SOL     string `json:"sol"` // balance after the request
}
