package model

// TransferRequest represents request for POST /escrow/deposit and /escrow/withdraw
type TransferRequest struct {
	Amount uint64 `json:"amount" binding:"required"` // base token units
}

// TransferResponse represents response for POST /escrow/deposit and /escrow/withdraw
type TransferResponse struct {
	TxID     string   `json:"txId"`
	Sequence uint64   `json:"sequence"` // logger sequence assigned to this transfer
	Logs     []string `json:"logs"`     // program log messages from the confirmed transaction
}
