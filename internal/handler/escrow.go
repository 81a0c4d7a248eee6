package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"escrowclient/escrow"
	"escrowclient/internal/config"
	"escrowclient/internal/model"
)

// EscrowHandler holds configuration for escrow and wallet operations
type EscrowHandler struct {
	keystorePath string
}

// NewEscrowHandler creates a new EscrowHandler with config values
func NewEscrowHandler() (*EscrowHandler, error) {
	return &EscrowHandler{
		keystorePath: config.GetKeystorePath(),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new Solana wallet and saves it to the configured .cwt keystore
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Router       /wallet/generate [post]
func (h *EscrowHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if h.keystorePath == "" {
		writeError(w, http.StatusBadRequest, errors.New("WALLET_KEYSTORE_PATH not set"))
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetKeystorePasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	address, err := escrow.GenerateWallet(h.keystorePath, passwordBytes)
	if err != nil {
		if escrow.IsFileExistsError(err) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Gets the wallet SOL balance and token balance for the configured mint
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Router       /wallet/balance [get]
func (h *EscrowHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	balance, err := escrow.GetBalance()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// Airdrop handles POST /wallet/airdrop
// @Summary      Top up wallet
// @Description  Requests an airdrop when the wallet balance is below the configured threshold
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.AirdropResponse
// @Router       /wallet/airdrop [post]
func (h *EscrowHandler) Airdrop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	resp, err := escrow.Airdrop()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Deposit handles POST /escrow/deposit
// @Summary      Deposit tokens into escrow
// @Description  Transfers tokens from the wallet's token account into the escrow vault
// @Tags         escrow
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResponse
// @Router       /escrow/deposit [post]
func (h *EscrowHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := escrow.Deposit(req.Amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Withdraw handles POST /escrow/withdraw
// @Summary      Withdraw tokens from escrow
// @Description  Transfers tokens from the escrow vault back to the wallet's token account
// @Tags         escrow
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResponse
// @Router       /escrow/withdraw [post]
func (h *EscrowHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := escrow.Withdraw(req.Amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetState handles GET /escrow/state
// @Summary      Get escrow state
// @Description  Reads the on-chain escrow state and vault balance for the configured mint
// @Tags         escrow
// @Produce      json
// @Success      200  {object}  model.EscrowStateResponse
// @Router       /escrow/state [get]
func (h *EscrowHandler) GetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	state, err := escrow.GetState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// GetMessages handles GET /escrow/messages
// @Summary      Get logged transfers
// @Description  Reads the sequence-numbered message accounts written by the logger program
// @Tags         escrow
// @Produce      json
// @Success      200  {object}  model.MessagesResponse
// @Router       /escrow/messages [get]
func (h *EscrowHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	messages, err := escrow.GetMessages()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
