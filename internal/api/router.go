package api

import (
	"net/http"

	"escrowclient/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	escrowHandler, err := handler.NewEscrowHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", escrowHandler.Generate)
	mux.HandleFunc("/wallet/balance", escrowHandler.GetBalance)
	mux.HandleFunc("/wallet/airdrop", escrowHandler.Airdrop)

	// Escrow endpoints
	mux.HandleFunc("/escrow/deposit", escrowHandler.Deposit)
	mux.HandleFunc("/escrow/withdraw", escrowHandler.Withdraw)
	mux.HandleFunc("/escrow/state", escrowHandler.GetState)
	mux.HandleFunc("/escrow/messages", escrowHandler.GetMessages)

	return mux, nil
}
