// escrowd serves the escrow client HTTP API.
package main

import (
	"fmt"
	"log"
	"net/http"

	"escrowclient/internal/api"
	"escrowclient/internal/config"

	_ "escrowclient/docs"
)

// @title        Escrow Client API
// @version      1.0
// @description  HTTP surface for the Solana escrow and logger programs
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("failed to init config: %v", err)
	}

	// The password guards the encrypted keystore; plain keyfiles need none
	if config.GetKeystorePath() != "" {
		if err := config.PromptForPassword(); err != nil {
			log.Fatalf("failed to read keystore password: %v", err)
		}
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatalf("failed to set up router: %v", err)
	}

	addr := ":" + config.GetPort()
	fmt.Printf("escrowd listening on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
