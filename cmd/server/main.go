// Command server runs the study-planning HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; a .env file in the working directory is loaded when present.
// The server stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/revisaquest-backend/internal/app"
)

func main() {
	// Missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
