// Command server runs the production tracking and costing REST API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; a .env file in the working directory is loaded first when
// present. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/prodcost-backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
