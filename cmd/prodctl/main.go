// Command prodctl is the operator CLI: schema migrations, cost
// recalculation, elapsed-time queries, access tokens and XLSX exports.
//
// It reads the same configuration as the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("prodctl: %v", err)
	}
}
