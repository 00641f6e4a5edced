// Command set-accepting opens or closes an account's inbox by email address.
// Operators use it to silence an inbox without the owner's session.
//
// Usage:
//
//	set-accepting --email=user@example.com --accept=false
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/truefeedback-backend/internal/app"
	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to update")
	accept := flag.Bool("accept", true, "whether the account accepts messages")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: set-accepting --email=user@example.com --accept=false")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	// Schema changes belong to cmd/migrate.
	cfg.Database.AutoMigrate = false

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	acc, err := store.Accounts.GetByEmail(ctx, domain.NormalizeEmail(*email))
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No account found with email %q.\n", *email)
		store.Close()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("find account: %v", err)
	}

	if acc.AcceptingMessages == *accept {
		fmt.Printf("Account @%s already has accepting=%t.\n", acc.Handle, *accept)
		return
	}

	if _, err := store.Accounts.SetAcceptingMessages(ctx, acc.ID, *accept); err != nil {
		log.Fatalf("update account: %v", err)
	}

	fmt.Printf("Account @%s now has accepting=%t.\n", acc.Handle, *accept)
}
