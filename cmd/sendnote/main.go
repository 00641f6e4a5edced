// Command sendnote sends an anonymous note from the terminal.
//
//	sendnote -to https://site/u/alice -message "great talk"
//	sendnote -suggest al
//
// The server address and output options come from the environment
// (SENDNOTE_API_URL, SENDNOTE_TIMEOUT, SENDNOTE_COLORS, LOG_LEVEL); -api
// overrides the address.
//
// Exit codes: 0 = success, 1 = runtime error, 2 = bad configuration or usage.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := run(ctx, os.Args[1:], os.Environ(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sendnote: %v\n", err)
	}
	stop()
	os.Exit(code)
}
