// Listcraft is a terminal tool for combining grouped lists.
//
// It fetches grouped records from a list service, shows them as numbered
// lists, and lets you pick two lists and move items into a new one placed
// between them.
//
// Usage:
//
//	listcraft [command] [flags]
//
// Running without arguments launches the interactive program.
// See 'listcraft --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/listcraft/listcraft/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
