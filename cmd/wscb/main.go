// Package main is the entry point for the wscb orchestration tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/cmd/wscb/commands"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/app"
	_ "github.com/moegodot/WorldSeed-ConstructBabel/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		// The logger is not available when initialization itself failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(a)
	if err := cli.Execute(ctx); err != nil {
		// zerr renders the metadata and stack with %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
