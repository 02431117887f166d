// Package commands implements the CLI commands for the wscb tool.
package commands

import (
	"context"
	"io"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/app"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for wscb.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wscb",
		Short:         "Builds the WorldSeed runtime and its native dependency tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
