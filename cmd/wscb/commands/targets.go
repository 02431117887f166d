package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the available orchestration targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := c.app.TargetNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
