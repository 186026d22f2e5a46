// Package board holds the cli commands that render a vacancy board
//
// e.g., embudo board ...
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show and export vacancy boards",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(OrphansCmd())

	return cmd
}
