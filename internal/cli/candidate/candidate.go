// Package candidate holds all cli commands related to candidates on a board
//
// e.g., embudo candidate ...
package candidate

import (
	"github.com/spf13/cobra"
)

// CandidateCmd returns the candidate parent command
func CandidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidate",
		Short: "Manage candidates on a vacancy board",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(MenuCmd())

	return cmd
}
