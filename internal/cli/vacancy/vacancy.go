// Package vacancy holds all cli commands related to vacancies
//
// e.g., embudo vacancy ...
package vacancy

import (
	"github.com/spf13/cobra"
)

// VacancyCmd returns the vacancy parent command
func VacancyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacancy",
		Short: "Manage vacancies",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
