// Package stage holds all cli commands that edit the stage list of a vacancy.
// Every command runs one stage editor session and saves it.
//
// e.g., embudo stage ...
package stage

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// StageCmd returns the stage parent command
func StageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Edit the stages of a vacancy board",
		Long: `Edit the ordered stage list of a vacancy.

Stages are referenced by id, id prefix or exact name. Candidates belong to a
stage by name, so renaming a stage leaves its candidates without a stage until
they are moved. 'embudo board orphans' lists them.`,
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(RecolorCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

func newStageCommand(use, short string, run handler.Func) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE:  handler.Command(run),
	}
	cli.AddVacancyFlag(cmd)
	handler.AddOutputFlags(cmd)
	return cmd
}
