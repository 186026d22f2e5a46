package stage

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/types"
)

// RenameCmd returns the stage rename subcommand
func RenameCmd() *cobra.Command {
	cmd := newStageCommand("rename", "Rename a stage", runRename)
	cmd.Flags().String("stage", "", "Stage id, id prefix or name (required)")
	cmd.Flags().String("name", "", "New name (required)")
	for _, flag := range []string{"stage", "name"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			slog.Error("failed to mark flag as required", "flag", flag, "error", err)
		}
	}
	return cmd
}

func runRename(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	name := hc.String("name")

	var old string
	var id types.StageID
	result, err := hc.CLI.App.PipelineService.EditStages(hc.Ctx, vacancyID, func(e *board.Editor) error {
		stages, err := e.Stages()
		if err != nil {
			return err
		}
		st, _, err := cli.ResolveStage(stages, hc.String("stage"))
		if err != nil {
			return err
		}
		old, id = st.Name, st.ID
		return e.Rename(st.ID, name)
	})
	if err != nil {
		return err
	}
	return printStages(hc, fmt.Sprintf("Stage '%s' renamed to '%s'", old, storedName(result.Stages, id, name)), result.Stages, result)
}
