package stage

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// DeleteCmd returns the stage delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := newStageCommand("delete", "Delete a stage", runDelete)
	cmd.Long = `Delete a stage. A board always keeps at least two stages.
Candidates in the deleted stage stay on the vacancy without a stage.`
	cmd.Flags().String("stage", "", "Stage id, id prefix or name (required)")
	if err := cmd.MarkFlagRequired("stage"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "stage", "error", err)
	}
	return cmd
}

func runDelete(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}

	var name string
	result, err := hc.CLI.App.PipelineService.EditStages(hc.Ctx, vacancyID, func(e *board.Editor) error {
		stages, err := e.Stages()
		if err != nil {
			return err
		}
		st, _, err := cli.ResolveStage(stages, hc.String("stage"))
		if err != nil {
			return err
		}
		name = st.Name
		return e.Delete(st.ID)
	})
	if err != nil {
		return err
	}
	return printStages(hc, fmt.Sprintf("Stage '%s' deleted", name), result.Stages, result)
}
