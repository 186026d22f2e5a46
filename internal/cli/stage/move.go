package stage

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// MoveCmd returns the stage move subcommand
func MoveCmd() *cobra.Command {
	cmd := newStageCommand("move", "Move a stage one position up or down", runMove)
	cmd.Long = `Swap a stage with its neighbour. Moving the first stage up or the last
stage down leaves the order unchanged.

Examples:
  embudo stage move --vacancy=1 --stage=Offer --direction=up
`
	cmd.Flags().String("stage", "", "Stage id, id prefix or name (required)")
	cmd.Flags().String("direction", "", "up or down (required)")
	for _, flag := range []string{"stage", "direction"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			slog.Error("failed to mark flag as required", "flag", flag, "error", err)
		}
	}
	return cmd
}

func runMove(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	dir, err := cli.ParseDirection(hc.String("direction"))
	if err != nil {
		return err
	}

	var name string
	var moved bool
	result, err := hc.CLI.App.PipelineService.EditStages(hc.Ctx, vacancyID, func(e *board.Editor) error {
		stages, err := e.Stages()
		if err != nil {
			return err
		}
		st, index, err := cli.ResolveStage(stages, hc.String("stage"))
		if err != nil {
			return err
		}
		name = st.Name
		moved, err = e.Move(index, dir)
		return err
	})
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Stage '%s' moved %s", name, dir)
	if !moved {
		message = fmt.Sprintf("Stage '%s' is already at the %s edge", name, dir)
	}
	return printStages(hc, message, result.Stages, result)
}
