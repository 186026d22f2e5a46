package stage

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// RecolorCmd returns the stage recolor subcommand
func RecolorCmd() *cobra.Command {
	cmd := newStageCommand("recolor", "Change the accent color of a stage", runRecolor)
	cmd.Flags().String("stage", "", "Stage id, id prefix or name (required)")
	cmd.Flags().String("color", "", "New color #RRGGBB (required)")
	for _, flag := range []string{"stage", "color"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			slog.Error("failed to mark flag as required", "flag", flag, "error", err)
		}
	}
	return cmd
}

func runRecolor(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	color := hc.String("color")
	if err := cli.ValidateColorHex(color); err != nil {
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
		return e.Recolor(st.ID, color)
	})
	if err != nil {
		return err
	}
	return printStages(hc, fmt.Sprintf("Stage '%s' recolored to %s", name, color), result.Stages, result)
}
