package stage

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// ListCmd returns the stage list subcommand
func ListCmd() *cobra.Command {
	return newStageCommand("list", "List the stages of a vacancy in board order", runList)
}

func runList(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	b, err := hc.CLI.App.PipelineService.LoadBoard(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}
	return printStages(hc, "", b.Stages(), nil)
}
