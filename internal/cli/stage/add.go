package stage

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/types"
)

// AddCmd returns the stage add subcommand
func AddCmd() *cobra.Command {
	cmd := newStageCommand("add", "Append a stage to the end of the board", runAdd)
	cmd.Long = `Append a stage. Without flags it is called "New stage" and takes the next
palette color.

Examples:
  embudo stage add --vacancy=1
  embudo stage add --vacancy=1 --name="Reference check" --color="#FFAF00"
`
	cmd.Flags().String("name", "", "Stage name")
	cmd.Flags().String("color", "", "Stage color (#RRGGBB)")
	return cmd
}

func runAdd(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	name, color := hc.String("name"), hc.String("color")
	if color != "" {
		if err := cli.ValidateColorHex(color); err != nil {
			return err
		}
	}

	var id types.StageID
	result, err := hc.CLI.App.PipelineService.EditStages(hc.Ctx, vacancyID, func(e *board.Editor) error {
		st, err := e.Add()
		if err != nil {
			return err
		}
		id = st.ID
		if name != "" {
			if err := e.Rename(st.ID, name); err != nil {
				return err
			}
		}
		if color != "" {
			return e.Recolor(st.ID, color)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return printStages(hc, fmt.Sprintf("Stage '%s' added", storedName(result.Stages, id, name)), result.Stages, result)
}
