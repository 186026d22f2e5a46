package candidate

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
)

// MenuCmd returns the candidate menu subcommand
func MenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the Move menu for a candidate",
		RunE:  handler.Command(runMenu),
	}

	cmd.Flags().Int("id", 0, "Candidate ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "id", "error", err)
	}
	handler.AddOutputFlags(cmd)

	return cmd
}

type menuEntry struct {
	StageID  string `json:"stage_id"`
	Stage    string `json:"stage"`
	Color    string `json:"color"`
	Current  bool   `json:"current"`
	Disabled bool   `json:"disabled"`
}

func runMenu(hc *handler.Context) error {
	id, err := hc.ItemID("id")
	if err != nil {
		return err
	}

	menu, err := hc.CLI.App.CandidateService.MoveMenu(hc.Ctx, id)
	if err != nil {
		return err
	}

	if hc.Out.Quiet {
		for _, e := range menu {
			if !e.Disabled {
				fmt.Println(e.Stage.Name)
			}
		}
		return nil
	}

	if hc.Out.JSON {
		entries := make([]menuEntry, len(menu))
		for i, e := range menu {
			entries[i] = menuEntry{
				StageID:  string(e.Stage.ID),
				Stage:    e.Stage.Name,
				Color:    e.Stage.Color,
				Current:  e.Current,
				Disabled: e.Disabled,
			}
		}
		return hc.Out.Result(map[string]any{
			"menu": entries,
		})
	}

	fmt.Println(styles.TitleStyle.Render("Move to"))
	for _, e := range menu {
		line := "  " + styles.StageChip(e.Stage)
		if e.Current {
			line = "  " + styles.SubtitleStyle.Render("● "+e.Stage.Name+" (current)")
		}
		fmt.Println(line)
	}
	return nil
}
