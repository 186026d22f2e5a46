// Package activity holds the cli command that prints a vacancy's activity feed
package activity

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent stage edits and candidate moves of a vacancy",
		RunE:  handler.Command(runActivity),
	}
	cli.AddVacancyFlag(cmd)
	cmd.Flags().Int("limit", 20, "Maximum number of entries (0 for all)")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runActivity(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	limit, _ := hc.Cmd.Flags().GetInt("limit")

	entries, err := hc.CLI.App.PipelineService.Activity(hc.Ctx, vacancyID, limit)
	if err != nil {
		return err
	}

	if hc.Out.Quiet {
		for _, a := range entries {
			fmt.Printf("%d\n", a.ID)
		}
		return nil
	}

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"activity": entries,
		})
	}

	if len(entries) == 0 {
		fmt.Println("No activity yet")
		return nil
	}
	for _, a := range entries {
		line := fmt.Sprintf("  %s  %s", styles.SubtitleStyle.Render(fmt.Sprintf("%-16s", humanize.Time(a.CreatedAt))), a.Summary)
		if a.Actor != "" {
			line += styles.SubtitleStyle.Render(" by " + a.Actor)
		}
		fmt.Println(line)
	}
	return nil
}
