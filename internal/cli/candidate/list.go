package candidate

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// ListCmd returns the candidate list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the candidates of a vacancy",
		RunE:  handler.Command(runList),
	}
	cli.AddVacancyFlag(cmd)
	cmd.Flags().String("stage", "", "Only list candidates in this stage")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runList(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}

	items, err := hc.CLI.App.CandidateService.ListCandidates(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}
	if stage := hc.String("stage"); stage != "" {
		filtered := items[:0]
		for _, it := range items {
			if it.StageName == stage {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if hc.Out.Quiet {
		for _, it := range items {
			fmt.Printf("%d\n", it.ID)
		}
		return nil
	}

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"candidates": items,
		})
	}

	if len(items) == 0 {
		fmt.Println("No candidates found")
		return nil
	}

	fmt.Printf("Found %d candidates:\n\n", len(items))
	for _, it := range items {
		fmt.Printf("  [%d] %s", it.ID, it.DisplayName)
		if it.RoleLabel != "" {
			fmt.Printf(" - %s", it.RoleLabel)
		}
		fmt.Printf(" | %s | applied %s", it.StageName, humanize.Time(it.AppliedAt))
		if it.Source != "" {
			fmt.Printf(" via %s", it.Source)
		}
		fmt.Println()
	}
	return nil
}
