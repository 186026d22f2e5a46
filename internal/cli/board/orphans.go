package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
)

// OrphansCmd returns the board orphans subcommand
func OrphansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "List candidates whose stage no longer exists",
		Long: `List candidates whose stage name matches no stage of the board, usually
after a stage was renamed or deleted. Move them with 'embudo candidate move'.`,
		RunE: handler.Command(runOrphans),
	}
	cli.AddVacancyFlag(cmd)
	handler.AddOutputFlags(cmd)
	return cmd
}

func runOrphans(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	b, err := hc.CLI.App.PipelineService.LoadBoard(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}
	orphans := b.Orphans()

	if hc.Out.Quiet {
		for _, it := range orphans {
			fmt.Printf("%d\n", it.ID)
		}
		return nil
	}

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"orphans": orphans,
		})
	}

	if len(orphans) == 0 {
		fmt.Println(styles.SuccessStyle.Render("✓ Every candidate is in a stage"))
		return nil
	}
	fmt.Printf("Found %d candidates without a stage:\n\n", len(orphans))
	for _, it := range orphans {
		fmt.Printf("  [%d] %s (stage %q no longer exists)\n", it.ID, it.DisplayName, it.StageName)
	}
	return nil
}
