package board

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
	"github.com/thenoetrevino/embudo/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the candidates of a vacancy grouped by stage",
		RunE:  handler.Command(runShow),
	}
	cli.AddVacancyFlag(cmd)
	handler.AddOutputFlags(cmd)
	return cmd
}

type columnJSON struct {
	Stage      models.Stage       `json:"stage"`
	Candidates []models.BoardItem `json:"candidates"`
}

func runShow(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	v, err := hc.CLI.App.VacancyService.GetVacancy(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}
	b, err := hc.CLI.App.PipelineService.LoadBoard(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}
	buckets := b.Buckets()
	orphans := b.Orphans()

	if hc.Out.Quiet {
		for _, bucket := range buckets {
			fmt.Printf("%s\t%d\n", bucket.Stage.Name, len(bucket.Items))
		}
		return nil
	}

	if hc.Out.JSON {
		columns := make([]columnJSON, len(buckets))
		for i, bucket := range buckets {
			columns[i] = columnJSON{Stage: bucket.Stage, Candidates: bucket.Items}
		}
		return hc.Out.Result(map[string]any{
			"vacancy": v,
			"columns": columns,
			"orphans": orphans,
		})
	}

	fmt.Println(styles.TitleStyle.Render(v.Title))
	for _, bucket := range buckets {
		fmt.Printf("\n%s %s\n", styles.StageChip(bucket.Stage), styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(bucket.Items))))
		for _, it := range bucket.Items {
			fmt.Printf("    [%d] %s", it.ID, it.DisplayName)
			if it.RoleLabel != "" {
				fmt.Printf(" - %s", it.RoleLabel)
			}
			fmt.Println(styles.SubtitleStyle.Render("  applied " + humanize.Time(it.AppliedAt)))
		}
	}
	if len(orphans) > 0 {
		fmt.Println()
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("⚠ %d candidate(s) without a stage, see 'embudo board orphans'", len(orphans))))
	}
	return nil
}
