package vacancy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
	vacancyservice "github.com/thenoetrevino/embudo/internal/services/vacancy"
)

// CreateCmd returns the vacancy create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new vacancy",
		Long: `Create a new vacancy. Its board starts with the configured default
stages unless --stages is given.

Examples:
  # Default stages (Applied, Screening, Interview, Offer, Hired)
  embudo vacancy create --title="Backend Engineer" --company="Acme"

  # Custom stages
  embudo vacancy create --title="SRE" --stages="Sourced,Phone screen,Onsite,Hired"

  # Quiet mode for bash capture
  VACANCY_ID=$(embudo vacancy create --title="Backend Engineer" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Vacancy title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "title", "error", err)
	}
	cmd.Flags().String("company", "", "Hiring company")
	cmd.Flags().StringSlice("stages", nil, "Comma separated stage names")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(hc *handler.Context) error {
	stageNames, _ := hc.Cmd.Flags().GetStringSlice("stages")

	v, err := hc.CLI.App.VacancyService.CreateVacancy(hc.Ctx, vacancyservice.CreateVacancyRequest{
		Title:      hc.String("title"),
		Company:    hc.String("company"),
		StageNames: stageNames,
	})
	if err != nil {
		return err
	}

	stages, err := hc.CLI.App.Repo().GetStages(hc.Ctx, v.ID)
	if err != nil {
		return err
	}

	if hc.Out.Quiet {
		fmt.Printf("%d\n", v.ID)
		return nil
	}

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"vacancy": v,
			"stages":  stages,
		})
	}

	fmt.Printf("✓ Vacancy '%s' created successfully (ID: %d)\n", v.Title, v.ID)
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = styles.StageChip(st)
	}
	fmt.Printf("  Stages: %s\n", strings.Join(names, "  "))
	return nil
}
