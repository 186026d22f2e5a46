package candidate

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	candidateservice "github.com/thenoetrevino/embudo/internal/services/candidate"
)

// AddCmd returns the candidate add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a candidate to a vacancy",
		Long: `Add a candidate to a vacancy board. The candidate starts in the first
stage unless --stage names another one.

Examples:
  embudo candidate add --vacancy=1 --name="Ada Lovelace" --role="Backend" --source=LinkedIn
  embudo candidate add --name="Grace Hopper" --stage=Interview --applied=2025-03-01
`,
		RunE: handler.Command(runAdd),
	}

	cli.AddVacancyFlag(cmd)
	cmd.Flags().String("name", "", "Candidate name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "name", "error", err)
	}
	cmd.Flags().String("role", "", "Role label shown on the card")
	cmd.Flags().String("source", "", "Where the candidate came from")
	cmd.Flags().String("stage", "", "Initial stage name")
	cmd.Flags().String("applied", "", "Application date (YYYY-MM-DD, default today)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runAdd(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	applied, err := cli.ParseDate(hc.String("applied"))
	if err != nil {
		return err
	}

	item, err := hc.CLI.App.CandidateService.AddCandidate(hc.Ctx, candidateservice.AddCandidateRequest{
		VacancyID: vacancyID,
		Name:      hc.String("name"),
		RoleLabel: hc.String("role"),
		Source:    hc.String("source"),
		StageName: hc.String("stage"),
		AppliedAt: applied,
	})
	if err != nil {
		return err
	}

	if hc.Out.Quiet {
		fmt.Printf("%d\n", item.ID)
		return nil
	}

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"candidate": item,
		})
	}

	fmt.Printf("✓ Candidate '%s' added to %s (ID: %d)\n", item.DisplayName, item.StageName, item.ID)
	return nil
}
