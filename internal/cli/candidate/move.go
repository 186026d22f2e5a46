package candidate

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// MoveCmd returns the candidate move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a candidate to another stage",
		Long: `Move a candidate to another stage of its vacancy. This is the Move menu
of the board: the result is the same as dragging the card onto the stage.

Examples:
  embudo candidate move --id=12 --stage=Interview
  embudo candidate menu --id=12   # list the stages the candidate can move to
`,
		RunE: handler.Command(runMove),
	}

	cmd.Flags().Int("id", 0, "Candidate ID (required)")
	cmd.Flags().String("stage", "", "Target stage name (required)")
	for _, name := range []string{"id", "stage"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
	handler.AddOutputFlags(cmd)

	return cmd
}

func runMove(hc *handler.Context) error {
	id, err := hc.ItemID("id")
	if err != nil {
		return err
	}

	item, err := hc.CLI.App.CandidateService.MoveCandidate(hc.Ctx, id, hc.String("stage"))
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

	fmt.Printf("✓ %s moved to %s\n", item.DisplayName, item.StageName)
	return nil
}
