package vacancy

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
)

// ListCmd returns the vacancy list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all vacancies",
		RunE:  handler.Command(runList),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runList(hc *handler.Context) error {
	vacancies, err := hc.CLI.App.VacancyService.ListVacancies(hc.Ctx)
	if err != nil {
		return err
	}

	if hc.Out.Quiet {
		for _, v := range vacancies {
			fmt.Printf("%d\n", v.ID)
		}
		return nil
	}

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"vacancies": vacancies,
		})
	}

	if len(vacancies) == 0 {
		fmt.Println("No vacancies found")
		return nil
	}

	fmt.Printf("Found %d vacancies:\n\n", len(vacancies))
	for _, v := range vacancies {
		fmt.Printf("  [%d] %s", v.ID, v.Title)
		if v.Company != "" {
			fmt.Printf(" at %s", v.Company)
		}
		fmt.Printf(" (opened %s)\n", humanize.Time(v.CreatedAt))
	}
	return nil
}
