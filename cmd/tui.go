package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/launcher"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"open"},
		Short:   "Open the interactive board",
		Long: `Open the interactive board for a vacancy.

Without --vacancy or EMBUDO_VACANCY the most recently created vacancy is opened.`,
		RunE: handler.Command(func(hc *handler.Context) error {
			vacancyID, err := hc.VacancyID()
			if err != nil && !errors.Is(err, cli.ErrNoVacancy) {
				return err
			}
			return launcher.Launch(hc.Ctx, hc.CLI.App, vacancyID)
		}),
	}
	cli.AddVacancyFlag(cmd)
	return cmd
}
