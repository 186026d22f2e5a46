package use

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/types"
)

// VacancyCmd returns the use vacancy subcommand
func VacancyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacancy [vacancy-id]",
		Short: "Set vacancy context for current shell session",
		Long: `Set the current vacancy using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(embudo use vacancy 3)              # Use vacancy 3
  eval $(embudo use vacancy --clear)        # Clear vacancy context
  embudo use vacancy --show                 # Show current vacancy

The EMBUDO_VACANCY environment variable is set in your current shell
session only. The --vacancy flag on other commands takes precedence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runUseVacancy),
	}

	cmd.Flags().Bool("clear", false, "Clear the current vacancy context")
	cmd.Flags().Bool("show", false, "Show the current vacancy context")

	return cmd
}

func runUseVacancy(hc *handler.Context) error {
	clearFlag, _ := hc.Cmd.Flags().GetBool("clear")
	showFlag, _ := hc.Cmd.Flags().GetBool("show")

	if showFlag {
		current := os.Getenv(cli.VacancyEnv)
		if current == "" {
			fmt.Println("No vacancy context set")
			fmt.Println("Use 'eval $(embudo use vacancy <vacancy-id>)' to set one")
			return nil
		}
		id, err := strconv.Atoi(current)
		if err != nil {
			fmt.Printf("Invalid vacancy context: %s\n", current)
			return nil
		}
		v, err := hc.CLI.App.VacancyService.GetVacancy(hc.Ctx, types.VacancyID(id))
		if err != nil {
			fmt.Printf("Current vacancy: %s (vacancy not found)\n", current)
			return nil
		}
		fmt.Printf("Current vacancy: %d (%s)\n", v.ID, v.Title)
		return nil
	}

	if clearFlag {
		fmt.Println(unsetLine(shellKind(hc.Cmd), cli.VacancyEnv))
		fmt.Fprintln(os.Stderr, "Cleared vacancy context")
		return nil
	}

	args := hc.Cmd.Flags().Args()
	if len(args) == 0 {
		return fmt.Errorf("%w: vacancy ID required\nUsage: eval $(embudo use vacancy <vacancy-id>)", cli.ErrInvalidInput)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid vacancy ID: %s", cli.ErrInvalidInput, args[0])
	}

	v, err := hc.CLI.App.VacancyService.GetVacancy(hc.Ctx, types.VacancyID(id))
	if err != nil {
		return err
	}

	fmt.Println(exportLine(shellKind(hc.Cmd), cli.VacancyEnv, v.ID))
	fmt.Fprintf(os.Stderr, "Now using vacancy %d: %s\n", v.ID, v.Title)
	return nil
}
