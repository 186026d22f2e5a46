// Package use prints shell statements that set or clear per-shell context,
// e.g. eval $(embudo use vacancy 3)
package use

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Set per-shell context such as the current vacancy",
		Long: `Print shell statements that remember context for later commands, so
flags like --vacancy can be omitted.

Examples:
  eval $(embudo use vacancy 3)              # bash, zsh
  embudo use vacancy 3 --shell=fish | source
  eval $(embudo use vacancy --clear)`,
	}
	cmd.PersistentFlags().String("shell", "", "Shell syntax to print: sh or fish (default from $SHELL)")
	cmd.AddCommand(VacancyCmd())
	return cmd
}

// shellKind resolves the --shell flag, falling back to the basename of $SHELL
func shellKind(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("shell"); s != "" {
		return s
	}
	if filepath.Base(os.Getenv("SHELL")) == "fish" {
		return "fish"
	}
	return "sh"
}

func exportLine(shell, name string, value any) string {
	if shell == "fish" {
		return fmt.Sprintf("set -gx %s %v", name, value)
	}
	return fmt.Sprintf("export %s=%v", name, value)
}

func unsetLine(shell, name string) string {
	if shell == "fish" {
		return "set -e " + name
	}
	return "unset " + name
}
