package tutorial

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli/board"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial [section]",
		Short: "Output the embudo workflow as markdown",
		Long: `Output the embudo CLI workflow in compact markdown, for scripts and
agents that drive the board from the command line.

Examples:
  embudo tutorial                 # whole guide
  embudo tutorial stages          # only the "Stages" section
  embudo tutorial --render        # formatted for the terminal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := tutorialContent
			if len(args) == 1 {
				section, ok := Section(content, args[0])
				if !ok {
					return fmt.Errorf("no tutorial section %q, try one of: %s",
						args[0], strings.Join(Sections(content), ", "))
				}
				content = section
			}

			if render, _ := cmd.Flags().GetBool("render"); render {
				out, err := board.Render(content, "auto", 100)
				if err != nil {
					return err
				}
				content = out
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	return cmd
}

// Sections lists the second level headings of md
func Sections(md string) []string {
	var names []string
	for _, line := range strings.Split(md, "\n") {
		if name, ok := strings.CutPrefix(line, "## "); ok {
			names = append(names, strings.TrimSpace(name))
		}
	}
	return names
}

// Section returns the "## " block whose heading matches name, case-insensitive
func Section(md, name string) (string, bool) {
	var sb strings.Builder
	found := false
	for _, line := range strings.SplitAfter(md, "\n") {
		if heading, ok := strings.CutPrefix(line, "## "); ok {
			if found {
				break
			}
			found = strings.EqualFold(strings.TrimSpace(heading), strings.TrimSpace(name))
		}
		if found {
			sb.WriteString(line)
		}
	}
	return sb.String(), found
}
