package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/activity"
	"github.com/thenoetrevino/embudo/internal/cli/board"
	"github.com/thenoetrevino/embudo/internal/cli/candidate"
	"github.com/thenoetrevino/embudo/internal/cli/stage"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
	"github.com/thenoetrevino/embudo/internal/cli/tutorial"
	"github.com/thenoetrevino/embudo/internal/cli/use"
	"github.com/thenoetrevino/embudo/internal/cli/vacancy"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/logging"
)

// logCloser is the open log file, closed after the command finishes
var logCloser io.Closer

// NewRootCmd builds the embudo command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "embudo",
		Short: "embudo - a recruitment pipeline board",
		Long: `embudo lays out the candidates of a vacancy in ordered, colored stages.
Move candidates by dragging them in the board (embudo tui) or with the move
commands, and edit the stage list as one atomic session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logging is best effort; commands still run without a log file
			if dir, err := logging.DefaultDir(); err == nil {
				if closer, err := logging.Init(dir); err == nil {
					logCloser = closer
				}
			}
			if cfg, err := config.Load(); err == nil {
				styles.Init(cfg.ColorScheme)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
				logCloser = nil
			}
		},
	}

	rootCmd.AddCommand(
		vacancy.VacancyCmd(),
		candidate.CandidateCmd(),
		stage.StageCmd(),
		board.BoardCmd(),
		activity.ActivityCmd(),
		use.UseCmd(),
		tutorial.TutorialCmd(),
		tuiCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits with the command's exit code
func Execute() {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var exitErr *cli.CodedError
	if !errors.As(err, &exitErr) {
		// Usage errors from cobra itself never reach the output formatter
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCodeOf(err))
}
