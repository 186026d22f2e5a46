// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/types"
)

// Context is handed to every command body
type Context struct {
	Ctx context.Context
	CLI *cli.CLI
	Out *cli.OutputFormatter
	Cmd *cobra.Command
}

// Func is a command body. Returned errors are reported through the output
// formatter and mapped to an exit code.
type Func func(hc *Context) error

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Formatter builds the output formatter from --json and --quiet
func Formatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := Formatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(fmt.Errorf("initialization error: %w", err))
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		hc := &Context{Ctx: ctx, CLI: cliInstance, Out: formatter, Cmd: cmd}
		if err := fn(hc); err != nil {
			var exitErr *cli.CodedError
			if errors.As(err, &exitErr) {
				return err
			}
			return formatter.Fail(err)
		}
		return nil
	}
}

// VacancyID resolves the vacancy from --vacancy or EMBUDO_VACANCY
func (hc *Context) VacancyID() (types.VacancyID, error) {
	return cli.GetVacancyID(hc.Cmd)
}

// ItemID reads a positive candidate id from an int flag
func (hc *Context) ItemID(flagName string) (types.ItemID, error) {
	id, err := hc.Cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0", cli.ErrInvalidInput, flagName)
	}
	return types.ItemID(id), nil
}

// String returns a string flag, empty when unset
func (hc *Context) String(flagName string) string {
	v, _ := hc.Cmd.Flags().GetString(flagName)
	return v
}
