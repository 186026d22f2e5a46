package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/embudo/internal/app"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// borrowed is set when App belongs to the caller and must outlive the command
	borrowed bool
}

// NewCLI loads the configuration, opens the database and builds the services
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(database.NewRepository(db), cfg, app.WithEventPublisher(events.NewBus()))
	return &CLI{App: application}, nil
}

// GetCLIFromContext returns the CLI for a command. Tests put a ready App in
// the context under testutil.TestAppKey; otherwise a new CLI is created.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && a != nil {
			return &CLI{App: a, borrowed: true}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
