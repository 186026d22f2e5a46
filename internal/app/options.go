package app

import (
	"log/slog"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/events"
)

// Option customizes what New wires into the services
type Option func(*appConfig)

type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	stageIDs    board.IDGenerator
}

// WithEventPublisher makes stage saves and candidate moves publish board
// events. Without it nothing is published.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger replaces slog.Default as the application logger
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStageIDs sets the id generator for stages added in editor sessions
func WithStageIDs(gen board.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.stageIDs = gen
	}
}
