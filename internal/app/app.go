package app

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/events"
	candidateservice "github.com/thenoetrevino/embudo/internal/services/candidate"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	vacancyservice "github.com/thenoetrevino/embudo/internal/services/vacancy"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	repo        database.DataStore
	eventClient events.EventPublisher
	config      *config.Config

	VacancyService   vacancyservice.Service
	CandidateService candidateservice.Service
	PipelineService  pipeline.Service
}

// New creates a new App with all services initialized.
// A nil cfg falls back to config.Default().
func New(repo database.DataStore, cfg *config.Config, opts ...Option) *App {
	appCfg := &appConfig{}
	for _, opt := range opts {
		opt(appCfg)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	logger := appCfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	pipelineService := pipeline.NewService(repo, appCfg.eventClient, pipeline.Options{
		Palette:              cfg.Palette,
		SimilarNameThreshold: cfg.SimilarNameThreshold,
		NewStageID:           appCfg.stageIDs,
		Logger:               logger,
	})

	return &App{
		repo:        repo,
		eventClient: appCfg.eventClient,
		config:      cfg,
		VacancyService: vacancyservice.NewService(repo, appCfg.eventClient, vacancyservice.Defaults{
			StageNames: cfg.DefaultStages,
			Palette:    cfg.Palette,
		}, logger),
		CandidateService: candidateservice.NewService(repo, pipelineService, appCfg.eventClient, logger),
		PipelineService:  pipelineService,
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the event publisher, nil when none was configured
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Config returns the configuration the services were built with
func (a *App) Config() *config.Config {
	return a.config
}

// Close releases the event publisher and the store
func (a *App) Close() error {
	var errs []error
	if a.eventClient != nil {
		errs = append(errs, a.eventClient.Close())
	}
	if a.repo != nil {
		errs = append(errs, a.repo.Close())
	}
	return errors.Join(errs...)
}
