package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/app"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/tui"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ErrNoVacancies is returned when the board is opened before any vacancy exists
var ErrNoVacancies = errors.New("no vacancies yet: create one with 'embudo vacancy create'")

// Launch starts the TUI for one vacancy. A zero vacancyID opens the most
// recently created vacancy. Launch blocks until the program exits or the
// process is interrupted.
func Launch(ctx context.Context, application *app.App, vacancyID types.VacancyID) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model, err := NewModel(ctx, application, vacancyID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = p.Run()
	if ctx.Err() != nil {
		// Killed by the signal context, not a failure
		slog.Info("shutdown signal received")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// NewModel loads the board and wires board events and config changes into a
// TUI model. Watchers stop when ctx is done.
func NewModel(ctx context.Context, application *app.App, vacancyID types.VacancyID) (tui.Model, error) {
	vacancy, err := pickVacancy(ctx, application, vacancyID)
	if err != nil {
		return tui.Model{}, err
	}

	b, err := application.PipelineService.LoadBoard(ctx, vacancy.ID)
	if err != nil {
		return tui.Model{}, err
	}

	opts := []tui.Option{tui.WithConfigUpdates(watchConfig(ctx))}
	if bus := application.Events(); bus != nil {
		ch, err := bus.Listen(ctx, vacancy.ID)
		if err != nil {
			// Live updates are optional; the board still works without them
			slog.Warn("failed to subscribe to board events", "vacancy_id", vacancy.ID, "error", err)
		} else {
			opts = append(opts, tui.WithEvents(ch))
		}
	}

	return tui.New(ctx, application.PipelineService, vacancy, b, application.Config(), opts...), nil
}

func pickVacancy(ctx context.Context, application *app.App, id types.VacancyID) (*models.Vacancy, error) {
	if id > 0 {
		return application.VacancyService.GetVacancy(ctx, id)
	}

	vacancies, err := application.VacancyService.ListVacancies(ctx)
	if err != nil {
		return nil, err
	}
	if len(vacancies) == 0 {
		return nil, ErrNoVacancies
	}
	newest := vacancies[0]
	for _, v := range vacancies[1:] {
		if v.ID > newest.ID {
			newest = v
		}
	}
	return newest, nil
}

// watchConfig forwards config file changes until ctx is done. A missing
// config directory just means there is nothing to watch.
func watchConfig(ctx context.Context) <-chan *config.Config {
	ch := make(chan *config.Config, 1)
	path, err := config.Path()
	if err != nil {
		slog.Warn("config path unavailable, not watching for changes", "error", err)
		return ch
	}

	go func() {
		err := config.Watch(ctx, path, func(cfg *config.Config) {
			select {
			case ch <- cfg:
			case <-ctx.Done():
			}
		})
		if err != nil {
			slog.Debug("not watching config file", "path", path, "error", err)
		}
	}()
	return ch
}
