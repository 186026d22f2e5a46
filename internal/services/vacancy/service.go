package vacancy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// Service defines all vacancy-related business operations
type Service interface {
	CreateVacancy(ctx context.Context, req CreateVacancyRequest) (*models.Vacancy, error)
	GetVacancy(ctx context.Context, id types.VacancyID) (*models.Vacancy, error)
	ListVacancies(ctx context.Context) ([]*models.Vacancy, error)
}

// CreateVacancyRequest encapsulates data for creating a vacancy.
// StageNames overrides the configured default stages when set.
type CreateVacancyRequest struct {
	Title      string
	Company    string
	StageNames []string
}

// Defaults are the seed values applied to new vacancies
type Defaults struct {
	StageNames []string
	Palette    []string
}

type service struct {
	repo        database.VacancyRepository
	eventClient events.EventPublisher
	defaults    Defaults
	log         *slog.Logger
}

// NewService creates a new vacancy service. A nil logger means slog.Default().
func NewService(repo database.VacancyRepository, eventClient events.EventPublisher, defaults Defaults, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, eventClient: eventClient, defaults: defaults, log: logger}
}

// CreateVacancy creates the vacancy together with its seeded stage list
func (s *service) CreateVacancy(ctx context.Context, req CreateVacancyRequest) (*models.Vacancy, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if len(req.Title) > 255 {
		return nil, ErrTitleTooLong
	}

	names := req.StageNames
	if len(names) == 0 {
		names = s.defaults.StageNames
	}
	stages := SeedStages(names, s.defaults.Palette)
	if len(stages) < models.MinStages {
		return nil, ErrTooFewStages
	}

	v, err := s.repo.CreateVacancy(ctx, req.Title, strings.TrimSpace(req.Company), stages)
	if err != nil {
		return nil, fmt.Errorf("failed to create vacancy: %w", err)
	}

	s.log.Info("vacancy created", "vacancy_id", v.ID, "stages", len(stages))
	if err := events.PublishWithRetry(s.eventClient, events.Event{Type: events.EventVacancyCreated, VacancyID: v.ID}, 3); err != nil {
		s.log.Warn("failed to publish vacancy event", "vacancy_id", v.ID, "error", err)
	}
	return v, nil
}

func (s *service) GetVacancy(ctx context.Context, id types.VacancyID) (*models.Vacancy, error) {
	if id <= 0 {
		return nil, ErrInvalidVacancyID
	}
	v, err := s.repo.GetVacancy(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrVacancyNotFound
	}
	return v, err
}

func (s *service) ListVacancies(ctx context.Context) ([]*models.Vacancy, error) {
	return s.repo.ListVacancies(ctx)
}

// SeedStages builds stages for the given names, skipping blank ones and
// coloring them from the palette in order
func SeedStages(names, palette []string) []models.Stage {
	if len(palette) == 0 {
		palette = models.DefaultPalette
	}

	var stages []models.Stage
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		stages = append(stages, models.Stage{
			ID:    types.StageID(uuid.NewString()),
			Name:  name,
			Color: palette[len(stages)%len(palette)],
		})
	}
	return stages
}
