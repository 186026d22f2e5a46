package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
	"golang.org/x/sync/errgroup"
)

// Service loads vacancy boards backed by the store and runs stage editor
// sessions against them
type Service interface {
	// LoadBoard builds a board whose moves and stage saves are persisted
	LoadBoard(ctx context.Context, vacancyID types.VacancyID) (*board.Board, error)

	// EditStages opens the stage editor, applies edit and saves. If edit
	// returns an error the session is cancelled and nothing is stored.
	EditStages(ctx context.Context, vacancyID types.VacancyID, edit func(*board.Editor) error) (*EditResult, error)

	// Warnings reports look-alike stage names for a stage list
	Warnings(stages []models.Stage) []NameWarning

	// Activity lists the newest activity entries of a vacancy
	Activity(ctx context.Context, vacancyID types.VacancyID, limit int) ([]*models.Activity, error)
}

// EditResult is the outcome of a saved stage editor session
type EditResult struct {
	Stages   []models.Stage
	Orphans  []models.BoardItem
	Warnings []NameWarning
}

// Options tunes board construction
type Options struct {
	Palette              []string
	SimilarNameThreshold int
	// NewStageID generates ids for added stages; nil means uuids
	NewStageID board.IDGenerator
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
	opts        Options
	log         *slog.Logger
}

// NewService creates a new pipeline service
func NewService(repo database.DataStore, eventClient events.EventPublisher, opts Options) Service {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &service{repo: repo, eventClient: eventClient, opts: opts, log: log}
}

// LoadBoard checks the vacancy and reads its stages concurrently, then fetches
// the candidates through the board's item source contract
func (s *service) LoadBoard(ctx context.Context, vacancyID types.VacancyID) (*board.Board, error) {
	if vacancyID <= 0 {
		return nil, ErrInvalidVacancyID
	}

	var stages []models.Stage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if _, err := s.repo.GetVacancy(gctx, vacancyID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return ErrVacancyNotFound
			}
			return err
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stages, err = s.repo.GetStages(gctx, vacancyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	persister := &storePersister{vacancyID: vacancyID, repo: s.repo, eventClient: s.eventClient, log: s.log}
	b, err := board.Load(ctx, vacancyID, stages, s.repo,
		board.WithPersister(persister),
		board.WithStageOptions(
			board.WithPalette(s.opts.Palette),
			board.WithIDGenerator(s.opts.NewStageID),
		),
	)
	if err != nil {
		return nil, err
	}

	s.log.Debug("board loaded", "vacancy_id", vacancyID, "stages", len(stages), "candidates", len(b.Items()))
	return b, nil
}

func (s *service) EditStages(ctx context.Context, vacancyID types.VacancyID, edit func(*board.Editor) error) (*EditResult, error) {
	b, err := s.LoadBoard(ctx, vacancyID)
	if err != nil {
		return nil, err
	}

	editor := b.Editor()
	if err := editor.Open(); err != nil {
		return nil, err
	}
	if err := edit(editor); err != nil {
		editor.Cancel()
		return nil, err
	}

	working, err := editor.Stages()
	if err != nil {
		return nil, err
	}
	if err := normalizeStageNames(editor, working); err != nil {
		editor.Cancel()
		return nil, err
	}

	saved, err := editor.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save stages: %w", err)
	}

	result := &EditResult{
		Stages:   saved,
		Orphans:  b.Orphans(),
		Warnings: s.Warnings(saved),
	}
	if len(result.Orphans) > 0 {
		s.log.Info("stage edit left candidates without a stage", "vacancy_id", vacancyID, "orphans", len(result.Orphans))
	}
	return result, nil
}

func (s *service) Warnings(stages []models.Stage) []NameWarning {
	return SimilarStageNames(stages, s.opts.SimilarNameThreshold)
}

func (s *service) Activity(ctx context.Context, vacancyID types.VacancyID, limit int) ([]*models.Activity, error) {
	if vacancyID <= 0 {
		return nil, ErrInvalidVacancyID
	}
	return s.repo.ListActivity(ctx, vacancyID, limit)
}

// MaxStageNameLength is the longest stage name the store accepts
const MaxStageNameLength = 50

// ValidateStageName rejects blank names and names longer than
// MaxStageNameLength characters. Surrounding spaces are not counted.
func ValidateStageName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStageName
	}
	if utf8.RuneCountInString(name) > MaxStageNameLength {
		return ErrStageNameTooLong
	}
	return nil
}

// normalizeStageNames validates every working stage name and stores it trimmed
func normalizeStageNames(editor *board.Editor, stages []models.Stage) error {
	for _, st := range stages {
		if err := ValidateStageName(st.Name); err != nil {
			return err
		}
		if trimmed := strings.TrimSpace(st.Name); trimmed != st.Name {
			if err := editor.Rename(st.ID, trimmed); err != nil {
				return err
			}
		}
	}
	return nil
}
