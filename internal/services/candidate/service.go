package candidate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/types"
	"github.com/thenoetrevino/embudo/internal/user"
)

// Service defines all candidate-related business operations
type Service interface {
	AddCandidate(ctx context.Context, req AddCandidateRequest) (*models.BoardItem, error)
	GetCandidate(ctx context.Context, id types.ItemID) (*models.BoardItem, types.VacancyID, error)
	ListCandidates(ctx context.Context, vacancyID types.VacancyID) ([]models.BoardItem, error)

	// MoveMenu returns the Move menu entries offered for a candidate
	MoveMenu(ctx context.Context, id types.ItemID) ([]board.MenuEntry, error)

	// MoveCandidate moves a candidate to the named stage through its board,
	// the same path a drop takes
	MoveCandidate(ctx context.Context, id types.ItemID, stageName string) (*models.BoardItem, error)
}

// AddCandidateRequest encapsulates data for placing a candidate on a board.
// An empty StageName places the candidate in the first stage.
type AddCandidateRequest struct {
	VacancyID types.VacancyID
	Name      string
	RoleLabel string
	Source    string
	StageName string
	AppliedAt time.Time
}

type service struct {
	repo        database.DataStore
	boards      pipeline.Service
	eventClient events.EventPublisher
	log         *slog.Logger
}

// NewService creates a new candidate service. A nil logger means slog.Default().
func NewService(repo database.DataStore, boards pipeline.Service, eventClient events.EventPublisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, boards: boards, eventClient: eventClient, log: logger}
}

func (s *service) AddCandidate(ctx context.Context, req AddCandidateRequest) (*models.BoardItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if req.VacancyID <= 0 {
		return nil, ErrInvalidVacancyID
	}

	stages, err := s.repo.GetStages(ctx, req.VacancyID)
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("vacancy %d: %w", req.VacancyID, pipeline.ErrVacancyNotFound)
	}

	stageName := req.StageName
	if stageName == "" {
		stageName = stages[0].Name
	} else if !hasStage(stages, stageName) {
		return nil, ErrUnknownStage
	}

	item, err := s.repo.CreateItem(ctx, req.VacancyID, models.BoardItem{
		DisplayName: req.Name,
		RoleLabel:   strings.TrimSpace(req.RoleLabel),
		Source:      strings.TrimSpace(req.Source),
		AppliedAt:   req.AppliedAt,
		StageName:   stageName,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.RecordActivity(ctx, models.Activity{
		VacancyID: req.VacancyID,
		Kind:      models.ActivityCandidateAdd,
		Summary:   fmt.Sprintf("%s added to %s", item.DisplayName, stageName),
		Actor:     user.Name(),
	}); err != nil {
		s.log.Warn("failed to record activity", "vacancy_id", req.VacancyID, "error", err)
	}
	event := events.Event{Type: events.EventCandidateAdded, VacancyID: req.VacancyID, ItemID: item.ID, StageName: stageName}
	if err := events.PublishWithRetry(s.eventClient, event, 3); err != nil {
		s.log.Warn("failed to publish candidate event", "item_id", item.ID, "error", err)
	}
	return item, nil
}

func (s *service) GetCandidate(ctx context.Context, id types.ItemID) (*models.BoardItem, types.VacancyID, error) {
	if id <= 0 {
		return nil, 0, ErrInvalidCandidateID
	}
	item, vacancyID, err := s.repo.GetItem(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, 0, ErrCandidateNotFound
	}
	return item, vacancyID, err
}

func (s *service) ListCandidates(ctx context.Context, vacancyID types.VacancyID) ([]models.BoardItem, error) {
	if vacancyID <= 0 {
		return nil, ErrInvalidVacancyID
	}
	return s.repo.FetchBoardItems(ctx, vacancyID)
}

func (s *service) MoveMenu(ctx context.Context, id types.ItemID) ([]board.MenuEntry, error) {
	b, err := s.boardOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.MoveMenu(id)
}

func (s *service) MoveCandidate(ctx context.Context, id types.ItemID, stageName string) (*models.BoardItem, error) {
	b, err := s.boardOf(ctx, id)
	if err != nil {
		return nil, err
	}

	menu, err := b.MoveMenu(id)
	if err != nil {
		return nil, err
	}
	entry, ok := findEntry(menu, stageName)
	if !ok {
		return nil, ErrUnknownStage
	}
	if entry.Current {
		return nil, ErrAlreadyInStage
	}

	if err := b.MoveItem(ctx, id, stageName); err != nil {
		return nil, err
	}
	item, _ := b.Item(id)
	return &item, nil
}

func (s *service) boardOf(ctx context.Context, id types.ItemID) (*board.Board, error) {
	_, vacancyID, err := s.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.boards.LoadBoard(ctx, vacancyID)
}

func hasStage(stages []models.Stage, name string) bool {
	for _, st := range stages {
		if st.Name == name {
			return true
		}
	}
	return false
}

func findEntry(menu []board.MenuEntry, name string) (board.MenuEntry, bool) {
	for _, e := range menu {
		if e.Stage.Name == name {
			return e, true
		}
	}
	return board.MenuEntry{}, false
}
