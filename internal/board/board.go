// Package board is the in-memory pipeline board for one vacancy: ordered
// stages, the candidates assigned to them, drag and drop between stages and
// the stage editor session.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ItemSource supplies the candidates shown on a board
type ItemSource interface {
	FetchBoardItems(ctx context.Context, vacancyID types.VacancyID) ([]models.BoardItem, error)
}

// Persister receives board mutations after they are applied locally.
// A board without a Persister keeps all changes in memory only.
type Persister interface {
	PersistStages(ctx context.Context, vacancyID types.VacancyID, stages []models.Stage) error
	PersistItemMove(ctx context.Context, id types.ItemID, stageName string) error
}

// Board owns the live stage list and item list of one vacancy.
// It is not safe for concurrent use.
type Board struct {
	vacancyID types.VacancyID
	stages    *Stages
	items     *Assignments
	drag      *DragController
	editor    *Editor
	persister Persister
}

// Option configures a Board
type Option func(*boardConfig)

type boardConfig struct {
	persister    Persister
	stageOptions []StagesOption
}

// WithPersister makes the board write stage saves and item moves through p
func WithPersister(p Persister) Option {
	return func(cfg *boardConfig) {
		cfg.persister = p
	}
}

// WithStageOptions forwards options to the stage list
func WithStageOptions(opts ...StagesOption) Option {
	return func(cfg *boardConfig) {
		cfg.stageOptions = append(cfg.stageOptions, opts...)
	}
}

// New creates a board from already loaded stages and items
func New(vacancyID types.VacancyID, stages []models.Stage, items []models.BoardItem, opts ...Option) *Board {
	cfg := &boardConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	b := &Board{
		vacancyID: vacancyID,
		stages:    NewStages(stages, cfg.stageOptions...),
		items:     NewAssignments(items),
		persister: cfg.persister,
	}
	b.drag = NewDragController(b, b.stages.Get)
	b.editor = newEditor(b.stages, b.persistStages)
	return b
}

// Load fetches the board items once from src and builds the board.
// Fetch errors are returned as is; retrying is up to the caller.
func Load(ctx context.Context, vacancyID types.VacancyID, stages []models.Stage, src ItemSource, opts ...Option) (*Board, error) {
	items, err := src.FetchBoardItems(ctx, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board items: %w", err)
	}
	return New(vacancyID, stages, items, opts...), nil
}

// VacancyID returns the context the board was loaded for
func (b *Board) VacancyID() types.VacancyID {
	return b.vacancyID
}

// Stages returns the live stages in order
func (b *Board) Stages() []models.Stage {
	return b.stages.List()
}

// Stage returns one live stage
func (b *Board) Stage(id types.StageID) (models.Stage, bool) {
	return b.stages.Get(id)
}

// Items returns all items in their original order
func (b *Board) Items() []models.BoardItem {
	return b.items.Items()
}

// Item returns one item
func (b *Board) Item(id types.ItemID) (models.BoardItem, bool) {
	return b.items.Get(id)
}

// ItemsByStage groups the current items by stage name
func (b *Board) ItemsByStage() map[string][]models.BoardItem {
	return ItemsByStage(b.stages.List(), b.items.Items())
}

// Buckets groups the current items in stage order
func (b *Board) Buckets() []Bucket {
	return Buckets(b.stages.List(), b.items.Items())
}

// Orphans returns the items no stage shows
func (b *Board) Orphans() []models.BoardItem {
	return Orphans(b.stages.List(), b.items.Items())
}

// MoveItem assigns an item to a stage by name. This is the Move menu path
// and also the target of a drop.
func (b *Board) MoveItem(ctx context.Context, id types.ItemID, stageName string) error {
	if err := b.items.MoveItem(id, stageName); err != nil {
		return err
	}
	if _, ok := b.stages.ByName(stageName); !ok {
		slog.Warn("candidate moved to unknown stage", "vacancy_id", b.vacancyID, "item_id", id, "stage", stageName)
	}
	if b.persister == nil {
		return nil
	}
	if err := b.persister.PersistItemMove(ctx, id, stageName); err != nil {
		return fmt.Errorf("failed to persist move of candidate %d: %w", id, err)
	}
	return nil
}

// MoveMenu returns the Move menu entries for an item
func (b *Board) MoveMenu(id types.ItemID) ([]MenuEntry, error) {
	return b.items.MoveMenu(id, b.stages.List())
}

// Drag returns the drag and drop controller
func (b *Board) Drag() *DragController {
	return b.drag
}

// Editor returns the stage editor
func (b *Board) Editor() *Editor {
	return b.editor
}

func (b *Board) persistStages(ctx context.Context, stages []models.Stage) error {
	if b.persister == nil {
		return nil
	}
	if err := b.persister.PersistStages(ctx, b.vacancyID, stages); err != nil {
		return fmt.Errorf("failed to persist stages: %w", err)
	}
	return nil
}
