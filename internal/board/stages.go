package board

import (
	"github.com/google/uuid"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// Direction is the way a stage moves in the ordered stage list
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// IDGenerator produces ids for newly added stages
type IDGenerator func() types.StageID

// NewUUID is the default stage id generator
func NewUUID() types.StageID {
	return types.StageID(uuid.NewString())
}

// Stages is the ordered list of stage definitions for one board.
// Position in the slice is the stage order.
type Stages struct {
	stages  []models.Stage
	palette []string
	newID   IDGenerator
}

// StagesOption configures a Stages list
type StagesOption func(*Stages)

// WithPalette sets the accent colors cycled through by Add
func WithPalette(palette []string) StagesOption {
	return func(s *Stages) {
		if len(palette) > 0 {
			s.palette = append([]string(nil), palette...)
		}
	}
}

// WithIDGenerator replaces the uuid generator, mostly for tests
func WithIDGenerator(gen IDGenerator) StagesOption {
	return func(s *Stages) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStages creates a stage list seeded with a copy of initial.
// The minimum stage count is only enforced on delete; boards loaded from
// storage are taken as they are.
func NewStages(initial []models.Stage, opts ...StagesOption) *Stages {
	s := &Stages{
		stages:  append([]models.Stage(nil), initial...),
		palette: models.DefaultPalette,
		newID:   NewUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of stages
func (s *Stages) Len() int {
	return len(s.stages)
}

// List returns a copy of the stages in board order
func (s *Stages) List() []models.Stage {
	return append([]models.Stage(nil), s.stages...)
}

// Get returns the stage with the given id
func (s *Stages) Get(id types.StageID) (models.Stage, bool) {
	if i := s.index(id); i >= 0 {
		return s.stages[i], true
	}
	return models.Stage{}, false
}

// ByName returns the first stage with the given name
func (s *Stages) ByName(name string) (models.Stage, bool) {
	for _, st := range s.stages {
		if st.Name == name {
			return st, true
		}
	}
	return models.Stage{}, false
}

// Add appends a stage with the default name and the next palette color
func (s *Stages) Add() models.Stage {
	st := models.Stage{
		ID:    s.newID(),
		Name:  models.DefaultStageName,
		Color: s.palette[len(s.stages)%len(s.palette)],
	}
	s.stages = append(s.stages, st)
	return st
}

// Rename changes a stage name in place. Names are not checked for uniqueness
// and items that referenced the old name are not migrated.
func (s *Stages) Rename(id types.StageID, name string) error {
	i := s.index(id)
	if i < 0 {
		return ErrStageNotFound
	}
	s.stages[i].Name = name
	return nil
}

// Recolor changes a stage accent in place
func (s *Stages) Recolor(id types.StageID, color string) error {
	i := s.index(id)
	if i < 0 {
		return ErrStageNotFound
	}
	s.stages[i].Color = color
	return nil
}

// Delete removes a stage unless that would leave fewer than MinStages
func (s *Stages) Delete(id types.StageID) error {
	i := s.index(id)
	if i < 0 {
		return ErrStageNotFound
	}
	if len(s.stages)-1 < models.MinStages {
		return ErrMinimumStages
	}
	s.stages = append(s.stages[:i], s.stages[i+1:]...)
	return nil
}

// Move swaps the stage at index with its neighbor. It reports false and
// leaves the list alone at the boundaries or for an out of range index.
func (s *Stages) Move(index int, dir Direction) bool {
	if index < 0 || index >= len(s.stages) {
		return false
	}
	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if target < 0 || target >= len(s.stages) {
		return false
	}
	s.stages[index], s.stages[target] = s.stages[target], s.stages[index]
	return true
}

// Clone returns an independent copy sharing palette and id generator
func (s *Stages) Clone() *Stages {
	return &Stages{
		stages:  s.List(),
		palette: s.palette,
		newID:   s.newID,
	}
}

// replace swaps in a whole new stage list in one assignment
func (s *Stages) replace(stages []models.Stage) {
	s.stages = stages
}

func (s *Stages) index(id types.StageID) int {
	for i, st := range s.stages {
		if st.ID == id {
			return i
		}
	}
	return -1
}
