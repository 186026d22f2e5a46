package board

import (
	"context"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// Editor is a stage editing session over a working copy of the live stages.
// Nothing reaches the live list until Save.
type Editor struct {
	live    *Stages
	working *Stages
	onSave  func(ctx context.Context, stages []models.Stage) error
}

func newEditor(live *Stages, onSave func(ctx context.Context, stages []models.Stage) error) *Editor {
	return &Editor{live: live, onSave: onSave}
}

// Open seeds the working copy from the live stages
func (e *Editor) Open() error {
	if e.working != nil {
		return ErrEditorOpen
	}
	e.working = e.live.Clone()
	return nil
}

// IsOpen reports whether an editing session is active
func (e *Editor) IsOpen() bool {
	return e.working != nil
}

// Stages returns the working copy
func (e *Editor) Stages() ([]models.Stage, error) {
	if e.working == nil {
		return nil, ErrEditorClosed
	}
	return e.working.List(), nil
}

func (e *Editor) Add() (models.Stage, error) {
	if e.working == nil {
		return models.Stage{}, ErrEditorClosed
	}
	return e.working.Add(), nil
}

func (e *Editor) Rename(id types.StageID, name string) error {
	if e.working == nil {
		return ErrEditorClosed
	}
	return e.working.Rename(id, name)
}

func (e *Editor) Recolor(id types.StageID, color string) error {
	if e.working == nil {
		return ErrEditorClosed
	}
	return e.working.Recolor(id, color)
}

// Delete removes a stage from the working copy. It returns ErrMinimumStages
// and changes nothing if that would leave fewer than two stages.
func (e *Editor) Delete(id types.StageID) error {
	if e.working == nil {
		return ErrEditorClosed
	}
	return e.working.Delete(id)
}

func (e *Editor) Move(index int, dir Direction) (bool, error) {
	if e.working == nil {
		return false, ErrEditorClosed
	}
	return e.working.Move(index, dir), nil
}

// Save replaces the live stages with the working copy and closes the session.
// Items keep their stage names, so a renamed stage loses its items.
func (e *Editor) Save(ctx context.Context) ([]models.Stage, error) {
	if e.working == nil {
		return nil, ErrEditorClosed
	}
	e.live.replace(e.working.List())
	e.working = nil

	committed := e.live.List()
	if e.onSave != nil {
		if err := e.onSave(ctx, committed); err != nil {
			return committed, err
		}
	}
	return committed, nil
}

// Cancel throws the working copy away
func (e *Editor) Cancel() {
	e.working = nil
}
