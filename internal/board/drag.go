package board

import (
	"context"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// DragState is the phase of a drag gesture
type DragState int

const (
	Idle     DragState = iota // No active drag
	Dragging                  // An item is picked up, no stage hovered
	Hovering                  // An item is picked up and over a stage
)

func (s DragState) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Hovering:
		return "hovering"
	default:
		return "idle"
	}
}

// Mover applies a stage move for one item
type Mover interface {
	MoveItem(ctx context.Context, id types.ItemID, stageName string) error
}

// StageLookup resolves a stage id against the live stage list
type StageLookup func(id types.StageID) (models.Stage, bool)

// DragController tracks one drag gesture from a candidate card to a stage.
// At most one item is dragged and at most one stage hovered at a time.
type DragController struct {
	state   DragState
	item    types.ItemID
	hovered types.StageID

	mover  Mover
	lookup StageLookup
}

// NewDragController creates an idle controller that resolves drops through lookup
// and applies them through mover
func NewDragController(mover Mover, lookup StageLookup) *DragController {
	return &DragController{mover: mover, lookup: lookup}
}

// State returns the current phase
func (d *DragController) State() DragState {
	return d.state
}

// DraggedItem returns the item being dragged, if any
func (d *DragController) DraggedItem() (types.ItemID, bool) {
	return d.item, d.state != Idle
}

// HoveredStage returns the stage under the dragged item, if any
func (d *DragController) HoveredStage() (types.StageID, bool) {
	return d.hovered, d.state == Hovering
}

// Begin picks up an item
func (d *DragController) Begin(id types.ItemID) error {
	if d.state != Idle {
		return ErrDragInProgress
	}
	d.state = Dragging
	d.item = id
	return nil
}

// Enter marks a stage as hovered, replacing any previous one.
// It is ignored when nothing is being dragged.
func (d *DragController) Enter(stageID types.StageID) {
	if d.state == Idle {
		return
	}
	d.state = Hovering
	d.hovered = stageID
}

// Leave clears the hover if the pointer left the hovered stage
func (d *DragController) Leave(stageID types.StageID) {
	if d.state != Hovering || d.hovered != stageID {
		return
	}
	d.state = Dragging
	d.hovered = ""
}

// Drop moves the dragged item into the hovered stage and returns to Idle.
// Without a hovered stage it behaves like Cancel and reports false.
func (d *DragController) Drop(ctx context.Context) (bool, error) {
	defer d.reset()

	if d.state != Hovering {
		return false, nil
	}
	stage, ok := d.lookup(d.hovered)
	if !ok {
		return false, ErrStageNotFound
	}
	if err := d.mover.MoveItem(ctx, d.item, stage.Name); err != nil {
		return true, err
	}
	return true, nil
}

// Cancel ends the drag without moving anything
func (d *DragController) Cancel() {
	d.reset()
}

func (d *DragController) reset() {
	d.state = Idle
	d.item = 0
	d.hovered = ""
}
