package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/embudo/internal/models"
)

// Board errors
var (
	// ErrInvalidOperation is the kind shared by every refused board mutation
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrMinimumStages is returned when a delete would leave fewer than MinStages stages
	ErrMinimumStages = fmt.Errorf("%w: a board needs at least %d stages", ErrInvalidOperation, models.MinStages)

	ErrStageNotFound  = errors.New("stage not found")
	ErrItemNotFound   = errors.New("candidate not found on this board")
	ErrDragInProgress = errors.New("another candidate is already being dragged")
	ErrEditorClosed   = errors.New("stage editor is not open")
	ErrEditorOpen     = errors.New("stage editor is already open")
)
