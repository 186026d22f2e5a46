package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Default navigation mode
	DragMode                    // A candidate is picked up and follows the hover cursor
	MoveMenuMode                // Move menu popup for the selected candidate
	StageEditorMode             // Stage editor dialog over a working copy
	StageRenameMode             // Text input for renaming a stage inside the editor
	HelpMode                    // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case DragMode:
		return "DRAG"
	case MoveMenuMode:
		return "MOVE"
	case StageEditorMode, StageRenameMode:
		return "STAGES"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes navigation (stage/candidate selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedStage     int
	selectedCandidate int

	// hoverStage is the column under the drag cursor in DragMode
	hoverStage int

	width  int
	height int
	mode   Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1,
	}
}

func (s *UIState) SelectedStage() int           { return s.selectedStage }
func (s *UIState) SetSelectedStage(i int)       { s.selectedStage = i }
func (s *UIState) SelectedCandidate() int       { return s.selectedCandidate }
func (s *UIState) SetSelectedCandidate(i int)   { s.selectedCandidate = i }
func (s *UIState) HoverStage() int              { return s.hoverStage }
func (s *UIState) SetHoverStage(i int)          { s.hoverStage = i }
func (s *UIState) Mode() Mode                   { return s.mode }
func (s *UIState) SetMode(mode Mode)            { s.mode = mode }
func (s *UIState) Width() int                   { return s.width }
func (s *UIState) Height() int                  { return s.height }
func (s *UIState) ViewportOffset() int          { return s.viewportOffset }
func (s *UIState) ViewportSize() int            { return s.viewportSize }
func (s *UIState) SetViewportOffset(offset int) { s.viewportOffset = offset }

// SetSize updates the terminal size and recalculates the viewport size.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.calculateViewportSize()
}

// ContentHeight returns the height left for columns after the title and
// status bars, never less than 5.
func (s *UIState) ContentHeight() int {
	const titleHeight = 2
	const statusBarHeight = 2
	return max(s.height-titleHeight-statusBarHeight, 5)
}

// calculateViewportSize calculates how many columns fit in the terminal width.
// A column is 30 characters of content plus padding, border and spacing.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	const columnWidth = 36
	const reservedWidth = 4
	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// EnsureVisible scrolls the viewport so the given column is on screen.
func (s *UIState) EnsureVisible(column int) {
	if column < s.viewportOffset {
		s.viewportOffset = column
	}
	if column >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = column - s.viewportSize + 1
	}
}

// Clamp keeps the selection inside a board with the given column count and
// items in the selected column.
func (s *UIState) Clamp(columns int, itemsInSelected func(int) int) {
	if columns == 0 {
		s.selectedStage, s.selectedCandidate, s.viewportOffset = 0, 0, 0
		return
	}
	s.selectedStage = min(max(s.selectedStage, 0), columns-1)
	n := itemsInSelected(s.selectedStage)
	s.selectedCandidate = min(max(s.selectedCandidate, 0), max(n-1, 0))
	if s.viewportOffset+s.viewportSize > columns {
		s.viewportOffset = max(0, columns-s.viewportSize)
	}
	s.EnsureVisible(s.selectedStage)
}
