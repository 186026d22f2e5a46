package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/tui/state"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	boards  pipeline.Service
	vacancy *models.Vacancy
	board   *board.Board
	config  *config.Config
	now     func() time.Time

	uiState           *state.UIState
	notificationState *state.NotificationState
	menuState         *state.MenuState
	editorState       *state.EditorState
	input             textinput.Model

	// editorError is shown inside the stage editor until the next edit
	editorError string

	// pendingReload is set when a board event arrives while a drag or an
	// editor session is active; the board reloads once the user is back in
	// normal mode
	pendingReload bool

	eventChan  <-chan events.Event
	configChan <-chan *config.Config
}

// Option configures optional model inputs.
type Option func(*Model)

// WithEvents subscribes the model to board change events.
func WithEvents(ch <-chan events.Event) Option {
	return func(m *Model) {
		m.eventChan = ch
	}
}

// WithConfigUpdates makes the model apply config file changes.
func WithConfigUpdates(ch <-chan *config.Config) Option {
	return func(m *Model) {
		m.configChan = ch
	}
}

// WithClock overrides the clock used for "applied ... ago" labels.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the board model for one vacancy. b must be a board loaded by
// boards so reloads after external changes go through the same service.
func New(ctx context.Context, boards pipeline.Service, vacancy *models.Vacancy, b *board.Board, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	input := textinput.New()
	input.Placeholder = "Stage name"
	input.CharLimit = pipeline.MaxStageNameLength

	m := Model{
		ctx:               ctx,
		boards:            boards,
		vacancy:           vacancy,
		board:             b,
		config:            cfg,
		now:               time.Now,
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		menuState:         state.NewMenuState(),
		editorState:       state.NewEditorState(),
		input:             input,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts listening for board events and config changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), m.waitForConfig())
}

// Board returns the board the model is showing.
func (m Model) Board() *board.Board {
	return m.board
}

// Mode returns the current interaction mode.
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Notifications returns the messages currently shown.
func (m Model) Notifications() []state.Notification {
	return m.notificationState.All()
}

// currentBucket returns the candidates of the selected stage
func (m Model) currentBucket() []models.BoardItem {
	buckets := m.board.Buckets()
	if len(buckets) == 0 {
		return nil
	}
	return buckets[m.uiState.SelectedStage()].Items
}

// currentItem returns the selected candidate, false when the column is empty
func (m Model) currentItem() (models.BoardItem, bool) {
	items := m.currentBucket()
	i := m.uiState.SelectedCandidate()
	if i < 0 || i >= len(items) {
		return models.BoardItem{}, false
	}
	return items[i], true
}

// clampSelection keeps the selection inside the current board
func (m Model) clampSelection() {
	buckets := m.board.Buckets()
	m.uiState.Clamp(len(buckets), func(i int) int {
		return len(buckets[i].Items)
	})
}

// selectItem moves the selection onto the given candidate if it is in a stage
func (m Model) selectItem(item models.BoardItem) {
	for col, bucket := range m.board.Buckets() {
		for row, it := range bucket.Items {
			if it.ID == item.ID {
				m.uiState.SetSelectedStage(col)
				m.uiState.SetSelectedCandidate(row)
				m.uiState.EnsureVisible(col)
				return
			}
		}
	}
	m.clampSelection()
}
