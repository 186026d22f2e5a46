package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/tui/state"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

// Update handles all incoming messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.clampSelection()
		return m, nil

	case RefreshMsg:
		if msg.Event.VacancyID == m.board.VacancyID() {
			if m.busy() {
				m.pendingReload = true
			} else {
				m.reload()
			}
		}
		return m, m.waitForEvent()

	case ConfigChangedMsg:
		m.applyConfig(msg)
		return m, m.waitForConfig()
	}

	if m.uiState.Mode() == state.StageRenameMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	switch m.uiState.Mode() {
	case state.DragMode:
		return m.handleDragMode(msg)
	case state.MoveMenuMode:
		return m.handleMoveMenuMode(msg)
	case state.StageEditorMode:
		return m.handleStageEditorMode(msg)
	case state.StageRenameMode:
		return m.handleStageRenameMode(msg)
	case state.HelpMode:
		m.backToNormal()
		return m, nil
	default:
		return m.handleNormalMode(msg)
	}
}

// busy reports whether a gesture or editor session would be lost by a reload
func (m Model) busy() bool {
	switch m.uiState.Mode() {
	case state.DragMode, state.MoveMenuMode, state.StageEditorMode, state.StageRenameMode:
		return true
	}
	return false
}

// backToNormal returns to normal mode and runs a reload deferred while busy
func (m *Model) backToNormal() {
	m.uiState.SetMode(state.NormalMode)
	if m.pendingReload {
		m.pendingReload = false
		m.reload()
	}
	m.clampSelection()
}

// reload replaces the board with a fresh copy from the store, keeping the
// selected candidate selected when it still has a stage.
func (m *Model) reload() {
	selected, hadSelection := m.currentItem()

	b, err := m.boards.LoadBoard(m.ctx, m.board.VacancyID())
	if err != nil {
		slog.Error("failed to reload board", "vacancy_id", m.board.VacancyID(), "error", err)
		m.notificationState.Add(state.LevelError, "Failed to reload board: "+err.Error())
		return
	}
	m.board = b

	if hadSelection {
		m.selectItem(selected)
		return
	}
	m.clampSelection()
}

// applyConfig swaps key bindings, palette and colors for the reloaded config
func (m *Model) applyConfig(msg ConfigChangedMsg) {
	if msg.Config == nil {
		return
	}
	m.config = msg.Config
	theme.Init(msg.Config.ColorScheme)
	m.notificationState.Add(state.LevelInfo, "Config reloaded")
}
