package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/tui/state"
)

// handleNormalMode handles keyboard input in normal navigation mode.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.PrevStage, "left":
		m.selectStage(m.uiState.SelectedStage() - 1)
	case km.NextStage, "right":
		m.selectStage(m.uiState.SelectedStage() + 1)
	case km.PrevCandidate, "up":
		m.uiState.SetSelectedCandidate(m.uiState.SelectedCandidate() - 1)
		m.clampSelection()
	case km.NextCandidate, "down":
		m.uiState.SetSelectedCandidate(m.uiState.SelectedCandidate() + 1)
		m.clampSelection()
	case km.GrabCandidate:
		m.grabCandidate()
	case km.MoveMenu:
		m.openMoveMenu()
	case km.EditStages:
		m.openStageEditor()
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	}
	return m, nil
}

// selectStage selects a column and resets the candidate cursor
func (m *Model) selectStage(i int) {
	if i < 0 || i >= len(m.board.Stages()) {
		return
	}
	m.uiState.SetSelectedStage(i)
	m.uiState.SetSelectedCandidate(0)
	m.uiState.EnsureVisible(i)
}

// openMoveMenu shows the Move menu for the selected candidate
func (m *Model) openMoveMenu() {
	item, ok := m.currentItem()
	if !ok {
		m.notificationState.Add(state.LevelInfo, "No candidate selected")
		return
	}
	entries, err := m.board.MoveMenu(item.ID)
	if err != nil {
		slog.Error("failed to build move menu", "item_id", item.ID, "error", err)
		m.notificationState.Add(state.LevelError, err.Error())
		return
	}
	m.menuState.Open(item.ID, entries)
	m.uiState.SetMode(state.MoveMenuMode)
}

// handleMoveMenuMode handles the Move menu. Choosing a stage moves the
// candidate exactly as dropping it on that stage would.
func (m Model) handleMoveMenuMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	switch msg.String() {
	case km.PrevCandidate, "up":
		m.menuState.Prev()
	case km.NextCandidate, "down":
		m.menuState.Next()
	case km.DropCandidate, "enter":
		entry, ok := m.menuState.Selected()
		if !ok {
			return m, nil
		}
		id := m.menuState.Item()
		m.menuState.Close()
		if err := m.board.MoveItem(m.ctx, id, entry.Stage.Name); err != nil {
			slog.Error("failed to persist move", "item_id", id, "stage", entry.Stage.Name, "error", err)
			m.notificationState.Add(state.LevelError, "Move not saved: "+err.Error())
		}
		m.backToNormal()
		if item, ok := m.board.Item(id); ok {
			m.selectItem(item)
		}
	case km.Cancel, "ctrl+c":
		m.menuState.Close()
		m.backToNormal()
	}
	return m, nil
}
