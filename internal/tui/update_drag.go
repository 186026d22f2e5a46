package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/tui/state"
)

// grabCandidate picks up the selected candidate and hovers its own column
func (m *Model) grabCandidate() {
	item, ok := m.currentItem()
	if !ok {
		m.notificationState.Add(state.LevelInfo, "No candidate selected")
		return
	}
	drag := m.board.Drag()
	if err := drag.Begin(item.ID); err != nil {
		m.notificationState.Add(state.LevelError, err.Error())
		return
	}
	col := m.uiState.SelectedStage()
	drag.Enter(m.board.Stages()[col].ID)
	m.uiState.SetHoverStage(col)
	m.uiState.SetMode(state.DragMode)
}

// handleDragMode moves the hover cursor across columns and drops or cancels.
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	switch msg.String() {
	case km.PrevStage, "left":
		m.hover(m.uiState.HoverStage() - 1)
	case km.NextStage, "right":
		m.hover(m.uiState.HoverStage() + 1)
	case km.DropCandidate, "enter", km.GrabCandidate:
		m.drop()
	case km.Cancel:
		m.board.Drag().Cancel()
		m.notificationState.Add(state.LevelInfo, "Drag cancelled")
		m.backToNormal()
	case "ctrl+c":
		m.board.Drag().Cancel()
		return m, tea.Quit
	}
	return m, nil
}

// hover leaves the hovered column and enters column i
func (m *Model) hover(i int) {
	stages := m.board.Stages()
	if i < 0 || i >= len(stages) {
		return
	}
	drag := m.board.Drag()
	if id, ok := drag.HoveredStage(); ok {
		drag.Leave(id)
	}
	drag.Enter(stages[i].ID)
	m.uiState.SetHoverStage(i)
	m.uiState.EnsureVisible(i)
}

// drop moves the dragged candidate onto the hovered stage
func (m *Model) drop() {
	drag := m.board.Drag()
	id, _ := drag.DraggedItem()

	moved, err := drag.Drop(m.ctx)
	if err != nil {
		slog.Error("failed to persist drop", "item_id", id, "error", err)
		m.notificationState.Add(state.LevelError, "Move not saved: "+err.Error())
	}
	if !moved && err == nil {
		m.notificationState.Add(state.LevelInfo, "Drag cancelled")
	}
	m.backToNormal()
	if item, ok := m.board.Item(id); ok {
		m.selectItem(item)
	}
}
