package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/tui/components"
	"github.com/thenoetrevino/embudo/internal/tui/state"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var modal string
	switch m.uiState.Mode() {
	case state.MoveMenuMode:
		modal = m.viewMoveMenu()
	case state.StageEditorMode, state.StageRenameMode:
		modal = m.viewStageEditor()
	case state.HelpMode:
		modal = m.viewHelp()
	}

	if modal != "" {
		view.Content = lipgloss.Place(m.uiState.Width(), m.uiState.Height(), lipgloss.Center, lipgloss.Center, modal)
		return view
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.viewTitle(),
		m.viewBoard(),
		m.viewFooter(),
	)
	return view
}

func (m Model) viewTitle() string {
	title := "embudo"
	if m.vacancy != nil {
		title = m.vacancy.Title
		if m.vacancy.Company != "" {
			title += " · " + m.vacancy.Company
		}
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(title) + "\n"
}

// viewBoard renders the visible window of stage columns
func (m Model) viewBoard() string {
	buckets := m.board.Buckets()
	dragging := m.uiState.Mode() == state.DragMode
	dragged, _ := m.board.Drag().DraggedItem()
	now := m.now()

	start := m.uiState.ViewportOffset()
	end := min(start+m.uiState.ViewportSize(), len(buckets))

	columns := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selectedIdx := -1
		if i == m.uiState.SelectedStage() && !dragging {
			selectedIdx = m.uiState.SelectedCandidate()
		}
		props := components.ColumnProps{
			Stage:       buckets[i].Stage,
			Items:       buckets[i].Items,
			Selected:    i == m.uiState.SelectedStage(),
			Hovered:     dragging && i == m.uiState.HoverStage(),
			SelectedIdx: selectedIdx,
			Height:      m.uiState.ContentHeight(),
			Now:         now,
		}
		if dragging {
			props.Dragged = dragged
		}
		columns = append(columns, components.RenderColumn(props), " ")
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString("◀ ")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	if end < len(buckets) {
		b.WriteString(" ▶")
	}
	return b.String()
}

func (m Model) viewFooter() string {
	lines := make([]string, 0, len(m.notificationState.All())+1)
	for _, n := range m.notificationState.All() {
		lines = append(lines, components.RenderNotification(n))
	}
	lines = append(lines, components.RenderStatusBar(components.StatusBarProps{
		Width:   m.uiState.Width(),
		Mode:    m.uiState.Mode().String(),
		Orphans: len(m.board.Orphans()),
		Hint:    m.hint(),
		Alert:   m.notificationState.Worst() == state.LevelError,
	}))
	return strings.Join(lines, "\n")
}

// hint returns the key reminder for the current mode
func (m Model) hint() string {
	km := m.config.KeyMappings
	if m.uiState.Mode() == state.DragMode {
		return fmt.Sprintf("%s/%s choose stage • %s drop • %s cancel", km.PrevStage, km.NextStage, km.DropCandidate, km.Cancel)
	}
	return fmt.Sprintf("%s grab • %s move • %s stages • %s help", km.GrabCandidate, km.MoveMenu, km.EditStages, km.ShowHelp)
}

func (m Model) viewMoveMenu() string {
	name := "candidate"
	if item, ok := m.board.Item(m.menuState.Item()); ok {
		name = item.DisplayName
	}
	return components.RenderMoveMenu(name, m.menuState.Entries(), m.menuState.Cursor())
}

func (m Model) viewStageEditor() string {
	props := components.StageEditorProps{
		Stages: m.workingStages(),
		Cursor: m.editorState.Cursor(),
		Error:  m.editorError,
	}
	if m.uiState.Mode() == state.StageRenameMode {
		props.Input = m.input.View()
	}
	return components.RenderStageEditor(props)
}

func (m Model) viewHelp() string {
	km := m.config.KeyMappings
	sections := [][2]string{
		{km.PrevStage + "/" + km.NextStage, "select stage"},
		{km.PrevCandidate + "/" + km.NextCandidate, "select candidate"},
		{km.GrabCandidate, "grab candidate, then " + km.DropCandidate + " to drop"},
		{km.MoveMenu, "move candidate to a stage"},
		{km.EditStages, "edit stages"},
		{km.Cancel, "cancel"},
		{km.Quit, "quit"},
	}
	if orphans := m.board.Orphans(); len(orphans) > 0 {
		sections = append(sections, [2]string{"orphaned", orphanNames(orphans)})
	}
	return components.RenderHelp(sections)
}

// orphanNames lists candidates whose stage no longer exists
func orphanNames(items []models.BoardItem) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.DisplayName
	}
	return strings.Join(names, ", ")
}
