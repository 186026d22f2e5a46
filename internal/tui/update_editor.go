package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/tui/state"
)

// openStageEditor starts an editor session on a copy of the live stages
func (m *Model) openStageEditor() {
	if err := m.board.Editor().Open(); err != nil {
		m.notificationState.Add(state.LevelError, err.Error())
		return
	}
	m.editorError = ""
	m.editorState.SetCursor(m.uiState.SelectedStage(), len(m.board.Stages()))
	m.uiState.SetMode(state.StageEditorMode)
}

// workingStages returns the editor's working copy
func (m Model) workingStages() []models.Stage {
	stages, err := m.board.Editor().Stages()
	if err != nil {
		return nil
	}
	return stages
}

// cursorStage returns the working stage under the editor cursor
func (m Model) cursorStage() (models.Stage, bool) {
	stages := m.workingStages()
	i := m.editorState.Cursor()
	if i < 0 || i >= len(stages) {
		return models.Stage{}, false
	}
	return stages[i], true
}

// handleStageEditorMode applies edits to the working copy. Nothing reaches
// the board until the session is saved.
func (m Model) handleStageEditorMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	editor := m.board.Editor()
	m.editorError = ""

	switch msg.String() {
	case km.PrevCandidate, "up":
		m.editorState.SetCursor(m.editorState.Cursor()-1, len(m.workingStages()))
	case km.NextCandidate, "down":
		m.editorState.SetCursor(m.editorState.Cursor()+1, len(m.workingStages()))

	case km.AddStage:
		if _, err := editor.Add(); err != nil {
			m.editorError = err.Error()
			break
		}
		n := len(m.workingStages())
		m.editorState.SetCursor(n-1, n)

	case km.RenameStage:
		st, ok := m.cursorStage()
		if !ok {
			break
		}
		m.input.SetValue(st.Name)
		m.input.CursorEnd()
		m.uiState.SetMode(state.StageRenameMode)
		cmd := m.input.Focus()
		return m, cmd

	case km.RecolorStage:
		st, ok := m.cursorStage()
		if !ok {
			break
		}
		if err := editor.Recolor(st.ID, nextColor(m.config.Palette, st.Color)); err != nil {
			m.editorError = err.Error()
		}

	case km.DeleteStage:
		st, ok := m.cursorStage()
		if !ok {
			break
		}
		if err := editor.Delete(st.ID); err != nil {
			if errors.Is(err, board.ErrMinimumStages) {
				m.editorError = fmt.Sprintf("Cannot delete %q: a vacancy needs at least %d stages", st.Name, models.MinStages)
			} else {
				m.editorError = err.Error()
			}
			break
		}
		m.editorState.SetCursor(m.editorState.Cursor(), len(m.workingStages()))

	case km.MoveStageUp:
		if moved, _ := editor.Move(m.editorState.Cursor(), board.Up); moved {
			m.editorState.SetCursor(m.editorState.Cursor()-1, len(m.workingStages()))
		}
	case km.MoveStageDown:
		if moved, _ := editor.Move(m.editorState.Cursor(), board.Down); moved {
			m.editorState.SetCursor(m.editorState.Cursor()+1, len(m.workingStages()))
		}

	case km.SaveStages:
		m.saveStages()

	case km.Cancel:
		editor.Cancel()
		m.notificationState.Add(state.LevelInfo, "Stage changes discarded")
		m.backToNormal()

	case "ctrl+c":
		editor.Cancel()
		return m, tea.Quit
	}
	return m, nil
}

// saveStages commits the working copy and reports name and orphan warnings
func (m *Model) saveStages() {
	for _, st := range m.workingStages() {
		if err := pipeline.ValidateStageName(st.Name); err != nil {
			m.editorError = err.Error()
			return
		}
	}

	saved, err := m.board.Editor().Save(m.ctx)
	if err != nil {
		slog.Error("failed to persist stages", "vacancy_id", m.board.VacancyID(), "error", err)
		m.notificationState.Add(state.LevelError, "Stages not saved: "+err.Error())
	} else {
		m.notificationState.Add(state.LevelInfo, "Stages saved")
	}

	for _, w := range m.boards.Warnings(saved) {
		if w.Distance == 0 {
			m.notificationState.Add(state.LevelWarning, fmt.Sprintf("Two stages are named %q", w.First.Name))
			continue
		}
		m.notificationState.Add(state.LevelWarning, fmt.Sprintf("%q and %q look alike", w.First.Name, w.Second.Name))
	}
	if orphans := len(m.board.Orphans()); orphans > 0 {
		m.notificationState.Add(state.LevelWarning, fmt.Sprintf("%d candidates no longer match a stage", orphans))
	}
	m.backToNormal()
}

// handleStageRenameMode feeds keys to the name input.
func (m Model) handleStageRenameMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if err := pipeline.ValidateStageName(name); err != nil {
			m.editorError = err.Error()
			return m, nil
		}
		if st, ok := m.cursorStage(); ok {
			if err := m.board.Editor().Rename(st.ID, name); err != nil {
				m.editorError = err.Error()
			}
		}
		m.input.Blur()
		m.uiState.SetMode(state.StageEditorMode)
		return m, nil
	case "esc":
		m.input.Blur()
		m.uiState.SetMode(state.StageEditorMode)
		return m, nil
	case "ctrl+c":
		m.board.Editor().Cancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// nextColor returns the palette entry after current, wrapping around
func nextColor(palette []string, current string) string {
	if len(palette) == 0 {
		palette = models.DefaultPalette
	}
	for i, c := range palette {
		if strings.EqualFold(c, current) {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}
