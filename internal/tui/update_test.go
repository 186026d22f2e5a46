package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/tui/state"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation_SelectsStagesAndCandidates(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "l")
	assert.Equal(t, 1, m.uiState.SelectedStage())
	item, ok := m.currentItem()
	require.True(t, ok)
	assert.Equal(t, "Grace", item.DisplayName)

	m = press(t, m, "right", "right")
	assert.Equal(t, 2, m.uiState.SelectedStage(), "selection stops at the last stage")
	_, ok = m.currentItem()
	assert.False(t, ok, "Offer has no candidates")

	m = press(t, m, "h", "left", "left")
	assert.Equal(t, 0, m.uiState.SelectedStage())
}

func TestHelpMode_AnyKeyCloses(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.Mode())

	m = press(t, m, "x")
	assert.Equal(t, state.NormalMode, m.Mode())
}

// ============================================================================
// DRAG AND DROP
// ============================================================================

func TestDrag_DropOnHoveredStage(t *testing.T) {
	m, boards, vacancyID := setupTestModel(t)

	m = press(t, m, "space")
	assert.Equal(t, state.DragMode, m.Mode())
	assert.Equal(t, board.Hovering, m.Board().Drag().State())

	m = press(t, m, "l", "l")
	hovered, ok := m.Board().Drag().HoveredStage()
	require.True(t, ok)
	assert.Equal(t, "Offer", mustStage(t, m, hovered))

	m = press(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, board.Idle, m.Board().Drag().State())
	assert.Equal(t, "Offer", stageOf(t, m, "Ada"))
	assert.Equal(t, 2, m.uiState.SelectedStage(), "selection follows the dropped candidate")

	reloaded, err := boards.LoadBoard(context.Background(), vacancyID)
	require.NoError(t, err)
	offer := reloaded.ItemsByStage()["Offer"]
	require.Len(t, offer, 1)
	assert.Equal(t, "Ada", offer[0].DisplayName)
}

func TestDrag_CancelLeavesBoardUnchanged(t *testing.T) {
	m, _, _ := setupTestModel(t)
	before := m.Board().Items()

	m = press(t, m, "space", "l", "esc")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, board.Idle, m.Board().Drag().State())
	assert.Empty(t, cmp.Diff(before, m.Board().Items()))
	require.Len(t, m.Notifications(), 1)
	assert.Equal(t, "Drag cancelled", m.Notifications()[0].Message)
}

func TestDrag_EmptyColumnDoesNothing(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "l", "l", "space")

	assert.Equal(t, state.NormalMode, m.Mode())
	require.Len(t, m.Notifications(), 1)
	assert.Equal(t, "No candidate selected", m.Notifications()[0].Message)
}

func mustStage(t *testing.T, m Model, id types.StageID) string {
	t.Helper()
	for _, st := range m.Board().Stages() {
		if st.ID == id {
			return st.Name
		}
	}
	t.Fatalf("stage %v not found", id)
	return ""
}

// ============================================================================
// MOVE MENU
// ============================================================================

func TestMoveMenu_SkipsCurrentStage(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "m")
	require.Equal(t, state.MoveMenuMode, m.Mode())

	entries := m.menuState.Entries()
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Current)
	assert.Equal(t, 1, m.menuState.Cursor(), "cursor starts past the current stage")

	m = press(t, m, "k")
	assert.Equal(t, 1, m.menuState.Cursor(), "disabled entries cannot be selected")
}

func TestMoveMenu_EquivalentToDrag(t *testing.T) {
	dragged, _, _ := setupTestModel(t)
	dragged = press(t, dragged, "space", "l", "l", "enter")

	menu, _, _ := setupTestModel(t)
	menu = press(t, menu, "m", "j", "enter")
	assert.Equal(t, state.NormalMode, menu.Mode())

	placement := func(m Model) map[string]string {
		out := map[string]string{}
		for _, it := range m.Board().Items() {
			out[it.DisplayName] = it.StageName
		}
		return out
	}
	if diff := cmp.Diff(placement(dragged), placement(menu)); diff != "" {
		t.Errorf("menu move differs from drag (-drag +menu):\n%s", diff)
	}
}

func TestMoveMenu_EscClosesWithoutMoving(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "m", "j", "esc")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, "Applied", stageOf(t, m, "Ada"))
}

// ============================================================================
// STAGE EDITOR
// ============================================================================

func TestStageEditor_AddAndSave(t *testing.T) {
	m, boards, vacancyID := setupTestModel(t)

	m = press(t, m, "E", "a")
	assert.Equal(t, state.StageEditorMode, m.Mode())
	assert.Len(t, m.Board().Stages(), 3, "live stages untouched until save")
	assert.Equal(t, 3, m.editorState.Cursor())

	m = press(t, m, "ctrl+s")
	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, []string{"Applied", "Interview", "Offer", "New stage"}, stageNamesOf(m.Board().Stages()))

	reloaded, err := boards.LoadBoard(context.Background(), vacancyID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Stages(), 4)
}

func TestStageEditor_CancelDiscards(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "E", "a", "d", "J", "esc")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.False(t, m.Board().Editor().IsOpen())
	assert.Equal(t, []string{"Applied", "Interview", "Offer"}, stageNamesOf(m.Board().Stages()))
}

func TestStageEditor_DeleteBelowMinimum(t *testing.T) {
	m, _, _ := setupTestModel(t, "Applied", "Hired")

	m = press(t, m, "E", "d")

	assert.Equal(t, state.StageEditorMode, m.Mode())
	assert.Contains(t, m.editorError, "at least 2 stages")
	stages := m.workingStages()
	assert.Len(t, stages, 2)
	assert.Contains(t, m.View().Content, "at least 2 stages")
}

func TestStageEditor_ReorderFollowsCursor(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "E", "J")
	assert.Equal(t, 1, m.editorState.Cursor())

	m = press(t, m, "J", "J")
	assert.Equal(t, 2, m.editorState.Cursor(), "moving past the end is a no-op")

	m = press(t, m, "ctrl+s")
	assert.Equal(t, []string{"Interview", "Offer", "Applied"}, stageNamesOf(m.Board().Stages()))
	assert.Equal(t, "Applied", stageOf(t, m, "Ada"), "reordering keeps assignments")
}

func TestStageEditor_RecolorCyclesPalette(t *testing.T) {
	m, _, _ := setupTestModel(t)
	first := m.Board().Stages()[0].Color

	m = press(t, m, "E", "c")

	working := m.workingStages()
	assert.NotEqual(t, first, working[0].Color)
	assert.Equal(t, nextColor(m.config.Palette, first), working[0].Color)
	assert.Equal(t, first, m.Board().Stages()[0].Color)
}

func TestStageEditor_RenameOrphansCandidates(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "E", "r")
	require.Equal(t, state.StageRenameMode, m.Mode())
	assert.Equal(t, "Applied", m.input.Value())

	m.input.SetValue("")
	m = press(t, m, "S", "o", "u", "r", "c", "e", "d", "enter")
	assert.Equal(t, state.StageEditorMode, m.Mode())
	assert.Equal(t, "Sourced", m.workingStages()[0].Name)

	m = press(t, m, "ctrl+s")
	assert.Equal(t, "Sourced", m.Board().Stages()[0].Name)
	assert.Len(t, m.Board().Orphans(), 1)

	var messages []string
	for _, n := range m.Notifications() {
		messages = append(messages, n.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "no longer match a stage")
}

func TestStageEditor_RenameRejectsEmptyName(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "E", "r")
	m.input.SetValue("   ")
	m = press(t, m, "enter")

	assert.Equal(t, state.StageRenameMode, m.Mode())
	assert.NotEmpty(t, m.editorError)

	m = press(t, m, "esc")
	assert.Equal(t, state.StageEditorMode, m.Mode())
	assert.Equal(t, "Applied", m.workingStages()[0].Name)
}

func TestStageEditor_RenameAcceptsMultibyteName(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "E", "r")
	m.input.SetValue("Собеседование с руководителем")
	m = press(t, m, "enter")

	assert.Equal(t, state.StageEditorMode, m.Mode())
	assert.Empty(t, m.editorError)
	assert.Equal(t, "Собеседование с руководителем", m.workingStages()[0].Name)
}

func TestStageEditor_DuplicateNameWarning(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = press(t, m, "E", "j", "r")
	m.input.SetValue("Interviews")
	m = press(t, m, "enter", "k", "r")
	m.input.SetValue("Interview")
	m = press(t, m, "enter", "ctrl+s")

	var warned bool
	for _, n := range m.Notifications() {
		if n.Level == state.LevelWarning && strings.Contains(n.Message, "look alike") {
			warned = true
		}
	}
	assert.True(t, warned, "near-duplicate names are reported")
}

// ============================================================================
// EXTERNAL CHANGES
// ============================================================================

func TestRefresh_ReloadsBoard(t *testing.T) {
	m, boards, vacancyID := setupTestModel(t)

	other, err := boards.LoadBoard(context.Background(), vacancyID)
	require.NoError(t, err)
	ada := other.ItemsByStage()["Applied"][0]
	require.NoError(t, other.MoveItem(context.Background(), ada.ID, "Offer"))

	m = send(t, m, RefreshMsg{Event: events.Event{Type: events.EventCandidateMoved, VacancyID: vacancyID}})
	assert.Equal(t, "Offer", stageOf(t, m, "Ada"))
}

func TestRefresh_DeferredDuringDrag(t *testing.T) {
	m, boards, vacancyID := setupTestModel(t)

	m = press(t, m, "space")
	other, err := boards.LoadBoard(context.Background(), vacancyID)
	require.NoError(t, err)
	grace := other.ItemsByStage()["Interview"][0]
	require.NoError(t, other.MoveItem(context.Background(), grace.ID, "Offer"))

	m = send(t, m, RefreshMsg{Event: events.Event{VacancyID: vacancyID}})
	assert.True(t, m.pendingReload)
	assert.Equal(t, "Interview", stageOf(t, m, "Grace"), "drag board is not swapped out")

	m = press(t, m, "esc")
	assert.False(t, m.pendingReload)
	assert.Equal(t, "Offer", stageOf(t, m, "Grace"))
}

func TestRefresh_IgnoresOtherVacancies(t *testing.T) {
	m, _, vacancyID := setupTestModel(t)
	before := m.Board()

	m = send(t, m, RefreshMsg{Event: events.Event{VacancyID: vacancyID + 1}})
	assert.Same(t, before, m.Board())
}

func TestConfigChanged_AppliesKeyMappings(t *testing.T) {
	m, _, _ := setupTestModel(t)

	cfg := config.Default()
	cfg.KeyMappings.MoveMenu = "M"
	m = send(t, m, ConfigChangedMsg{Config: cfg})

	m = press(t, m, "m")
	assert.Equal(t, state.NormalMode, m.Mode())
	m = press(t, m, "M")
	assert.Equal(t, state.MoveMenuMode, m.Mode())
}
