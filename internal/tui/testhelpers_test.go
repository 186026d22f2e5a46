package tui

import (
	"context"
	"slices"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/testutil"
	"github.com/thenoetrevino/embudo/internal/types"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// setupTestModel builds a model over a fresh in-memory store with Ada in
// Applied and Grace in Interview (when those stages exist).
func setupTestModel(t *testing.T, stageNames ...string) (Model, pipeline.Service, types.VacancyID) {
	t.Helper()
	if len(stageNames) == 0 {
		stageNames = []string{"Applied", "Interview", "Offer"}
	}

	ctx := context.Background()
	repo := testutil.SetupTestRepo(t)
	vacancyID := testutil.CreateTestVacancy(t, repo, "Backend Engineer", stageNames...)
	if slices.Contains(stageNames, "Applied") {
		testutil.CreateTestCandidate(t, repo, vacancyID, "Ada", "Applied")
	}
	if slices.Contains(stageNames, "Interview") {
		testutil.CreateTestCandidate(t, repo, vacancyID, "Grace", "Interview")
	}

	boards := pipeline.NewService(repo, nil, pipeline.Options{
		Palette:              models.DefaultPalette,
		SimilarNameThreshold: 2,
	})
	b, err := boards.LoadBoard(ctx, vacancyID)
	if err != nil {
		t.Fatalf("LoadBoard() error = %v", err)
	}

	cfg := config.Default()
	cfg.Palette = models.DefaultPalette
	vacancy := &models.Vacancy{ID: vacancyID, Title: "Backend Engineer", Company: "Acme"}

	m := New(ctx, boards, vacancy, b, cfg, WithClock(func() time.Time { return testNow }))
	m = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, boards, vacancyID
}

// send runs one message through Update and returns the new model
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends a sequence of keys. Single characters are sent as text, other
// names as special keys.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "backspace":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// stageOf returns the stage name of the named candidate on the model's board
func stageOf(t *testing.T, m Model, name string) string {
	t.Helper()
	for _, it := range m.Board().Items() {
		if it.DisplayName == name {
			return it.StageName
		}
	}
	t.Fatalf("candidate %q not on board", name)
	return ""
}

func stageNamesOf(stages []models.Stage) []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return names
}
