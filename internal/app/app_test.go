package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/events"
	vacancyservice "github.com/thenoetrevino/embudo/internal/services/vacancy"
	"github.com/thenoetrevino/embudo/internal/testutil"
	"github.com/thenoetrevino/embudo/internal/types"
)

func TestNew(t *testing.T) {
	repo := testutil.SetupTestRepo(t)

	app := New(repo, nil)
	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.VacancyService == nil {
		t.Error("Expected VacancyService to be initialized")
	}
	if app.CandidateService == nil {
		t.Error("Expected CandidateService to be initialized")
	}
	if app.PipelineService == nil {
		t.Error("Expected PipelineService to be initialized")
	}
	if app.Config() == nil {
		t.Error("Expected default config when none is given")
	}
	if app.Events() != nil {
		t.Error("Expected no event publisher by default")
	}
}

func TestNew_WithOptions(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	bus := events.NewBus()
	cfg := config.Default()
	cfg.Palette = []string{"#abcdef"}

	app := New(repo, cfg, WithEventPublisher(bus))
	if app.Events() != bus {
		t.Error("Expected configured event publisher")
	}
	if got := app.Config().Palette[0]; got != "#abcdef" {
		t.Errorf("Expected palette to be kept, got %s", got)
	}

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}

func TestNew_WithStageIDs(t *testing.T) {
	ctx := context.Background()
	repo := testutil.SetupTestRepo(t)
	vacancyID := testutil.CreateTestVacancy(t, repo, "Backend Engineer")

	app := New(repo, nil, WithStageIDs(func() types.StageID { return "stage-fixed" }))

	result, err := app.PipelineService.EditStages(ctx, vacancyID, func(e *board.Editor) error {
		_, err := e.Add()
		return err
	})
	if err != nil {
		t.Fatalf("EditStages() error = %v", err)
	}
	last := result.Stages[len(result.Stages)-1]
	if last.ID != "stage-fixed" {
		t.Errorf("Expected added stage to use the configured id generator, got %s", last.ID)
	}
}

func TestNew_WithLogger(t *testing.T) {
	ctx := context.Background()
	repo := testutil.SetupTestRepo(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	app := New(repo, nil, WithLogger(logger))

	v, err := app.VacancyService.CreateVacancy(ctx, vacancyservice.CreateVacancyRequest{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("CreateVacancy() error = %v", err)
	}
	if _, err := app.PipelineService.LoadBoard(ctx, v.ID); err != nil {
		t.Fatalf("LoadBoard() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"vacancy created", "board loaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in the configured logger output, got %q", want, out)
		}
	}
}
