package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/testutil"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type capturePublisher struct {
	events []events.Event
}

func (c *capturePublisher) SendEvent(e events.Event) error {
	c.events = append(c.events, e)
	return nil
}

func (c *capturePublisher) Listen(ctx context.Context, vacancyID types.VacancyID) (<-chan events.Event, error) {
	return nil, errors.New("not supported")
}

func (c *capturePublisher) Close() error { return nil }

func newTestService(t *testing.T) (Service, *capturePublisher, types.VacancyID) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	vacancyID := testutil.CreateTestVacancy(t, repo, "Backend Engineer", "Applied", "Interview", "Offer")
	testutil.CreateTestCandidate(t, repo, vacancyID, "Ada", "Applied")
	testutil.CreateTestCandidate(t, repo, vacancyID, "Grace", "Interview")

	pub := &capturePublisher{}
	svc := NewService(repo, pub, Options{Palette: models.DefaultPalette, SimilarNameThreshold: 2})
	return svc, pub, vacancyID
}

func stageNames(stages []models.Stage) []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return names
}

// ============================================================================
// LOAD BOARD
// ============================================================================

func TestLoadBoard(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)

	b, err := svc.LoadBoard(context.Background(), vacancyID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Applied", "Interview", "Offer"}, stageNames(b.Stages()))
	buckets := b.ItemsByStage()
	assert.Len(t, buckets["Applied"], 1)
	assert.Len(t, buckets["Interview"], 1)
	assert.Empty(t, buckets["Offer"])
}

func TestLoadBoard_InvalidAndMissingVacancy(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	_, err := svc.LoadBoard(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidVacancyID)

	_, err = svc.LoadBoard(context.Background(), 999)
	assert.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestLoadBoard_MovesArePersisted(t *testing.T) {
	t.Parallel()
	svc, pub, vacancyID := newTestService(t)
	ctx := context.Background()

	b, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	ada := b.ItemsByStage()["Applied"][0]

	require.NoError(t, b.MoveItem(ctx, ada.ID, "Offer"))

	reloaded, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	item, ok := reloaded.Item(ada.ID)
	require.True(t, ok)
	assert.Equal(t, "Offer", item.StageName)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.EventCandidateMoved, pub.events[0].Type)
	assert.Equal(t, "Offer", pub.events[0].StageName)

	activity, err := svc.Activity(ctx, vacancyID, 10)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, models.ActivityCandidateMove, activity[0].Kind)
	assert.Equal(t, "Ada moved to Offer", activity[0].Summary)
	assert.NotEmpty(t, activity[0].Actor, "moves record who made them")
}

func TestLoadBoard_DragDropIsPersisted(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)
	ctx := context.Background()

	b, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	grace := b.ItemsByStage()["Interview"][0]

	drag := b.Drag()
	require.NoError(t, drag.Begin(grace.ID))
	drag.Enter("st-Offer")
	moved, err := drag.Drop(ctx)
	require.NoError(t, err)
	assert.True(t, moved)

	reloaded, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	item, _ := reloaded.Item(grace.ID)
	assert.Equal(t, "Offer", item.StageName)
}

// ============================================================================
// EDIT STAGES
// ============================================================================

func TestEditStages_SavesWorkingCopy(t *testing.T) {
	t.Parallel()
	svc, pub, vacancyID := newTestService(t)
	ctx := context.Background()

	result, err := svc.EditStages(ctx, vacancyID, func(e *board.Editor) error {
		if err := e.Rename("st-Offer", "Offer made"); err != nil {
			return err
		}
		_, err := e.Move(2, board.Up)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied", "Offer made", "Interview"}, stageNames(result.Stages))
	assert.Empty(t, result.Orphans)

	b, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied", "Offer made", "Interview"}, stageNames(b.Stages()))

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.EventStagesSaved, pub.events[0].Type)

	activity, err := svc.Activity(ctx, vacancyID, 0)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, "Stages set to Applied → Offer made → Interview", activity[0].Summary)
}

func TestEditStages_RenameOrphansCandidates(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)

	result, err := svc.EditStages(context.Background(), vacancyID, func(e *board.Editor) error {
		return e.Rename("st-Interview", "Onsite")
	})
	require.NoError(t, err)
	require.Len(t, result.Orphans, 1)
	assert.Equal(t, "Grace", result.Orphans[0].DisplayName)
	assert.Equal(t, "Interview", result.Orphans[0].StageName)
}

func TestEditStages_ErrorCancelsSession(t *testing.T) {
	t.Parallel()
	svc, pub, vacancyID := newTestService(t)
	ctx := context.Background()

	_, err := svc.EditStages(ctx, vacancyID, func(e *board.Editor) error {
		require.NoError(t, e.Delete("st-Offer"))
		return e.Delete("st-Interview")
	})
	assert.ErrorIs(t, err, board.ErrMinimumStages)

	b, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied", "Interview", "Offer"}, stageNames(b.Stages()))
	assert.Empty(t, pub.events)
}

func TestEditStages_RejectsEmptyName(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)

	_, err := svc.EditStages(context.Background(), vacancyID, func(e *board.Editor) error {
		return e.Rename("st-Applied", "")
	})
	assert.ErrorIs(t, err, ErrEmptyStageName)
}

func TestEditStages_RejectsBlankName(t *testing.T) {
	t.Parallel()
	svc, pub, vacancyID := newTestService(t)
	ctx := context.Background()

	_, err := svc.EditStages(ctx, vacancyID, func(e *board.Editor) error {
		return e.Rename("st-Applied", "   ")
	})
	assert.ErrorIs(t, err, ErrEmptyStageName)

	b, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied", "Interview", "Offer"}, stageNames(b.Stages()))
	assert.Empty(t, b.Orphans())
	assert.Empty(t, pub.events)
}

func TestEditStages_StoresTrimmedNames(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)
	ctx := context.Background()

	result, err := svc.EditStages(ctx, vacancyID, func(e *board.Editor) error {
		return e.Rename("st-Offer", "  Offer sent ")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied", "Interview", "Offer sent"}, stageNames(result.Stages))

	b, err := svc.LoadBoard(ctx, vacancyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied", "Interview", "Offer sent"}, stageNames(b.Stages()))
}

func TestValidateStageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain", "Interview", nil},
		{"empty", "", ErrEmptyStageName},
		{"spaces only", " \t ", ErrEmptyStageName},
		{"multibyte under limit", "Собеседование с руководителем", nil},
		{"multibyte at limit", strings.Repeat("é", MaxStageNameLength), nil},
		{"multibyte over limit", strings.Repeat("é", MaxStageNameLength+1), ErrStageNameTooLong},
		{"padding not counted", "  " + strings.Repeat("a", MaxStageNameLength) + "  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStageName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEditStages_AddUsesPalette(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)

	result, err := svc.EditStages(context.Background(), vacancyID, func(e *board.Editor) error {
		_, err := e.Add()
		return err
	})
	require.NoError(t, err)
	require.Len(t, result.Stages, 4)
	added := result.Stages[3]
	assert.Equal(t, models.DefaultStageName, added.Name)
	assert.Equal(t, models.DefaultPalette[3], added.Color)
	assert.NotEmpty(t, added.ID)
}

func TestEditStages_ReportsSimilarNames(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)

	result, err := svc.EditStages(context.Background(), vacancyID, func(e *board.Editor) error {
		return e.Rename("st-Offer", "Interviews")
	})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Interview", result.Warnings[0].First.Name)
	assert.Equal(t, "Interviews", result.Warnings[0].Second.Name)
	assert.Equal(t, 1, result.Warnings[0].Distance)
}
