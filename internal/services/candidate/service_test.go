package candidate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/testutil"
	"github.com/thenoetrevino/embudo/internal/types"
)

func newTestService(t *testing.T) (Service, *database.Repository, types.VacancyID) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	vacancyID := testutil.CreateTestVacancy(t, repo, "Backend Engineer", "Applied", "Interview", "Offer")
	boards := pipeline.NewService(repo, nil, pipeline.Options{})
	return NewService(repo, boards, nil, nil), repo, vacancyID
}

// ============================================================================
// ADD
// ============================================================================

func TestAddCandidate_DefaultsToFirstStage(t *testing.T) {
	t.Parallel()
	svc, repo, vacancyID := newTestService(t)
	ctx := context.Background()
	applied := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	item, err := svc.AddCandidate(ctx, AddCandidateRequest{
		VacancyID: vacancyID,
		Name:      " Ada Lovelace ",
		RoleLabel: "Backend Engineer",
		Source:    "LinkedIn",
		AppliedAt: applied,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", item.DisplayName)
	assert.Equal(t, "Applied", item.StageName)

	items, err := svc.ListCandidates(ctx, vacancyID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, applied.Equal(items[0].AppliedAt))

	activity, err := repo.ListActivity(ctx, vacancyID, 10)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, models.ActivityCandidateAdd, activity[0].Kind)
}

func TestAddCandidate_Validation(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: vacancyID, Name: ""})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: 0, Name: "Ada"})
	assert.ErrorIs(t, err, ErrInvalidVacancyID)

	_, err = svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: vacancyID, Name: "Ada", StageName: "Nowhere"})
	assert.ErrorIs(t, err, ErrUnknownStage)

	_, err = svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: 999, Name: "Ada"})
	assert.ErrorIs(t, err, pipeline.ErrVacancyNotFound)
}

// ============================================================================
// MOVE
// ============================================================================

func TestMoveCandidate(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: vacancyID, Name: "Grace"})
	require.NoError(t, err)

	moved, err := svc.MoveCandidate(ctx, item.ID, "Offer")
	require.NoError(t, err)
	assert.Equal(t, "Offer", moved.StageName)

	got, _, err := svc.GetCandidate(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Offer", got.StageName)
}

func TestMoveCandidate_Errors(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: vacancyID, Name: "Grace"})
	require.NoError(t, err)

	_, err = svc.MoveCandidate(ctx, item.ID, "Applied")
	assert.ErrorIs(t, err, ErrAlreadyInStage)

	_, err = svc.MoveCandidate(ctx, item.ID, "Nowhere")
	assert.ErrorIs(t, err, ErrUnknownStage)

	_, err = svc.MoveCandidate(ctx, 4242, "Offer")
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	_, err = svc.MoveCandidate(ctx, 0, "Offer")
	assert.ErrorIs(t, err, ErrInvalidCandidateID)
}

func TestMoveMenu(t *testing.T) {
	t.Parallel()
	svc, _, vacancyID := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddCandidate(ctx, AddCandidateRequest{VacancyID: vacancyID, Name: "Linus", StageName: "Interview"})
	require.NoError(t, err)

	menu, err := svc.MoveMenu(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, menu, 3)
	assert.False(t, menu[0].Current)
	assert.True(t, menu[1].Current)
	assert.True(t, menu[1].Disabled)
	assert.False(t, menu[2].Disabled)
}
