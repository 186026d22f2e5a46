package board

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ============================================================================
// TEST DOUBLES
// ============================================================================

type fakeSource struct {
	items []models.BoardItem
	err   error
	calls int
}

func (f *fakeSource) FetchBoardItems(_ context.Context, _ types.VacancyID) ([]models.BoardItem, error) {
	f.calls++
	return f.items, f.err
}

type fakePersister struct {
	stages   [][]models.Stage
	moves    []models.BoardItem
	stageErr error
	moveErr  error
}

func (f *fakePersister) PersistStages(_ context.Context, _ types.VacancyID, stages []models.Stage) error {
	f.stages = append(f.stages, stages)
	return f.stageErr
}

func (f *fakePersister) PersistItemMove(_ context.Context, id types.ItemID, stageName string) error {
	f.moves = append(f.moves, models.BoardItem{ID: id, StageName: stageName})
	return f.moveErr
}

func sampleItems() []models.BoardItem {
	return []models.BoardItem{
		{ID: 1, DisplayName: "Ada", RoleLabel: "Engineer", StageName: "Applied"},
		{ID: 2, DisplayName: "Grace", RoleLabel: "Engineer", StageName: "Interview"},
		{ID: 3, DisplayName: "Linus", RoleLabel: "Engineer", StageName: "Applied"},
	}
}

// ============================================================================
// LOAD
// ============================================================================

func TestLoad_FetchesItemsOnce(t *testing.T) {
	t.Parallel()

	src := &fakeSource{items: sampleItems()}
	b, err := Load(context.Background(), 9, pipelineStages(), src)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, types.VacancyID(9), b.VacancyID())
	assert.Equal(t, sampleItems(), b.Items())
}

func TestLoad_FetchErrorNotRetried(t *testing.T) {
	t.Parallel()

	src := &fakeSource{err: errors.New("backend down")}
	_, err := Load(context.Background(), 9, pipelineStages(), src)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
	assert.Equal(t, 1, src.calls)
}

// ============================================================================
// DRAG AND DROP vs MOVE MENU
// ============================================================================

func TestBoard_DragDropEqualsMoveMenu(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dragged := New(1, pipelineStages(), sampleItems())
	menued := New(1, pipelineStages(), sampleItems())

	require.NoError(t, dragged.Drag().Begin(1))
	dragged.Drag().Enter("a")
	dragged.Drag().Leave("a")
	dragged.Drag().Enter("b")
	moved, err := dragged.Drag().Drop(ctx)
	require.NoError(t, err)
	require.True(t, moved)

	entries, err := menued.MoveMenu(1)
	require.NoError(t, err)
	var target models.Stage
	for _, e := range entries {
		if e.Stage.ID == "b" {
			require.False(t, e.Disabled)
			target = e.Stage
		}
	}
	require.NoError(t, menued.MoveItem(ctx, 1, target.Name))

	if diff := cmp.Diff(dragged.Items(), menued.Items()); diff != "" {
		t.Errorf("drag and menu disagree (-drag +menu):\n%s", diff)
	}
	assert.Equal(t, Idle, menued.Drag().State(), "menu path never touches the drag state")
}

func TestBoard_BucketsFollowMoves(t *testing.T) {
	t.Parallel()

	b := New(1, pipelineStages(), sampleItems())
	require.NoError(t, b.MoveItem(context.Background(), 3, "Offer"))

	buckets := b.Buckets()
	require.Len(t, buckets, 3)
	assert.Equal(t, []types.ItemID{1}, itemIDs(buckets[0].Items))
	assert.Equal(t, []types.ItemID{2}, itemIDs(buckets[1].Items))
	assert.Equal(t, []types.ItemID{3}, itemIDs(buckets[2].Items))
	assert.Equal(t, []types.ItemID{3}, itemIDs(b.ItemsByStage()["Offer"]))
}

// ============================================================================
// PERSISTENCE HOOKS
// ============================================================================

func TestBoard_NoPersisterIsLocalOnly(t *testing.T) {
	t.Parallel()

	b := New(1, pipelineStages(), sampleItems())
	require.NoError(t, b.MoveItem(context.Background(), 1, "Offer"))

	require.NoError(t, b.Editor().Open())
	_, err := b.Editor().Save(context.Background())
	require.NoError(t, err)
}

func TestBoard_PersisterCalledOnMoveAndSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &fakePersister{}
	b := New(4, pipelineStages(), sampleItems(), WithPersister(p))

	require.NoError(t, b.MoveItem(ctx, 2, "Offer"))
	require.NoError(t, b.Drag().Begin(1))
	b.Drag().Enter("c")
	_, err := b.Drag().Drop(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.BoardItem{{ID: 2, StageName: "Offer"}, {ID: 1, StageName: "Offer"}}, p.moves)

	require.NoError(t, b.Editor().Open())
	require.NoError(t, b.Editor().Rename("a", "New"))
	assert.Empty(t, p.stages, "editing alone persists nothing")
	_, err = b.Editor().Save(ctx)
	require.NoError(t, err)

	require.Len(t, p.stages, 1)
	assert.Equal(t, b.Stages(), p.stages[0])
}

func TestBoard_PersisterErrorsSurfaceAfterLocalMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &fakePersister{moveErr: errors.New("disk full"), stageErr: errors.New("disk full")}
	b := New(4, pipelineStages(), sampleItems(), WithPersister(p))

	err := b.MoveItem(ctx, 1, "Offer")
	require.Error(t, err)
	item, _ := b.Item(1)
	assert.Equal(t, "Offer", item.StageName)

	require.NoError(t, b.Editor().Open())
	_, _ = b.Editor().Add()
	_, err = b.Editor().Save(ctx)
	require.Error(t, err)
	assert.Len(t, b.Stages(), 4)
	assert.False(t, b.Editor().IsOpen())
}

func TestBoard_MoveUnknownItemDoesNotPersist(t *testing.T) {
	t.Parallel()

	p := &fakePersister{}
	b := New(4, pipelineStages(), sampleItems(), WithPersister(p))

	assert.ErrorIs(t, b.MoveItem(context.Background(), 99, "Offer"), ErrItemNotFound)
	assert.Empty(t, p.moves)
}
