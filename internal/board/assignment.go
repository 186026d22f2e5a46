package board

import (
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// Assignments holds the candidates on a board and their current stage name.
// MoveItem is the only mutation.
type Assignments struct {
	items []models.BoardItem
}

// NewAssignments copies items into a new assignment model
func NewAssignments(items []models.BoardItem) *Assignments {
	return &Assignments{items: append([]models.BoardItem(nil), items...)}
}

// Items returns a copy of all items in their original order
func (a *Assignments) Items() []models.BoardItem {
	return append([]models.BoardItem(nil), a.items...)
}

// Get returns the item with the given id
func (a *Assignments) Get(id types.ItemID) (models.BoardItem, bool) {
	for _, it := range a.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.BoardItem{}, false
}

// MoveItem sets the stage name of one item. Moving to the current stage is a
// no-op. A name that matches no stage is accepted and orphans the item.
func (a *Assignments) MoveItem(id types.ItemID, stageName string) error {
	for i := range a.items {
		if a.items[i].ID == id {
			a.items[i].StageName = stageName
			return nil
		}
	}
	return ErrItemNotFound
}

// MenuEntry is one row of the Move menu for a candidate
type MenuEntry struct {
	Stage    models.Stage
	Current  bool
	Disabled bool
}

// MoveMenu lists every stage as a move target, with the item's current stage
// marked and disabled
func (a *Assignments) MoveMenu(id types.ItemID, stages []models.Stage) ([]MenuEntry, error) {
	item, ok := a.Get(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	entries := make([]MenuEntry, len(stages))
	for i, st := range stages {
		current := st.Name == item.StageName
		entries[i] = MenuEntry{Stage: st, Current: current, Disabled: current}
	}
	return entries, nil
}

// Bucket is one stage column and the items it holds
type Bucket struct {
	Stage models.Stage
	Items []models.BoardItem
}

// ItemsByStage groups items by stage name, keeping item order. Every stage
// name gets a bucket, empty or not. Items whose stage name matches no stage
// are left out.
func ItemsByStage(stages []models.Stage, items []models.BoardItem) map[string][]models.BoardItem {
	grouped := make(map[string][]models.BoardItem, len(stages))
	for _, st := range stages {
		grouped[st.Name] = []models.BoardItem{}
	}
	for _, it := range items {
		if bucket, ok := grouped[it.StageName]; ok {
			grouped[it.StageName] = append(bucket, it)
		}
	}
	return grouped
}

// Buckets returns the grouping in stage order. When two stages share a name
// the items land in the first of them only, so no item is shown twice.
func Buckets(stages []models.Stage, items []models.BoardItem) []Bucket {
	grouped := ItemsByStage(stages, items)
	seen := make(map[string]bool, len(stages))
	buckets := make([]Bucket, len(stages))
	for i, st := range stages {
		buckets[i] = Bucket{Stage: st, Items: []models.BoardItem{}}
		if !seen[st.Name] {
			buckets[i].Items = grouped[st.Name]
			seen[st.Name] = true
		}
	}
	return buckets
}

// Orphans returns the items whose stage name matches no stage
func Orphans(stages []models.Stage, items []models.BoardItem) []models.BoardItem {
	names := make(map[string]bool, len(stages))
	for _, st := range stages {
		names[st.Name] = true
	}
	var orphans []models.BoardItem
	for _, it := range items {
		if !names[it.StageName] {
			orphans = append(orphans, it)
		}
	}
	return orphans
}
