package state

import (
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/types"
)

// MenuState is the cursor over the Move menu of one candidate.
type MenuState struct {
	item    types.ItemID
	entries []board.MenuEntry
	cursor  int
}

// NewMenuState creates an empty menu.
func NewMenuState() *MenuState {
	return &MenuState{}
}

// Open shows the entries for item and puts the cursor on the first enabled one.
func (s *MenuState) Open(item types.ItemID, entries []board.MenuEntry) {
	s.item = item
	s.entries = entries
	s.cursor = 0
	if len(entries) > 0 && entries[0].Disabled {
		s.Next()
	}
}

// Item returns the candidate the menu was opened for.
func (s *MenuState) Item() types.ItemID { return s.item }

// Entries returns the menu entries.
func (s *MenuState) Entries() []board.MenuEntry { return s.entries }

// Cursor returns the index under the cursor.
func (s *MenuState) Cursor() int { return s.cursor }

// Selected returns the entry under the cursor; false when the menu is empty
// or every entry is disabled.
func (s *MenuState) Selected() (board.MenuEntry, bool) {
	if s.cursor < 0 || s.cursor >= len(s.entries) || s.entries[s.cursor].Disabled {
		return board.MenuEntry{}, false
	}
	return s.entries[s.cursor], true
}

// Next moves to the next enabled entry, staying put at the end.
func (s *MenuState) Next() {
	for i := s.cursor + 1; i < len(s.entries); i++ {
		if !s.entries[i].Disabled {
			s.cursor = i
			return
		}
	}
}

// Prev moves to the previous enabled entry, staying put at the start.
func (s *MenuState) Prev() {
	for i := s.cursor - 1; i >= 0; i-- {
		if !s.entries[i].Disabled {
			s.cursor = i
			return
		}
	}
}

// Close drops the entries.
func (s *MenuState) Close() {
	s.item = 0
	s.entries = nil
	s.cursor = 0
}

// EditorState is the cursor over the working stage list of the stage editor.
type EditorState struct {
	cursor int
}

// NewEditorState creates an editor cursor at the first stage.
func NewEditorState() *EditorState {
	return &EditorState{}
}

// Cursor returns the selected row.
func (s *EditorState) Cursor() int { return s.cursor }

// SetCursor moves the cursor, clamped to n rows.
func (s *EditorState) SetCursor(i, n int) {
	s.cursor = min(max(i, 0), max(n-1, 0))
}
