package models

import "github.com/thenoetrevino/embudo/internal/types"

// Stage is a named, colored bucket on a vacancy board (e.g. "Applied", "Interview").
// Stages carry no position field: their order is their index in the board's stage list.
type Stage struct {
	ID    types.StageID `json:"id"`
	Name  string        `json:"name"`  // Join key for BoardItem.StageName
	Color string        `json:"color"` // Display accent only
}
