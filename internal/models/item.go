package models

import (
	"time"

	"github.com/thenoetrevino/embudo/internal/types"
)

// BoardItem is a candidate placed on a vacancy board.
// Only StageName is ever changed by the board; the rest is display data.
type BoardItem struct {
	ID          types.ItemID `json:"id"`
	DisplayName string       `json:"display_name"`
	RoleLabel   string       `json:"role_label"`
	AppliedAt   time.Time    `json:"applied_at"`
	Source      string       `json:"source,omitempty"`

	// StageName references a stage by its name, not its id. If the stage is
	// renamed the item matches no stage until it is moved again.
	StageName string `json:"stage_name"`
}

// GetID returns the item id for quiet CLI output
func (i BoardItem) GetID() int {
	return i.ID.ToInt()
}
