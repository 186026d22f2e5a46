package events

import (
	"time"

	"github.com/thenoetrevino/embudo/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventStagesSaved    EventType = "stages_saved"
	EventCandidateMoved EventType = "candidate_moved"
	EventCandidateAdded EventType = "candidate_added"
	EventVacancyCreated EventType = "vacancy_created"
)

// Event represents a persisted board change
type Event struct {
	Type       EventType
	VacancyID  types.VacancyID // For filtering - which board was modified
	ItemID     types.ItemID    // Set for candidate events
	StageName  string          // Target stage for candidate moves
	Timestamp  time.Time       // When the event occurred
	SequenceID int64           // Monotonically increasing sequence number for ordering
}
