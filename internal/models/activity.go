package models

import (
	"time"

	"github.com/thenoetrevino/embudo/internal/types"
)

// ActivityKind describes what happened on a board
type ActivityKind string

const (
	ActivityStagesSaved   ActivityKind = "stages_saved"
	ActivityCandidateMove ActivityKind = "candidate_moved"
	ActivityCandidateAdd  ActivityKind = "candidate_added"
)

// Activity is one entry in a vacancy's activity feed
type Activity struct {
	ID        types.ActivityID `json:"id"`
	VacancyID types.VacancyID  `json:"vacancy_id"`
	Kind      ActivityKind     `json:"kind"`
	Summary   string           `json:"summary"`
	Actor     string           `json:"actor,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
