package candidate

import "errors"

// Candidate errors
var (
	ErrEmptyName          = errors.New("candidate name cannot be empty")
	ErrInvalidVacancyID   = errors.New("invalid vacancy ID")
	ErrInvalidCandidateID = errors.New("invalid candidate ID")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrUnknownStage       = errors.New("no stage with that name on the board")
	ErrAlreadyInStage     = errors.New("candidate is already in that stage")
)
