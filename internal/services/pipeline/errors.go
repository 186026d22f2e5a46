package pipeline

import "errors"

// Pipeline errors
var (
	ErrInvalidVacancyID = errors.New("invalid vacancy ID")
	ErrVacancyNotFound  = errors.New("vacancy not found")
	ErrEmptyStageName   = errors.New("stage name cannot be empty")
	ErrStageNameTooLong = errors.New("stage name cannot exceed 50 characters")
)
