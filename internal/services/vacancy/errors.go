package vacancy

import "errors"

// Vacancy errors
var (
	ErrEmptyTitle       = errors.New("vacancy title cannot be empty")
	ErrTitleTooLong     = errors.New("vacancy title cannot exceed 255 characters")
	ErrInvalidVacancyID = errors.New("invalid vacancy ID")
	ErrVacancyNotFound  = errors.New("vacancy not found")
	ErrTooFewStages     = errors.New("a vacancy needs at least two stages")
)
