package cli

import (
	"errors"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/services/candidate"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/services/vacancy"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or no vacancy selected.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Vacancy, candidate or stage ids that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a shell context variable that does not hold an id.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, bad colors, deleting below the minimum stage count.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// ExitCodeOf returns the exit code err should terminate the process with
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Classify maps an error from the service layer to a machine readable code,
// an exit code and a suggestion for the user
func Classify(err error) (code string, exit int, suggestion string) {
	switch {
	case errors.Is(err, ErrNoVacancy):
		return "NO_VACANCY", ExitUsage, "Set a vacancy with: eval $(embudo use vacancy <vacancy-id>)"
	case errors.Is(err, ErrBadVacancyEnv):
		return "BAD_CONTEXT", ExitDataErr, "Reset it with: eval $(embudo use vacancy <vacancy-id>)"
	case errors.Is(err, vacancy.ErrVacancyNotFound), errors.Is(err, pipeline.ErrVacancyNotFound):
		return "VACANCY_NOT_FOUND", ExitNotFound, "Use 'embudo vacancy list' to see available vacancies"
	case errors.Is(err, candidate.ErrCandidateNotFound), errors.Is(err, board.ErrItemNotFound):
		return "CANDIDATE_NOT_FOUND", ExitNotFound, "Use 'embudo candidate list' to see candidates"
	case errors.Is(err, board.ErrStageNotFound), errors.Is(err, candidate.ErrUnknownStage):
		return "STAGE_NOT_FOUND", ExitNotFound, "Use 'embudo stage list' to see the stages of the vacancy"
	case errors.Is(err, board.ErrMinimumStages):
		return "MINIMUM_STAGES", ExitValidation, ""
	case errors.Is(err, candidate.ErrAlreadyInStage):
		return "ALREADY_IN_STAGE", ExitValidation, ""
	case errors.Is(err, vacancy.ErrEmptyTitle), errors.Is(err, vacancy.ErrTitleTooLong),
		errors.Is(err, vacancy.ErrTooFewStages), errors.Is(err, vacancy.ErrInvalidVacancyID),
		errors.Is(err, candidate.ErrEmptyName), errors.Is(err, candidate.ErrInvalidVacancyID),
		errors.Is(err, candidate.ErrInvalidCandidateID), errors.Is(err, pipeline.ErrInvalidVacancyID),
		errors.Is(err, pipeline.ErrEmptyStageName), errors.Is(err, pipeline.ErrStageNameTooLong),
		errors.Is(err, ErrInvalidInput):
		return "VALIDATION_ERROR", ExitValidation, ""
	default:
		return "ERROR", ExitError, ""
	}
}
