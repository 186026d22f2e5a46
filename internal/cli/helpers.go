package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ErrInvalidInput marks malformed flag values
var ErrInvalidInput = errors.New("invalid input")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w: color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", ErrInvalidInput, color)
	}
	return nil
}

// ParseDirection maps "up"/"down" (or "left"/"right") to a board direction
func ParseDirection(s string) (board.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "left":
		return board.Up, nil
	case "down", "right":
		return board.Down, nil
	}
	return 0, fmt.Errorf("%w: direction must be up or down, got %q", ErrInvalidInput, s)
}

// ParseDate parses a YYYY-MM-DD date; empty means the zero time
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, s)
	}
	return t, nil
}

// ResolveStage finds a stage by id, then by exact name, then by a unique id
// prefix so users can type the first characters of a uuid
func ResolveStage(stages []models.Stage, ref string) (models.Stage, int, error) {
	for i, st := range stages {
		if string(st.ID) == ref {
			return st, i, nil
		}
	}
	for i, st := range stages {
		if st.Name == ref {
			return st, i, nil
		}
	}

	match := -1
	for i, st := range stages {
		if ref != "" && strings.HasPrefix(string(st.ID), ref) {
			if match >= 0 {
				return models.Stage{}, -1, fmt.Errorf("%w: stage reference %q is ambiguous", ErrInvalidInput, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return models.Stage{}, -1, fmt.Errorf("stage %q: %w", ref, board.ErrStageNotFound)
	}
	return stages[match], match, nil
}

// ShortID trims a stage id for display
func ShortID(id types.StageID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
