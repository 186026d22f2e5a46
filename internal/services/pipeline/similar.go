package pipeline

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/thenoetrevino/embudo/internal/models"
)

// NameWarning flags two stages whose names are equal or nearly equal.
// Candidates are matched to stages by name, so look-alike names are a
// common way to lose candidates after a rename.
type NameWarning struct {
	First    models.Stage
	Second   models.Stage
	Distance int // 0 means the names are identical
}

// SimilarStageNames compares every pair of stage names case-insensitively and
// reports pairs within threshold edits of each other
func SimilarStageNames(stages []models.Stage, threshold int) []NameWarning {
	var warnings []NameWarning
	for i := 0; i < len(stages); i++ {
		for j := i + 1; j < len(stages); j++ {
			a := strings.ToLower(strings.TrimSpace(stages[i].Name))
			b := strings.ToLower(strings.TrimSpace(stages[j].Name))
			d := levenshtein.ComputeDistance(a, b)
			if d <= threshold {
				warnings = append(warnings, NameWarning{First: stages[i], Second: stages[j], Distance: d})
			}
		}
	}
	return warnings
}
