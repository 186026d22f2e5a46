package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/embudo/internal/models"
)

func TestSimilarStageNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		names     []string
		threshold int
		want      [][2]string
	}{
		{"distinct names", []string{"Applied", "Interview", "Offer"}, 2, nil},
		{"exact duplicate", []string{"Applied", "Offer", "Applied"}, 0, [][2]string{{"Applied", "Applied"}}},
		{"case and spacing ignored", []string{"Offer", " offer "}, 0, [][2]string{{"Offer", " offer "}}},
		{"typo within threshold", []string{"Screening", "Screning"}, 2, [][2]string{{"Screening", "Screning"}}},
		{"typo beyond threshold", []string{"Screening", "Screning"}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := make([]models.Stage, len(tt.names))
			for i, n := range tt.names {
				stages[i] = models.Stage{Name: n}
			}

			var got [][2]string
			for _, w := range SimilarStageNames(stages, tt.threshold) {
				got = append(got, [2]string{w.First.Name, w.Second.Name})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
