package models

import (
	"time"

	"github.com/thenoetrevino/embudo/internal/types"
)

// Vacancy is an open position. Each vacancy owns one board.
type Vacancy struct {
	ID        types.VacancyID `json:"id"`
	Title     string          `json:"title"`
	Company   string          `json:"company,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// GetID returns the vacancy id for quiet CLI output
func (v Vacancy) GetID() int {
	return v.ID.ToInt()
}
