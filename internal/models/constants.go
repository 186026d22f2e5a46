package models

// ============================================================================
// STAGE DEFAULTS
// ============================================================================

// DefaultStageName is the name given to stages created by the stage editor
const DefaultStageName = "New stage"

// MinStages is the smallest number of stages a board may have
const MinStages = 2

// DefaultPalette is the accent cycle used for new stages
var DefaultPalette = []string{
	"#6366F1",
	"#F59E0B",
	"#10B981",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
	"#14B8A6",
	"#F97316",
}

// DefaultStageNames seed the board of a new vacancy
var DefaultStageNames = []string{"Applied", "Screening", "Interview", "Offer", "Hired"}
