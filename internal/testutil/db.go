package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries a prebuilt *app.App into CLI commands under test
const TestAppKey ContextKey = "testApp"

// SetupTestRepo opens a migrated in-memory store that is closed with the test
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// CreateTestVacancy creates a vacancy with one stage per name.
// Stage ids are the lower-cased names prefixed with "st-".
func CreateTestVacancy(t *testing.T, repo database.DataStore, title string, stageNames ...string) types.VacancyID {
	t.Helper()
	if len(stageNames) == 0 {
		stageNames = []string{"Applied", "Interview", "Offer"}
	}
	stages := make([]models.Stage, len(stageNames))
	for i, name := range stageNames {
		stages[i] = models.Stage{
			ID:    types.StageID("st-" + name),
			Name:  name,
			Color: models.DefaultPalette[i%len(models.DefaultPalette)],
		}
	}

	v, err := repo.CreateVacancy(context.Background(), title, "Acme", stages)
	if err != nil {
		t.Fatalf("Failed to create test vacancy: %v", err)
	}
	return v.ID
}

// CreateTestCandidate places a candidate on a vacancy board
func CreateTestCandidate(t *testing.T, repo database.DataStore, vacancyID types.VacancyID, name, stageName string) types.ItemID {
	t.Helper()
	item, err := repo.CreateItem(context.Background(), vacancyID, models.BoardItem{
		DisplayName: name,
		RoleLabel:   "Backend Engineer",
		Source:      "referral",
		StageName:   stageName,
	})
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
	return item.ID
}
