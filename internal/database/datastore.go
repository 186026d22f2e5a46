package database

import (
	"context"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// VacancyRepository covers vacancy rows and their seeded stages
type VacancyRepository interface {
	CreateVacancy(ctx context.Context, title, company string, stages []models.Stage) (*models.Vacancy, error)
	GetVacancy(ctx context.Context, id types.VacancyID) (*models.Vacancy, error)
	ListVacancies(ctx context.Context) ([]*models.Vacancy, error)
}

// StageRepository reads and replaces a vacancy's ordered stage list
type StageRepository interface {
	GetStages(ctx context.Context, vacancyID types.VacancyID) ([]models.Stage, error)
	PersistStages(ctx context.Context, vacancyID types.VacancyID, stages []models.Stage) error
}

// ItemRepository covers the candidates placed on vacancy boards
type ItemRepository interface {
	CreateItem(ctx context.Context, vacancyID types.VacancyID, item models.BoardItem) (*models.BoardItem, error)
	GetItem(ctx context.Context, id types.ItemID) (*models.BoardItem, types.VacancyID, error)
	FetchBoardItems(ctx context.Context, vacancyID types.VacancyID) ([]models.BoardItem, error)
	PersistItemMove(ctx context.Context, id types.ItemID, stageName string) error
}

// ActivityRepository stores the activity feed
type ActivityRepository interface {
	RecordActivity(ctx context.Context, a models.Activity) (*models.Activity, error)
	ListActivity(ctx context.Context, vacancyID types.VacancyID, limit int) ([]*models.Activity, error)
}

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces instead.
type DataStore interface {
	VacancyRepository
	StageRepository
	ItemRepository
	ActivityRepository
	Close() error
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
