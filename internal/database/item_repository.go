package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// CreateItem places a candidate on a vacancy board
func (r *Repository) CreateItem(ctx context.Context, vacancyID types.VacancyID, item models.BoardItem) (*models.BoardItem, error) {
	if item.AppliedAt.IsZero() {
		item.AppliedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO board_items (vacancy_id, display_name, role_label, source, applied_at, stage_name)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		vacancyID.ToInt(), item.DisplayName, item.RoleLabel, item.Source, item.AppliedAt, item.StageName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert candidate: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	item.ID = types.ItemID(id)
	return &item, nil
}

// GetItem returns a candidate and the vacancy it belongs to
func (r *Repository) GetItem(ctx context.Context, id types.ItemID) (*models.BoardItem, types.VacancyID, error) {
	var item models.BoardItem
	var vacancyID int
	err := r.db.QueryRowContext(ctx,
		`SELECT id, vacancy_id, display_name, role_label, source, applied_at, stage_name
		 FROM board_items WHERE id = ?`, id.ToInt(),
	).Scan(&item.ID, &vacancyID, &item.DisplayName, &item.RoleLabel, &item.Source, &item.AppliedAt, &item.StageName)
	if err != nil {
		return nil, 0, notFound(err, fmt.Sprintf("candidate %d", id))
	}
	return &item, types.VacancyID(vacancyID), nil
}

// FetchBoardItems returns the candidates of a vacancy in insertion order
func (r *Repository) FetchBoardItems(ctx context.Context, vacancyID types.VacancyID) ([]models.BoardItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, display_name, role_label, source, applied_at, stage_name
		 FROM board_items WHERE vacancy_id = ? ORDER BY id`, vacancyID.ToInt(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.BoardItem{}
	for rows.Next() {
		var it models.BoardItem
		if err := rows.Scan(&it.ID, &it.DisplayName, &it.RoleLabel, &it.Source, &it.AppliedAt, &it.StageName); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// PersistItemMove stores a candidate's new stage name
func (r *Repository) PersistItemMove(ctx context.Context, id types.ItemID, stageName string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE board_items SET stage_name = ? WHERE id = ?`, stageName, id.ToInt(),
	)
	if err != nil {
		return fmt.Errorf("failed to move candidate: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("candidate %d: %w", id, ErrNotFound)
	}
	return nil
}
