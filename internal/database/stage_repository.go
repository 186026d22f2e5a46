package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// GetStages returns a vacancy's stages in board order
func (r *Repository) GetStages(ctx context.Context, vacancyID types.VacancyID) ([]models.Stage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color FROM stages WHERE vacancy_id = ? ORDER BY position`, vacancyID.ToInt(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := []models.Stage{}
	for rows.Next() {
		var st models.Stage
		if err := rows.Scan(&st.ID, &st.Name, &st.Color); err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}

// PersistStages replaces the whole stage list of a vacancy in one transaction.
// Candidate rows are not touched.
func (r *Repository) PersistStages(ctx context.Context, vacancyID types.VacancyID, stages []models.Stage) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM stages WHERE vacancy_id = ?`, vacancyID.ToInt()); err != nil {
			return fmt.Errorf("failed to clear stages: %w", err)
		}
		return insertStages(ctx, tx, vacancyID, stages)
	})
}

func insertStages(ctx context.Context, tx *sql.Tx, vacancyID types.VacancyID, stages []models.Stage) error {
	for pos, st := range stages {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO stages (vacancy_id, id, name, color, position) VALUES (?, ?, ?, ?, ?)`,
			vacancyID.ToInt(), st.ID.String(), st.Name, st.Color, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert stage %q: %w", st.Name, err)
		}
	}
	return nil
}
