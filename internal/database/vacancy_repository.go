package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// CreateVacancy inserts a vacancy together with its initial stages
func (r *Repository) CreateVacancy(ctx context.Context, title, company string, stages []models.Stage) (*models.Vacancy, error) {
	vacancy := &models.Vacancy{
		Title:     title,
		Company:   company,
		CreatedAt: time.Now().UTC(),
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO vacancies (title, company, created_at) VALUES (?, ?, ?)`,
			title, company, vacancy.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert vacancy: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		vacancy.ID = types.VacancyID(id)

		return insertStages(ctx, tx, vacancy.ID, stages)
	})
	if err != nil {
		return nil, err
	}

	return vacancy, nil
}

// GetVacancy returns one vacancy
func (r *Repository) GetVacancy(ctx context.Context, id types.VacancyID) (*models.Vacancy, error) {
	v := &models.Vacancy{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, company, created_at FROM vacancies WHERE id = ?`, id.ToInt(),
	).Scan(&v.ID, &v.Title, &v.Company, &v.CreatedAt)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("vacancy %d", id))
	}
	return v, nil
}

// ListVacancies returns all vacancies by id
func (r *Repository) ListVacancies(ctx context.Context) ([]*models.Vacancy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, company, created_at FROM vacancies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []*models.Vacancy
	for rows.Next() {
		v := &models.Vacancy{}
		if err := rows.Scan(&v.ID, &v.Title, &v.Company, &v.CreatedAt); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}
