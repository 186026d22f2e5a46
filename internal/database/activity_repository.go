package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
)

// RecordActivity appends an entry to a vacancy's activity feed
func (r *Repository) RecordActivity(ctx context.Context, a models.Activity) (*models.Activity, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO activity (vacancy_id, kind, summary, actor, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.VacancyID.ToInt(), string(a.Kind), a.Summary, a.Actor, a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	a.ID = types.ActivityID(id)
	return &a, nil
}

// ListActivity returns the newest entries first. limit <= 0 means no limit.
func (r *Repository) ListActivity(ctx context.Context, vacancyID types.VacancyID, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, vacancy_id, kind, summary, actor, created_at FROM activity
		 WHERE vacancy_id = ? ORDER BY id DESC LIMIT ?`, vacancyID.ToInt(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		var kind string
		if err := rows.Scan(&a.ID, &a.VacancyID, &kind, &a.Summary, &a.Actor, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Kind = models.ActivityKind(kind)
		entries = append(entries, a)
	}
	return entries, rows.Err()
}
