package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"estateadmin/console/internal/models"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Record(ctx context.Context, activity models.Activity) error {
	const query = `
		INSERT INTO admin_activity (
			id, admin_id, admin_name, action, target_id, summary, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := r.pool.Exec(ctx, query,
		activity.ID,
		activity.AdminID,
		activity.AdminName,
		activity.Action,
		activity.TargetID,
		activity.Summary,
		activity.CreatedAt,
	)
	return err
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	const query = `
		SELECT id, admin_id, admin_name, action, target_id, summary, created_at
		FROM admin_activity
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID,
			&a.AdminID,
			&a.AdminName,
			&a.Action,
			&a.TargetID,
			&a.Summary,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// PruneBefore deletes entries older than cutoff.
func (r *ActivityRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM admin_activity WHERE created_at < $1`
	cmd, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
