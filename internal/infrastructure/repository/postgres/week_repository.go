package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
)

type WeekRepository struct {
	db *sqlx.DB
}

func NewWeekRepository(db *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

func (r *WeekRepository) Load(ctx context.Context) (week.Selection, bool, error) {
	var out week.Selection
	if err := r.db.GetContext(ctx, &out.Week, selectWeekSQL); err != nil {
		if isNotFound(err) {
			return week.Selection{}, false, nil
		}
		return week.Selection{}, false, fmt.Errorf("get week selection: %w", err)
	}
	return out, true, nil
}

func (r *WeekRepository) Save(ctx context.Context, selection week.Selection) error {
	if _, err := r.db.ExecContext(ctx, upsertWeekSQL, selection.Week); err != nil {
		return fmt.Errorf("upsert week selection: %w", err)
	}
	return nil
}
