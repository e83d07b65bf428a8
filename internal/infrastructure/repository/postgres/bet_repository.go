package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
)

// BetRepository keeps one row per team and week. A week with no rows has no ledger yet.
type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) Load(ctx context.Context, week int) (bet.Ledger, bool, error) {
	var rows []betEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, selectBetEntriesSQL, week); err != nil {
		return nil, false, fmt.Errorf("select bet entries week=%d: %w", week, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	ledger := bet.NewLedger()
	for _, row := range rows {
		if !bet.IsTeam(row.Team) || !row.Spread.Valid || !row.PlacedAt.Valid {
			continue
		}
		spread := row.Spread.Float64
		placedAt := row.PlacedAt.Time
		ledger[row.Team] = bet.Entry{Spread: &spread, PlacedAt: &placedAt}
	}
	return ledger, true, nil
}

// Save writes every team row for the week in one transaction.
func (r *BetRepository) Save(ctx context.Context, week int, ledger bet.Ledger) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save bets tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PreparexContext(ctx, upsertBetEntrySQL)
	if err != nil {
		return fmt.Errorf("prepare upsert bet entry: %w", err)
	}
	defer stmt.Close()

	for _, team := range bet.Teams {
		entry := ledger.Entry(team)
		var (
			spread   sql.NullFloat64
			placedAt sql.NullTime
		)
		if entry.IsSet() {
			spread = sql.NullFloat64{Float64: *entry.Spread, Valid: true}
			placedAt = sql.NullTime{Time: *entry.PlacedAt, Valid: true}
		}
		if _, err = stmt.ExecContext(ctx, week, team, spread, placedAt); err != nil {
			return fmt.Errorf("upsert bet entry week=%d team=%s: %w", week, team, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save bets tx: %w", err)
	}
	return nil
}
