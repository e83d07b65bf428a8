package postgres

import (
	"database/sql"
	"errors"
)

const (
	selectBetEntriesSQL = `SELECT team, spread, placed_at FROM bet_entries WHERE week = $1 ORDER BY team`

	upsertBetEntrySQL = `INSERT INTO bet_entries (week, team, spread, placed_at, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (week, team) DO UPDATE
SET spread = EXCLUDED.spread, placed_at = EXCLUDED.placed_at, updated_at = now()`

	selectWeekSQL = `SELECT week FROM week_selection WHERE id = 1`

	upsertWeekSQL = `INSERT INTO week_selection (id, week, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE
SET week = EXCLUDED.week, updated_at = now()`
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
