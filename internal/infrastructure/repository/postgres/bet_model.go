package postgres

import "database/sql"

type betEntryTableModel struct {
	Team     string          `db:"team"`
	Spread   sql.NullFloat64 `db:"spread"`
	PlacedAt sql.NullTime    `db:"placed_at"`
}
