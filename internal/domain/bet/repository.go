package bet

import "context"

// Repository persists one ledger per fantasy week.
type Repository interface {
	Load(ctx context.Context, week int) (Ledger, bool, error)
	Save(ctx context.Context, week int, ledger Ledger) error
}
