package game

import "context"

// Provider returns the live scoreboard for a week.
type Provider interface {
	ListByWeek(ctx context.Context, week int) ([]Game, error)
}
