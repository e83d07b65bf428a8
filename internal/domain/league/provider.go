package league

import (
	"context"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/matchup"
)

// Provider exposes the fantasy platform reads a lineup refresh needs.
type Provider interface {
	GetUser(ctx context.Context, username string) (User, error)
	ListRosters(ctx context.Context, leagueID string) ([]Roster, error)
	ListUsers(ctx context.Context, leagueID string) ([]User, error)
	ListMatchups(ctx context.Context, leagueID string, week int) ([]matchup.Entry, error)
}
