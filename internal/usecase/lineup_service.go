package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/league"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/matchup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/roster"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type LineupMode string

const (
	LineupModeUser     LineupMode = "user"
	LineupModeOpponent LineupMode = "opponent"
	LineupModeBoth     LineupMode = "both"
)

func ParseLineupMode(raw string) (LineupMode, error) {
	mode := LineupMode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case LineupModeUser, LineupModeOpponent, LineupModeBoth:
		return mode, nil
	case "":
		return LineupModeBoth, nil
	default:
		return "", fmt.Errorf("%w: mode must be one of user, opponent, both", ErrInvalidInput)
	}
}

type LineupConfig struct {
	LeagueID string
	Username string
	Scheme   lineup.Scheme
}

type LineupResult struct {
	Week     int
	Mode     LineupMode
	User     *lineup.Lineup
	Opponent *lineup.Lineup
	Pairs    []lineup.Pair
}

type catalogLoader interface {
	Load(ctx context.Context) (player.Catalog, error)
}

type LineupService struct {
	provider league.Provider
	catalog  catalogLoader
	cfg      LineupConfig
	logger   *logging.Logger
}

func NewLineupService(provider league.Provider, catalog catalogLoader, cfg LineupConfig, logger *logging.Logger) *LineupService {
	if len(cfg.Scheme.Order) == 0 {
		cfg.Scheme = lineup.DefaultScheme()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		provider: provider,
		catalog:  catalog,
		cfg:      cfg,
		logger:   logger,
	}
}

// leagueSnapshot is everything one lineup refresh reads from the providers.
type leagueSnapshot struct {
	user     league.User
	rosters  []league.Roster
	users    league.Directory
	matchups []matchup.Entry
	catalog  player.Catalog
}

// Get builds the ranked lineups for mode. A missing opponent yields a nil Opponent, not an error.
func (s *LineupService) Get(ctx context.Context, mode LineupMode, week int) (LineupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get")
	defer span.End()

	switch mode {
	case LineupModeUser, LineupModeOpponent, LineupModeBoth:
	default:
		return LineupResult{}, fmt.Errorf("%w: unknown lineup mode %q", ErrInvalidInput, mode)
	}
	if week < 1 {
		return LineupResult{}, fmt.Errorf("%w: week must be at least 1", ErrInvalidInput)
	}

	snap, err := s.fetch(ctx, week)
	if err != nil {
		return LineupResult{}, err
	}

	own, ok := league.FindRosterByOwner(snap.rosters, snap.user.UserID)
	if !ok {
		return LineupResult{}, fmt.Errorf("%w: no roster owned by %s in league %s", ErrNotFound, snap.user.Username, s.cfg.LeagueID)
	}
	ownEntry, ok := matchup.FindByRoster(snap.matchups, own.RosterID)
	if !ok {
		return LineupResult{}, fmt.Errorf("%w: no matchup for roster %d in week %d", ErrNotFound, own.RosterID, week)
	}

	result := LineupResult{Week: week, Mode: mode}
	if mode != LineupModeOpponent {
		result.User = s.build(ownEntry, snap)
	}
	if mode != LineupModeUser {
		if oppEntry, ok := matchup.Opponent(snap.matchups, ownEntry); ok {
			result.Opponent = s.build(oppEntry, snap)
		} else {
			s.logger.InfoContext(ctx, "no opponent for week", "week", week, "roster_id", own.RosterID)
		}
	}
	if mode == LineupModeBoth {
		result.Pairs = lineup.Compare(result.User, result.Opponent)
	}

	return result, nil
}

// Compare pairs two ranked lineups slot by slot.
func (s *LineupService) Compare(user, opponent *lineup.Lineup) []lineup.Pair {
	return lineup.Compare(user, opponent)
}

func (s *LineupService) fetch(ctx context.Context, week int) (leagueSnapshot, error) {
	var snap leagueSnapshot

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		item, err := s.provider.GetUser(ctx, s.cfg.Username)
		if err != nil {
			return fmt.Errorf("get user %s: %w", s.cfg.Username, err)
		}
		snap.user = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.provider.ListRosters(ctx, s.cfg.LeagueID)
		if err != nil {
			return fmt.Errorf("list rosters: %w", err)
		}
		snap.rosters = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.provider.ListUsers(ctx, s.cfg.LeagueID)
		if err != nil {
			return fmt.Errorf("list league users: %w", err)
		}
		snap.users = league.NewDirectory(items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.provider.ListMatchups(ctx, s.cfg.LeagueID, week)
		if err != nil {
			return fmt.Errorf("list matchups week=%d: %w", week, err)
		}
		snap.matchups = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if s.catalog == nil {
			return nil
		}
		item, err := s.catalog.Load(ctx)
		if err != nil {
			// players render as placeholders rather than failing the lineup
			s.logger.WarnContext(ctx, "player catalog unavailable", "error", err)
			return nil
		}
		snap.catalog = item
		return nil
	})
	if err := p.Wait(); err != nil {
		return leagueSnapshot{}, err
	}

	return snap, nil
}

func (s *LineupService) build(entry matchup.Entry, snap leagueSnapshot) *lineup.Lineup {
	var owner league.User
	if r, ok := league.FindRosterByID(snap.rosters, entry.RosterID); ok {
		owner = snap.users[r.OwnerID]
		if owner.UserID == "" && r.OwnerID == snap.user.UserID {
			owner = snap.user
		}
	}

	item := lineup.New(owner.Username, owner.Label(), entry.RosterID, roster.Build(entry.Starters, entry.PlayerPoints, snap.catalog))
	item.Order(s.cfg.Scheme)
	return item
}
