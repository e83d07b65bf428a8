package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/game"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/cache"
)

type GameView struct {
	game.Game
	StatusLine string
	Bet        string
}

type betResolver interface {
	ResolveGames(ctx context.Context, week int, games []game.Game) ([]string, error)
}

type GameService struct {
	provider game.Provider
	bets     betResolver
	cache    *cache.Store
}

// NewGameService caches scoreboard reads for ttl. A non-positive ttl disables the cache.
func NewGameService(provider game.Provider, bets betResolver, ttl time.Duration, clock clockwork.Clock) *GameService {
	svc := &GameService{provider: provider, bets: bets}
	if ttl > 0 {
		if clock == nil {
			clock = clockwork.NewRealClock()
		}
		svc.cache = cache.NewStoreWithClock(ttl, clock)
	}
	return svc
}

func (s *GameService) ListByWeek(ctx context.Context, week int) ([]GameView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListByWeek")
	defer span.End()

	if week < 1 {
		return nil, fmt.Errorf("%w: week must be at least 1", ErrInvalidInput)
	}

	games, err := s.scoreboard(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("list games week=%d: %w", week, err)
	}

	resolved := make([]string, len(games))
	if s.bets != nil {
		resolved, err = s.bets.ResolveGames(ctx, week, games)
		if err != nil {
			return nil, fmt.Errorf("resolve bets week=%d: %w", week, err)
		}
	}

	out := make([]GameView, 0, len(games))
	for i, g := range games {
		view := GameView{Game: g, StatusLine: g.StatusLine(), Bet: bet.Placeholder}
		if i < len(resolved) && resolved[i] != "" {
			view.Bet = resolved[i]
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *GameService) scoreboard(ctx context.Context, week int) ([]game.Game, error) {
	if s.cache == nil {
		return s.provider.ListByWeek(ctx, week)
	}
	return cache.Load(ctx, s.cache, "scoreboard:week:"+strconv.Itoa(week), func(ctx context.Context) ([]game.Game, error) {
		return s.provider.ListByWeek(ctx, week)
	})
}
