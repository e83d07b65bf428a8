package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/lineup"
	"github.com/sourcegraph/conc/pool"
)

type Dashboard struct {
	Week     int
	User     *lineup.Lineup
	Opponent *lineup.Lineup
	Pairs    []lineup.Pair
	Games    []GameView
}

type DashboardService struct {
	weeks   *WeekService
	lineups *LineupService
	games   *GameService
}

func NewDashboardService(weeks *WeekService, lineups *LineupService, games *GameService) *DashboardService {
	return &DashboardService{
		weeks:   weeks,
		lineups: lineups,
		games:   games,
	}
}

// Get composes lineups, pairs and games for week. Week 0 means the currently selected week.
func (s *DashboardService) Get(ctx context.Context, week int) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	if week == 0 {
		current, err := s.weeks.Current(ctx)
		if err != nil {
			return Dashboard{}, fmt.Errorf("resolve current week: %w", err)
		}
		week = current
	}
	if err := s.weeks.Validate(week); err != nil {
		return Dashboard{}, err
	}

	out := Dashboard{Week: week}
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		result, err := s.lineups.Get(ctx, LineupModeBoth, week)
		if err != nil {
			return fmt.Errorf("get lineups: %w", err)
		}
		out.User = result.User
		out.Opponent = result.Opponent
		out.Pairs = result.Pairs
		return nil
	})
	p.Go(func(ctx context.Context) error {
		games, err := s.games.ListByWeek(ctx, week)
		if err != nil {
			return fmt.Errorf("get games: %w", err)
		}
		out.Games = games
		return nil
	})
	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}

	return out, nil
}
