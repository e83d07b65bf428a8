package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/game"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

type SubmitBetInput struct {
	Week   int
	Team   string
	Spread string
}

type SubmitBetResult struct {
	Accepted bool
	Team     string
	Spread   float64
	PlacedAt time.Time
	Display  string
}

// BetService owns the weekly spread ledgers. All writes run load-modify-save under one mutex.
type BetService struct {
	repo   bet.Repository
	clock  clockwork.Clock
	logger *logging.Logger
	mu     sync.Mutex
}

func NewBetService(repo bet.Repository, clock clockwork.Clock, logger *logging.Logger) *BetService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BetService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Initialize returns the week's ledger, creating and persisting an empty one when none exists.
func (s *BetService) Initialize(ctx context.Context, week int) (bet.Ledger, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Initialize")
	defer span.End()

	if err := validateBetWeek(week); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, exists, err := s.repo.Load(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("load bets week=%d: %w", week, err)
	}
	if exists {
		ledger.Fill()
		return ledger.Clone(), nil
	}

	ledger = bet.NewLedger()
	if err := s.repo.Save(ctx, week, ledger); err != nil {
		return nil, fmt.Errorf("save bets week=%d: %w", week, err)
	}
	return ledger.Clone(), nil
}

// Clear resets every team to the null entry and persists, whatever was stored before.
func (s *BetService) Clear(ctx context.Context, week int) (bet.Ledger, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Clear")
	defer span.End()

	if err := validateBetWeek(week); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := bet.NewLedger()
	if err := s.repo.Save(ctx, week, ledger); err != nil {
		return nil, fmt.Errorf("save bets week=%d: %w", week, err)
	}

	s.logger.InfoContext(ctx, "bets cleared", "week", week)
	return ledger.Clone(), nil
}

// Submit places a spread for one team. A malformed spread is dropped with a warning and Accepted=false.
func (s *BetService) Submit(ctx context.Context, input SubmitBetInput) (SubmitBetResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Submit")
	defer span.End()

	if err := validateBetWeek(input.Week); err != nil {
		return SubmitBetResult{}, err
	}
	team, err := bet.NormalizeTeam(input.Team)
	if err != nil {
		return SubmitBetResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	spread, err := bet.ParseSpread(input.Spread)
	if err != nil {
		s.logger.WarnContext(ctx, "ignore malformed spread",
			"week", input.Week,
			"team", team,
			"spread", input.Spread,
			"error", err,
		)
		return SubmitBetResult{Accepted: false, Team: team}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, exists, err := s.repo.Load(ctx, input.Week)
	if err != nil {
		return SubmitBetResult{}, fmt.Errorf("load bets week=%d: %w", input.Week, err)
	}
	if !exists {
		ledger = bet.NewLedger()
	}
	ledger.Fill()

	now := s.clock.Now()
	if err := ledger.Place(team, spread, now); err != nil {
		if errors.Is(err, bet.ErrUnknownTeam) {
			return SubmitBetResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return SubmitBetResult{}, err
	}
	if err := s.repo.Save(ctx, input.Week, ledger); err != nil {
		return SubmitBetResult{}, fmt.Errorf("save bets week=%d: %w", input.Week, err)
	}

	entry := ledger.Entry(team)
	s.logger.InfoContext(ctx, "bet placed", "week", input.Week, "team", team, "spread", *entry.Spread)
	return SubmitBetResult{
		Accepted: true,
		Team:     team,
		Spread:   *entry.Spread,
		PlacedAt: now,
		Display:  bet.Format(team, entry),
	}, nil
}

// ResolveGames returns one bet display string per game, in game order. It never persists.
func (s *BetService) ResolveGames(ctx context.Context, week int, games []game.Game) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.ResolveGames")
	defer span.End()

	if err := validateBetWeek(week); err != nil {
		return nil, err
	}

	ledger, exists, err := s.repo.Load(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("load bets week=%d: %w", week, err)
	}
	if !exists {
		ledger = bet.NewLedger()
	}

	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, bet.Resolve(ledger, g.HomeTeam, g.AwayTeam))
	}
	return out, nil
}

func validateBetWeek(week int) error {
	if week < 1 {
		return fmt.Errorf("%w: week must be at least 1", ErrInvalidInput)
	}
	return nil
}
