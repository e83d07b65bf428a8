package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

type WeekService struct {
	repo        week.Repository
	defaultWeek int
	maxWeek     int
	logger      *logging.Logger
}

func NewWeekService(repo week.Repository, defaultWeek, maxWeek int, logger *logging.Logger) *WeekService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeekService{
		repo:        repo,
		defaultWeek: defaultWeek,
		maxWeek:     maxWeek,
		logger:      logger,
	}
}

func (s *WeekService) MaxWeek() int {
	return s.maxWeek
}

// Validate reports an out-of-range week as ErrInvalidInput.
func (s *WeekService) Validate(n int) error {
	if err := week.Validate(n, s.maxWeek); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Current returns the persisted week, or the configured default when nothing usable is stored.
func (s *WeekService) Current(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.Current")
	defer span.End()

	selection, exists, err := s.repo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load week selection: %w", err)
	}
	if !exists {
		return s.defaultWeek, nil
	}
	if err := week.Validate(selection.Week, s.maxWeek); err != nil {
		s.logger.WarnContext(ctx, "stored week out of range, using default",
			"stored_week", selection.Week,
			"default_week", s.defaultWeek,
		)
		return s.defaultWeek, nil
	}

	return selection.Week, nil
}

func (s *WeekService) Select(ctx context.Context, n int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.Select")
	defer span.End()

	if err := s.Validate(n); err != nil {
		return 0, err
	}
	if err := s.repo.Save(ctx, week.Selection{Week: n}); err != nil {
		return 0, fmt.Errorf("save week selection: %w", err)
	}

	s.logger.InfoContext(ctx, "week selected", "week", n)
	return n, nil
}
