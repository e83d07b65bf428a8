package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/cache"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

const (
	catalogDayLayout = "2006-01-02"
	catalogMemoTTL   = 24 * time.Hour
)

// CatalogService serves the player catalog, refreshing the stored copy at most once per day.
type CatalogService struct {
	repo     player.CatalogRepository
	provider player.CatalogProvider
	memo     *cache.Store
	clock    clockwork.Clock
	location *time.Location
	logger   *logging.Logger
}

func NewCatalogService(
	repo player.CatalogRepository,
	provider player.CatalogProvider,
	clock clockwork.Clock,
	location *time.Location,
	logger *logging.Logger,
) *CatalogService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogService{
		repo:     repo,
		provider: provider,
		memo:     cache.NewStoreWithClock(catalogMemoTTL, clock),
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

// Load returns today's catalog. When the provider is down, a stale stored copy is served instead.
func (s *CatalogService) Load(ctx context.Context) (player.Catalog, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Load")
	defer span.End()

	today := s.clock.Now().In(s.location)
	day := today.Format(catalogDayLayout)

	catalog, err := cache.Load(ctx, s.memo, "players:"+day, func(ctx context.Context) (player.MapCatalog, error) {
		return s.refresh(ctx, today)
	})
	if err == nil {
		return catalog, nil
	}

	stale, exists, loadErr := s.repo.LoadCatalog(ctx)
	if loadErr != nil || !exists {
		return nil, err
	}
	s.logger.WarnContext(ctx, "serving stale player catalog",
		"players", stale.Len(),
		"error", err,
	)
	return stale, nil
}

func (s *CatalogService) refresh(ctx context.Context, today time.Time) (player.MapCatalog, error) {
	day := today.Format(catalogDayLayout)

	// the marker keeps its own calendar date; compare digits rather than instants
	last, marked, err := s.repo.LastRefresh(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "read catalog refresh marker failed", "error", err)
	}
	if err == nil && marked && last.Format(catalogDayLayout) == day {
		catalog, exists, err := s.repo.LoadCatalog(ctx)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "read stored player catalog failed", "error", err)
		case exists:
			return catalog, nil
		}
	}

	fresh, err := s.provider.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh player catalog: %w", err)
	}

	if err := s.repo.SaveCatalog(ctx, fresh); err != nil {
		s.logger.ErrorContext(ctx, "store player catalog failed", "error", err)
		return fresh, nil
	}
	if err := s.repo.MarkRefreshed(ctx, today); err != nil {
		s.logger.ErrorContext(ctx, "write catalog refresh marker failed", "error", err)
	}

	s.logger.InfoContext(ctx, "player catalog refreshed", "players", fresh.Len(), "day", day)
	return fresh, nil
}
