package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/sunday-dashboard/internal/mocks/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var (
	storedCatalog = player.MapCatalog{"4046": {FirstName: "Patrick", LastName: "Mahomes", Position: player.PositionQuarterback}}
	freshCatalog  = player.MapCatalog{
		"4046": {FirstName: "Patrick", LastName: "Mahomes", Position: player.PositionQuarterback},
		"6794": {FirstName: "Justin", LastName: "Jefferson", Position: player.PositionReceiver},
	}
)

func TestCatalogService_FreshMarkerReadsStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(kickoff)
	repo := memory.NewCatalogRepository(storedCatalog)
	if err := repo.MarkRefreshed(ctx, kickoff); err != nil {
		t.Fatalf("mark: %v", err)
	}
	provider := playermock.NewCatalogProvider(t)

	service := NewCatalogService(repo, provider, clock, time.UTC, logging.NewNop())
	catalog, err := service.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := catalog.Lookup("6794"); ok {
		t.Fatalf("expected stored catalog, got fresh one")
	}
}

func TestCatalogService_StaleMarkerRefetchesOncePerDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(kickoff)
	repo := memory.NewCatalogRepository(storedCatalog)
	if err := repo.MarkRefreshed(ctx, kickoff.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("mark: %v", err)
	}
	provider := playermock.NewCatalogProvider(t)
	provider.On("FetchCatalog", mock.Anything).Return(freshCatalog, nil).Once()

	service := NewCatalogService(repo, provider, clock, time.UTC, logging.NewNop())
	for i := 0; i < 3; i++ {
		catalog, err := service.Load(ctx)
		if err != nil {
			t.Fatalf("load #%d: %v", i+1, err)
		}
		if _, ok := catalog.Lookup("6794"); !ok {
			t.Fatalf("load #%d: expected refreshed catalog", i+1)
		}
	}

	last, marked, _ := repo.LastRefresh(ctx)
	if !marked || last.Format("2006-01-02") != "2026-10-18" {
		t.Fatalf("unexpected refresh marker: %v", last)
	}
	saved, _, _ := repo.LoadCatalog(ctx)
	if saved.Len() != 2 {
		t.Fatalf("expected refreshed catalog stored, got %d players", saved.Len())
	}

	provider.On("FetchCatalog", mock.Anything).Return(freshCatalog, nil).Once()
	clock.Advance(24 * time.Hour)
	if _, err := service.Load(ctx); err != nil {
		t.Fatalf("load next day: %v", err)
	}
}

func TestCatalogService_FetchFailureServesStaleCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewCatalogRepository(storedCatalog)
	provider := playermock.NewCatalogProvider(t)
	provider.On("FetchCatalog", mock.Anything).Return(player.MapCatalog(nil), ErrDependencyUnavailable).Once()

	service := NewCatalogService(repo, provider, clockwork.NewFakeClockAt(kickoff), time.UTC, logging.NewNop())
	catalog, err := service.Load(ctx)
	if err != nil {
		t.Fatalf("expected stale fallback, got %v", err)
	}
	if _, ok := catalog.Lookup("4046"); !ok {
		t.Fatalf("expected stale catalog entry")
	}
}

func TestCatalogService_FetchFailureWithoutCache(t *testing.T) {
	t.Parallel()

	repo := memory.NewCatalogRepository(nil)
	provider := playermock.NewCatalogProvider(t)
	provider.On("FetchCatalog", mock.Anything).Return(player.MapCatalog(nil), ErrDependencyUnavailable).Twice()

	service := NewCatalogService(repo, provider, clockwork.NewFakeClockAt(kickoff), time.UTC, logging.NewNop())
	for i := 0; i < 2; i++ {
		// failures are not memoized, each call retries the provider
		if _, err := service.Load(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("load #%d: expected ErrDependencyUnavailable, got %v", i+1, err)
		}
	}
}
