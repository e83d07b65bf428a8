package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
	betmock "github.com/riskibarqy/sunday-dashboard/internal/mocks/domain/bet"
	weekmock "github.com/riskibarqy/sunday-dashboard/internal/mocks/domain/week"
	basecache "github.com/riskibarqy/sunday-dashboard/internal/platform/cache"
)

func TestBetRepository_LoadsOncePerWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stored := bet.NewLedger()
	if err := stored.Place("KC", 3.5, time.Unix(1792344600, 0)); err != nil {
		t.Fatalf("place: %v", err)
	}

	next := betmock.NewRepository(t)
	next.On("Load", mock.Anything, 7).Return(stored, true, nil).Once()

	repo := NewBetRepository(next, basecache.NewStore(time.Minute))

	first, ok, err := repo.Load(ctx, 7)
	if err != nil || !ok {
		t.Fatalf("first load: ok=%v err=%v", ok, err)
	}
	first["KC"] = bet.Entry{}

	second, _, err := repo.Load(ctx, 7)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !second.Entry("KC").IsSet() {
		t.Fatalf("cached ledger was mutated through a returned copy")
	}
}

func TestBetRepository_SaveRefreshesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := betmock.NewRepository(t)
	next.On("Save", mock.Anything, 3, mock.Anything).Return(nil).Once()

	repo := NewBetRepository(next, basecache.NewStore(time.Minute))

	ledger := bet.NewLedger()
	if err := ledger.Place("DAL", -2.5, time.Unix(1792344600, 0)); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := repo.Save(ctx, 3, ledger); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := repo.Load(ctx, 3)
	if err != nil || !ok {
		t.Fatalf("load after save: ok=%v err=%v", ok, err)
	}
	if loaded.Entry("DAL").Spread == nil || *loaded.Entry("DAL").Spread != -2.5 {
		t.Fatalf("unexpected cached entry: %+v", loaded.Entry("DAL"))
	}
}

func TestBetRepository_LoadErrorNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := betmock.NewRepository(t)
	next.On("Load", mock.Anything, 1).Return(nil, false, errors.New("db down")).Once()
	next.On("Load", mock.Anything, 1).Return(nil, false, nil).Once()

	repo := NewBetRepository(next, basecache.NewStore(time.Minute))

	if _, _, err := repo.Load(ctx, 1); err == nil {
		t.Fatalf("expected load error")
	}
	if _, ok, err := repo.Load(ctx, 1); err != nil || ok {
		t.Fatalf("expected miss after retry, ok=%v err=%v", ok, err)
	}
}

func TestWeekRepository_ReadThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := weekmock.NewRepository(t)
	next.On("Load", mock.Anything).Return(week.Selection{Week: 5}, true, nil).Once()
	next.On("Save", mock.Anything, week.Selection{Week: 9}).Return(nil).Once()

	repo := NewWeekRepository(next, basecache.NewStore(time.Minute))

	for range 2 {
		selection, ok, err := repo.Load(ctx)
		if err != nil || !ok || selection.Week != 5 {
			t.Fatalf("unexpected load: %+v ok=%v err=%v", selection, ok, err)
		}
	}

	if err := repo.Save(ctx, week.Selection{Week: 9}); err != nil {
		t.Fatalf("save: %v", err)
	}
	selection, _, _ := repo.Load(ctx)
	if selection.Week != 9 {
		t.Fatalf("expected saved week 9, got %d", selection.Week)
	}
}
