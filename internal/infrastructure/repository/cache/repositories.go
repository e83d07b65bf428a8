package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
	basecache "github.com/riskibarqy/sunday-dashboard/internal/platform/cache"
)

// BetRepository is a read-through cache in front of a durable ledger store.
type BetRepository struct {
	next  bet.Repository
	cache *basecache.Store
}

func NewBetRepository(next bet.Repository, cache *basecache.Store) *BetRepository {
	return &BetRepository{next: next, cache: cache}
}

func (r *BetRepository) Load(ctx context.Context, weekNumber int) (bet.Ledger, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, betKey(weekNumber), func(ctx context.Context) (any, error) {
		ledger, exists, err := r.next.Load(ctx, weekNumber)
		if err != nil {
			return nil, err
		}
		return cachedLedger{value: ledger.Clone(), exists: exists}, nil
	})
	if err != nil {
		return nil, false, err
	}

	cached, _ := v.(cachedLedger)
	if !cached.exists {
		return nil, false, nil
	}
	return cached.value.Clone(), true, nil
}

func (r *BetRepository) Save(ctx context.Context, weekNumber int, ledger bet.Ledger) error {
	if err := r.next.Save(ctx, weekNumber, ledger); err != nil {
		r.cache.Delete(ctx, betKey(weekNumber))
		return err
	}
	r.cache.Set(ctx, betKey(weekNumber), cachedLedger{value: ledger.Clone(), exists: true})
	return nil
}

type cachedLedger struct {
	value  bet.Ledger
	exists bool
}

func betKey(weekNumber int) string {
	return "bets:week:" + strconv.Itoa(weekNumber)
}

type WeekRepository struct {
	next  week.Repository
	cache *basecache.Store
}

func NewWeekRepository(next week.Repository, cache *basecache.Store) *WeekRepository {
	return &WeekRepository{next: next, cache: cache}
}

const weekKey = "week:selection"

func (r *WeekRepository) Load(ctx context.Context) (week.Selection, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, weekKey, func(ctx context.Context) (any, error) {
		selection, exists, err := r.next.Load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSelection{value: selection, exists: exists}, nil
	})
	if err != nil {
		return week.Selection{}, false, err
	}

	cached, _ := v.(cachedSelection)
	return cached.value, cached.exists, nil
}

func (r *WeekRepository) Save(ctx context.Context, selection week.Selection) error {
	if err := r.next.Save(ctx, selection); err != nil {
		r.cache.Delete(ctx, weekKey)
		return err
	}
	r.cache.Set(ctx, weekKey, cachedSelection{value: selection, exists: true})
	return nil
}

type cachedSelection struct {
	value  week.Selection
	exists bool
}
