package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

type CatalogRepository struct {
	mu          sync.RWMutex
	catalog     player.MapCatalog
	refreshedAt time.Time
}

func NewCatalogRepository(seed player.MapCatalog) *CatalogRepository {
	return &CatalogRepository{catalog: maps.Clone(seed)}
}

func (r *CatalogRepository) LoadCatalog(_ context.Context) (player.MapCatalog, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.catalog == nil {
		return nil, false, nil
	}
	return maps.Clone(r.catalog), true, nil
}

func (r *CatalogRepository) SaveCatalog(_ context.Context, catalog player.MapCatalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catalog = maps.Clone(catalog)
	return nil
}

func (r *CatalogRepository) LastRefresh(_ context.Context) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.refreshedAt.IsZero() {
		return time.Time{}, false, nil
	}
	return r.refreshedAt, true, nil
}

func (r *CatalogRepository) MarkRefreshed(_ context.Context, day time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refreshedAt = day
	return nil
}
