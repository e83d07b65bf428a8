package filestore

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

const (
	catalogFileName = "players.json"
	markerFileName  = "players_refreshed.txt"
	markerLayout    = "2006-01-02"
)

type CatalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) LoadCatalog(_ context.Context) (player.MapCatalog, bool, error) {
	var out player.MapCatalog
	ok, err := r.store.ReadJSON(catalogFileName, &out)
	if err != nil || !ok {
		return nil, false, err
	}
	return out, true, nil
}

func (r *CatalogRepository) SaveCatalog(_ context.Context, catalog player.MapCatalog) error {
	return r.store.WriteJSON(catalogFileName, catalog)
}

// LastRefresh returns the marker date as midnight UTC. Only its calendar date is meaningful.
func (r *CatalogRepository) LastRefresh(_ context.Context) (time.Time, bool, error) {
	raw, ok, err := r.store.ReadFile(markerFileName)
	if err != nil || !ok {
		return time.Time{}, false, err
	}

	day, err := time.Parse(markerLayout, strings.TrimSpace(string(raw)))
	if err != nil {
		return time.Time{}, false, crerr.Wrapf(err, "parse %s", markerFileName)
	}
	return day, true, nil
}

func (r *CatalogRepository) MarkRefreshed(_ context.Context, day time.Time) error {
	return r.store.WriteFile(markerFileName, []byte(day.Format(markerLayout)))
}
