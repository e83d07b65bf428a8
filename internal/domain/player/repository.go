package player

import (
	"context"
	"time"
)

// Catalog resolves player metadata by provider id.
type Catalog interface {
	Lookup(id string) (Metadata, bool)
}

// MapCatalog is a Catalog backed by an in-memory map.
type MapCatalog map[string]Metadata

func (c MapCatalog) Lookup(id string) (Metadata, bool) {
	if c == nil {
		return Metadata{}, false
	}
	item, ok := c[id]
	return item, ok
}

func (c MapCatalog) Len() int {
	return len(c)
}

// CatalogRepository persists the cached catalog and its freshness marker.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) (MapCatalog, bool, error)
	SaveCatalog(ctx context.Context, catalog MapCatalog) error
	LastRefresh(ctx context.Context) (time.Time, bool, error)
	MarkRefreshed(ctx context.Context, day time.Time) error
}

// CatalogProvider fetches the full player catalog from the fantasy platform.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context) (MapCatalog, error)
}
