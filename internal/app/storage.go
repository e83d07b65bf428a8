package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/sunday-dashboard/internal/config"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
	cacherepo "github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/filestore"
	"github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/sunday-dashboard/internal/platform/cache"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

// postgres reads stay warm for one request burst; every write refreshes the entry.
const repositoryCacheTTL = 30 * time.Second

type storage struct {
	weeks   week.Repository
	bets    bet.Repository
	catalog player.CatalogRepository
	close   func() error
}

func openStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		return storage{
			weeks:   memory.NewWeekRepository(),
			bets:    memory.NewBetRepository(),
			catalog: memory.NewCatalogRepository(nil),
			close:   func() error { return nil },
		}, nil

	case config.StoreBackendFile:
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return storage{}, err
		}
		logger.Info("file store ready", "dir", store.Dir())
		return storage{
			weeks:   filestore.NewWeekRepository(store),
			bets:    filestore.NewBetRepository(store),
			catalog: filestore.NewCatalogRepository(store),
			close:   func() error { return nil },
		}, nil

	case config.StoreBackendPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return storage{}, err
		}
		// the player catalog is a multi-megabyte blob, it stays on disk
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			_ = db.Close()
			return storage{}, err
		}
		memo := basecache.NewStore(repositoryCacheTTL)
		logger.Info("postgres store ready", "db", dbNameFromURL(cfg.DBURL), "catalog_dir", store.Dir())
		return storage{
			weeks:   cacherepo.NewWeekRepository(postgres.NewWeekRepository(db), memo),
			bets:    cacherepo.NewBetRepository(postgres.NewBetRepository(db), memo),
			catalog: filestore.NewCatalogRepository(store),
			close:   db.Close,
		}, nil
	}

	return storage{}, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBBinaryParameters),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
