package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/sunday-dashboard/external/espn"
	"github.com/riskibarqy/sunday-dashboard/external/sleeper"
	"github.com/riskibarqy/sunday-dashboard/external/transport"
	"github.com/riskibarqy/sunday-dashboard/internal/config"
	"github.com/riskibarqy/sunday-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

const userAgent = "sunday-dashboard"

// App is the assembled HTTP service and the resources it owns.
type App struct {
	Server *http.Server
	close  func() error
}

// Close releases storage handles. It does not stop the server.
func (a *App) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()

	stores, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	sleeperClient := sleeper.NewClient(providerTransport("sleeper", cfg.Sleeper, clock, logger))
	espnClient := espn.NewClient(providerTransport("espn", cfg.ESPN, clock, logger))

	weekSvc := usecase.NewWeekService(stores.weeks, cfg.DefaultWeek, cfg.MaxWeek, logger)
	betSvc := usecase.NewBetService(stores.bets, clock, logger)
	catalogSvc := usecase.NewCatalogService(stores.catalog, sleeperClient, clock, cfg.CatalogLocation, logger)
	lineupSvc := usecase.NewLineupService(sleeperClient, catalogSvc, usecase.LineupConfig{
		LeagueID: cfg.SleeperLeagueID,
		Username: cfg.SleeperUsername,
		Scheme:   cfg.LineupScheme,
	}, logger)
	gameSvc := usecase.NewGameService(espnClient, betSvc, cfg.ScoreboardCacheTTL, clock)
	dashboardSvc := usecase.NewDashboardService(weekSvc, lineupSvc, gameSvc)

	handler := httpapi.NewHandler(httpapi.Services{
		Week:      weekSvc,
		Lineup:    lineupSvc,
		Game:      gameSvc,
		Bet:       betSvc,
		Dashboard: dashboardSvc,
	}, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		CaptureRequestBody:  cfg.UptraceEnabled && cfg.UptraceCaptureRequestBody,
		RequestBodyMaxBytes: cfg.UptraceRequestBodyMaxBytes,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("application assembled",
		"store_backend", cfg.StoreBackend,
		"league_id", cfg.SleeperLeagueID,
		"default_week", cfg.DefaultWeek,
		"max_week", cfg.MaxWeek,
	)

	return &App{Server: server, close: stores.close}, nil
}

func providerTransport(name string, cfg config.ProviderConfig, clock clockwork.Clock, logger *logging.Logger) transport.Config {
	return transport.Config{
		Name: name,
		HTTPClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		UserAgent:      userAgent,
		Logger:         logger.With("provider", name),
		CircuitBreaker: cfg.Circuit,
		Clock:          clock,
	}
}
