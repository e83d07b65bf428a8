package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SLEEPER_LEAGUE_ID", "1180180342143975424")
	t.Setenv("SLEEPER_USERNAME", "sundayfan")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBackend != StoreBackendFile || cfg.DataDir != "./data" {
		t.Fatalf("unexpected store defaults: %s %s", cfg.StoreBackend, cfg.DataDir)
	}
	if cfg.Sleeper.BaseURL != "https://api.sleeper.app/v1" {
		t.Fatalf("unexpected sleeper base url: %s", cfg.Sleeper.BaseURL)
	}
	if cfg.ESPN.Timeout != 10*time.Second || !cfg.ESPN.Circuit.Enabled {
		t.Fatalf("unexpected espn config: %+v", cfg.ESPN)
	}
	if cfg.DefaultWeek != 1 || cfg.MaxWeek != 18 {
		t.Fatalf("unexpected week settings: %d %d", cfg.DefaultWeek, cfg.MaxWeek)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if len(cfg.LineupScheme.Order) != 7 || cfg.LineupScheme.Slots(player.PositionReceiver) != 2 {
		t.Fatalf("unexpected default scheme: %+v", cfg.LineupScheme)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresSleeperIdentity(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SLEEPER_LEAGUE_ID", "")
	t.Setenv("SLEEPER_USERNAME", "someone")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SLEEPER_LEAGUE_ID is missing")
	}

	t.Setenv("SLEEPER_LEAGUE_ID", "123")
	t.Setenv("SLEEPER_USERNAME", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SLEEPER_USERNAME is missing")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setRequired(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_ProviderOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ESPN_BASE_URL", "http://localhost:9999/nfl/")
	t.Setenv("ESPN_MAX_RETRIES", "0")
	t.Setenv("SLEEPER_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("SLEEPER_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ESPN.BaseURL != "http://localhost:9999/nfl" || cfg.ESPN.MaxRetries != 0 {
		t.Fatalf("unexpected espn overrides: %+v", cfg.ESPN)
	}
	if cfg.Sleeper.Circuit.FailureThreshold != 3 || cfg.Sleeper.Timeout != 2*time.Second {
		t.Fatalf("unexpected sleeper overrides: %+v", cfg.Sleeper)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"SLEEPER_MAX_RETRIES":   "-1",
		"ESPN_TIMEOUT":          "soon",
		"STORE_BACKEND":         "redis",
		"DEFAULT_WEEK":          "19",
		"MAX_WEEK":              "0",
		"SCOREBOARD_CACHE_TTL":  "-1s",
		"APP_LOG_LEVEL":         "chatty",
		"LINEUP_SCHEME":         "QB,QB",
		"PYROSCOPE_UPLOAD_RATE": "0s",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadLineupScheme_FromCSV(t *testing.T) {
	scheme, err := LoadLineupScheme("", "QB,RB,WR,TE,SUPER_FLEX,FLEX,K,DST", "RB")
	if err != nil {
		t.Fatalf("load scheme: %v", err)
	}
	if scheme.Order[7] != player.PositionDefense {
		t.Fatalf("expected DST to normalize to DEF, got %s", scheme.Order[7])
	}
	if scheme.Slots(player.PositionReceiver) != 1 || scheme.Slots(player.PositionRunningBack) != 2 {
		t.Fatalf("unexpected double slots: %+v", scheme.DoubleSlot)
	}
}

func TestLoadLineupScheme_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.yaml")
	doc := []byte("order: [QB, WR, RB, FLEX, DEF]\ndouble_slot: [WR]\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatalf("write scheme: %v", err)
	}

	scheme, err := LoadLineupScheme(path, "QB", "")
	if err != nil {
		t.Fatalf("load scheme: %v", err)
	}
	if len(scheme.Order) != 5 || scheme.Order[1] != player.PositionReceiver {
		t.Fatalf("unexpected order: %v", scheme.Order)
	}
	if scheme.Flex != player.PositionFlex {
		t.Fatalf("expected default flex marker, got %s", scheme.Flex)
	}
	if scheme.Slots(player.PositionReceiver) != 2 || scheme.Slots(player.PositionRunningBack) != 1 {
		t.Fatalf("unexpected double slots: %+v", scheme.DoubleSlot)
	}

	if _, err := LoadLineupScheme(filepath.Join(t.TempDir(), "missing.yaml"), "", ""); err == nil {
		t.Fatalf("expected missing file error")
	}
}
