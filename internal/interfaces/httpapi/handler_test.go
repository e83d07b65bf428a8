package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/game"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/league"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/matchup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/sunday-dashboard/internal/mocks/domain/game"
	leaguemock "github.com/riskibarqy/sunday-dashboard/internal/mocks/domain/league"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	router http.Handler
	league *leaguemock.Provider
	games  *gamemock.Provider
}

type staticCatalog struct{}

func (staticCatalog) Load(context.Context) (player.Catalog, error) {
	return player.MapCatalog{
		"qb1": {FirstName: "Jalen", LastName: "Hurts", Position: player.PositionQuarterback, Team: "PHI"},
		"qb2": {FirstName: "Dak", LastName: "Prescott", Position: player.PositionQuarterback, Team: "DAL"},
	}, nil
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	logger := logging.NewNop()
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.October, 18, 13, 0, 0, 0, time.UTC))
	leagueProvider := leaguemock.NewProvider(t)
	gameProvider := gamemock.NewProvider(t)

	weeks := usecase.NewWeekService(memory.NewWeekRepository(), 7, 18, logger)
	bets := usecase.NewBetService(memory.NewBetRepository(), clock, logger)
	lineups := usecase.NewLineupService(leagueProvider, staticCatalog{}, usecase.LineupConfig{
		LeagueID: "L1",
		Username: "sundayfan",
		Scheme:   lineup.DefaultScheme(),
	}, logger)
	games := usecase.NewGameService(gameProvider, bets, 0, clock)

	handler := NewHandler(Services{
		Week:      weeks,
		Lineup:    lineups,
		Game:      games,
		Bet:       bets,
		Dashboard: usecase.NewDashboardService(weeks, lineups, games),
	}, logger)

	return testServer{
		router: NewRouter(handler, logger, RouterOptions{CORSAllowedOrigins: []string{"*"}}),
		league: leagueProvider,
		games:  gameProvider,
	}
}

func (s testServer) expectLeague(week int) {
	s.league.On("GetUser", mock.Anything, "sundayfan").
		Return(league.User{UserID: "u-1", Username: "sundayfan"}, nil).Once()
	s.league.On("ListRosters", mock.Anything, "L1").
		Return([]league.Roster{{RosterID: 1, OwnerID: "u-1"}, {RosterID: 2, OwnerID: "u-2"}}, nil).Once()
	s.league.On("ListUsers", mock.Anything, "L1").
		Return([]league.User{
			{UserID: "u-1", Username: "sundayfan", TeamName: "Gridiron Gang"},
			{UserID: "u-2", Username: "rival", DisplayName: "Rival"},
		}, nil).Once()
	s.league.On("ListMatchups", mock.Anything, "L1", week).
		Return([]matchup.Entry{
			{RosterID: 1, MatchupID: 1, Starters: []string{"qb1"}, PlayerPoints: map[string]float64{"qb1": 22}},
			{RosterID: 2, MatchupID: 1, Starters: []string{"qb2"}, PlayerPoints: map[string]float64{"qb2": 18.5}},
		}, nil).Once()
}

func (s testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode %s %s response: %v (%s)", method, target, err, rec.Body.String())
	}
	return rec, envelope
}

func dataOf(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	return data
}

func TestHandler_WeekSelection(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec, body := srv.do(t, http.MethodGet, "/v1/week", "")
	if rec.Code != http.StatusOK || dataOf(t, body)["week"] != float64(7) {
		t.Fatalf("unexpected default week: %d %v", rec.Code, body)
	}

	rec, body = srv.do(t, http.MethodPut, "/v1/week", `{"week":9}`)
	if rec.Code != http.StatusOK || dataOf(t, body)["week"] != float64(9) {
		t.Fatalf("unexpected select response: %d %v", rec.Code, body)
	}

	for _, payload := range []string{`{"week":19}`, `{"week":0}`, `{"week":3,"extra":true}`, `not json`} {
		rec, _ = srv.do(t, http.MethodPut, "/v1/week", payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, rec.Code)
		}
	}
}

func TestHandler_BetLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec, body := srv.do(t, http.MethodGet, "/v1/bets?week=7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get bets: %d %v", rec.Code, body)
	}
	entries, _ := dataOf(t, body)["entries"].([]any)
	if len(entries) != 32 {
		t.Fatalf("expected 32 ledger entries, got %d", len(entries))
	}

	rec, body = srv.do(t, http.MethodPost, "/v1/bets", `{"week":7,"team":"phi","spread":-3.3}`)
	data := dataOf(t, body)
	if rec.Code != http.StatusOK || data["accepted"] != true || data["display"] != "PHI: -3.5" {
		t.Fatalf("unexpected submit response: %d %v", rec.Code, body)
	}

	rec, body = srv.do(t, http.MethodPost, "/v1/bets", `{"week":7,"team":"DAL","spread":"lots"}`)
	if rec.Code != http.StatusOK || dataOf(t, body)["accepted"] != false {
		t.Fatalf("expected silent rejection, got %d %v", rec.Code, body)
	}

	rec, _ = srv.do(t, http.MethodPost, "/v1/bets", `{"week":7,"team":"XYZ","spread":"1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown team, got %d", rec.Code)
	}

	rec, body = srv.do(t, http.MethodPost, "/v1/bets", `{"week":7,"team":"DAL","spread":1e308}`)
	if rec.Code != http.StatusOK || dataOf(t, body)["accepted"] != false {
		t.Fatalf("expected oversized spread to be ignored, got %d %v", rec.Code, body)
	}

	rec, _ = srv.do(t, http.MethodPost, "/v1/bets", `{"week":99999,"team":"DAL","spread":"1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for week beyond the season, got %d", rec.Code)
	}

	srv.games.On("ListByWeek", mock.Anything, 7).Return([]game.Game{
		{ID: "g1", HomeTeam: "PHI", AwayTeam: "DAL", Status: game.StatusFinal, StatusText: "Final"},
	}, nil).Once()
	rec, body = srv.do(t, http.MethodGet, "/v1/games?week=7", "")
	games, _ := body["data"].([]any)
	if rec.Code != http.StatusOK || len(games) != 1 {
		t.Fatalf("unexpected games response: %d %v", rec.Code, body)
	}
	first, _ := games[0].(map[string]any)
	if first["bet"] != "PHI: -3.5" || first["status_line"] != "Final" {
		t.Fatalf("unexpected game row: %v", first)
	}

	rec, body = srv.do(t, http.MethodDelete, "/v1/bets?week=7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("clear bets: %d %v", rec.Code, body)
	}
	entries, _ = dataOf(t, body)["entries"].([]any)
	for _, raw := range entries {
		entry, _ := raw.(map[string]any)
		if entry["spread"] != nil {
			t.Fatalf("expected cleared entry, got %v", entry)
		}
	}
}

func TestHandler_Lineups(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.expectLeague(7)

	rec, body := srv.do(t, http.MethodGet, "/v1/lineups?mode=both", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get lineups: %d %v", rec.Code, body)
	}
	data := dataOf(t, body)
	user, _ := data["user"].(map[string]any)
	if user["team_name"] != "Gridiron Gang" || user["total_points"] != float64(22) {
		t.Fatalf("unexpected user lineup: %v", user)
	}
	pairs, _ := data["pairs"].([]any)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %v", data["pairs"])
	}
	pair, _ := pairs[0].(map[string]any)
	if pair["delta"] != 3.5 {
		t.Fatalf("unexpected delta: %v", pair)
	}

	rec, _ = srv.do(t, http.MethodGet, "/v1/lineups?mode=everyone", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid mode, got %d", rec.Code)
	}
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.expectLeague(7)
	srv.games.On("ListByWeek", mock.Anything, 7).Return([]game.Game{}, nil).Once()

	rec, body := srv.do(t, http.MethodGet, "/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get dashboard: %d %v", rec.Code, body)
	}
	data := dataOf(t, body)
	if data["week"] != float64(7) || data["opponent"] == nil {
		t.Fatalf("unexpected dashboard: %v", data)
	}
}

func TestRouter_RequestIDAndHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec, body := srv.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || dataOf(t, body)["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %v", rec.Code, body)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	const incoming = "018f2b8e-6a1c-7cc3-9a8b-0f4a2c6d8e10"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, incoming)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != incoming {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}
