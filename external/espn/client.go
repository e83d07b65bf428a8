package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/sunday-dashboard/external/transport"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/game"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
)

const DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

var _ game.Provider = (*Client)(nil)

// Client reads the public NFL scoreboard.
type Client struct {
	http   *transport.Client
	logger *logging.Logger
}

func NewClient(cfg transport.Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Name == "" {
		cfg.Name = "espn"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{http: transport.New(cfg), logger: logger}
}

func (c *Client) ListByWeek(ctx context.Context, week int) ([]game.Game, error) {
	if week <= 0 {
		return nil, fmt.Errorf("week must be greater than zero")
	}

	var payload scoreboardEnvelope
	query := url.Values{"week": {strconv.Itoa(week)}}
	if err := c.http.GetJSON(ctx, "/scoreboard", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch scoreboard week=%d: %w", week, err)
	}

	out := make([]game.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		item, ok := mapEvent(ev)
		if !ok {
			c.logger.WarnContext(ctx, "skip scoreboard event without two competitors", "event_id", ev.ID)
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func mapEvent(ev event) (game.Game, bool) {
	if len(ev.Competitions) == 0 {
		return game.Game{}, false
	}
	comp := ev.Competitions[0]
	home, away, ok := splitCompetitors(comp.Competitors)
	if !ok {
		return game.Game{}, false
	}

	item := game.Game{
		ID:         ev.ID,
		HomeTeam:   strings.ToUpper(home.Team.Abbreviation),
		AwayTeam:   strings.ToUpper(away.Team.Abbreviation),
		HomeScore:  parseScore(home.Score),
		AwayScore:  parseScore(away.Score),
		Status:     mapStatus(comp.Status),
		StatusText: comp.Status.Type.Description,
		Period:     comp.Status.Period,
		Clock:      comp.Status.DisplayClock,
	}
	if len(comp.Odds) > 0 {
		item.Line = strings.TrimSpace(comp.Odds[0].Details)
	}
	return item, true
}

// splitCompetitors uses homeAway when present, otherwise the first entry is home and the second away.
func splitCompetitors(items []competitor) (competitor, competitor, bool) {
	if len(items) < 2 {
		return competitor{}, competitor{}, false
	}

	var (
		home, away       competitor
		hasHome, hasAway bool
	)
	for _, item := range items {
		switch strings.ToLower(item.HomeAway) {
		case "home":
			home, hasHome = item, true
		case "away":
			away, hasAway = item, true
		}
	}
	if hasHome && hasAway {
		return home, away, true
	}
	return items[0], items[1], true
}

func mapStatus(s status) game.Status {
	switch strings.ToLower(s.Type.State) {
	case "in":
		return game.StatusInProgress
	case "post":
		return game.StatusFinal
	}
	if s.Type.Completed {
		return game.StatusFinal
	}
	return game.StatusScheduled
}

func parseScore(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
