package sleeper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/sunday-dashboard/external/transport"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/league"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/matchup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

const DefaultBaseURL = "https://api.sleeper.app/v1"

var (
	_ league.Provider        = (*Client)(nil)
	_ player.CatalogProvider = (*Client)(nil)
)

// Client reads league, matchup and player data from the Sleeper fantasy API.
type Client struct {
	http   *transport.Client
	logger *logging.Logger
}

func NewClient(cfg transport.Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Name == "" {
		cfg.Name = "sleeper"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{http: transport.New(cfg), logger: logger}
}

func (c *Client) GetUser(ctx context.Context, username string) (league.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return league.User{}, fmt.Errorf("%w: username is required", usecase.ErrInvalidInput)
	}

	// unknown usernames come back as a literal null with status 200
	var payload *userPayload
	if err := c.http.GetJSON(ctx, "/user/"+url.PathEscape(username), nil, &payload); err != nil {
		return league.User{}, fmt.Errorf("fetch sleeper user=%s: %w", username, err)
	}
	if payload == nil || payload.UserID == "" {
		return league.User{}, fmt.Errorf("%w: sleeper user %q", usecase.ErrNotFound, username)
	}

	return mapUser(*payload), nil
}

func (c *Client) ListRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	var payload []rosterPayload
	if err := c.http.GetJSON(ctx, "/league/"+url.PathEscape(leagueID)+"/rosters", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch sleeper rosters league=%s: %w", leagueID, err)
	}

	out := make([]league.Roster, 0, len(payload))
	for _, item := range payload {
		roster := league.Roster{RosterID: item.RosterID, LeagueID: leagueID}
		if item.OwnerID != nil {
			roster.OwnerID = *item.OwnerID
		}
		out = append(out, roster)
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context, leagueID string) ([]league.User, error) {
	var payload []userPayload
	if err := c.http.GetJSON(ctx, "/league/"+url.PathEscape(leagueID)+"/users", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch sleeper users league=%s: %w", leagueID, err)
	}

	out := make([]league.User, 0, len(payload))
	for _, item := range payload {
		out = append(out, mapUser(item))
	}
	return out, nil
}

func (c *Client) ListMatchups(ctx context.Context, leagueID string, week int) ([]matchup.Entry, error) {
	if week <= 0 {
		return nil, fmt.Errorf("%w: week must be greater than zero", usecase.ErrInvalidInput)
	}

	path := "/league/" + url.PathEscape(leagueID) + "/matchups/" + strconv.Itoa(week)
	var payload []matchupPayload
	if err := c.http.GetJSON(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch sleeper matchups league=%s week=%d: %w", leagueID, week, err)
	}

	out := make([]matchup.Entry, 0, len(payload))
	for _, item := range payload {
		entry := matchup.Entry{
			RosterID:     item.RosterID,
			Starters:     item.Starters,
			PlayerPoints: item.PlayersPoints,
			Points:       item.Points,
		}
		if item.MatchupID != nil {
			entry.MatchupID = *item.MatchupID
		}
		out = append(out, entry)
	}
	return out, nil
}

// FetchCatalog downloads the full NFL player map. The payload is several megabytes, callers cache it.
func (c *Client) FetchCatalog(ctx context.Context) (player.MapCatalog, error) {
	var payload map[string]playerPayload
	if err := c.http.GetJSON(ctx, "/players/nfl", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch sleeper players: %w", err)
	}

	out := make(player.MapCatalog, len(payload))
	for id, item := range payload {
		out[id] = player.Metadata{
			FirstName:    item.FirstName,
			LastName:     item.LastName,
			Position:     player.ParsePosition(deref(item.Position)),
			InjuryStatus: deref(item.InjuryStatus),
			Team:         deref(item.Team),
			Number:       int(item.Number),
		}
	}
	c.logger.InfoContext(ctx, "fetched sleeper player catalog", "players", len(out))
	return out, nil
}

func mapUser(item userPayload) league.User {
	return league.User{
		UserID:      item.UserID,
		Username:    item.Username,
		DisplayName: item.DisplayName,
		TeamName:    item.Metadata.TeamName,
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
