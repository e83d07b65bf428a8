package sleeper

import (
	"strconv"
	"strings"
)

type userPayload struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Metadata    struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

type rosterPayload struct {
	RosterID int      `json:"roster_id"`
	OwnerID  *string  `json:"owner_id"`
	LeagueID string   `json:"league_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

type matchupPayload struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     *int               `json:"matchup_id"`
	Starters      []string           `json:"starters"`
	PlayersPoints map[string]float64 `json:"players_points"`
	Points        float64            `json:"points"`
}

type playerPayload struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     *string `json:"position"`
	InjuryStatus *string `json:"injury_status"`
	Team         *string `json:"team"`
	Number       flexInt `json:"number"`
}

// flexInt accepts a JSON number, a numeric string or null.
type flexInt int

func (v *flexInt) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		*v = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		*v = 0
		return nil
	}
	*v = flexInt(parsed)
	return nil
}
