package httpapi

import (
	"strconv"
	"time"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

type selectWeekRequest struct {
	Week int `json:"week" validate:"required,min=1"`
}

type weekDTO struct {
	Week    int `json:"week"`
	MaxWeek int `json:"max_week"`
}

type submitBetRequest struct {
	Week   int    `json:"week" validate:"omitempty,min=1"`
	Team   string `json:"team" validate:"required,min=2,max=3,alpha"`
	Spread any    `json:"spread"`
}

// spreadText accepts the spread as a JSON string or number. Anything else yields "" and is rejected downstream.
func (r submitBetRequest) spreadText() string {
	switch v := r.Spread.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

type submitBetResponseDTO struct {
	Week     int        `json:"week"`
	Accepted bool       `json:"accepted"`
	Team     string     `json:"team"`
	Spread   *float64   `json:"spread"`
	PlacedAt *time.Time `json:"placed_at"`
	Display  string     `json:"display,omitempty"`
}

type betEntryDTO struct {
	Team     string     `json:"team"`
	Spread   *float64   `json:"spread"`
	PlacedAt *time.Time `json:"placed_at"`
	Display  string     `json:"display"`
}

type ledgerDTO struct {
	Week    int           `json:"week"`
	Entries []betEntryDTO `json:"entries"`
}

type playerDTO struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     string  `json:"position"`
	InjuryStatus string  `json:"injury_status"`
	Points       float64 `json:"points"`
	Team         string  `json:"team"`
	Number       int     `json:"number"`
}

type lineupDTO struct {
	Username    string      `json:"username"`
	TeamName    string      `json:"team_name"`
	RosterID    int         `json:"roster_id"`
	TotalPoints float64     `json:"total_points"`
	Players     []playerDTO `json:"players"`
}

type pairDTO struct {
	Player   *playerDTO `json:"player"`
	Opponent *playerDTO `json:"opponent"`
	Delta    float64    `json:"delta"`
}

type lineupsDTO struct {
	Week     int        `json:"week"`
	Mode     string     `json:"mode"`
	User     *lineupDTO `json:"user"`
	Opponent *lineupDTO `json:"opponent"`
	Pairs    []pairDTO  `json:"pairs,omitempty"`
}

type gameDTO struct {
	ID         string `json:"id"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	Status     string `json:"status"`
	StatusLine string `json:"status_line"`
	Line       string `json:"line,omitempty"`
	Bet        string `json:"bet"`
}

type dashboardDTO struct {
	Week     int        `json:"week"`
	User     *lineupDTO `json:"user"`
	Opponent *lineupDTO `json:"opponent"`
	Pairs    []pairDTO  `json:"pairs"`
	Games    []gameDTO  `json:"games"`
}

func playerToDTO(p player.Record) playerDTO {
	return playerDTO{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     string(p.Position),
		InjuryStatus: p.InjuryStatus,
		Points:       p.Points,
		Team:         p.Team,
		Number:       p.Number,
	}
}

func lineupToDTO(item *lineup.Lineup) *lineupDTO {
	if item == nil {
		return nil
	}
	players := make([]playerDTO, 0, len(item.Players))
	for _, p := range item.Players {
		players = append(players, playerToDTO(p))
	}
	return &lineupDTO{
		Username:    item.Username,
		TeamName:    item.TeamName,
		RosterID:    item.RosterID,
		TotalPoints: item.TotalPoints,
		Players:     players,
	}
}

func pairsToDTO(pairs []lineup.Pair) []pairDTO {
	out := make([]pairDTO, 0, len(pairs))
	for _, pair := range pairs {
		row := pairDTO{Delta: pair.Delta}
		if pair.Player != nil {
			p := playerToDTO(*pair.Player)
			row.Player = &p
		}
		if pair.Opponent != nil {
			p := playerToDTO(*pair.Opponent)
			row.Opponent = &p
		}
		out = append(out, row)
	}
	return out
}

func gamesToDTO(items []usecase.GameView) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameDTO{
			ID:         item.ID,
			HomeTeam:   item.HomeTeam,
			AwayTeam:   item.AwayTeam,
			HomeScore:  item.HomeScore,
			AwayScore:  item.AwayScore,
			Status:     string(item.Status),
			StatusLine: item.StatusLine,
			Line:       item.Line,
			Bet:        item.Bet,
		})
	}
	return out
}

func ledgerToDTO(week int, ledger bet.Ledger) ledgerDTO {
	entries := make([]betEntryDTO, 0, len(bet.Teams))
	for _, team := range bet.Teams {
		entry := ledger.Entry(team)
		entries = append(entries, betEntryDTO{
			Team:     team,
			Spread:   entry.Spread,
			PlacedAt: entry.PlacedAt,
			Display:  bet.Format(team, entry),
		})
	}
	return ledgerDTO{Week: week, Entries: entries}
}
