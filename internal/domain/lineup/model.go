package lineup

import "github.com/riskibarqy/sunday-dashboard/internal/domain/player"

// Lineup stores one fantasy team's starters for a week in display order.
type Lineup struct {
	Username    string
	TeamName    string
	RosterID    int
	Players     []player.Record
	TotalPoints float64
}

// New builds a lineup and fixes TotalPoints to the sum of the given players' points.
func New(username, teamName string, rosterID int, players []player.Record) *Lineup {
	total := 0.0
	for _, p := range players {
		total += p.Points
	}

	return &Lineup{
		Username:    username,
		TeamName:    teamName,
		RosterID:    rosterID,
		Players:     players,
		TotalPoints: total,
	}
}

// Order replaces the player list with its ranked order. TotalPoints is left untouched.
func (l *Lineup) Order(scheme Scheme) {
	if l == nil {
		return
	}
	l.Players = Rank(l.Players, scheme)
}

// Pair is one display row comparing two lineups slot by slot.
type Pair struct {
	Player   *player.Record
	Opponent *player.Record
	Delta    float64
}

// Compare pairs two ranked lineups positionally. Rows run over the longer lineup; a missing side is nil.
func Compare(own, opponent *Lineup) []Pair {
	var ownPlayers, oppPlayers []player.Record
	if own != nil {
		ownPlayers = own.Players
	}
	if opponent != nil {
		oppPlayers = opponent.Players
	}

	size := max(len(ownPlayers), len(oppPlayers))
	out := make([]Pair, 0, size)
	for i := 0; i < size; i++ {
		var row Pair
		if i < len(ownPlayers) {
			p := ownPlayers[i]
			row.Player = &p
			row.Delta += p.Points
		}
		if i < len(oppPlayers) {
			op := oppPlayers[i]
			row.Opponent = &op
			row.Delta -= op.Points
		}
		out = append(out, row)
	}

	return out
}
