package game

import "fmt"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusFinal      Status = "final"
)

// Game is one scoreboard game for a week.
type Game struct {
	ID         string
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Status     Status
	StatusText string
	Period     int
	Clock      string
	Line       string
}

// StatusLine renders "Q{period} {clock}" while in progress and the provider description otherwise.
func (g Game) StatusLine() string {
	if g.Status == StatusInProgress {
		return fmt.Sprintf("Q%d %s", g.Period, g.Clock)
	}
	return g.StatusText
}
