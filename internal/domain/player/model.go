package player

import "strings"

// Position represents NFL roster position tags used by lineup ordering.
type Position string

const (
	PositionQuarterback Position = "QB"
	PositionRunningBack Position = "RB"
	PositionReceiver    Position = "WR"
	PositionTightEnd    Position = "TE"
	PositionKicker      Position = "K"
	PositionDefense     Position = "DEF"
	PositionFlex        Position = "FLEX"
	PositionSuperFlex   Position = "SUPER_FLEX"
	PositionNone        Position = "None"
)

const (
	sentinelName   = "---"
	sentinelInjury = "None"
	sentinelTeam   = "--"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback: {},
	PositionRunningBack: {},
	PositionReceiver:    {},
	PositionTightEnd:    {},
	PositionKicker:      {},
	PositionDefense:     {},
	PositionFlex:        {},
	PositionSuperFlex:   {},
}

// ParsePosition maps a provider position tag to a Position. Empty input maps to PositionNone.
func ParsePosition(raw string) Position {
	value := strings.ToUpper(strings.TrimSpace(raw))
	switch value {
	case "":
		return PositionNone
	case "NONE":
		return PositionNone
	case "DST", "D/ST":
		return PositionDefense
	default:
		return Position(value)
	}
}

// Metadata is the catalog entry for one player id.
type Metadata struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Position     Position `json:"position"`
	InjuryStatus string   `json:"injury_status"`
	Team         string   `json:"team"`
	Number       int      `json:"number"`
}

// Record is one roster player with current scoring. A record is never absent, only degraded.
type Record struct {
	ID           string
	FirstName    string
	LastName     string
	Position     Position
	InjuryStatus string
	Points       float64
	Team         string
	Number       int
}

// Sentinel returns the placeholder record emitted when catalog lookup fails.
func Sentinel(id string) Record {
	return Record{
		ID:           id,
		FirstName:    sentinelName,
		LastName:     sentinelName,
		Position:     PositionNone,
		InjuryStatus: sentinelInjury,
		Points:       0,
		Team:         sentinelTeam,
		Number:       0,
	}
}

func (r Record) IsSentinel() bool {
	return r.Position == PositionNone && r.FirstName == sentinelName && r.LastName == sentinelName
}

func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}
