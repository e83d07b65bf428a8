package bet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownTeam   = errors.New("unknown team key")
	ErrInvalidSpread = errors.New("invalid spread")
)

// Teams lists the 32 NFL team keys tracked by a ledger, using scoreboard abbreviations.
var Teams = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE",
	"DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
	"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG",
	"NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WSH",
}

var teamSet = func() map[string]struct{} {
	out := make(map[string]struct{}, len(Teams))
	for _, team := range Teams {
		out[team] = struct{}{}
	}
	return out
}()

// IsTeam reports whether key is one of the tracked team keys.
func IsTeam(key string) bool {
	_, ok := teamSet[key]
	return ok
}

// NormalizeTeam uppercases and validates a team key.
func NormalizeTeam(raw string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if !IsTeam(key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, raw)
	}
	return key, nil
}

// Entry is one team's bet. Spread and PlacedAt are both nil or both set.
type Entry struct {
	Spread   *float64
	PlacedAt *time.Time
}

func (e Entry) IsSet() bool {
	return e.Spread != nil && e.PlacedAt != nil
}

// Ledger maps every team key to its entry for one week.
type Ledger map[string]Entry

// NewLedger returns a ledger with a null entry for every team.
func NewLedger() Ledger {
	out := make(Ledger, len(Teams))
	for _, team := range Teams {
		out[team] = Entry{}
	}
	return out
}

// Clear resets every team to the null entry.
func (l Ledger) Clear() {
	for key := range l {
		if !IsTeam(key) {
			delete(l, key)
		}
	}
	for _, team := range Teams {
		l[team] = Entry{}
	}
}

// Place stores a rounded spread for team, overwriting any prior entry.
func (l Ledger) Place(team string, spread float64, at time.Time) error {
	key, err := NormalizeTeam(team)
	if err != nil {
		return err
	}

	rounded := RoundSpread(spread)
	placedAt := at
	l[key] = Entry{Spread: &rounded, PlacedAt: &placedAt}
	return nil
}

// Entry returns the entry for team. Unset teams yield the null entry.
func (l Ledger) Entry(team string) Entry {
	return l[team]
}

// Fill adds a null entry for any team missing from the ledger.
func (l Ledger) Fill() {
	for _, team := range Teams {
		if _, ok := l[team]; !ok {
			l[team] = Entry{}
		}
	}
}

func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for key, entry := range l {
		out[key] = entry
	}
	return out
}
