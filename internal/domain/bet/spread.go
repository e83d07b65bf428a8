package bet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is shown for a game with no bet on either side.
const Placeholder = "---"

// MaxSpread bounds the accepted magnitude; no real line comes close.
const MaxSpread = 1000

// RoundSpread rounds to the nearest half point, halves rounding up.
func RoundSpread(x float64) float64 {
	return math.Floor(x*2+0.5) / 2
}

func ParseSpread(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSpread)
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpread, raw)
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpread, raw)
	}
	if math.Abs(parsed) > MaxSpread {
		return 0, fmt.Errorf("%w: %q exceeds %d points", ErrInvalidSpread, raw, MaxSpread)
	}

	return parsed, nil
}

// Format renders an entry as "TEAM: ML" for a zero spread or "TEAM: +3.5" style otherwise.
func Format(team string, entry Entry) string {
	if entry.Spread == nil {
		return Placeholder
	}
	if *entry.Spread == 0 {
		return team + ": ML"
	}
	return fmt.Sprintf("%s: %+.1f", team, *entry.Spread)
}

// Resolve picks the display string for one game. When both sides hold a bet the later one wins,
// with the away side winning equal timestamps.
func Resolve(ledger Ledger, home, away string) string {
	homeEntry := ledger.Entry(home)
	awayEntry := ledger.Entry(away)

	switch {
	case awayEntry.IsSet() && homeEntry.IsSet():
		if !awayEntry.PlacedAt.Before(*homeEntry.PlacedAt) {
			return Format(away, awayEntry)
		}
		return Format(home, homeEntry)
	case awayEntry.IsSet():
		return Format(away, awayEntry)
	case homeEntry.IsSet():
		return Format(home, homeEntry)
	default:
		return Placeholder
	}
}
