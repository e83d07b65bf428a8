package matchup

// Entry is one roster's side of a weekly matchup.
type Entry struct {
	RosterID     int
	MatchupID    int
	Starters     []string
	PlayerPoints map[string]float64
	Points       float64
}

// FindByRoster returns the entry for rosterID.
func FindByRoster(entries []Entry, rosterID int) (Entry, bool) {
	for _, entry := range entries {
		if entry.RosterID == rosterID {
			return entry, true
		}
	}
	return Entry{}, false
}

// Opponent returns the first entry sharing own's matchup key with a different roster.
// Entries without a matchup key (bye weeks) never pair.
func Opponent(entries []Entry, own Entry) (Entry, bool) {
	if own.MatchupID == 0 {
		return Entry{}, false
	}
	for _, entry := range entries {
		if entry.MatchupID == own.MatchupID && entry.RosterID != own.RosterID {
			return entry, true
		}
	}
	return Entry{}, false
}
