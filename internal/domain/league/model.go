package league

import (
	"fmt"
	"strings"
)

// User is one member of a fantasy league directory.
type User struct {
	UserID      string
	Username    string
	DisplayName string
	TeamName    string
}

// Label returns the team display name, falling back to display name and then username.
func (u User) Label() string {
	if name := strings.TrimSpace(u.TeamName); name != "" {
		return name
	}
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	return u.Username
}

// Roster binds a fantasy roster to its owner.
type Roster struct {
	RosterID int
	OwnerID  string
	LeagueID string
}

func (r Roster) Validate() error {
	if r.RosterID <= 0 {
		return fmt.Errorf("roster id is required")
	}
	if strings.TrimSpace(r.OwnerID) == "" {
		return fmt.Errorf("roster owner id is required")
	}
	return nil
}

// FindRosterByOwner returns the roster owned by ownerID.
func FindRosterByOwner(rosters []Roster, ownerID string) (Roster, bool) {
	for _, r := range rosters {
		if r.OwnerID == ownerID {
			return r, true
		}
	}
	return Roster{}, false
}

// FindRosterByID returns the roster with the given id.
func FindRosterByID(rosters []Roster, rosterID int) (Roster, bool) {
	for _, r := range rosters {
		if r.RosterID == rosterID {
			return r, true
		}
	}
	return Roster{}, false
}

// Directory indexes league users by user id.
type Directory map[string]User

func NewDirectory(users []User) Directory {
	out := make(Directory, len(users))
	for _, u := range users {
		out[u.UserID] = u
	}
	return out
}
