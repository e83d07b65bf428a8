package roster

import (
	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

// Build converts starter ids into player records, one per id, preserving input order.
// Ids unknown to the catalog degrade to a sentinel record; ids missing from points score 0.
func Build(starters []string, points map[string]float64, catalog player.Catalog) []player.Record {
	out := make([]player.Record, 0, len(starters))
	for _, id := range starters {
		var (
			meta player.Metadata
			ok   bool
		)
		if catalog != nil {
			meta, ok = catalog.Lookup(id)
		}
		if !ok {
			out = append(out, player.Sentinel(id))
			continue
		}

		out = append(out, player.Record{
			ID:           id,
			FirstName:    meta.FirstName,
			LastName:     meta.LastName,
			Position:     player.ParsePosition(string(meta.Position)),
			InjuryStatus: meta.InjuryStatus,
			Points:       points[id],
			Team:         meta.Team,
			Number:       meta.Number,
		})
	}

	return out
}
