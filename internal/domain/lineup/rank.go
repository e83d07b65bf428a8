package lineup

import (
	"sort"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

type indexed struct {
	rec player.Record
	idx int
}

// Rank returns players in canonical display order for the given scheme.
//
// Each non-flex tag takes its top scorer, or top two for double-slot tags; the remainder joins
// the flex pool. The flex marker emits the pool by points and then every unknown-position
// record. The result is always a permutation of the input.
func Rank(players []player.Record, scheme Scheme) []player.Record {
	out := make([]player.Record, 0, len(players))

	var (
		pool    []indexed
		unknown []indexed
	)
	for i, p := range players {
		switch {
		case p.Position == player.PositionNone:
			unknown = append(unknown, indexed{rec: p, idx: i})
		case !scheme.contains(p.Position):
			pool = append(pool, indexed{rec: p, idx: i})
		}
	}

	flexEmitted := false
	for _, tag := range scheme.Order {
		if scheme.isFlex(tag) {
			if flexEmitted {
				continue
			}
			out = appendRecords(out, sortByPoints(pool))
			out = appendRecords(out, unknown)
			pool, unknown = nil, nil
			flexEmitted = true
			continue
		}

		group := make([]indexed, 0, 2)
		for i, p := range players {
			if p.Position == tag {
				group = append(group, indexed{rec: p, idx: i})
			}
		}
		if len(group) == 0 {
			continue
		}

		group = sortByPoints(group)
		take := min(scheme.Slots(tag), len(group))
		out = appendRecords(out, group[:take])
		pool = append(pool, group[take:]...)
	}

	out = appendRecords(out, sortByPoints(pool))
	out = appendRecords(out, unknown)

	return out
}

// sortByPoints orders descending by points; equal points keep input order.
func sortByPoints(items []indexed) []indexed {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].rec.Points != items[j].rec.Points {
			return items[i].rec.Points > items[j].rec.Points
		}
		return items[i].idx < items[j].idx
	})
	return items
}

func appendRecords(dst []player.Record, items []indexed) []player.Record {
	for _, item := range items {
		dst = append(dst, item.rec)
	}
	return dst
}
