package filestore

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
)

// betRecord is one team in bets_week_{N}.json. Timestamp is unix seconds with a fractional part,
// which only resolves to a few hundred nanoseconds. TimestampNS carries the exact instant and wins
// on load; files without it still read through Timestamp.
type betRecord struct {
	Spread      *float64 `json:"spread"`
	Timestamp   *float64 `json:"timestamp"`
	TimestampNS *int64   `json:"timestamp_ns,omitempty"`
}

type BetRepository struct {
	store *Store
}

func NewBetRepository(store *Store) *BetRepository {
	return &BetRepository{store: store}
}

func betFileName(week int) string {
	return fmt.Sprintf("bets_week_%d.json", week)
}

func (r *BetRepository) Load(_ context.Context, week int) (bet.Ledger, bool, error) {
	var doc map[string]betRecord
	ok, err := r.store.ReadJSON(betFileName(week), &doc)
	if err != nil || !ok {
		return nil, false, err
	}

	ledger := bet.NewLedger()
	for key, item := range doc {
		if !bet.IsTeam(key) || item.Spread == nil || item.Timestamp == nil {
			continue
		}
		spread := *item.Spread
		placedAt := fromUnixSeconds(*item.Timestamp)
		if item.TimestampNS != nil {
			placedAt = time.Unix(0, *item.TimestampNS).UTC()
		}
		ledger[key] = bet.Entry{Spread: &spread, PlacedAt: &placedAt}
	}
	return ledger, true, nil
}

func (r *BetRepository) Save(_ context.Context, week int, ledger bet.Ledger) error {
	doc := make(map[string]betRecord, len(bet.Teams))
	for _, team := range bet.Teams {
		entry := ledger.Entry(team)
		if !entry.IsSet() {
			doc[team] = betRecord{}
			continue
		}
		spread := *entry.Spread
		ts := toUnixSeconds(*entry.PlacedAt)
		ns := entry.PlacedAt.UnixNano()
		doc[team] = betRecord{Spread: &spread, Timestamp: &ts, TimestampNS: &ns}
	}
	return r.store.WriteJSON(betFileName(week), doc)
}

func toUnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func fromUnixSeconds(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(math.Round(frac*float64(time.Second)))).UTC()
}
