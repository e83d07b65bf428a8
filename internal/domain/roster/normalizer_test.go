package roster

import (
	"testing"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

func TestBuild_PreservesOrderAndDegradesUnknownIDs(t *testing.T) {
	catalog := player.MapCatalog{
		"4046": {FirstName: "Patrick", LastName: "Mahomes", Position: "QB", Team: "KC", Number: 15},
		"6794": {FirstName: "Justin", LastName: "Jefferson", Position: "WR", InjuryStatus: "Questionable", Team: "MIN", Number: 18},
	}
	points := map[string]float64{
		"4046": 21.34,
		"6794": 17.5,
		"9999": 40,
	}

	got := Build([]string{"6794", "9999", "4046"}, points, catalog)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	if got[0].ID != "6794" || got[0].Position != player.PositionReceiver || got[0].Points != 17.5 {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[0].InjuryStatus != "Questionable" {
		t.Fatalf("expected injury status to be carried, got %q", got[0].InjuryStatus)
	}

	sentinel := got[1]
	if !sentinel.IsSentinel() {
		t.Fatalf("expected sentinel record for unknown id, got %+v", sentinel)
	}
	if sentinel.Points != 0 || sentinel.Team != "--" || sentinel.Number != 0 || sentinel.InjuryStatus != "None" {
		t.Fatalf("unexpected sentinel fields: %+v", sentinel)
	}

	if got[2].FullName() != "Patrick Mahomes" || got[2].Points != 21.34 {
		t.Fatalf("unexpected third record: %+v", got[2])
	}
}

func TestBuild_MissingPointsDefaultToZero(t *testing.T) {
	catalog := player.MapCatalog{
		"1": {FirstName: "A", LastName: "B", Position: "TE", Team: "DET"},
	}

	got := Build([]string{"1"}, nil, catalog)
	if got[0].Points != 0 {
		t.Fatalf("expected 0 points, got %v", got[0].Points)
	}
	if got[0].IsSentinel() {
		t.Fatalf("known player must not degrade to sentinel")
	}
}

func TestBuild_NilCatalogYieldsSentinels(t *testing.T) {
	got := Build([]string{"1", "0"}, map[string]float64{"1": 5}, nil)
	for i, rec := range got {
		if !rec.IsSentinel() {
			t.Fatalf("record %d: expected sentinel, got %+v", i, rec)
		}
	}
}
