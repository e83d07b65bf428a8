package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sunday-dashboard/internal/domain/game"
	"github.com/riskibarqy/sunday-dashboard/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/sunday-dashboard/internal/mocks/domain/game"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func weekSevenGames() []game.Game {
	return []game.Game{
		{ID: "g1", HomeTeam: "PHI", AwayTeam: "DAL", HomeScore: 21, AwayScore: 17, Status: game.StatusInProgress, StatusText: "In Progress", Period: 3, Clock: "4:12"},
		{ID: "g2", HomeTeam: "KC", AwayTeam: "LV", Status: game.StatusScheduled, StatusText: "Sun 4:25 PM"},
	}
}

func TestGameService_ListByWeekAttachesBetsAndCaches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(kickoff)
	bets := NewBetService(memory.NewBetRepository(), clock, logging.NewNop())
	if _, err := bets.Submit(ctx, SubmitBetInput{Week: 7, Team: "PHI", Spread: "-3"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	provider := gamemock.NewProvider(t)
	provider.On("ListByWeek", mock.Anything, 7).Return(weekSevenGames(), nil).Once()

	service := NewGameService(provider, bets, 30*time.Second, clock)
	for i := 0; i < 2; i++ {
		got, err := service.ListByWeek(ctx, 7)
		if err != nil {
			t.Fatalf("list #%d: %v", i+1, err)
		}
		if len(got) != 2 {
			t.Fatalf("list #%d: unexpected count %d", i+1, len(got))
		}
		if got[0].StatusLine != "Q3 4:12" || got[0].Bet != "PHI: -3.0" {
			t.Fatalf("list #%d: unexpected first game: %+v", i+1, got[0])
		}
		if got[1].StatusLine != "Sun 4:25 PM" || got[1].Bet != "---" {
			t.Fatalf("list #%d: unexpected second game: %+v", i+1, got[1])
		}
	}

	provider.On("ListByWeek", mock.Anything, 7).Return(weekSevenGames(), nil).Once()
	clock.Advance(31 * time.Second)
	if _, err := service.ListByWeek(ctx, 7); err != nil {
		t.Fatalf("list after expiry: %v", err)
	}
}

func TestGameService_ZeroTTLSkipsCache(t *testing.T) {
	t.Parallel()

	provider := gamemock.NewProvider(t)
	provider.On("ListByWeek", mock.Anything, 2).Return(weekSevenGames(), nil).Twice()

	service := NewGameService(provider, nil, 0, nil)
	for i := 0; i < 2; i++ {
		got, err := service.ListByWeek(context.Background(), 2)
		if err != nil {
			t.Fatalf("list #%d: %v", i+1, err)
		}
		if got[0].Bet != "---" {
			t.Fatalf("expected placeholder without bets, got %q", got[0].Bet)
		}
	}
}
