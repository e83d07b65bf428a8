package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/bet"
)

type BetRepository struct {
	mu      sync.RWMutex
	ledgers map[int]bet.Ledger
}

func NewBetRepository() *BetRepository {
	return &BetRepository{ledgers: make(map[int]bet.Ledger)}
}

func (r *BetRepository) Load(_ context.Context, week int) (bet.Ledger, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger, ok := r.ledgers[week]
	if !ok {
		return nil, false, nil
	}
	return ledger.Clone(), true, nil
}

func (r *BetRepository) Save(_ context.Context, week int, ledger bet.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledgers[week] = ledger.Clone()
	return nil
}
