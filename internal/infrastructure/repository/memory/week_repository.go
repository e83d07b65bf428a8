package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
)

type WeekRepository struct {
	mu        sync.RWMutex
	selection *week.Selection
}

func NewWeekRepository() *WeekRepository {
	return &WeekRepository{}
}

func (r *WeekRepository) Load(_ context.Context) (week.Selection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.selection == nil {
		return week.Selection{}, false, nil
	}
	return *r.selection, true, nil
}

func (r *WeekRepository) Save(_ context.Context, selection week.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selection = &selection
	return nil
}
