package filestore

import (
	"context"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/week"
)

const weekFileName = "week.json"

type WeekRepository struct {
	store *Store
}

func NewWeekRepository(store *Store) *WeekRepository {
	return &WeekRepository{store: store}
}

func (r *WeekRepository) Load(_ context.Context) (week.Selection, bool, error) {
	var out week.Selection
	ok, err := r.store.ReadJSON(weekFileName, &out)
	if err != nil || !ok {
		return week.Selection{}, false, err
	}
	return out, true, nil
}

func (r *WeekRepository) Save(_ context.Context, selection week.Selection) error {
	return r.store.WriteJSON(weekFileName, selection)
}
