package week

import (
	"context"
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("week out of range")

// Selection is the currently selected fantasy week.
type Selection struct {
	Week int `json:"week"`
}

// Validate checks the week lies within 1..maxWeek.
func Validate(week, maxWeek int) error {
	if week < 1 || week > maxWeek {
		return fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, week, maxWeek)
	}
	return nil
}

// Repository persists the selected week.
type Repository interface {
	Load(ctx context.Context) (Selection, bool, error)
	Save(ctx context.Context, selection Selection) error
}
