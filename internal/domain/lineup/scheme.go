package lineup

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/sunday-dashboard/internal/domain/player"
)

var (
	ErrEmptyScheme      = errors.New("lineup scheme is empty")
	ErrDuplicateSlotTag = errors.New("duplicate position in lineup scheme")
)

// Scheme is a position-priority order used to rank a roster for display.
type Scheme struct {
	Order      []player.Position
	Flex       player.Position
	DoubleSlot map[player.Position]struct{}
}

func DefaultScheme() Scheme {
	scheme, _ := NewScheme(
		[]player.Position{
			player.PositionQuarterback,
			player.PositionRunningBack,
			player.PositionReceiver,
			player.PositionTightEnd,
			player.PositionFlex,
			player.PositionKicker,
			player.PositionDefense,
		},
		player.PositionFlex,
		[]player.Position{player.PositionRunningBack, player.PositionReceiver},
	)
	return scheme
}

func NewScheme(order []player.Position, flex player.Position, doubleSlot []player.Position) (Scheme, error) {
	if len(order) == 0 {
		return Scheme{}, ErrEmptyScheme
	}

	seen := make(map[player.Position]struct{}, len(order))
	cleaned := make([]player.Position, 0, len(order))
	for _, tag := range order {
		tag = player.ParsePosition(string(tag))
		if tag == player.PositionNone {
			return Scheme{}, fmt.Errorf("lineup scheme cannot contain %q", player.PositionNone)
		}
		if _, exists := seen[tag]; exists {
			return Scheme{}, fmt.Errorf("%w: %s", ErrDuplicateSlotTag, tag)
		}
		seen[tag] = struct{}{}
		cleaned = append(cleaned, tag)
	}

	doubles := make(map[player.Position]struct{}, len(doubleSlot))
	for _, tag := range doubleSlot {
		doubles[player.ParsePosition(string(tag))] = struct{}{}
	}

	return Scheme{
		Order:      cleaned,
		Flex:       player.ParsePosition(string(flex)),
		DoubleSlot: doubles,
	}, nil
}

// Slots returns how many primary starters a position takes before flex distribution.
func (s Scheme) Slots(pos player.Position) int {
	if _, ok := s.DoubleSlot[pos]; ok {
		return 2
	}
	return 1
}

func (s Scheme) isFlex(pos player.Position) bool {
	return s.Flex != "" && s.Flex != player.PositionNone && pos == s.Flex
}

func (s Scheme) contains(pos player.Position) bool {
	for _, tag := range s.Order {
		if tag == pos && !s.isFlex(tag) {
			return true
		}
	}
	return false
}
