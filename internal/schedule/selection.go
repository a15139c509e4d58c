package schedule

import (
	"fmt"

	"github.com/mfcayala/mpc-court/internal/domain"
)

// Selection is the contiguous block of slots a user is assembling for one
// prospective booking. It lives only between interaction and commit (or
// abandonment) and is never persisted.
type Selection struct {
	slots []Slot // ordered by ordinal, contiguous
}

func (s *Selection) Len() int    { return len(s.slots) }
func (s *Selection) Empty() bool { return len(s.slots) == 0 }

func (s *Selection) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *Selection) Reset() { s.slots = nil }

func (s *Selection) indexOf(sl Slot) (int, bool) {
	for i, have := range s.slots {
		if have.Ordinal == sl.Ordinal {
			return i, true
		}
	}
	return 0, false
}

// Toggle applies one click to the selection.
//
// Re-clicking a selected slot shrinks the block to everything strictly
// before it. That is intentional: the tail of the block is dropped, not
// just the clicked slot, so the block stays contiguous.
//
// A new slot is accepted only when the block is under the length cap, the
// slot is open, not already held by the user, and strictly adjacent to
// either end of the block.
func (s *Selection) Toggle(v SlotView) error {
	if i, ok := s.indexOf(v.Slot); ok {
		s.slots = s.slots[:i]
		return nil
	}

	if len(s.slots) >= MaxBlockSlots {
		return fmt.Errorf("%w: a booking covers at most %d slots (2 hours)", domain.ErrSelectionRule, MaxBlockSlots)
	}
	if len(v.UserResIDs) > 0 {
		return fmt.Errorf("%w: you already hold %s; cancel that reservation first", domain.ErrSelectionRule, v.Slot.Label())
	}
	if !v.Selectable() {
		return fmt.Errorf("%w: %s is not open for booking", domain.ErrSelectionRule, v.Slot.Label())
	}

	if len(s.slots) == 0 {
		s.slots = []Slot{v.Slot}
		return nil
	}

	first := s.slots[0]
	last := s.slots[len(s.slots)-1]
	switch v.Slot.Ordinal {
	case first.Ordinal - 1:
		s.slots = append([]Slot{v.Slot}, s.slots...)
	case last.Ordinal + 1:
		s.slots = append(s.slots, v.Slot)
	default:
		return fmt.Errorf("%w: %s is not adjacent to the selected range %s - %s",
			domain.ErrSelectionRule, v.Slot.Label(), first.Label(), minuteLabel(last.EndMinute()))
	}
	return nil
}

// Summary is the confirmation view of a non-empty selection.
type Summary struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

func (s *Selection) Summary() (Summary, bool) {
	if len(s.slots) == 0 {
		return Summary{}, false
	}
	return Summary{
		Start: s.slots[0].Label(),
		End:   minuteLabel(s.slots[len(s.slots)-1].EndMinute()),
		Count: len(s.slots),
	}, true
}
