package schedule

import "fmt"

const (
	// Operating day 06:00–21:00, booked in half-hour slots.
	OpenMinute  = 6 * 60
	CloseMinute = 21 * 60
	SlotMinutes = 30

	SlotsPerDay = (CloseMinute - OpenMinute) / SlotMinutes // 30

	// MaxBlockSlots caps one booking at 2 hours.
	MaxBlockSlots = 4
)

// Slot is one fixed half-hour interval of the operating day. Slots are
// regenerated from constants, never persisted; reservations reference them
// by ID.
type Slot struct {
	Ordinal     int // position in the day's sequence, 0-based
	StartMinute int // minutes since midnight
}

func (s Slot) EndMinute() int { return s.StartMinute + SlotMinutes }

// ID is the stable persistence key, e.g. "0630".
func (s Slot) ID() string {
	return fmt.Sprintf("%02d%02d", s.StartMinute/60, s.StartMinute%60)
}

// Label is the display form of the start time, e.g. "06:30".
func (s Slot) Label() string { return minuteLabel(s.StartMinute) }

// RangeLabel spans the whole interval, e.g. "06:30 - 07:00".
func (s Slot) RangeLabel() string {
	return fmt.Sprintf("%s - %s", minuteLabel(s.StartMinute), minuteLabel(s.EndMinute()))
}

func minuteLabel(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Slots generates the day's fixed ordered grid.
func Slots() []Slot {
	out := make([]Slot, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		out = append(out, Slot{Ordinal: i, StartMinute: OpenMinute + i*SlotMinutes})
	}
	return out
}

// SlotByID resolves a persistence key back to its grid slot.
func SlotByID(id string) (Slot, bool) {
	var h, m int
	if _, err := fmt.Sscanf(id, "%2d%2d", &h, &m); err != nil {
		return Slot{}, false
	}
	start := h*60 + m
	if start < OpenMinute || start >= CloseMinute || (start-OpenMinute)%SlotMinutes != 0 {
		return Slot{}, false
	}
	return Slot{Ordinal: (start - OpenMinute) / SlotMinutes, StartMinute: start}, true
}
