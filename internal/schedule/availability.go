package schedule

import (
	"time"

	"github.com/mfcayala/mpc-court/internal/domain"
)

const DateLayout = "2006-01-02"

// SlotView is the per-slot availability derivation the presentation layer
// renders. It is recomputed on every read; nothing here is cached across
// reservation, date or user changes.
type SlotView struct {
	Slot          Slot
	Status        Status
	StatusMessage string
	BookedCourts  []int
	// UserResIDs lists the current user's reservation IDs on this slot.
	// A list, not a flag: a user can end up holding the same slot on two
	// courts (see the known double-submission gap), and cancellation needs
	// every ID.
	UserResIDs    []string
	IsPast        bool
	IsFullyBooked bool
	Disabled      bool
}

// Selectable reports whether the slot can start or extend a new selection.
func (v SlotView) Selectable() bool {
	return !v.Disabled && !v.IsFullyBooked
}

// Resolve derives the slot views for one day. reservations should already
// be scoped to the date; rows for other days are ignored.
func Resolve(date time.Time, slots []Slot, reservations []domain.Reservation, userID string, now time.Time, courtCount int, rules RuleSet) []SlotView {
	dateKey := date.Format(DateLayout)
	todayKey := now.Format(DateLayout)
	nowMinute := now.Hour()*60 + now.Minute()

	views := make([]SlotView, 0, len(slots))
	for _, sl := range slots {
		v := SlotView{Slot: sl}
		for _, r := range reservations {
			if r.Date != dateKey || r.SlotID != sl.ID() {
				continue
			}
			v.BookedCourts = append(v.BookedCourts, r.Court)
			if r.UserID == userID {
				v.UserResIDs = append(v.UserResIDs, r.ID)
			}
		}
		v.IsFullyBooked = len(v.BookedCourts) >= courtCount

		// Lexicographic compare is date order for YYYY-MM-DD keys.
		v.IsPast = dateKey < todayKey || (dateKey == todayKey && sl.StartMinute <= nowMinute)

		v.Status, v.StatusMessage = rules.Classify(date, sl.StartMinute)
		v.Disabled = v.IsPast || v.Status != StatusBookable
		views = append(views, v)
	}
	return views
}

// FreeCourts lists the courts without a reservation on the slot, in fixed
// priority order.
func (v SlotView) FreeCourts(courtCount int) []int {
	taken := make(map[int]bool, len(v.BookedCourts))
	for _, c := range v.BookedCourts {
		taken[c] = true
	}
	var out []int
	for c := 1; c <= courtCount; c++ {
		if !taken[c] {
			out = append(out, c)
		}
	}
	return out
}
