package schedule

import (
	"testing"
	"time"

	"github.com/mfcayala/mpc-court/internal/domain"
)

const testDate = "2026-09-01" // a Tuesday, no default special rules

func testDay(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, testDate)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func res(id, slotID string, court int, user string) domain.Reservation {
	return domain.Reservation{ID: id, Date: testDate, SlotID: slotID, Court: court, UserID: user}
}

func viewFor(t *testing.T, views []SlotView, slotID string) SlotView {
	t.Helper()
	for _, v := range views {
		if v.Slot.ID() == slotID {
			return v
		}
	}
	t.Fatalf("no view for slot %s", slotID)
	return SlotView{}
}

func TestResolveOccupancy(t *testing.T) {
	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	views := Resolve(testDay(t), Slots(), []domain.Reservation{
		res("r1", "1000", 1, "alice"),
	}, "bob", now, 2, nil)

	v := viewFor(t, views, "1000")
	if len(v.BookedCourts) != 1 || v.BookedCourts[0] != 1 {
		t.Errorf("BookedCourts = %v, want [1]", v.BookedCourts)
	}
	if v.IsFullyBooked {
		t.Error("one of two courts booked, IsFullyBooked = true")
	}
	if free := v.FreeCourts(2); len(free) != 1 || free[0] != 2 {
		t.Errorf("FreeCourts = %v, want [2]", free)
	}

	views = Resolve(testDay(t), Slots(), []domain.Reservation{
		res("r1", "1000", 1, "alice"),
		res("r2", "1000", 2, "carol"),
	}, "bob", now, 2, nil)

	v = viewFor(t, views, "1000")
	if !v.IsFullyBooked {
		t.Error("both courts booked, IsFullyBooked = false")
	}
	if v.Selectable() {
		t.Error("fully booked slot is selectable")
	}
}

func TestResolveUserReservationsAsList(t *testing.T) {
	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	// alice holds the slot on both courts (the known double-submission gap)
	views := Resolve(testDay(t), Slots(), []domain.Reservation{
		res("r1", "0800", 1, "alice"),
		res("r2", "0800", 2, "alice"),
	}, "alice", now, 2, nil)

	v := viewFor(t, views, "0800")
	if len(v.UserResIDs) != 2 {
		t.Fatalf("UserResIDs = %v, want both reservation ids", v.UserResIDs)
	}
}

func TestResolveIgnoresOtherDates(t *testing.T) {
	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	other := domain.Reservation{ID: "r9", Date: "2026-09-02", SlotID: "1000", Court: 1, UserID: "alice"}

	views := Resolve(testDay(t), Slots(), []domain.Reservation{other}, "bob", now, 2, nil)
	if v := viewFor(t, views, "1000"); len(v.BookedCourts) != 0 {
		t.Errorf("reservation for another day counted: %v", v.BookedCourts)
	}
}

func TestResolvePastCutoff(t *testing.T) {
	// 10:00 on the viewed day itself
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	views := Resolve(testDay(t), Slots(), nil, "bob", now, 2, nil)

	if v := viewFor(t, views, "1000"); !v.IsPast {
		t.Error("slot starting exactly now should be past")
	}
	if v := viewFor(t, views, "0930"); !v.IsPast {
		t.Error("slot starting before now should be past")
	}
	if v := viewFor(t, views, "1030"); v.IsPast {
		t.Error("future slot marked past")
	}

	// Whole earlier day
	later := time.Date(2026, time.September, 2, 6, 0, 0, 0, time.UTC)
	views = Resolve(testDay(t), Slots(), nil, "bob", later, 2, nil)
	for _, v := range views {
		if !v.IsPast {
			t.Fatalf("slot %s on an earlier day not past", v.Slot.ID())
		}
	}

	// Whole later day
	earlier := time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)
	views = Resolve(testDay(t), Slots(), nil, "bob", earlier, 2, nil)
	for _, v := range views {
		if v.IsPast {
			t.Fatalf("slot %s on a later day marked past", v.Slot.ID())
		}
	}
}

func TestResolveSpecialStatusDisables(t *testing.T) {
	monday, err := time.Parse(DateLayout, "2026-09-07")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	views := Resolve(monday, Slots(), nil, "bob", now, 2, DefaultRules())
	v := viewFor(t, views, "0600")
	if v.Status != StatusMaintenance {
		t.Errorf("monday 06:00 status = %s, want %s", v.Status, StatusMaintenance)
	}
	if !v.Disabled || v.Selectable() {
		t.Error("special slot must be disabled and unselectable")
	}
	if v.StatusMessage == "" {
		t.Error("special slot has no message")
	}

	open := viewFor(t, views, "0900")
	if open.Status != StatusBookable || open.Disabled {
		t.Errorf("monday 09:00 = (%s, disabled=%v), want open", open.Status, open.Disabled)
	}
}
