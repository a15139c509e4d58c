package schedule

import "testing"

func TestSlotsCoverOperatingDay(t *testing.T) {
	slots := Slots()

	if len(slots) != SlotsPerDay {
		t.Fatalf("len(Slots()) = %d, want %d", len(slots), SlotsPerDay)
	}
	if slots[0].StartMinute != OpenMinute {
		t.Errorf("first slot starts at %d, want %d", slots[0].StartMinute, OpenMinute)
	}
	last := slots[len(slots)-1]
	if last.EndMinute() != CloseMinute {
		t.Errorf("last slot ends at %d, want %d", last.EndMinute(), CloseMinute)
	}
	for i, sl := range slots {
		if sl.Ordinal != i {
			t.Errorf("slot %d has ordinal %d", i, sl.Ordinal)
		}
		if i > 0 && sl.StartMinute != slots[i-1].EndMinute() {
			t.Errorf("slot %d starts at %d, previous ends at %d", i, sl.StartMinute, slots[i-1].EndMinute())
		}
	}
}

func TestSlotsDeterministic(t *testing.T) {
	a := Slots()
	b := Slots()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs between generations: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSlotIDRoundTrip(t *testing.T) {
	for _, sl := range Slots() {
		got, ok := SlotByID(sl.ID())
		if !ok {
			t.Fatalf("SlotByID(%q) not found", sl.ID())
		}
		if got != sl {
			t.Errorf("SlotByID(%q) = %v, want %v", sl.ID(), got, sl)
		}
	}
}

func TestSlotByIDRejectsInvalid(t *testing.T) {
	for _, id := range []string{"", "abcd", "0500", "2100", "0615", "2130"} {
		if _, ok := SlotByID(id); ok {
			t.Errorf("SlotByID(%q) accepted, want rejected", id)
		}
	}
}

func TestSlotLabels(t *testing.T) {
	sl := Slots()[0]
	if sl.Label() != "06:00" {
		t.Errorf("Label() = %q, want %q", sl.Label(), "06:00")
	}
	if sl.RangeLabel() != "06:00 - 06:30" {
		t.Errorf("RangeLabel() = %q, want %q", sl.RangeLabel(), "06:00 - 06:30")
	}
	if sl.ID() != "0600" {
		t.Errorf("ID() = %q, want %q", sl.ID(), "0600")
	}
}
