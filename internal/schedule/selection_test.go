package schedule

import (
	"errors"
	"testing"

	"github.com/mfcayala/mpc-court/internal/domain"
)

func openView(ordinal int) SlotView {
	return SlotView{Slot: Slots()[ordinal], Status: StatusBookable}
}

func ordinals(slots []Slot) []int {
	out := make([]int, 0, len(slots))
	for _, sl := range slots {
		out = append(out, sl.Ordinal)
	}
	return out
}

func wantBlock(t *testing.T, sel *Selection, want ...int) {
	t.Helper()
	got := ordinals(sel.Slots())
	if len(got) != len(want) {
		t.Fatalf("block = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("block = %v, want %v", got, want)
		}
	}
}

func TestToggleBuildAndShrink(t *testing.T) {
	var sel Selection

	if err := sel.Toggle(openView(5)); err != nil {
		t.Fatalf("toggle 5: %v", err)
	}
	wantBlock(t, &sel, 5)

	if err := sel.Toggle(openView(6)); err != nil {
		t.Fatalf("toggle 6: %v", err)
	}
	wantBlock(t, &sel, 5, 6)

	// Non-adjacent extension rejected, state unchanged.
	if err := sel.Toggle(openView(10)); !errors.Is(err, domain.ErrSelectionRule) {
		t.Fatalf("toggle 10: err = %v, want selection rule violation", err)
	}
	wantBlock(t, &sel, 5, 6)

	// Re-clicking the first slot shrinks to before it: empty.
	if err := sel.Toggle(openView(5)); err != nil {
		t.Fatalf("toggle 5 again: %v", err)
	}
	if !sel.Empty() {
		t.Fatalf("block = %v, want empty", ordinals(sel.Slots()))
	}
}

func TestToggleShrinkKeepsHead(t *testing.T) {
	var sel Selection
	for _, i := range []int{5, 6, 7, 8} {
		if err := sel.Toggle(openView(i)); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	// Clicking slot 7 drops 7 and 8, not just 7.
	if err := sel.Toggle(openView(7)); err != nil {
		t.Fatalf("toggle 7: %v", err)
	}
	wantBlock(t, &sel, 5, 6)
}

func TestTogglePrependAtHead(t *testing.T) {
	var sel Selection
	if err := sel.Toggle(openView(5)); err != nil {
		t.Fatal(err)
	}
	if err := sel.Toggle(openView(4)); err != nil {
		t.Fatalf("toggle 4: %v", err)
	}
	wantBlock(t, &sel, 4, 5)
}

func TestToggleMaxBlockLength(t *testing.T) {
	var sel Selection
	for _, i := range []int{5, 6, 7, 8} {
		if err := sel.Toggle(openView(i)); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}
	if err := sel.Toggle(openView(9)); !errors.Is(err, domain.ErrSelectionRule) {
		t.Fatalf("5th slot accepted: err = %v", err)
	}
	wantBlock(t, &sel, 5, 6, 7, 8)
}

func TestToggleRejectsIneligibleSlots(t *testing.T) {
	var sel Selection

	full := openView(5)
	full.IsFullyBooked = true
	if err := sel.Toggle(full); !errors.Is(err, domain.ErrSelectionRule) {
		t.Errorf("fully booked slot: err = %v, want rule violation", err)
	}

	past := openView(5)
	past.IsPast = true
	past.Disabled = true
	if err := sel.Toggle(past); !errors.Is(err, domain.ErrSelectionRule) {
		t.Errorf("past slot: err = %v, want rule violation", err)
	}

	own := openView(5)
	own.UserResIDs = []string{"r1"}
	if err := sel.Toggle(own); !errors.Is(err, domain.ErrSelectionRule) {
		t.Errorf("own reservation: err = %v, want rule violation", err)
	}

	if !sel.Empty() {
		t.Error("rejected toggles changed the selection")
	}
}

func TestSummary(t *testing.T) {
	var sel Selection
	if _, ok := sel.Summary(); ok {
		t.Error("empty selection produced a summary")
	}

	for _, i := range []int{5, 6} {
		if err := sel.Toggle(openView(i)); err != nil {
			t.Fatal(err)
		}
	}
	sum, ok := sel.Summary()
	if !ok {
		t.Fatal("no summary for non-empty selection")
	}
	// ordinal 5 = 08:30, block of two ends 09:30
	if sum.Start != "08:30" || sum.End != "09:30" || sum.Count != 2 {
		t.Errorf("summary = %+v, want 08:30-09:30 x2", sum)
	}
}
