package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mfcayala/mpc-court/internal/domain"
	"github.com/mfcayala/mpc-court/internal/schedule"
)

// SelectionSvc holds each user's in-flight slot selection. Sessions are
// transient and in-memory only; a selection either becomes a booking or is
// abandoned.
type SelectionSvc struct {
	mu       sync.Mutex
	sessions map[string]*session
	booking  *BookingSvc
}

type session struct {
	date string
	sel  schedule.Selection
}

func NewSelectionSvc(b *BookingSvc) *SelectionSvc {
	return &SelectionSvc{sessions: make(map[string]*session), booking: b}
}

// Toggle applies one click against a freshly resolved schedule. Switching
// the active date resets the selection before the click is applied.
func (s *SelectionSvc) Toggle(ctx context.Context, userID, date, slotID string) ([]schedule.Slot, error) {
	views, err := s.booking.Schedule(ctx, date, userID)
	if err != nil {
		return nil, err
	}
	var view *schedule.SlotView
	for i := range views {
		if views[i].Slot.ID() == slotID {
			view = &views[i]
			break
		}
	}
	if view == nil {
		return nil, fmt.Errorf("%w: unknown slot %q", domain.ErrValidation, slotID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil {
		sess = &session{date: date}
		s.sessions[userID] = sess
	}
	if sess.date != date {
		sess.sel.Reset()
		sess.date = date
	}
	if err := sess.sel.Toggle(*view); err != nil {
		return sess.sel.Slots(), err
	}
	return sess.sel.Slots(), nil
}

// Current returns the block for the date, empty when the session belongs
// to another date.
func (s *SelectionSvc) Current(userID, date string) []schedule.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil || sess.date != date {
		return nil
	}
	return sess.sel.Slots()
}

func (s *SelectionSvc) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Confirmation gates the confirmation step: it needs a non-empty block and
// a stored contact profile, otherwise the caller gets a diagnostic.
func (s *SelectionSvc) Confirmation(ctx context.Context, userID, date string) (schedule.Summary, error) {
	s.mu.Lock()
	sess := s.sessions[userID]
	var (
		sum schedule.Summary
		ok  bool
	)
	if sess != nil && sess.date == date {
		sum, ok = sess.sel.Summary()
	}
	s.mu.Unlock()
	if !ok {
		return schedule.Summary{}, fmt.Errorf("%w: select at least one slot first", domain.ErrSelectionRule)
	}
	p, err := s.booking.profiles.Get(ctx, userID)
	if err != nil {
		return schedule.Summary{}, err
	}
	if p == nil || p.MemberNo == "" || p.Email == "" {
		return schedule.Summary{}, fmt.Errorf("%w: member number and contact email are required", domain.ErrValidation)
	}
	return sum, nil
}

// CommitSelected commits the user's current block. The selection is
// cleared on success and on an availability conflict (the underlying data
// changed, the block is stale either way); validation and persistence
// errors keep it so the user can retry.
func (s *SelectionSvc) CommitSelected(ctx context.Context, userID, date string, guests int, memberNo, email string) (*CommitResult, error) {
	block := s.Current(userID, date)
	res, err := s.booking.Commit(ctx, CommitInput{
		Date:     date,
		Block:    block,
		UserID:   userID,
		Guests:   guests,
		MemberNo: memberNo,
		Email:    email,
	})
	if err == nil || errors.Is(err, domain.ErrAvailabilityConflict) {
		s.Clear(userID)
	}
	return res, err
}
