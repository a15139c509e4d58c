package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfcayala/mpc-court/internal/domain"
	"github.com/mfcayala/mpc-court/internal/events"
	"github.com/mfcayala/mpc-court/internal/schedule"
)

// ReservationStore is the reservation persistence the service needs.
// Uniqueness of (date, slot, court) at the store is the only hard
// concurrency guarantee; every availability check above it is advisory.
type ReservationStore interface {
	ListByDate(ctx context.Context, date string) ([]domain.Reservation, error)
	ListByUserDate(ctx context.Context, userID, date string) ([]domain.Reservation, error)
	CreateBlock(ctx context.Context, rows []domain.Reservation) error
	Delete(ctx context.Context, id, userID string) (*domain.Reservation, error)
}

type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type BookingSvc struct {
	store    ReservationStore
	profiles ProfileStore
	pub      Publisher
	rules    schedule.RuleSet
	rates    schedule.Rates
	courts   int
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingSvc(store ReservationStore, profiles ProfileStore, pub Publisher, rules schedule.RuleSet, rates schedule.Rates, courts int, log *zap.Logger) *BookingSvc {
	return &BookingSvc{
		store:    store,
		profiles: profiles,
		pub:      pub,
		rules:    rules,
		rates:    rates,
		courts:   courts,
		log:      log,
		now:      time.Now,
	}
}

// Schedule derives the day's slot views for one user. Always recomputed
// from the store; never cached.
func (s *BookingSvc) Schedule(ctx context.Context, dateStr, userID string) ([]schedule.SlotView, error) {
	date, err := time.Parse(schedule.DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	res, err := s.store.ListByDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	return schedule.Resolve(date, schedule.Slots(), res, userID, s.now(), s.courts, s.rules), nil
}

func (s *BookingSvc) Quote(slotCount, guestCount int) schedule.Quote {
	return s.rates.Quote(slotCount, guestCount)
}

func (s *BookingSvc) OwnReservations(ctx context.Context, userID, date string) ([]domain.Reservation, error) {
	return s.store.ListByUserDate(ctx, userID, date)
}

type CommitInput struct {
	Date     string
	Block    []schedule.Slot
	UserID   string
	Guests   int
	MemberNo string
	Email    string
}

type CommitResult struct {
	BlockID string         `json:"block_id"`
	Court   int            `json:"court"`
	Quote   schedule.Quote `json:"quote"`
}

var (
	memberNoRe = regexp.MustCompile(`^[0-9]{1,10}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func validateContact(memberNo, email string) error {
	if !memberNoRe.MatchString(memberNo) {
		return fmt.Errorf("%w: member number must be numeric", domain.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: contact email is malformed", domain.ErrValidation)
	}
	return nil
}

// Commit re-validates the block against current reservations, picks the
// first court free across the entire block and writes one row per slot as
// a single unit. A block that no longer fits on any single court writes
// nothing and fails with ErrAvailabilityConflict.
func (s *BookingSvc) Commit(ctx context.Context, in CommitInput) (*CommitResult, error) {
	if len(in.Block) == 0 {
		return nil, fmt.Errorf("%w: no slots selected", domain.ErrSelectionRule)
	}
	if len(in.Block) > schedule.MaxBlockSlots {
		return nil, fmt.Errorf("%w: a booking covers at most %d slots", domain.ErrSelectionRule, schedule.MaxBlockSlots)
	}
	for i := 1; i < len(in.Block); i++ {
		if in.Block[i].Ordinal != in.Block[i-1].Ordinal+1 {
			return nil, fmt.Errorf("%w: selected slots are not contiguous", domain.ErrSelectionRule)
		}
	}
	if in.Guests < 0 {
		return nil, fmt.Errorf("%w: guest count cannot be negative", domain.ErrValidation)
	}
	if err := validateContact(in.MemberNo, in.Email); err != nil {
		return nil, err
	}

	quote := s.rates.Quote(len(in.Block), in.Guests)

	existing, err := s.store.ListByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	court := s.pickCourt(existing, in.Block)
	if court == 0 {
		return nil, domain.ErrAvailabilityConflict
	}

	blockID := uuid.NewString()
	share := quote.Total / int64(len(in.Block))
	rows := make([]domain.Reservation, 0, len(in.Block))
	for _, sl := range in.Block {
		rows = append(rows, domain.Reservation{
			ID:        uuid.NewString(),
			Date:      in.Date,
			SlotID:    sl.ID(),
			Court:     court,
			UserID:    in.UserID,
			BlockID:   blockID,
			MemberNo:  in.MemberNo,
			Email:     in.Email,
			Guests:    in.Guests,
			CostShare: share,
			CreatedAt: s.now().UTC(),
		})
	}
	if err := s.store.CreateBlock(ctx, rows); err != nil {
		return nil, err
	}

	// Remember the contact for next time.
	if err := s.profiles.Upsert(ctx, &domain.Profile{UserID: in.UserID, MemberNo: in.MemberNo, Email: in.Email}); err != nil {
		s.log.Warn("profile upsert failed", zap.String("user", in.UserID), zap.Error(err))
	}

	slotIDs := make([]string, 0, len(in.Block))
	for _, sl := range in.Block {
		slotIDs = append(slotIDs, sl.ID())
	}
	ev := events.ReservationCreated{
		BlockID: blockID,
		UserID:  in.UserID,
		Date:    in.Date,
		SlotIDs: slotIDs,
		Court:   court,
		Guests:  in.Guests,
		Total:   quote.Total,
	}
	if err := s.pub.PublishJSON(ctx, events.RKReservationCreated, ev); err != nil {
		s.log.Warn("publish reservation.created failed", zap.Error(err))
	}

	s.log.Info("block committed",
		zap.String("block", blockID),
		zap.String("date", in.Date),
		zap.Int("court", court),
		zap.Int("slots", len(in.Block)),
		zap.Int64("total", quote.Total))
	return &CommitResult{BlockID: blockID, Court: court, Quote: quote}, nil
}

// pickCourt scans the pool in fixed priority order and returns the first
// court free for every slot of the block, or 0 when none is. A block is
// never split across courts.
func (s *BookingSvc) pickCourt(existing []domain.Reservation, block []schedule.Slot) int {
	occupied := make(map[string]map[int]bool, len(existing))
	for _, r := range existing {
		if occupied[r.SlotID] == nil {
			occupied[r.SlotID] = make(map[int]bool, s.courts)
		}
		occupied[r.SlotID][r.Court] = true
	}
	for court := 1; court <= s.courts; court++ {
		free := true
		for _, sl := range block {
			if occupied[sl.ID()][court] {
				free = false
				break
			}
		}
		if free {
			return court
		}
	}
	return 0
}

// Profile returns the stored contact, nil when none exists yet.
func (s *BookingSvc) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *BookingSvc) SaveProfile(ctx context.Context, userID, memberNo, email string) error {
	if err := validateContact(memberNo, email); err != nil {
		return err
	}
	return s.profiles.Upsert(ctx, &domain.Profile{UserID: userID, MemberNo: memberNo, Email: email})
}

// Cancel deletes one reservation. Cancelling an already-absent id succeeds
// silently; the store delete is idempotent.
func (s *BookingSvc) Cancel(ctx context.Context, id, userID string) error {
	row, err := s.store.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if row == nil {
		return nil
	}
	ev := events.ReservationCancelled{
		ReservationID: row.ID,
		BlockID:       row.BlockID,
		UserID:        row.UserID,
		Date:          row.Date,
		SlotID:        row.SlotID,
		Court:         row.Court,
	}
	if err := s.pub.PublishJSON(ctx, events.RKReservationCancelled, ev); err != nil {
		s.log.Warn("publish reservation.cancelled failed", zap.Error(err))
	}
	s.log.Info("reservation cancelled", zap.String("id", row.ID), zap.String("date", row.Date), zap.String("slot", row.SlotID))
	return nil
}
