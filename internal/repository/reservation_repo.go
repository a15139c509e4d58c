package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mfcayala/mpc-court/internal/domain"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Reservation{})
}

func (r *ReservationRepo) ListByDate(ctx context.Context, date string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("slot_id ASC, court ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return out, nil
}

func (r *ReservationRepo) ListByUserDate(ctx context.Context, userID, date string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("slot_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return out, nil
}

// CreateBlock writes every row of one booking in a single transaction.
// Candidate conflicting rows are locked first so a losing racer fails the
// whole block; the composite unique index backstops anything the lock
// misses. Either all rows land or none do.
func (r *ReservationRepo) CreateBlock(ctx context.Context, rows []domain.Reservation) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slotIDs := make([]string, 0, len(rows))
		for _, row := range rows {
			slotIDs = append(slotIDs, row.SlotID)
		}
		var existing domain.Reservation
		err := tx.Model(&domain.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ? AND court = ? AND slot_id IN ?", rows[0].Date, rows[0].Court, slotIDs).
			Take(&existing).Error
		if err == nil {
			return domain.ErrAvailabilityConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrAvailabilityConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAvailabilityConflict
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}

// Delete removes one reservation owned by userID. Deleting an absent row is
// a no-op, not an error; the returned row is nil in that case.
func (r *ReservationRepo) Delete(ctx context.Context, id, userID string) (*domain.Reservation, error) {
	var row domain.Reservation
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if row.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Reservation{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &row, nil
}
