package service

import (
	"context"

	"github.com/mfcayala/mpc-court/internal/domain"
)

type fakeStore struct {
	rows       []domain.Reservation
	failCreate error
	failList   error
}

func (f *fakeStore) ListByDate(_ context.Context, date string) ([]domain.Reservation, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	var out []domain.Reservation
	for _, r := range f.rows {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByUserDate(_ context.Context, userID, date string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.rows {
		if r.Date == date && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateBlock(_ context.Context, rows []domain.Reservation) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	// mirror the store's unique (date, slot, court) key: all or nothing
	for _, in := range rows {
		for _, have := range f.rows {
			if have.Date == in.Date && have.SlotID == in.SlotID && have.Court == in.Court {
				return domain.ErrAvailabilityConflict
			}
		}
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id, userID string) (*domain.Reservation, error) {
	for i, r := range f.rows {
		if r.ID != id {
			continue
		}
		if r.UserID != userID {
			return nil, domain.ErrNotOwner
		}
		f.rows = append(f.rows[:i], f.rows[i+1:]...)
		row := r
		return &row, nil
	}
	return nil, nil
}

type fakeProfiles struct {
	m map[string]domain.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{m: make(map[string]domain.Profile)}
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := f.m[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *domain.Profile) error {
	f.m[p.UserID] = *p
	return nil
}

type fakePub struct {
	keys     []string
	payloads []any
}

func (f *fakePub) PublishJSON(_ context.Context, key string, v any) error {
	f.keys = append(f.keys, key)
	f.payloads = append(f.payloads, v)
	return nil
}
