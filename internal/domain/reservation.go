package domain

import "time"

// Reservation is one court-slot-day cell. A multi-slot booking is a set of
// rows sharing a BlockID; the composite unique index is the only hard
// guard against double-booking a court.
type Reservation struct {
	ID        string `gorm:"primaryKey"`
	Date      string `gorm:"size:10;index;uniqueIndex:idx_date_slot_court"` // YYYY-MM-DD
	SlotID    string `gorm:"size:4;uniqueIndex:idx_date_slot_court"`       // HHMM start
	Court     int    `gorm:"uniqueIndex:idx_date_slot_court"`
	UserID    string `gorm:"index"`
	BlockID   string `gorm:"index"`
	MemberNo  string
	Email     string
	Guests    int
	CostShare int64 // total block cost split evenly across slots
	CreatedAt time.Time
}

// Profile carries the member identity a user fills in once and reuses on
// every booking.
type Profile struct {
	UserID    string `gorm:"primaryKey"`
	MemberNo  string
	Email     string
	UpdatedAt time.Time
}
