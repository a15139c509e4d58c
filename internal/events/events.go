package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKReservationCreated   = "reservation.created"
	RKReservationCancelled = "reservation.cancelled"
)

// ReservationCreated is published once per committed block, not per slot.
type ReservationCreated struct {
	BlockID string   `json:"block_id"`
	UserID  string   `json:"user_id"`
	Date    string   `json:"date"`
	SlotIDs []string `json:"slot_ids"`
	Court   int      `json:"court"`
	Guests  int      `json:"guests"`
	Total   int64    `json:"total"`
}

type ReservationCancelled struct {
	ReservationID string `json:"reservation_id"`
	BlockID       string `json:"block_id"`
	UserID        string `json:"user_id"`
	Date          string `json:"date"`
	SlotID        string `json:"slot_id"`
	Court         int    `json:"court"`
}

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
