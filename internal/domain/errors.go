package domain

import "errors"

var (
	ErrAuthFailed           = errors.New("authentication failed")
	ErrValidation           = errors.New("invalid member number or email")
	ErrSelectionRule        = errors.New("selection not allowed")
	ErrAvailabilityConflict = errors.New("court no longer available")
	ErrPersistence          = errors.New("reservation store failure")
	ErrNotOwner             = errors.New("reservation belongs to another user")
)
