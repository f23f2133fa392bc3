package common

import "errors"

var (
	ErrReservationFinalized = errors.New("reservation is already completed or cancelled")
	ErrEntryNotWaiting      = errors.New("waitlist entry is no longer waiting")
	ErrTableNotFound        = errors.New("table not found")
)
