package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation failed")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrHubNotFound      = errors.New("hub not found")
	ErrRouteNotFound    = errors.New("route not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrUserExists         = errors.New("user already exists")
	ErrHubExists          = errors.New("hub code already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")

	// ErrTransport wraps storage/network failures at the repository boundary
	// so callers can distinguish an outage from an empty result set.
	ErrTransport = errors.New("transport failure")
)

// ValidationError wraps ErrValidation with the offending field, so
// errors.Is(err, ErrValidation) works while the message stays specific.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// TransitionError describes a rejected status change.
func TransitionError(from, to ShipmentStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
