package domain

import "errors"

var (
	// ErrNoDestination is returned when a plan is requested for a blank destination.
	ErrNoDestination = errors.New("destination is empty")
)
