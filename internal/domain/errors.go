package domain

import "errors"

var (
	ErrInvalidSlotCount  = errors.New("slot count must be at least 1")
	ErrInvalidRate       = errors.New("rate per hour must not be negative")
	ErrVehicleNotFound   = errors.New("vehicle not found in the parking lot")
	ErrTicketNotFound    = errors.New("ticket not found in the parking lot")
	ErrNoCompletedVisits = errors.New("no completed vehicle records")
	ErrScenarioNotFound  = errors.New("scenario not found")
)
