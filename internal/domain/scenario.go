package domain

import (
	"fmt"
	"strings"
)

type EventKind string

const (
	EventArrive EventKind = "arrive"
	EventDepart EventKind = "depart"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventArrive, EventDepart:
		return true
	default:
		return false
	}
}

type Event struct {
	Kind    EventKind
	Vehicle VehicleID
	At      Hour
}

// DefaultRatePerHour applies when a lot is configured without a rate.
const DefaultRatePerHour int64 = 10

type LotConfig struct {
	Slots       int
	RatePerHour int64
}

// Scenario is a recorded sequence of arrivals and departures that can be
// replayed against a fresh engine.
type Scenario struct {
	Lot    LotConfig
	Events []Event
}

func (s Scenario) Validate() error {
	for i, event := range s.Events {
		if !event.Kind.Valid() {
			return fmt.Errorf("event %d: unsupported kind %q", i+1, event.Kind)
		}
		if strings.TrimSpace(string(event.Vehicle)) == "" {
			return fmt.Errorf("event %d: vehicle is required", i+1)
		}
	}

	return nil
}
