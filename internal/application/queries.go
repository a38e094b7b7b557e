package application

import "github.com/bnema/parking-lot-cli/internal/domain"

type LotStatus struct {
	Capacity    int
	Occupied    int
	Free        int
	RatePerHour int64
	Slots       []domain.Slot
	Queue       []domain.WaitingEntry
}

type Report struct {
	Visits      []domain.CompletedVisit
	Averages    domain.Averages
	HasAverages bool
}

type EventResult struct {
	Event     domain.Event
	Arrival   *domain.ArrivalOutcome
	Departure *domain.DepartureOutcome
	Err       error `json:"-"`
	Error     string `json:",omitempty"`
}
