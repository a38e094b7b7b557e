package application

import "github.com/bnema/parking-lot-cli/internal/domain"

type ArriveCommand struct {
	Vehicle domain.VehicleID
	At      domain.Hour
}

// DepartCommand resolves the visit by Ticket when it is set, otherwise by the
// lowest slot the vehicle occupies.
type DepartCommand struct {
	Vehicle domain.VehicleID
	Ticket  domain.Ticket
	At      domain.Hour
}

type LotOverrides struct {
	Slots       int
	RatePerHour *int64
}
