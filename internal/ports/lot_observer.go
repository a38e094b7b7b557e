package ports

import (
	"context"

	"github.com/bnema/parking-lot-cli/internal/domain"
)

// LotObserver receives every state transition of the engine after it happened.
type LotObserver interface {
	Arrived(ctx context.Context, outcome domain.ArrivalOutcome)
	Departed(ctx context.Context, outcome domain.DepartureOutcome)
	DepartureRejected(ctx context.Context, vehicle domain.VehicleID, at domain.Hour, err error)
}

type NopObserver struct{}

var _ LotObserver = NopObserver{}

func (NopObserver) Arrived(context.Context, domain.ArrivalOutcome) {}

func (NopObserver) Departed(context.Context, domain.DepartureOutcome) {}

func (NopObserver) DepartureRejected(context.Context, domain.VehicleID, domain.Hour, error) {}
