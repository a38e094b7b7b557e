package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/parking-lot-cli/internal/domain"
)

// Replay applies events in order. Departures of vehicles that are not parked
// are reported in the result and do not stop the replay.
func (s *LotService) Replay(ctx context.Context, events []domain.Event) ([]EventResult, error) {
	results := make([]EventResult, 0, len(events))

	for i, event := range events {
		result := EventResult{Event: event}

		switch event.Kind {
		case domain.EventArrive:
			outcome, err := s.Arrive(ctx, ArriveCommand{Vehicle: event.Vehicle, At: event.At})
			if err != nil {
				return results, fmt.Errorf("replay event %d: %w", i+1, err)
			}
			result.Arrival = &outcome
		case domain.EventDepart:
			outcome, err := s.Depart(ctx, DepartCommand{Vehicle: event.Vehicle, At: event.At})
			if err != nil {
				if !errors.Is(err, domain.ErrVehicleNotFound) {
					return results, fmt.Errorf("replay event %d: %w", i+1, err)
				}
				result.Err = err
				result.Error = err.Error()
				break
			}
			result.Departure = &outcome
		default:
			return results, fmt.Errorf("replay event %d: %w: %q", i+1, ErrUnknownEventKind, event.Kind)
		}

		results = append(results, result)
	}

	return results, nil
}
