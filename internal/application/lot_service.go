package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/bnema/parking-lot-cli/internal/ports"
)

var (
	ErrVehicleRequired  = errors.New("vehicle id is required")
	ErrUnknownEventKind = errors.New("unknown event kind")
)

type LotService struct {
	engine   *domain.Engine
	observer ports.LotObserver
	logger   *slog.Logger
	journal  []domain.Event
}

func NewLotService(engine *domain.Engine, observer ports.LotObserver, logger *slog.Logger) *LotService {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &LotService{
		engine:   engine,
		observer: observer,
		logger:   logger,
	}
}

func (s *LotService) Arrive(ctx context.Context, cmd ArriveCommand) (domain.ArrivalOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.ArrivalOutcome{}, err
	}

	vehicle, err := normalizeVehicle(cmd.Vehicle)
	if err != nil {
		return domain.ArrivalOutcome{}, err
	}

	outcome := s.engine.Arrive(vehicle, cmd.At)
	s.journal = append(s.journal, domain.Event{Kind: domain.EventArrive, Vehicle: vehicle, At: cmd.At})
	s.observer.Arrived(ctx, outcome)

	s.logger.DebugContext(ctx, "vehicle arrived",
		slog.String("event", "lot.arrive"),
		slog.String("vehicle", string(vehicle)),
		slog.Int64("hour", int64(cmd.At)),
		slog.Uint64("ticket", uint64(outcome.Ticket)),
		slog.Bool("parked", outcome.Parked),
		slog.Int("slot", outcome.SlotID),
		slog.Int("queue_position", outcome.QueuePosition),
	)

	return outcome, nil
}

func (s *LotService) Depart(ctx context.Context, cmd DepartCommand) (domain.DepartureOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.DepartureOutcome{}, err
	}

	var (
		outcome domain.DepartureOutcome
		err     error
	)
	if cmd.Ticket != 0 {
		outcome, err = s.engine.DepartTicket(cmd.Ticket, cmd.At)
	} else {
		vehicle, normalizeErr := normalizeVehicle(cmd.Vehicle)
		if normalizeErr != nil {
			return domain.DepartureOutcome{}, normalizeErr
		}
		outcome, err = s.engine.Depart(vehicle, cmd.At)
	}

	if err != nil {
		s.observer.DepartureRejected(ctx, cmd.Vehicle, cmd.At, err)
		s.logger.DebugContext(ctx, "departure rejected",
			slog.String("event", "lot.depart.rejected"),
			slog.String("vehicle", string(cmd.Vehicle)),
			slog.Uint64("ticket", uint64(cmd.Ticket)),
			slog.Int64("hour", int64(cmd.At)),
			slog.String("error", err.Error()),
		)
		return domain.DepartureOutcome{}, fmt.Errorf("depart vehicle: %w", err)
	}

	s.journal = append(s.journal, domain.Event{Kind: domain.EventDepart, Vehicle: outcome.Vehicle, At: cmd.At})
	s.observer.Departed(ctx, outcome)

	attrs := []any{
		slog.String("event", "lot.depart"),
		slog.String("vehicle", string(outcome.Vehicle)),
		slog.Int64("hour", int64(cmd.At)),
		slog.Int("slot", outcome.SlotID),
		slog.Int64("duration", int64(outcome.Duration)),
		slog.Int64("bill", outcome.Bill),
	}
	if outcome.Promoted != nil {
		attrs = append(attrs,
			slog.String("promoted", string(outcome.Promoted.Vehicle)),
			slog.Int64("waiting", int64(outcome.Promoted.Waiting)),
		)
	}
	s.logger.DebugContext(ctx, "vehicle departed", attrs...)

	return outcome, nil
}

// Journal returns the accepted events in the order they were applied.
func (s *LotService) Journal() []domain.Event {
	journal := make([]domain.Event, len(s.journal))
	copy(journal, s.journal)
	return journal
}

func (s *LotService) LotConfig() domain.LotConfig {
	return domain.LotConfig{Slots: s.engine.SlotCount(), RatePerHour: s.engine.Rate()}
}

func (s *LotService) Status(ctx context.Context) (LotStatus, error) {
	if err := ctx.Err(); err != nil {
		return LotStatus{}, err
	}

	snapshot := s.engine.Snapshot()
	occupied := snapshot.Occupied()

	return LotStatus{
		Capacity:    len(snapshot.Slots),
		Occupied:    occupied,
		Free:        len(snapshot.Slots) - occupied,
		RatePerHour: s.engine.Rate(),
		Slots:       snapshot.Slots,
		Queue:       snapshot.Queue,
	}, nil
}

func (s *LotService) Averages(ctx context.Context) (domain.Averages, error) {
	if err := ctx.Err(); err != nil {
		return domain.Averages{}, err
	}

	return s.engine.Averages()
}

func (s *LotService) Report(ctx context.Context) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{Visits: s.engine.CompletedVisits()}

	averages, err := s.engine.Averages()
	switch {
	case err == nil:
		report.Averages = averages
		report.HasAverages = true
	case errors.Is(err, domain.ErrNoCompletedVisits):
	default:
		return Report{}, fmt.Errorf("compute averages: %w", err)
	}

	return report, nil
}

func normalizeVehicle(raw domain.VehicleID) (domain.VehicleID, error) {
	vehicle := domain.VehicleID(strings.TrimSpace(string(raw)))
	if vehicle == "" {
		return "", ErrVehicleRequired
	}
	return vehicle, nil
}
