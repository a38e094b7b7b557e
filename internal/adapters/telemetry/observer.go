package telemetry

import (
	"context"
	"errors"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/bnema/parking-lot-cli/internal/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Observer records lot events as spans and metrics.
type Observer struct {
	tracer trace.Tracer

	arrivals   metric.Int64Counter
	departures metric.Int64Counter
	promotions metric.Int64Counter
	occupancy  metric.Int64UpDownCounter
	queueLen   metric.Int64UpDownCounter
	bills      metric.Int64Histogram
	durations  metric.Int64Histogram
	waiting    metric.Int64Histogram
}

var _ ports.LotObserver = (*Observer)(nil)

func NewObserver(provider *Provider) (*Observer, error) {
	meter := provider.Meter()

	arrivals, err := meter.Int64Counter("parking_arrivals_total",
		metric.WithDescription("Total number of vehicle arrivals"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	departures, err := meter.Int64Counter("parking_departures_total",
		metric.WithDescription("Total number of departure requests"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	promotions, err := meter.Int64Counter("parking_promotions_total",
		metric.WithDescription("Total number of queued vehicles moved into a freed slot"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancy, err := meter.Int64UpDownCounter("parking_lot_occupancy",
		metric.WithDescription("Current number of occupied parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	queueLen, err := meter.Int64UpDownCounter("parking_queue_length",
		metric.WithDescription("Current number of vehicles in the waiting queue"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	bills, err := meter.Int64Histogram("parking_bill_amount",
		metric.WithDescription("Amount billed per departure"),
		metric.WithUnit("{rupee}"))
	if err != nil {
		return nil, err
	}

	durations, err := meter.Int64Histogram("parking_duration_hours",
		metric.WithDescription("Billed parking duration per departure"),
		metric.WithUnit("h"))
	if err != nil {
		return nil, err
	}

	waiting, err := meter.Int64Histogram("parking_waiting_hours",
		metric.WithDescription("Time spent in the waiting queue before promotion"),
		metric.WithUnit("h"))
	if err != nil {
		return nil, err
	}

	return &Observer{
		tracer:     provider.Tracer(),
		arrivals:   arrivals,
		departures: departures,
		promotions: promotions,
		occupancy:  occupancy,
		queueLen:   queueLen,
		bills:      bills,
		durations:  durations,
		waiting:    waiting,
	}, nil
}

func (o *Observer) Arrived(ctx context.Context, outcome domain.ArrivalOutcome) {
	ctx, span := o.tracer.Start(ctx, "parking_lot.arrive",
		trace.WithAttributes(
			attribute.String("vehicle.id", string(outcome.Vehicle)),
			attribute.Int64("parking.hour", int64(outcome.At)),
			attribute.Int64("parking.ticket", int64(outcome.Ticket)),
		))
	defer span.End()

	result := "queued"
	if outcome.Parked {
		result = "parked"
		span.SetAttributes(attribute.Int("parking.slot", outcome.SlotID))
		span.AddEvent("slot_allocated", trace.WithAttributes(attribute.Int("slot_number", outcome.SlotID)))
		o.occupancy.Add(ctx, 1)
	} else {
		span.SetAttributes(attribute.Int("parking.queue_position", outcome.QueuePosition))
		span.AddEvent("queued")
		o.queueLen.Add(ctx, 1)
	}

	o.arrivals.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result)))
}

func (o *Observer) Departed(ctx context.Context, outcome domain.DepartureOutcome) {
	ctx, span := o.tracer.Start(ctx, "parking_lot.depart",
		trace.WithAttributes(
			attribute.String("vehicle.id", string(outcome.Vehicle)),
			attribute.Int64("parking.hour", int64(outcome.At)),
			attribute.Int64("parking.ticket", int64(outcome.Ticket)),
			attribute.Int("parking.slot", outcome.SlotID),
			attribute.Int64("parking.duration_hours", int64(outcome.Duration)),
			attribute.Int64("parking.bill", outcome.Bill),
		))
	defer span.End()

	o.departures.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "success")))
	o.bills.Record(ctx, outcome.Bill)
	o.durations.Record(ctx, int64(outcome.Duration))

	if outcome.Promoted == nil {
		span.AddEvent("slot_released")
		o.occupancy.Add(ctx, -1)
		return
	}

	span.AddEvent("queue_promoted", trace.WithAttributes(
		attribute.String("vehicle.id", string(outcome.Promoted.Vehicle)),
		attribute.Int64("parking.waiting_hours", int64(outcome.Promoted.Waiting)),
	))
	o.promotions.Add(ctx, 1)
	o.queueLen.Add(ctx, -1)
	o.waiting.Record(ctx, int64(outcome.Promoted.Waiting))
}

func (o *Observer) DepartureRejected(ctx context.Context, vehicle domain.VehicleID, at domain.Hour, err error) {
	ctx, span := o.tracer.Start(ctx, "parking_lot.depart",
		trace.WithAttributes(
			attribute.String("vehicle.id", string(vehicle)),
			attribute.Int64("parking.hour", int64(at)),
		))
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	status := "failed"
	if errors.Is(err, domain.ErrVehicleNotFound) || errors.Is(err, domain.ErrTicketNotFound) {
		status = "not_found"
	}
	o.departures.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}
