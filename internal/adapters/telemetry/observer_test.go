package telemetry

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type harness struct {
	observer *Observer
	spans    *tracetest.SpanRecorder
	reader   *sdkmetric.ManualReader
}

func newHarness(t *testing.T) harness {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	observer, err := NewObserver(NewProviderFrom(tp, mp))
	require.NoError(t, err)

	return harness{observer: observer, spans: spans, reader: reader}
}

func (h harness) collect(t *testing.T) map[string]metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, h.reader.Collect(context.Background(), &rm))

	byName := map[string]metricdata.Aggregation{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			byName[m.Name] = m.Data
		}
	}
	return byName
}

func sumByAttr(t *testing.T, data metricdata.Aggregation, key string) map[string]int64 {
	t.Helper()

	sum, ok := data.(metricdata.Sum[int64])
	require.True(t, ok, "unexpected aggregation %T", data)

	values := map[string]int64{}
	for _, dp := range sum.DataPoints {
		label := ""
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok {
			label = v.Emit()
		}
		values[label] += dp.Value
	}
	return values
}

func histogramTotals(t *testing.T, data metricdata.Aggregation) (uint64, int64) {
	t.Helper()

	hist, ok := data.(metricdata.Histogram[int64])
	require.True(t, ok, "unexpected aggregation %T", data)

	var count uint64
	var sum int64
	for _, dp := range hist.DataPoints {
		count += dp.Count
		sum += dp.Sum
	}
	return count, sum
}

func TestObserverRecordsLotActivity(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.observer.Arrived(ctx, domain.ArrivalOutcome{Ticket: 1, Vehicle: "A", At: 0, Parked: true, SlotID: 1})
	h.observer.Arrived(ctx, domain.ArrivalOutcome{Ticket: 2, Vehicle: "B", At: 1, QueuePosition: 1})
	h.observer.Departed(ctx, domain.DepartureOutcome{
		SlotID: 1, Vehicle: "A", Ticket: 1, At: 5, Duration: 5, Bill: 50,
		Promoted: &domain.Promotion{Vehicle: "B", Ticket: 2, QueuedSince: 1, Waiting: 4},
	})
	h.observer.Departed(ctx, domain.DepartureOutcome{SlotID: 1, Vehicle: "B", Ticket: 2, At: 8, Duration: 3, Bill: 30})
	h.observer.DepartureRejected(ctx, "Z", 9, fmt.Errorf("depart vehicle: %w", domain.ErrVehicleNotFound))

	metrics := h.collect(t)

	assert.Equal(t, map[string]int64{"parked": 1, "queued": 1}, sumByAttr(t, metrics["parking_arrivals_total"], "outcome"))
	assert.Equal(t, map[string]int64{"success": 2, "not_found": 1}, sumByAttr(t, metrics["parking_departures_total"], "status"))
	assert.Equal(t, map[string]int64{"": 1}, sumByAttr(t, metrics["parking_promotions_total"], ""))
	assert.Equal(t, map[string]int64{"": 0}, sumByAttr(t, metrics["parking_lot_occupancy"], ""))
	assert.Equal(t, map[string]int64{"": 0}, sumByAttr(t, metrics["parking_queue_length"], ""))

	count, total := histogramTotals(t, metrics["parking_bill_amount"])
	assert.Equal(t, uint64(2), count)
	assert.Equal(t, int64(80), total)

	count, total = histogramTotals(t, metrics["parking_waiting_hours"])
	assert.Equal(t, uint64(1), count)
	assert.Equal(t, int64(4), total)
}

func TestObserverRecordsSpans(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.observer.Arrived(ctx, domain.ArrivalOutcome{Ticket: 1, Vehicle: "A", Parked: true, SlotID: 1})
	h.observer.DepartureRejected(ctx, "Z", 2, domain.ErrVehicleNotFound)

	spans := h.spans.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "parking_lot.arrive", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("parking.slot", 1))
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "slot_allocated", spans[0].Events()[0].Name)

	assert.Equal(t, "parking_lot.depart", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
