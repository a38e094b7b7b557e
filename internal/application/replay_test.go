package application

import (
	"context"
	"testing"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayAppliesEventsInOrder(t *testing.T) {
	svc := newTestLotService(t, 1, 10, nil)

	results, err := svc.Replay(context.Background(), []domain.Event{
		{Kind: domain.EventArrive, Vehicle: "A", At: 0},
		{Kind: domain.EventArrive, Vehicle: "B", At: 1},
		{Kind: domain.EventDepart, Vehicle: "Z", At: 2},
		{Kind: domain.EventDepart, Vehicle: "A", At: 5},
		{Kind: domain.EventDepart, Vehicle: "B", At: 8},
	})
	require.NoError(t, err)
	require.Len(t, results, 5)

	require.NotNil(t, results[0].Arrival)
	assert.True(t, results[0].Arrival.Parked)
	require.NotNil(t, results[1].Arrival)
	assert.Equal(t, 1, results[1].Arrival.QueuePosition)

	assert.ErrorIs(t, results[2].Err, domain.ErrVehicleNotFound)
	assert.Contains(t, results[2].Error, "vehicle not found")
	assert.Nil(t, results[2].Departure)

	require.NotNil(t, results[3].Departure)
	assert.Equal(t, int64(50), results[3].Departure.Bill)
	require.NotNil(t, results[4].Departure)
	assert.Equal(t, int64(30), results[4].Departure.Bill)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	require.True(t, report.HasAverages)
	assert.InDelta(t, 2.0, report.Averages.Waiting, 1e-9)
	assert.InDelta(t, 6.0, report.Averages.Turnaround, 1e-9)
}

func TestReplayStopsOnUnknownEventKind(t *testing.T) {
	svc := newTestLotService(t, 1, 10, nil)

	results, err := svc.Replay(context.Background(), []domain.Event{
		{Kind: domain.EventArrive, Vehicle: "A", At: 0},
		{Kind: "tow", Vehicle: "A", At: 1},
	})
	require.ErrorIs(t, err, ErrUnknownEventKind)
	assert.ErrorContains(t, err, "replay event 2")
	assert.Len(t, results, 1)
}

func TestReplayStopsOnBlankVehicle(t *testing.T) {
	svc := newTestLotService(t, 1, 10, nil)

	_, err := svc.Replay(context.Background(), []domain.Event{
		{Kind: domain.EventDepart, Vehicle: "", At: 1},
	})
	require.ErrorIs(t, err, ErrVehicleRequired)
}
