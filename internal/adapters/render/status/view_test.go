package status

import (
	"strings"
	"testing"

	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOccupiedLotWithQueue(t *testing.T) {
	output, err := Render(application.LotStatus{
		Capacity:    2,
		Occupied:    2,
		Free:        0,
		RatePerHour: 10,
		Slots: []domain.Slot{
			{ID: 1, Occupant: &domain.Occupancy{Vehicle: "A", Since: 5, Ticket: 1}},
			{ID: 2, Occupant: &domain.Occupancy{Vehicle: "C", Since: 2, Ticket: 3}},
		},
		Queue: []domain.WaitingEntry{{Vehicle: "B", QueuedSince: 1, Ticket: 2}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Parking Lot Status")
	assert.Contains(t, output, "slots: 2  occupied: 2  free: 0")
	assert.Contains(t, output, "Slot 1 | Occupied | A (since 5)")
	assert.Contains(t, output, "Slot 2 | Occupied | C (since 2)")
	assert.Contains(t, output, "Waiting Queue (1):")
	assert.Contains(t, output, "Vehicle B (waiting since Time 1)")
	assert.Contains(t, output, "100% occupied")
	assert.NotContains(t, output, "No vehicles in waiting queue.")
}

func TestRenderEmptyLot(t *testing.T) {
	output, err := Render(application.LotStatus{
		Capacity:    2,
		Free:        2,
		RatePerHour: 10,
		Slots:       []domain.Slot{{ID: 1}, {ID: 2}},
	}, RenderOptions{BarWidth: -1})

	require.NoError(t, err)
	assert.Contains(t, output, "Slot 1 | Free | -")
	assert.Contains(t, output, "Slot 2 | Free | -")
	assert.Contains(t, output, "No vehicles in waiting queue.")
	assert.NotContains(t, output, "[")
}

func TestRenderProgressBarWidth(t *testing.T) {
	t.Parallel()

	s := newStyles()
	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{name: "empty", percent: 0, filled: 0},
		{name: "half", percent: 50, filled: 2},
		{name: "over", percent: 150, filled: 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			bar := renderProgressBar(tc.percent, 4, s)
			assert.Equal(t, 6, lipgloss.Width(bar))
			assert.Equal(t, tc.filled, strings.Count(bar, "="))
			assert.Equal(t, 4-tc.filled, strings.Count(bar, "-"))
		})
	}
}
