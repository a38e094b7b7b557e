package report

import (
	"strings"
	"testing"

	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() application.Report {
	return application.Report{
		Visits: []domain.CompletedVisit{
			{Ticket: 1, Vehicle: "A", Arrival: 0, Departure: 5, Waiting: 0, Turnaround: 5},
			{Ticket: 2, Vehicle: "B", Arrival: 1, Departure: 8, Waiting: 4, Turnaround: 7},
		},
		Averages:    domain.Averages{Waiting: 2, Turnaround: 6, Completed: 2},
		HasAverages: true,
	}
}

func TestRenderReportTableAndAverages(t *testing.T) {
	t.Parallel()

	output := Render(sampleReport(), RenderOptions{})

	for _, header := range []string{"Vehicle", "Arrival", "Departure", "Waiting", "Turnaround"} {
		assert.Contains(t, output, header)
	}
	assert.Contains(t, output, "Average Waiting Time: 2.00 hours")
	assert.Contains(t, output, "Average Turnaround Time: 6.00 hours")
	assert.Contains(t, output, "Timeline (FCFS)")
}

func TestRenderTimelineSegments(t *testing.T) {
	t.Parallel()

	chart := timeline(sampleReport().Visits, RenderOptions{}, newStyles())
	lines := strings.Split(chart, "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	rowA, rowB := lines[1], lines[2]
	assert.True(t, strings.HasPrefix(rowA, "A |"))
	assert.Equal(t, 0, strings.Count(rowA, waitingMark))
	assert.Equal(t, 5, strings.Count(rowA, parkedMark))

	assert.True(t, strings.HasPrefix(rowB, "B |"))
	assert.Equal(t, 4, strings.Count(rowB, waitingMark))
	assert.Equal(t, 3, strings.Count(rowB, parkedMark))
}

func TestRenderTimelineScalesToWidth(t *testing.T) {
	t.Parallel()

	visits := []domain.CompletedVisit{
		{Vehicle: "LONG", Arrival: 0, Departure: 100, Turnaround: 100},
	}
	chart := timeline(visits, RenderOptions{TimelineWidth: 10}, newStyles())
	row := strings.Split(chart, "\n")[1]
	assert.Equal(t, 10, strings.Count(row, parkedMark))
}

func TestRenderTimelineWithExtremeHours(t *testing.T) {
	t.Parallel()

	visits := []domain.CompletedVisit{
		{Vehicle: "A", Arrival: -9e18, Departure: 9e18},
		{Vehicle: "B", Arrival: 0, Departure: 9e18, Waiting: 0},
	}
	chart := timeline(visits, RenderOptions{TimelineWidth: 10}, newStyles())
	lines := strings.Split(chart, "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, 10, strings.Count(lines[1], parkedMark))
	assert.Equal(t, 5, strings.Count(lines[2], parkedMark))
	for _, line := range lines {
		assert.Less(t, len([]rune(line)), 80)
	}
}

func TestRenderHidesTimelineWhenDisabled(t *testing.T) {
	t.Parallel()

	output := Render(sampleReport(), RenderOptions{TimelineWidth: -1})
	assert.NotContains(t, output, "Timeline")
}

func TestRenderEmptyReport(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No completed vehicle records to display.", Render(application.Report{}, RenderOptions{}))
	assert.Equal(t, "No completed vehicle records yet.", RenderAverages(application.Report{}))
}

func TestRenderAverages(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Average Waiting Time: 2.00 hours\nAverage Turnaround Time: 6.00 hours",
		RenderAverages(sampleReport()),
	)
}
