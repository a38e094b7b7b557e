package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	defaultTimelineWidth = 48
	waitingMark          = "░"
	parkedMark           = "█"

	EmptyAveragesMessage = "No completed vehicle records yet."
	EmptyReportMessage   = "No completed vehicle records to display."
)

type RenderOptions struct {
	// TimelineWidth caps the chart width in cells; zero selects the default,
	// negative hides the chart.
	TimelineWidth int
}

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	label   lipgloss.Style
	waiting lipgloss.Style
	parked  lipgloss.Style
	axis    lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		waiting: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		parked:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		axis:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}

// Render draws the visit table, the averages and the timeline chart.
func Render(report application.Report, opts RenderOptions) string {
	s := newStyles()
	if len(report.Visits) == 0 {
		return s.empty.Render(EmptyReportMessage)
	}

	blocks := []string{
		s.title.Render("Vehicle Parking Details Table:"),
		visitTable(report.Visits, s),
	}
	if report.HasAverages {
		blocks = append(blocks, s.section.Render(averagesBlock(report.Averages)))
	}
	if chart := timeline(report.Visits, opts, s); chart != "" {
		blocks = append(blocks, s.section.Render(chart))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// RenderAverages prints the two averages or the empty-log message.
func RenderAverages(report application.Report) string {
	if !report.HasAverages {
		return newStyles().empty.Render(EmptyAveragesMessage)
	}

	return averagesBlock(report.Averages)
}

func averagesBlock(averages domain.Averages) string {
	return strings.Join([]string{
		fmt.Sprintf("Average Waiting Time: %.2f hours", averages.Waiting),
		fmt.Sprintf("Average Turnaround Time: %.2f hours", averages.Turnaround),
	}, "\n")
}

func visitTable(visits []domain.CompletedVisit, s styles) string {
	rows := make([][]string, 0, len(visits))
	for _, visit := range visits {
		rows = append(rows, []string{
			string(visit.Vehicle),
			formatHour(visit.Arrival),
			formatHour(visit.Departure),
			formatHour(visit.Waiting),
			formatHour(visit.Turnaround),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("Vehicle", "Arrival", "Departure", "Waiting", "Turnaround").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	return t.Render()
}

func timeline(visits []domain.CompletedVisit, opts RenderOptions, s styles) string {
	width := opts.TimelineWidth
	if width == 0 {
		width = defaultTimelineWidth
	}
	if width < 0 {
		return ""
	}

	start, end := visits[0].Arrival, visits[0].Departure
	labelWidth := 0
	for _, visit := range visits {
		start = min(start, visit.Arrival)
		end = max(end, visit.Departure)
		labelWidth = max(labelWidth, lipgloss.Width(string(visit.Vehicle)))
	}

	// Hours span the whole int64 range, so the distance is taken in float64.
	span := float64(end) - float64(start)
	if span < 1 {
		span = 1
	}
	scale := 1.0
	if span > float64(width) {
		scale = float64(width) / span
	}
	column := func(h domain.Hour) int {
		return int(math.Round((float64(h) - float64(start)) * scale))
	}
	cells := column(end)

	lines := []string{s.title.Render("Timeline (FCFS)")}
	for _, visit := range visits {
		queuedUntil := visit.Arrival + visit.Waiting
		lead := column(visit.Arrival)
		waiting := max(column(queuedUntil)-lead, 0)
		parked := max(column(visit.Departure)-column(queuedUntil), 0)

		bar := strings.Repeat(" ", lead) +
			s.waiting.Render(strings.Repeat(waitingMark, waiting)) +
			s.parked.Render(strings.Repeat(parkedMark, parked))
		label := s.label.Render(fmt.Sprintf("%-*s", labelWidth, visit.Vehicle))
		lines = append(lines, label+" |"+bar)
	}

	axis := fmt.Sprintf("%*s %s", labelWidth, "", axisLine(start, end, cells))
	lines = append(lines,
		s.axis.Render(axis),
		s.axis.Render(fmt.Sprintf("%s waiting  %s parked  (time in hours)", waitingMark, parkedMark)),
	)

	return strings.Join(lines, "\n")
}

func axisLine(start, end domain.Hour, cells int) string {
	left := formatHour(start)
	right := formatHour(end)
	gap := cells + 1 - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

func formatHour(h domain.Hour) string {
	return strconv.FormatInt(int64(h), 10)
}
