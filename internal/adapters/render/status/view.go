package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

type RenderOptions struct {
	// BarWidth is the occupancy bar width; zero selects the default, negative hides it.
	BarWidth int
}

func renderView(status application.LotStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Parking Lot Status"),
		s.header.Render(fmt.Sprintf("slots: %d  occupied: %d  free: %d  rate: Rs%d/hour",
			status.Capacity, status.Occupied, status.Free, status.RatePerHour)),
	}

	if bar := occupancyLine(status, opts, s); bar != "" {
		lines = append(lines, bar)
	}

	slotLines := make([]string, 0, len(status.Slots))
	for _, slot := range status.Slots {
		slotLines = append(slotLines, slotLine(slot, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, slotLines...)))
	lines = append(lines, s.section.Render(queueBlock(status.Queue, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func slotLine(slot domain.Slot, s styles) string {
	label := s.slotLabel.Render(fmt.Sprintf("Slot %d", slot.ID))
	if slot.Free() {
		return fmt.Sprintf("%s | %s | -", label, s.free.Render("Free"))
	}

	occupant := fmt.Sprintf("%s (since %d)", s.vehicle.Render(string(slot.Occupant.Vehicle)), slot.Occupant.Since)
	return fmt.Sprintf("%s | %s | %s", label, s.occupied.Render("Occupied"), occupant)
}

func queueBlock(queue []domain.WaitingEntry, s styles) string {
	if len(queue) == 0 {
		return s.empty.Render("No vehicles in waiting queue.")
	}

	lines := []string{s.header.Render(fmt.Sprintf("Waiting Queue (%d):", len(queue)))}
	for _, entry := range queue {
		lines = append(lines, fmt.Sprintf("Vehicle %s (waiting since Time %d)", s.vehicle.Render(string(entry.Vehicle)), entry.QueuedSince))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func occupancyLine(status application.LotStatus, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width == 0 {
		width = defaultBarWidth
	}
	if width < 0 || status.Capacity == 0 {
		return ""
	}

	percent := 100 * float64(status.Occupied) / float64(status.Capacity)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(percent, width, s),
		" ",
		s.header.Render(fmt.Sprintf("%3.0f%% occupied", percent)),
	)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
