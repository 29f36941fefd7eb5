package tuiapp

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/skypath/skypath/internal"
)

// Presentation of the search form and the results area.

func (m *model) viewForm() string {
	labelStyle := m.baseStyle.Bold(true)
	fieldStyle := m.baseStyle.Padding(0, 2, 0, 0)
	errorStyle := m.baseStyle.Foreground(m.theme.Red)

	field := func(idx int, label, errKey string) string {
		parts := []string{
			labelStyle.Render(label),
			m.form.inputs[idx].View(),
		}
		if errMsg, ok := m.fieldErrors[errKey]; ok {
			parts = append(parts, errorStyle.Render(errMsg))
		}

		return fieldStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	submitHint := "enter: search  ctrl+s: swap  tab: next field  ctrl+c: quit"
	if m.session.State().Status == internal.StatusLoading {
		submitHint = "searching, please wait"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			field(fieldOriginIdx, "From", internal.FieldOrigin),
			field(fieldDestinationIdx, "To", internal.FieldDestination),
			field(fieldDateIdx, "Date", internal.FieldDate),
		),
		m.baseStyle.Foreground(m.theme.Secondary).Padding(1, 0, 0, 0).Render(submitHint),
	)
}

func (m *model) viewErrorBanner(message string) string {
	banner := m.baseStyle.
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Red).
		Padding(0, 1)

	return banner.Render(message + "  (esc to dismiss)")
}

func (m *model) viewEmptyState(origin, destination string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.baseStyle.Bold(true).Render("No flights found"),
		fmt.Sprintf("We couldn't find any itineraries from %s to %s on this date.", origin, destination),
		m.baseStyle.Foreground(m.theme.Secondary).Render("Try a different date or route."),
	)
}

func (m *model) viewResultsList(itineraries []internal.Itinerary) string {
	blocks := make([]string, 0, len(itineraries)+1)
	blocks = append(blocks, m.baseStyle.Bold(true).Render(resultsCountLine(len(itineraries))))

	for i := range itineraries {
		blocks = append(blocks, m.viewItineraryCard(&itineraries[i]))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func resultsCountLine(count int) string {
	if count == 1 {
		return "1 itinerary found"
	}

	return fmt.Sprintf("%d itineraries found", count)
}

func (m *model) viewItineraryCard(itinerary *internal.Itinerary) string {
	card := m.baseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.badgeStyle(itinerary.Stops).Render(internal.StopsLabel(itinerary.Stops)),
		m.baseStyle.Padding(0, 3).Render(internal.FormatDuration(itinerary.TotalDurationMinutes)),
		m.baseStyle.Bold(true).Render(internal.FormatPrice(itinerary.TotalPrice)),
	)

	lines := []string{header}
	for _, entry := range itinerary.Timeline() {
		if entry.Segment != nil {
			lines = append(lines, m.viewSegment(entry.Segment))
		} else {
			lines = append(lines, m.viewLayover(entry.Layover))
		}
	}

	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// badgeStyle colors the stops badge: direct connections green, anything with
// stops in the highlight color.
func (m *model) badgeStyle(stops int) lipgloss.Style {
	badgeColor := m.theme.Green
	if stops > 0 {
		badgeColor = m.theme.Highlight
	}

	return m.baseStyle.Bold(true).Foreground(badgeColor)
}

func (m *model) viewSegment(segment *internal.FlightSegment) string {
	route := fmt.Sprintf("%s %s (%s)  ->  %s %s (%s)",
		internal.FormatTime(segment.DepartureTime), segment.OriginCode, segment.OriginCity,
		internal.FormatTime(segment.ArrivalTime), segment.DestinationCode, segment.DestinationCity,
	)
	detail := fmt.Sprintf("%s %s, %s, %s",
		segment.Airline, segment.FlightNumber,
		segment.Aircraft,
		internal.FormatDuration(segment.DurationMinutes),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.baseStyle.Render(route),
		m.baseStyle.Foreground(m.theme.Secondary).Render(detail),
	)
}

func (m *model) viewLayover(layover *internal.Layover) string {
	return m.baseStyle.Foreground(m.theme.Secondary).Render(
		fmt.Sprintf("    %s layover in %s (%s)",
			internal.FormatDuration(layover.DurationMinutes),
			layover.AirportCity,
			layover.AirportCode,
		),
	)
}
