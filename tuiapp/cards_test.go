package tuiapp

import (
	"strings"
	"testing"

	"github.com/skypath/skypath/internal"
)

func TestResultsCountLine(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{1, "1 itinerary found"},
		{2, "2 itineraries found"},
		{12, "12 itineraries found"},
	}

	for _, tt := range tests {
		if got := resultsCountLine(tt.count); got != tt.expected {
			t.Errorf("resultsCountLine(%d) = %q, want %q", tt.count, got, tt.expected)
		}
	}
}

func TestItineraryCardRendersTimelineInOrder(t *testing.T) {
	m := newTestModel()

	itinerary := internal.Itinerary{
		Segments: []internal.FlightSegment{
			{
				FlightNumber:    "AA100",
				Airline:         "American Airlines",
				OriginCode:      "JFK",
				OriginCity:      "New York",
				DestinationCode: "ORD",
				DestinationCity: "Chicago",
				DepartureTime:   "2025-06-01T08:00:00-04:00",
				ArrivalTime:     "2025-06-01T09:30:00-05:00",
				DurationMinutes: 150,
				Aircraft:        "Boeing 737",
			},
			{
				FlightNumber:    "AA200",
				Airline:         "American Airlines",
				OriginCode:      "ORD",
				OriginCity:      "Chicago",
				DestinationCode: "LAX",
				DestinationCity: "Los Angeles",
				DepartureTime:   "2025-06-01T11:00:00-05:00",
				ArrivalTime:     "2025-06-01T13:15:00-07:00",
				DurationMinutes: 255,
				Aircraft:        "Boeing 787",
			},
		},
		Layovers: []internal.Layover{
			{AirportCode: "ORD", AirportCity: "Chicago", DurationMinutes: 90},
		},
		TotalDurationMinutes: 495,
		TotalPrice:           512.99,
		Stops:                1,
	}

	card := m.viewItineraryCard(&itinerary)

	for _, want := range []string{
		"1 Stop",
		"8h 15m",
		"$512.99",
		"AA100",
		"1h 30m layover in Chicago (ORD)",
		"AA200",
		"8:00 AM",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card is missing %q", want)
		}
	}

	// The layover must appear between the two segments.
	first := strings.Index(card, "AA100")
	mid := strings.Index(card, "layover in Chicago")
	last := strings.Index(card, "AA200")
	if !(first < mid && mid < last) {
		t.Errorf("timeline out of order: AA100 at %d, layover at %d, AA200 at %d", first, mid, last)
	}
}

func TestDirectItineraryCardHasNoLayoverLine(t *testing.T) {
	m := newTestModel()

	itinerary := internal.Itinerary{
		Segments: []internal.FlightSegment{{
			FlightNumber:    "DL42",
			Airline:         "Delta",
			OriginCode:      "JFK",
			DestinationCode: "LAX",
			DurationMinutes: 375,
		}},
		TotalDurationMinutes: 375,
		TotalPrice:           324.5,
		Stops:                0,
	}

	card := m.viewItineraryCard(&itinerary)

	if !strings.Contains(card, "Direct") {
		t.Error("direct itinerary is missing the Direct badge")
	}
	if strings.Contains(card, "layover") {
		t.Error("direct itinerary renders a layover line")
	}
}
