package internal

import "fmt"

// The types below mirror the JSON shapes returned by the flight search
// service. Field names are fixed by the service contract.

// FlightSegment is a single flown leg between two airports.
// DepartureTime and ArrivalTime are ISO-8601 timestamps with an explicit UTC
// offset; the offset is kept as-is for display. DurationMinutes comes from
// the service and is authoritative, consumers must not recompute it from the
// timestamps.
type FlightSegment struct {
	FlightNumber    string `json:"flightNumber"`
	Airline         string `json:"airline"`
	OriginCode      string `json:"originCode"`
	OriginName      string `json:"originName"`
	OriginCity      string `json:"originCity"`
	DestinationCode string `json:"destinationCode"`
	DestinationName string `json:"destinationName"`
	DestinationCity string `json:"destinationCity"`
	DepartureTime   string `json:"departureTime"`
	ArrivalTime     string `json:"arrivalTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Aircraft        string `json:"aircraft"`
}

// Layover is the waiting period at an intermediate airport. Layover i of an
// itinerary belongs to the gap after segment i.
type Layover struct {
	AirportCode     string `json:"airportCode"`
	AirportName     string `json:"airportName"`
	AirportCity     string `json:"airportCity"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Itinerary is one complete routing from origin to destination. Total
// duration and price are authoritative service values and may include costs
// not derivable from the segment list, so they are never recomputed here.
type Itinerary struct {
	Segments             []FlightSegment `json:"segments"`
	Layovers             []Layover       `json:"layovers"`
	TotalDurationMinutes int             `json:"totalDurationMinutes"`
	TotalPrice           float64         `json:"totalPrice"`
	Stops                int             `json:"stops"`
}

// SearchResult is the response of one itinerary search. The itinerary order
// is exactly the order the service returned.
type SearchResult struct {
	Itineraries []Itinerary `json:"itineraries"`
	Count       int         `json:"count"`
}

// TimelineEntry is one block of a rendered itinerary timeline, either a
// segment or the layover following it. Exactly one of the fields is set.
type TimelineEntry struct {
	Segment *FlightSegment
	Layover *Layover
}

// Timeline interleaves segments and layovers for display: segment i, then
// layover i if one exists. This is a positional zip over the arrays as the
// service aligned them, not a reconstruction from times; nothing in the data
// re-derives which layover belongs where.
func (it *Itinerary) Timeline() []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(it.Segments)+len(it.Layovers))

	for i := range it.Segments {
		entries = append(entries, TimelineEntry{Segment: &it.Segments[i]})

		if i < len(it.Layovers) {
			entries = append(entries, TimelineEntry{Layover: &it.Layovers[i]})
		}
	}

	return entries
}

// StopsLabel renders the stop-count badge text. It depends on the reported
// stop count alone; if it ever disagrees with the segment count, the
// reported count wins while all segments are still rendered.
func StopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Direct"
	case 1:
		return "1 Stop"
	default:
		return fmt.Sprintf("%d Stops", stops)
	}
}
