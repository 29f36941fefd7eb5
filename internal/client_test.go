package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	client := NewClient(url)
	client.HTTPClient.Timeout = 250 * time.Millisecond

	return client
}

func assertAPIError(t *testing.T, err error, kind, message string, status int) {
	t.Helper()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Kind != kind {
		t.Errorf("kind = %q, want %q", apiErr.Kind, kind)
	}
	if message != "" && apiErr.Message != message {
		t.Errorf("message = %q, want %q", apiErr.Message, message)
	}
	if apiErr.StatusCode != status {
		t.Errorf("status code = %d, want %d", apiErr.StatusCode, status)
	}
}

func TestSearchFlightsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/api/flights/search" {
			t.Errorf("path = %q, want /api/flights/search", got)
		}
		query := r.URL.Query()
		if query.Get("origin") != "JFK" || query.Get("destination") != "LAX" || query.Get("date") != "2025-06-01" {
			t.Errorf("unexpected query parameters: %v", query)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"itineraries": [{
				"segments": [{
					"flightNumber": "AA100",
					"airline": "American Airlines",
					"originCode": "JFK",
					"destinationCode": "LAX",
					"departureTime": "2025-06-01T08:00:00-04:00",
					"arrivalTime": "2025-06-01T11:15:00-07:00",
					"durationMinutes": 375,
					"aircraft": "Boeing 777"
				}],
				"layovers": [],
				"totalDurationMinutes": 375,
				"totalPrice": 324.5,
				"stops": 0
			}],
			"count": 1
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).SearchFlights(context.Background(), "JFK", "LAX", "2025-06-01")
	if err != nil {
		t.Fatalf("SearchFlights() error = %v", err)
	}

	if len(result.Itineraries) != 1 {
		t.Fatalf("itineraries = %d, want 1", len(result.Itineraries))
	}

	itinerary := result.Itineraries[0]
	if itinerary.TotalPrice != 324.5 {
		t.Errorf("total price = %v, want 324.5", itinerary.TotalPrice)
	}
	if itinerary.Segments[0].FlightNumber != "AA100" {
		t.Errorf("flight number = %q, want AA100", itinerary.Segments[0].FlightNumber)
	}
}

func TestSearchFlightsStructuredErrorPassesThroughVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "ROUTE_NOT_FOUND", "message": "No route", "statusCode": 404}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchFlights(context.Background(), "JFK", "XXX", "2025-06-01")

	assertAPIError(t, err, "ROUTE_NOT_FOUND", "No route", 404)
}

func TestSearchFlightsUnstructuredFailureIsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchFlights(context.Background(), "JFK", "LAX", "2025-06-01")

	assertAPIError(t, err, KindServerError, "Server returned 502. Please try again later.", 502)
}

func TestSearchFlightsConnectivityFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // nothing listens anymore

	_, err := newTestClient(server.URL).SearchFlights(context.Background(), "JFK", "LAX", "2025-06-01")

	assertAPIError(t, err, KindNetworkError, "", 0)
}

func TestSearchFlightsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		time.Sleep(200 * time.Millisecond) // well past the client's budget
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.HTTPClient.Timeout = 50 * time.Millisecond

	_, err := client.SearchFlights(context.Background(), "JFK", "LAX", "2025-06-01")

	assertAPIError(t, err, KindTimeout, "The request timed out. Please try again.", 0)
}

func TestSearchFlightsCountMismatchIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"itineraries": [{"segments": [], "layovers": [], "stops": 0}], "count": 5}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).SearchFlights(context.Background(), "JFK", "LAX", "2025-06-01")
	if err != nil {
		t.Fatalf("SearchFlights() error = %v", err)
	}

	// The array is authoritative; the bogus count is only logged.
	if len(result.Itineraries) != 1 {
		t.Errorf("itineraries = %d, want 1", len(result.Itineraries))
	}
}

func TestFetchAirports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/api/airports" {
			t.Errorf("path = %q, want /api/airports", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"code": "JFK", "name": "John F. Kennedy International", "city": "New York", "country": "USA", "timezone": "America/New_York"},
			{"code": "LAX", "name": "Los Angeles International", "city": "Los Angeles", "country": "USA", "timezone": "America/Los_Angeles"}
		]`))
	}))
	defer server.Close()

	airports, err := newTestClient(server.URL).FetchAirports(context.Background())
	if err != nil {
		t.Fatalf("FetchAirports() error = %v", err)
	}

	if len(airports) != 2 {
		t.Fatalf("airports = %d, want 2", len(airports))
	}
	if !CodesOf(airports).Has("LAX") {
		t.Error("code set is missing LAX")
	}
}

func TestFetchAirportsFailureReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).FetchAirports(context.Background()); err == nil {
		t.Error("FetchAirports() returned no error for a failing directory")
	}
}
