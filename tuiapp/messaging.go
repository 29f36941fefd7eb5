package tuiapp

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skypath/skypath/internal"
)

// airportsMsg delivers the one-shot airport directory snapshot.
type airportsMsg []internal.Airport

// fetchAirportsCmd loads the airport directory in the background. A failed
// fetch produces no message at all: the directory is a validation
// convenience, so its absence just leaves validation syntax-only.
func fetchAirportsCmd(client *internal.Client) tea.Cmd {
	return func() tea.Msg {
		airports, err := client.FetchAirports(context.Background())
		if err != nil {
			slog.Warn("airport directory fetch failed", slog.Any("error", err))

			return nil
		}

		return airportsMsg(airports)
	}
}

// searchResultMsg carries a search resolution back to the model.
// seq pairs the resolution with the submission it answers, so a slow stale
// response cannot overwrite a newer search.
type searchResultMsg struct {
	seq    int
	result *internal.SearchResult
	err    error
}

// searchFlightsCmd runs one itinerary search. The request timeout budget is
// enforced inside the client.
func searchFlightsCmd(client *internal.Client, seq int, req internal.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := client.SearchFlights(context.Background(), req.Origin, req.Destination, req.Date)

		return searchResultMsg{seq: seq, result: result, err: err}
	}
}
