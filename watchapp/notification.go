package watchapp

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/skypath/skypath/internal"
)

// Notify writes watch reports to the console and emits desktop notifications
// on price drops.
type Notify struct {
	appName string
	stdout  *log.Logger
}

func NewNotify(appName string, consoleOut io.Writer) *Notify {
	return &Notify{
		appName: appName,
		stdout:  log.New(consoleOut, "", 0),
	}
}

// Report prints a one-line summary of a search run and returns the cheapest
// total price it observed, to be passed into the next Report call. A zero
// previousBest means no earlier run produced a price. When the cheapest
// price fell since the previous run, a desktop notification goes out.
func (notify *Notify) Report(result *internal.SearchResult, previousBest float64) float64 {
	if result == nil {
		// The failed run was already logged; keep the last price.
		return previousBest
	}

	timestamp := time.Now().Format("15:04:05")

	if len(result.Itineraries) == 0 {
		notify.stdout.Printf("%s  no itineraries found", timestamp)

		return previousBest
	}

	best := cheapestPrice(result.Itineraries)
	notify.stdout.Printf("%s  %d itineraries, cheapest %s",
		timestamp, len(result.Itineraries), internal.FormatPrice(best))

	if previousBest > 0 && best < previousBest {
		notify.priceDrop(previousBest, best)
	}

	return best
}

func cheapestPrice(itineraries []internal.Itinerary) float64 {
	best := itineraries[0].TotalPrice
	for _, itinerary := range itineraries[1:] {
		if itinerary.TotalPrice < best {
			best = itinerary.TotalPrice
		}
	}

	return best
}

func (notify *Notify) priceDrop(from, to float64) {
	msgBody := fmt.Sprintf("Cheapest itinerary now %s (was %s)",
		internal.FormatPrice(to), internal.FormatPrice(from))
	notify.stdout.Printf("price drop: %s", msgBody)

	if err := beeep.Notify(notify.appName+": Price Drop", msgBody, ""); err != nil {
		slog.Warn("desktop notification failed", slog.Any("error", err))
	}
}
