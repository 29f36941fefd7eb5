// Package watchapp runs one flight search on a fixed interval and writes
// each result to stdout, so output can be piped into other programs and
// processed further. This is in contrast to the TUI app, which works more
// like htop. When the cheapest total price drops between two runs, a desktop
// notification is emitted.
package watchapp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skypath/skypath/internal"
)

// DefaultInterval is the default time between two searches in watch mode.
const DefaultInterval = 15 * time.Minute

// Options configures a watch run. Origin, Destination and Date are validated
// with the same rules as the interactive form before the first search.
type Options struct {
	BaseURL     string
	Origin      string
	Destination string
	Date        string
	Interval    time.Duration
}

// Run starts the watch loop and blocks until SIGINT or SIGTERM.
func Run(appName string, options Options) {
	internal.InitLogging(os.Stderr)
	logger := slog.Default()

	client := internal.NewClient(options.BaseURL)
	notify := NewNotify(appName, os.Stdout)

	// Directory fetch is a validation convenience; failure only degrades
	// validation to syntax-only.
	var known internal.CodeSet
	if airports, err := client.FetchAirports(context.Background()); err != nil {
		logger.Warn("airport directory fetch failed, validating syntax only", slog.Any("error", err))
	} else {
		known = internal.CodesOf(airports)
	}

	if errs := internal.Validate(options.Origin, options.Destination, options.Date, known); len(errs) > 0 {
		for field, message := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
		}
		os.Exit(1)
	}

	req := internal.SearchRequest{
		Origin:      internal.NormalizeCode(options.Origin),
		Destination: internal.NormalizeCode(options.Destination),
		Date:        options.Date,
	}

	interval := options.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	fmt.Printf("%s watching %s to %s on %s, searching every %s\n",
		appName, req.Origin, req.Destination, req.Date, interval)

	searchTicker := time.NewTicker(interval)
	defer searchTicker.Stop()

	// Use a channel to gracefully stop the program if needed.
	done := make(chan bool)

	// Start a goroutine to perform the searches.
	go func() {
		// Run once up front; afterwards the ticker takes over.
		lastBest := notify.Report(runSearch(client, req), 0)

		for {
			select {
			case <-searchTicker.C:
				lastBest = notify.Report(runSearch(client, req), lastBest)
			case <-done:
				logger.Info("Stopping search routine.")

				return
			}
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info("Shutdown signal received, stopping...")
	close(done)
}

// runSearch performs one atomic search. Each run stands alone; nothing is
// cached between runs. A failed run is logged and reported as absent.
func runSearch(client *internal.Client, req internal.SearchRequest) *internal.SearchResult {
	result, err := client.SearchFlights(context.Background(), req.Origin, req.Destination, req.Date)
	if err != nil {
		slog.Error("watch search failed", slog.Any("error", err))

		return nil
	}

	return result
}
