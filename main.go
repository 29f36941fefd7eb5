// Package main provides the SkyPath flight search client.
package main

import (
	"time"

	"github.com/skypath/skypath/internal"
	"github.com/skypath/skypath/tuiapp"
	"github.com/skypath/skypath/watchapp"
	"github.com/spf13/pflag"
)

const (
	// thisAppName is the name of this application as shown on notifications.
	thisAppName = "skypath"
)

func main() {
	var argIsUseWatch bool
	var argBaseURL string
	var argOrigin string
	var argDestination string
	var argDate string
	var argInterval time.Duration

	setupCommandLineFlags(
		&argIsUseWatch,
		&argBaseURL,
		&argOrigin,
		&argDestination,
		&argDate,
		&argInterval,
	)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	if argIsUseWatch {
		watchapp.Run(thisAppName, watchapp.Options{
			BaseURL:     argBaseURL,
			Origin:      argOrigin,
			Destination: argDestination,
			Date:        argDate,
			Interval:    argInterval,
		})
	} else {
		tuiapp.Run(thisAppName, argBaseURL)
	}
}

func setupCommandLineFlags(
	argIsUseWatch *bool,
	argBaseURL *string,
	argOrigin *string,
	argDestination *string,
	argDate *string,
	argInterval *time.Duration,
) {
	// Whether to launch the watch or TUI app.
	pflag.BoolVarP(
		argIsUseWatch,
		"watch",
		"w",
		false,
		"re-run one search periodically and notify on price drops instead of starting the TUI")
	pflag.Lookup("watch").NoOptDefVal = "true"

	pflag.StringVarP(
		argBaseURL,
		"url",
		"u",
		internal.DefaultBaseURL,
		"base URL of the flight search service")

	// Search parameters, used by watch mode only; the TUI has its own form.
	pflag.StringVarP(
		argOrigin,
		"origin",
		"o",
		"",
		"origin airport code for watch mode")

	pflag.StringVarP(
		argDestination,
		"destination",
		"d",
		"",
		"destination airport code for watch mode")

	pflag.StringVarP(
		argDate,
		"date",
		"t",
		"",
		"travel date (YYYY-MM-DD) for watch mode")

	pflag.DurationVarP(
		argInterval,
		"interval",
		"i",
		watchapp.DefaultInterval,
		"time between two watch mode searches")
}
