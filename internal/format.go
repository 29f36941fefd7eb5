package internal

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const minutesPerHour = 60

// usdPrinter renders en-US currency amounts, including thousands grouping.
var usdPrinter = message.NewPrinter(language.AmericanEnglish) //nolint:gochecknoglobals // shared, read-only

// FormatDuration renders a duration given in minutes as "2h 15m",
// dropping the hour or minute part when it is zero.
func FormatDuration(minutes int) string {
	hours := minutes / minutesPerHour
	mins := minutes % minutesPerHour

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPrice renders a USD amount with exactly two fraction digits,
// e.g. 1234.5 -> "$1,234.50".
func FormatPrice(amount float64) string {
	return usdPrinter.Sprintf("$%.2f", amount)
}

// FormatTime renders an ISO-8601 timestamp as a clock time, e.g.
// "2025-06-01T08:00:00-04:00" -> "8:00 AM". The time is shown in the offset
// carried by the timestamp itself, never the local zone of the viewer.
// Unparseable input is passed through unchanged so display never fails.
func FormatTime(iso string) string {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}

	return parsed.Format("3:04 PM")
}

// FormatDate renders an ISO-8601 timestamp as "Jun 1".
func FormatDate(iso string) string {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}

	return parsed.Format("Jan 2")
}
