// Package tuiapp provides the interactive terminal client: a search form for
// a route and date, and a results area rendering the returned itineraries.
// Layout idea:
// +-------------------------------------------------+
// | SkyPath                                         |
// | Find the best flight connections                |
// |                                                 |
// | From: [JFK]   To: [LAX]   Date: [2025-06-01]    |
// |                                                 |
// | results area, one of:                           |
// |   spinner | error banner | empty state |        |
// |   "N itineraries found" + itinerary cards       |
// |   (badge, duration, price, segment/layover      |
// |    timeline)                                    |
// +-------------------------------------------------+
// .
package tuiapp

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/skypath/skypath/internal"
)

// Theme bundles the adaptive colors used across the interface.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Green     lipgloss.AdaptiveColor
	Red       lipgloss.AdaptiveColor
}

var Color = Theme{ //nolint:gochecknoglobals // palette, read-only
	Primary:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	Secondary: lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"},
	Highlight: lipgloss.AdaptiveColor{Light: "#2d6cef", Dark: "#2d6cef"},
	Border:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"},
	Green:     lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#00FF00"},
	Red:       lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
}

// Run starts the interactive client against the service at baseURL and
// blocks until the user quits.
func Run(appName, baseURL string) {
	// The terminal belongs to the TUI, so logs go to a file.
	logFile, logErr := os.OpenFile(appName+".log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if logErr == nil {
		defer func() { _ = logFile.Close() }()
		internal.InitLogging(logFile)
	}

	m := newModel(internal.NewClient(baseURL), Color)
	p := tea.NewProgram(&m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
