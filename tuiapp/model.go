package tuiapp

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/skypath/skypath/internal"
)

// model implements the bubbletea.Model interface, which requires three methods:
// - Init() Cmd
// - Update(Msg) (Model, Cmd)
// - View() string
// Every Update publishes the new state to the view via the following View
// call, so the search session's state is the single source of truth for what
// the screen shows.
type model struct {
	width  int
	height int

	baseStyle lipgloss.Style
	theme     Theme

	form    searchForm
	spinner spinner.Model

	client      *internal.Client
	session     *internal.Session
	knownCodes  internal.CodeSet
	fieldErrors map[string]string
}

func newModel(client *internal.Client, theme Theme) model {
	loadingSpinner := spinner.New()
	loadingSpinner.Spinner = spinner.Dot
	loadingSpinner.Style = lipgloss.NewStyle().Foreground(theme.Highlight)

	return model{
		baseStyle:   lipgloss.NewStyle(),
		theme:       theme,
		form:        newSearchForm(),
		spinner:     loadingSpinner,
		client:      client,
		session:     internal.NewSession(),
		fieldErrors: map[string]string{},
	}
}

// Init fires the one-shot airport directory fetch; searching never waits for
// it, validation simply runs syntax-only until the snapshot arrives.
func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchAirportsCmd(m.client))
}

// Update takes a tea.Msg as input and uses a type switch to handle different
// types of messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // required by interface
	switch thisMsg := msg.(type) {
	// message is sent when the window size changes
	case tea.WindowSizeMsg:
		m.width = thisMsg.Width
		m.height = thisMsg.Height

		return m, nil

	case tea.KeyMsg:
		switch thisMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		// Moves the focus between the form fields.
		case "tab":
			m.form.focusNext(1)

			return m, nil
		case "shift+tab":
			m.form.focusNext(-1)

			return m, nil
		// Exchanges origin and destination.
		case "ctrl+s":
			m.form.swap()
			m.fieldErrors = map[string]string{}

			return m, nil
		// Dismisses a displayed error banner; the only way to clear one.
		case "esc":
			m.session.Dismiss()

			return m, nil
		case "enter":
			return m, m.submit()
		}

		// Any other key goes to the form; editing clears inline errors.
		if len(m.fieldErrors) > 0 {
			m.fieldErrors = map[string]string{}
		}

		return m, m.form.update(msg)

	case airportsMsg:
		// Whole-snapshot replacement; the set is read-only afterwards.
		m.knownCodes = internal.CodesOf(thisMsg)

		return m, nil

	case searchResultMsg:
		m.session.Resolve(thisMsg.seq, thisMsg.result, thisMsg.err)

		return m, nil

	case spinner.TickMsg:
		if m.session.State().Status == internal.StatusLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(thisMsg)

			return m, cmd
		}

		return m, nil
	}

	// Remaining component messages (e.g. cursor blinking) belong to the form.
	return m, m.form.update(msg)
}

// submit validates the form and, when clean, moves the session into loading
// and starts the search. While a search is outstanding the session rejects
// the submission, which effectively disables the submit control.
func (m *model) submit() tea.Cmd {
	errs := internal.Validate(m.form.origin(), m.form.destination(), m.form.date(), m.knownCodes)
	if len(errs) > 0 {
		m.fieldErrors = errs

		return nil
	}

	req := internal.SearchRequest{
		Origin:      internal.NormalizeCode(m.form.origin()),
		Destination: internal.NormalizeCode(m.form.destination()),
		Date:        m.form.date(),
	}

	seq, ok := m.session.Submit(req)
	if !ok {
		return nil
	}

	m.fieldErrors = map[string]string{}

	return tea.Batch(searchFlightsCmd(m.client, seq, req), m.spinner.Tick)
}

func (m *model) View() string {
	column := m.baseStyle.Width(m.width).Padding(1, 2, 0, 2).Render

	return m.baseStyle.
		Width(m.width).
		Height(m.height).
		Render(
			lipgloss.JoinVertical(lipgloss.Left,
				column(m.viewHeader()),
				column(m.viewForm()),
				column(m.viewResults()),
			),
		)
}

func (m *model) viewHeader() string {
	title := m.baseStyle.Bold(true).Foreground(m.theme.Highlight).Render("SkyPath")
	tagline := m.baseStyle.Foreground(m.theme.Secondary).Render("Find the best flight connections")

	return lipgloss.JoinVertical(lipgloss.Left, title, tagline)
}

// viewResults renders whatever the search state prescribes: exactly one of
// a hint, a loading spinner, an error banner, an empty state or the list of
// itinerary cards.
func (m *model) viewResults() string {
	state := m.session.State()

	switch state.Status {
	case internal.StatusIdle:
		return m.baseStyle.Foreground(m.theme.Secondary).
			Render("Enter a route and date, then press enter to search.")
	case internal.StatusLoading:
		return m.spinner.View() + " Searching…"
	case internal.StatusError:
		return m.viewErrorBanner(state.Message)
	case internal.StatusSuccess:
		if len(state.Itineraries) == 0 {
			return m.viewEmptyState(state.Origin, state.Destination)
		}

		return m.viewResultsList(state.Itineraries)
	}

	return ""
}
