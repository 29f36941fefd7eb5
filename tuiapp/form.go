package tuiapp

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const numFields = 3

const (
	fieldOriginIdx = iota
	fieldDestinationIdx
	fieldDateIdx
)

// searchForm holds the three input fields of the search form and their focus
// state. It knows nothing about validation; the model validates on submit.
type searchForm struct {
	inputs  [numFields]textinput.Model
	focused int
}

func newSearchForm() searchForm {
	origin := textinput.New()
	origin.Placeholder = "JFK"
	origin.CharLimit = 3
	origin.Width = 6
	origin.Focus()

	destination := textinput.New()
	destination.Placeholder = "LAX"
	destination.CharLimit = 3
	destination.Width = 6

	date := textinput.New()
	date.Placeholder = "2025-06-01"
	date.CharLimit = 10
	date.Width = 12

	return searchForm{inputs: [numFields]textinput.Model{origin, destination, date}}
}

func (f *searchForm) origin() string {
	return f.inputs[fieldOriginIdx].Value()
}

func (f *searchForm) destination() string {
	return f.inputs[fieldDestinationIdx].Value()
}

func (f *searchForm) date() string {
	return strings.TrimSpace(f.inputs[fieldDateIdx].Value())
}

// focusNext moves the focus by step fields, wrapping around.
func (f *searchForm) focusNext(step int) {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + step + numFields) % numFields
	f.inputs[f.focused].Focus()
}

// swap exchanges origin and destination, mirroring the swap control next to
// the code fields in the web client.
func (f *searchForm) swap() {
	originValue := f.inputs[fieldOriginIdx].Value()
	f.inputs[fieldOriginIdx].SetValue(f.inputs[fieldDestinationIdx].Value())
	f.inputs[fieldDestinationIdx].SetValue(originValue)
}

// update forwards a message to all fields and keeps the code fields
// uppercase while the user types.
func (f *searchForm) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, numFields)
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}

	for _, idx := range []int{fieldOriginIdx, fieldDestinationIdx} {
		value := f.inputs[idx].Value()
		if upper := strings.ToUpper(value); upper != value {
			f.inputs[idx].SetValue(upper)
		}
	}

	return tea.Batch(cmds...)
}
