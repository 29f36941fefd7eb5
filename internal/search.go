package internal

// Status enumerates the states of the search lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// SearchRequest is one validated search. Construct it only after Validate
// returned no errors; its fields hold the normalized codes.
type SearchRequest struct {
	Origin      string
	Destination string
	Date        string
}

// State is the single source of truth for what the results area shows.
// Itineraries, Origin and Destination are set in StatusSuccess; Origin and
// Destination are kept so an empty result can still name the searched route.
// Message is set in StatusError.
type State struct {
	Status      Status
	Itineraries []Itinerary
	Origin      string
	Destination string
	Message     string
}

// Session drives search requests through their lifecycle. It accepts one
// in-flight search at a time: submission is rejected while loading, and a
// resolution is applied only when it carries the sequence number of the most
// recent submission, so a stale response can never overwrite a newer one.
//
// Session is not safe for concurrent use; it is driven from a single event
// loop.
type Session struct {
	state State
	seq   int
}

// NewSession returns a session in the idle state.
func NewSession() *Session {
	return &Session{state: State{Status: StatusIdle}}
}

// State returns the current state for rendering.
func (s *Session) State() State {
	return s.state
}

// Submit moves the session into loading and returns the sequence number the
// eventual resolution must carry. It reports false while a search is
// outstanding.
func (s *Session) Submit(req SearchRequest) (int, bool) {
	if s.state.Status == StatusLoading {
		return 0, false
	}

	s.seq++
	s.state = State{
		Status:      StatusLoading,
		Origin:      req.Origin,
		Destination: req.Destination,
	}

	return s.seq, true
}

// Resolve applies the outcome of the search submitted under seq and reports
// whether a transition happened. Resolutions carrying any other sequence
// number are stale and discarded. The error is treated as opaque: only its
// message travels into the state.
func (s *Session) Resolve(seq int, result *SearchResult, err error) bool {
	if s.state.Status != StatusLoading || seq != s.seq {
		return false
	}

	if err != nil {
		s.state = State{Status: StatusError, Message: err.Error()}

		return true
	}

	s.state = State{
		Status:      StatusSuccess,
		Itineraries: result.Itineraries,
		Origin:      s.state.Origin,
		Destination: s.state.Destination,
	}

	return true
}

// Dismiss clears a displayed error and returns to idle. It is the only
// transition that clears an error.
func (s *Session) Dismiss() bool {
	if s.state.Status != StatusError {
		return false
	}

	s.state = State{Status: StatusIdle}

	return true
}
