package internal

// Airport is one entry of the remote airport directory.
type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// CodeSet holds the codes of all known airports. The directory is fetched
// once per session and replaced wholesale, never mutated entry by entry.
// An empty set means the directory is unavailable and code-existence
// checking is skipped.
type CodeSet map[string]struct{}

// CodesOf builds the code set of an airport directory snapshot.
func CodesOf(airports []Airport) CodeSet {
	codes := make(CodeSet, len(airports))
	for _, airport := range airports {
		codes[airport.Code] = struct{}{}
	}

	return codes
}

// Has reports whether code is a member of the set.
func (c CodeSet) Has(code string) bool {
	_, ok := c[code]

	return ok
}
