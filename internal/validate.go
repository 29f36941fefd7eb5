package internal

import (
	"fmt"
	"strings"
)

// Field keys under which validation errors are reported.
const (
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldDate        = "date"
)

const iataCodeLen = 3

// NormalizeCode trims and uppercases a candidate airport code. Validation and
// submission both work on the normalized form, so what gets validated is
// exactly what gets sent.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks a candidate search against the input rules and returns a
// field-keyed error map. An empty map means the input may be submitted.
// All rules are evaluated; errors are collected, not short-circuited.
// Code-existence checks run only when the known set is populated, since the
// directory fetch is best-effort and must not block searching.
func Validate(origin, destination, date string, known CodeSet) map[string]string {
	errs := make(map[string]string)

	normOrigin := NormalizeCode(origin)
	normDest := NormalizeCode(destination)

	validateCode(errs, FieldOrigin, "Origin", normOrigin, known)
	validateCode(errs, FieldDestination, "Destination", normDest, known)

	if isIataCode(normOrigin) && isIataCode(normDest) && normOrigin == normDest {
		errs[FieldDestination] = "Destination must differ from origin"
	}

	if strings.TrimSpace(date) == "" {
		errs[FieldDate] = "Date is required"
	}

	return errs
}

func validateCode(errs map[string]string, field, label, code string, known CodeSet) {
	switch {
	case code == "":
		errs[field] = label + " is required"
	case !isIataCode(code):
		errs[field] = "Enter a valid 3-letter airport code"
	case len(known) > 0 && !known.Has(code):
		errs[field] = fmt.Sprintf("Airport %q not found", code)
	}
}

// isIataCode reports whether code consists of exactly three uppercase ASCII
// letters.
func isIataCode(code string) bool {
	if len(code) != iataCodeLen {
		return false
	}

	for _, char := range code {
		if char < 'A' || char > 'Z' {
			return false
		}
	}

	return true
}
