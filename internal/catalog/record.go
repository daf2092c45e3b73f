// Package catalog defines the media catalog record type and the parsing
// rules shared by every report: comma-list fan-out, duration extraction,
// and added-date parsing.
package catalog

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies whether a record is a movie or a TV show.
type Kind string

const (
	KindMovie  Kind = "Movie"
	KindTVShow Kind = "TV Show"
)

// Record is one row of the catalog dataset. Optional fields are pointers:
// nil means the source had no value, which is distinct from an empty string
// and must stay distinct downstream (a missing director is a valid state,
// not an error).
type Record struct {
	ID          string
	Kind        Kind
	Title       string
	Director    *string
	Cast        *string
	Country     *string
	DateAdded   *string
	ReleaseYear int
	Rating      *string
	Duration    string
	Genres      string
	Description string
}

// addedLayout is the single canonical layout for date_added values.
// Every date-windowed report parses through this one layout so the
// malformed-date policy is identical everywhere.
const addedLayout = "January 2, 2006"

// SplitList splits a comma-separated multi-valued field into trimmed
// tokens, dropping empties. A record with N countries contributes N
// independent entries to any per-value aggregation.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DurationValue extracts the numeric part of a duration string such as
// "90 min" or "3 Seasons" by stripping every non-digit rune. The second
// return is false when no digits survive; callers exclude those records
// from numeric comparisons instead of failing.
func DurationValue(s string) (int, bool) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseAdded parses a date_added value ("September 9, 2019", sometimes
// with stray leading spaces in real exports). Returns false for absent or
// malformed input; those records drop out of date-windowed reports.
func ParseAdded(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(addedLayout, strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddedYear returns the calendar year of a parseable date_added value.
func AddedYear(s *string) (int, bool) {
	t, ok := ParseAdded(s)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}
