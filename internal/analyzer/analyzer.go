// Package analyzer computes the fifteen catalog reports. Every report is a
// pure function over the loaded record slice: no report mutates the
// records, and re-running a report on an unchanged catalog yields
// identical output.
package analyzer

import (
	"time"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

// Default parameters for the windowed and top-N reports.
const (
	DefaultRecentYears   = 5
	DefaultSeasonCutoff  = 5
	DefaultActorYears    = 10
	DefaultCountryTop    = 5
	DefaultYearShareTop  = 5
	DefaultTopActors     = 10
	DefaultShareCountry  = "India"
	DefaultDocumentaries = "documentaries"
)

// Analyzer runs reports over an in-memory catalog. asOf is the reference
// "today" for the recency-windowed reports, injected so results are
// deterministic and testable.
type Analyzer struct {
	records []catalog.Record
	asOf    time.Time
}

// New creates an Analyzer over the given records. asOf anchors the
// date-windowed reports.
func New(records []catalog.Record, asOf time.Time) *Analyzer {
	return &Analyzer{records: records, asOf: asOf}
}

// Records returns the underlying catalog slice.
func (a *Analyzer) Records() []catalog.Record {
	return a.records
}

// withinWindow reports whether t falls inside the trailing window of the
// given length ending at asOf. The lower bound is inclusive: a record
// dated exactly asOf minus the window is in.
func (a *Analyzer) withinWindow(t time.Time, years int) bool {
	start := a.asOf.AddDate(-years, 0, 0)
	return !t.Before(start) && !t.After(a.asOf)
}
