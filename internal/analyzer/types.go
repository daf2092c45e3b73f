package analyzer

import "errors"

// ErrNoCountryMatches is returned by CountryYearShare when no record's
// country equals the requested country, i.e. the share denominator would
// be zero.
var ErrNoCountryMatches = errors.New("no records match the requested country")

// KindCount is one row of the type-count report.
type KindCount struct {
	Kind  string
	Count int
}

// KindRating is one row of the most-common-rating report. A kind appears
// more than once when several ratings tie at the maximum count.
type KindRating struct {
	Kind   string
	Rating string
	Count  int
}

// TitleRow is a (kind, title) result row.
type TitleRow struct {
	Kind  string
	Title string
}

// MovieRuntime pairs a movie title with its extracted runtime in minutes.
type MovieRuntime struct {
	Title   string
	Minutes int
}

// ShowSeasons pairs a TV show title with its extracted season count.
type ShowSeasons struct {
	Title   string
	Seasons int
}

// NameCount is a generic (name, count) aggregation row, used by the
// country, genre and actor reports.
type NameCount struct {
	Name  string
	Count int
}

// YearShare is one row of the per-year content share report.
type YearShare struct {
	Year    int
	Count   int
	Percent float64
}

// CategoryCount is one row of the keyword categorization report.
type CategoryCount struct {
	Category string
	Count    int
}
