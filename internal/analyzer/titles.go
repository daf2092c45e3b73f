package analyzer

import (
	"strings"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

// MoviesReleasedIn lists every movie released in the given year, in
// catalog order.
func (a *Analyzer) MoviesReleasedIn(year int) []TitleRow {
	var out []TitleRow
	for _, rec := range a.records {
		if rec.Kind == catalog.KindMovie && rec.ReleaseYear == year {
			out = append(out, TitleRow{Kind: string(rec.Kind), Title: rec.Title})
		}
	}
	return out
}

// LongestMovies returns the movie(s) with the maximum extracted runtime.
// Ties are all included; movies whose duration has no extractable digits
// are excluded from the comparison.
func (a *Analyzer) LongestMovies() []MovieRuntime {
	max := -1
	var out []MovieRuntime
	for _, rec := range a.records {
		if rec.Kind != catalog.KindMovie {
			continue
		}
		minutes, ok := catalog.DurationValue(rec.Duration)
		if !ok {
			continue
		}
		switch {
		case minutes > max:
			max = minutes
			out = out[:0]
			out = append(out, MovieRuntime{Title: rec.Title, Minutes: minutes})
		case minutes == max:
			out = append(out, MovieRuntime{Title: rec.Title, Minutes: minutes})
		}
	}
	return out
}

// ByDirector lists records whose director contains name as a
// case-insensitive substring. Records without a director never match.
func (a *Analyzer) ByDirector(name string) []TitleRow {
	needle := strings.ToLower(name)
	var out []TitleRow
	for _, rec := range a.records {
		if rec.Director == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*rec.Director), needle) {
			out = append(out, TitleRow{Kind: string(rec.Kind), Title: rec.Title})
		}
	}
	return out
}

// ShowsWithMoreSeasons lists TV shows with strictly more than cutoff
// seasons. Shows whose duration has no extractable digits are excluded.
func (a *Analyzer) ShowsWithMoreSeasons(cutoff int) []ShowSeasons {
	var out []ShowSeasons
	for _, rec := range a.records {
		if rec.Kind != catalog.KindTVShow {
			continue
		}
		seasons, ok := catalog.DurationValue(rec.Duration)
		if !ok {
			continue
		}
		if seasons > cutoff {
			out = append(out, ShowSeasons{Title: rec.Title, Seasons: seasons})
		}
	}
	return out
}

// Documentaries lists movies whose genre list mentions documentaries,
// matched case-insensitively as a substring.
func (a *Analyzer) Documentaries() []TitleRow {
	var out []TitleRow
	for _, rec := range a.records {
		if rec.Kind != catalog.KindMovie {
			continue
		}
		if strings.Contains(strings.ToLower(rec.Genres), DefaultDocumentaries) {
			out = append(out, TitleRow{Kind: string(rec.Kind), Title: rec.Title})
		}
	}
	return out
}

// MissingDirector lists every record with no director recorded.
func (a *Analyzer) MissingDirector() []TitleRow {
	var out []TitleRow
	for _, rec := range a.records {
		if rec.Director == nil {
			out = append(out, TitleRow{Kind: string(rec.Kind), Title: rec.Title})
		}
	}
	return out
}
