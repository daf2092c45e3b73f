package analyzer

import (
	"math"
	"sort"
	"strings"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

// RecentlyAdded lists records whose added-date falls within the trailing
// window of the given length ending at the analyzer's reference date.
// Records with an absent or unparseable added-date are excluded, not
// errored.
func (a *Analyzer) RecentlyAdded(years int) []TitleRow {
	var out []TitleRow
	for _, rec := range a.records {
		added, ok := catalog.ParseAdded(rec.DateAdded)
		if !ok {
			continue
		}
		if a.withinWindow(added, years) {
			out = append(out, TitleRow{Kind: string(rec.Kind), Title: rec.Title})
		}
	}
	return out
}

// CountryYearShare computes, for records whose country equals the given
// country exactly, each calendar year's share of that country's total
// additions, as a percentage rounded to two decimals. Rows are ordered
// descending by percentage (year ascending on ties) and truncated to top.
// Returns ErrNoCountryMatches when no record matches the country, so the
// zero denominator is surfaced instead of divided by.
func (a *Analyzer) CountryYearShare(country string, top int) ([]YearShare, error) {
	country = strings.TrimSpace(country)

	// Denominator counts only records that land in a year bucket, so the
	// shares across all years always sum to 100.
	perYear := make(map[int]int)
	total := 0
	for _, rec := range a.records {
		if rec.Country == nil || *rec.Country != country {
			continue
		}
		if year, ok := catalog.AddedYear(rec.DateAdded); ok {
			perYear[year]++
			total++
		}
	}

	if total == 0 {
		return nil, ErrNoCountryMatches
	}

	out := make([]YearShare, 0, len(perYear))
	for year, n := range perYear {
		pct := math.Round(float64(n)/float64(total)*100*100) / 100
		out = append(out, YearShare{Year: year, Count: n, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Year < out[j].Year
	})

	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out, nil
}

// ActorAppearances counts movies that feature the actor (case-insensitive
// substring of the cast list) and were added within the trailing window of
// the given length. Records with no cast or an unparseable added-date
// never match.
func (a *Analyzer) ActorAppearances(actor string, years int) int {
	needle := strings.ToLower(actor)
	count := 0
	for _, rec := range a.records {
		if rec.Kind != catalog.KindMovie || rec.Cast == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(*rec.Cast), needle) {
			continue
		}
		added, ok := catalog.ParseAdded(rec.DateAdded)
		if !ok {
			continue
		}
		if a.withinWindow(added, years) {
			count++
		}
	}
	return count
}
