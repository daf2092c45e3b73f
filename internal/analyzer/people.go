package analyzer

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

// TopCountries fans out the comma-separated country list, counts records
// per country, and returns the top n ordered descending by count with
// country name ascending as the tie-break, so output is deterministic.
func (a *Analyzer) TopCountries(top int) []NameCount {
	counts := make(map[string]int)
	for _, rec := range a.records {
		if rec.Country == nil {
			continue
		}
		for _, country := range catalog.SplitList(*rec.Country) {
			counts[country]++
		}
	}
	return topCounts(counts, top)
}

// TopActors counts movie appearances per cast member for movies matching
// the given country (case-insensitive substring of the country list), and
// returns the top n ordered descending by count with actor name ascending
// as the tie-break. The cut at n is hard; tied actors beyond it are
// dropped.
func (a *Analyzer) TopActors(country string, top int) []NameCount {
	needle := strings.ToLower(country)
	counts := make(map[string]int)
	for _, rec := range a.records {
		if rec.Kind != catalog.KindMovie || rec.Cast == nil || rec.Country == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(*rec.Country), needle) {
			continue
		}
		for _, actor := range catalog.SplitList(*rec.Cast) {
			counts[actor]++
		}
	}
	return topCounts(counts, top)
}

// topCounts orders an aggregation map descending by count, name ascending
// on ties, truncated to top entries.
func topCounts(counts map[string]int, top int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}
