package analyzer

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

// TypeCounts groups the catalog by kind and counts records, ordered
// ascending by kind name. The counts always sum to the record total.
func (a *Analyzer) TypeCounts() []KindCount {
	counts := make(map[string]int)
	for _, rec := range a.records {
		counts[string(rec.Kind)]++
	}

	out := make([]KindCount, 0, len(counts))
	for kind, n := range counts {
		out = append(out, KindCount{Kind: kind, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// TopRatings returns, for each kind, the rating(s) with the highest record
// count. Ties are all included rather than picking an arbitrary winner.
// Records without a rating are not counted.
func (a *Analyzer) TopRatings() []KindRating {
	type key struct {
		kind   string
		rating string
	}
	counts := make(map[key]int)
	for _, rec := range a.records {
		if rec.Rating == nil {
			continue
		}
		counts[key{string(rec.Kind), *rec.Rating}]++
	}

	best := make(map[string]int)
	for k, n := range counts {
		if n > best[k.kind] {
			best[k.kind] = n
		}
	}

	var out []KindRating
	for k, n := range counts {
		if n == best[k.kind] {
			out = append(out, KindRating{Kind: k.kind, Rating: k.rating, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Rating < out[j].Rating
	})
	return out
}

// GenreCounts fans out the comma-separated genre list and counts records
// per genre, ordered ascending by genre name.
func (a *Analyzer) GenreCounts() []NameCount {
	counts := make(map[string]int)
	for _, rec := range a.records {
		for _, genre := range catalog.SplitList(rec.Genres) {
			counts[genre]++
		}
	}

	out := make([]NameCount, 0, len(counts))
	for genre, n := range counts {
		out = append(out, NameCount{Name: genre, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// toneKeywords mark a description as "Bad" content.
var toneKeywords = []string{"kill", "violence", "violent", "killed"}

// ToneBreakdown classifies every record as "Bad" when its description
// mentions any violence keyword, else "Good", and counts per category.
// Every record lands in exactly one bucket, so the two counts always sum
// to the record total; an empty description is "Good".
func (a *Analyzer) ToneBreakdown() []CategoryCount {
	good, bad := 0, 0
	for _, rec := range a.records {
		desc := strings.ToLower(rec.Description)
		matched := false
		for _, kw := range toneKeywords {
			if strings.Contains(desc, kw) {
				matched = true
				break
			}
		}
		if matched {
			bad++
		} else {
			good++
		}
	}
	return []CategoryCount{
		{Category: "Bad", Count: bad},
		{Category: "Good", Count: good},
	}
}
