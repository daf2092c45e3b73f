package analyzer

import (
	"testing"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

func TestMoviesReleasedIn(t *testing.T) {
	a := newTestAnalyzer()

	got := a.MoviesReleasedIn(2020)
	if len(got) != 1 {
		t.Fatalf("expected 1 movie for 2020, got %d", len(got))
	}
	if got[0].Title != "Dust Road" || got[0].Kind != "Movie" {
		t.Errorf("unexpected row: %+v", got[0])
	}

	// A TV show released that year must not appear.
	if got := a.MoviesReleasedIn(2016); len(got) != 0 {
		t.Errorf("expected no movies for 2016, got %v", got)
	}
}

func TestLongestMovies(t *testing.T) {
	a := newTestAnalyzer()

	got := a.LongestMovies()
	if len(got) != 1 {
		t.Fatalf("expected 1 movie, got %v", got)
	}
	// Durations 90, 312, 45 — max is 312.
	if got[0].Title != "Night Market" || got[0].Minutes != 312 {
		t.Errorf("unexpected longest movie: %+v", got[0])
	}
}

func TestLongestMovies_TiesIncluded(t *testing.T) {
	records := []catalog.Record{
		{ID: "a", Kind: catalog.KindMovie, Title: "A", Duration: "120 min"},
		{ID: "b", Kind: catalog.KindMovie, Title: "B", Duration: "120 min"},
		{ID: "c", Kind: catalog.KindMovie, Title: "C", Duration: "90 min"},
		{ID: "d", Kind: catalog.KindMovie, Title: "D", Duration: "no digits"},
	}
	a := New(records, asOf)

	got := a.LongestMovies()
	if len(got) != 2 {
		t.Fatalf("expected both tied movies, got %v", got)
	}
	for _, m := range got {
		if m.Minutes != 120 {
			t.Errorf("movie %s has %d minutes, want 120", m.Title, m.Minutes)
		}
	}
}

func TestLongestMovies_AllUnparseable(t *testing.T) {
	records := []catalog.Record{
		{ID: "a", Kind: catalog.KindMovie, Title: "A", Duration: "unknown"},
	}
	a := New(records, asOf)
	if got := a.LongestMovies(); len(got) != 0 {
		t.Errorf("expected no rows when no duration parses, got %v", got)
	}
}

func TestByDirector(t *testing.T) {
	a := newTestAnalyzer()

	// Case-insensitive substring match.
	got := a.ByDirector("ana obi")
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %v", got)
	}

	got = a.ByDirector("Obi")
	if len(got) != 2 {
		t.Errorf("substring match failed, got %v", got)
	}

	// Absent directors never match, even on an empty needle.
	got = a.ByDirector("")
	for _, row := range got {
		if row.Title == "Paper Tigers" || row.Title == "Static" {
			t.Errorf("record without director matched: %+v", row)
		}
	}
}

func TestShowsWithMoreSeasons(t *testing.T) {
	a := newTestAnalyzer()

	// Harbor Lights has 7 seasons; Static's duration has no digits.
	got := a.ShowsWithMoreSeasons(5)
	if len(got) != 1 {
		t.Fatalf("expected 1 show, got %v", got)
	}
	if got[0].Title != "Harbor Lights" || got[0].Seasons != 7 {
		t.Errorf("unexpected row: %+v", got[0])
	}

	// Strictly greater: a cutoff equal to the season count excludes it.
	if got := a.ShowsWithMoreSeasons(7); len(got) != 0 {
		t.Errorf("cutoff 7 should exclude a 7-season show, got %v", got)
	}

	// End-to-end example: 3 Seasons with cutoff 2 is included.
	records := []catalog.Record{
		{ID: "a", Kind: catalog.KindMovie, Title: "M1", Country: sp("India"), Duration: "90 min"},
		{ID: "b", Kind: catalog.KindTVShow, Title: "T1", Country: sp("India,UK"), Duration: "3 Seasons"},
		{ID: "c", Kind: catalog.KindMovie, Title: "M2", Duration: "120 min"},
	}
	small := New(records, asOf)
	got = small.ShowsWithMoreSeasons(2)
	if len(got) != 1 || got[0].Title != "T1" {
		t.Errorf("expected T1 for cutoff 2, got %v", got)
	}
}

func TestDocumentaries(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Documentaries()
	if len(got) != 1 {
		t.Fatalf("expected 1 documentary, got %v", got)
	}
	if got[0].Title != "Paper Tigers" {
		t.Errorf("unexpected row: %+v", got[0])
	}
}

func TestDocumentaries_CaseInsensitiveSubstring(t *testing.T) {
	records := []catalog.Record{
		{ID: "a", Kind: catalog.KindMovie, Title: "A", Genres: "documentaries, Sports Movies", Duration: "80 min"},
	}
	a := New(records, asOf)
	if got := a.Documentaries(); len(got) != 1 {
		t.Errorf("lowercase genre tag should match, got %v", got)
	}
}

func TestMissingDirector(t *testing.T) {
	a := newTestAnalyzer()

	got := a.MissingDirector()
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %v", got)
	}
	titles := map[string]bool{got[0].Title: true, got[1].Title: true}
	if !titles["Paper Tigers"] || !titles["Static"] {
		t.Errorf("unexpected rows: %v", got)
	}
}
