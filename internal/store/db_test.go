package store

import (
	"testing"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return s
}

func sp(s string) *string {
	return &s
}

func TestInsertAndListTitles(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	rec := catalog.Record{
		ID:          "s1",
		Kind:        catalog.KindMovie,
		Title:       "Dust Road",
		Director:    sp("Ana Obi"),
		Cast:        sp("Ravi Kumar, Mira Sen"),
		Country:     sp("India"),
		DateAdded:   sp("June 1, 2020"),
		ReleaseYear: 2020,
		Rating:      sp("PG-13"),
		Duration:    "90 min",
		Genres:      "Dramas",
		Description: "A quiet family drama.",
	}

	if err := s.InsertTitle(&rec); err != nil {
		t.Fatalf("failed to insert title: %v", err)
	}

	records, err := s.ListTitles()
	if err != nil {
		t.Fatalf("failed to list titles: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.ID != rec.ID || got.Kind != rec.Kind || got.Title != rec.Title {
		t.Errorf("round trip changed identity fields: %+v", got)
	}
	if got.Director == nil || *got.Director != "Ana Obi" {
		t.Errorf("round trip lost director: %v", got.Director)
	}
	if got.ReleaseYear != 2020 || got.Duration != "90 min" {
		t.Errorf("round trip changed year/duration: %+v", got)
	}
}

func TestAbsentFieldsSurviveRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	rec := catalog.Record{
		ID:          "s2",
		Kind:        catalog.KindTVShow,
		Title:       "Static",
		ReleaseYear: 2021,
		Duration:    "1 Season",
		Genres:      "TV Comedies",
	}

	if err := s.InsertTitle(&rec); err != nil {
		t.Fatalf("failed to insert title: %v", err)
	}

	records, err := s.ListTitles()
	if err != nil {
		t.Fatalf("failed to list titles: %v", err)
	}

	got := records[0]
	if got.Director != nil {
		t.Errorf("absent director came back as %q", *got.Director)
	}
	if got.Cast != nil || got.Country != nil || got.DateAdded != nil || got.Rating != nil {
		t.Errorf("absent optional fields came back non-nil: %+v", got)
	}
}

func TestInsertTitle_ReplacesOnSameID(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	rec := catalog.Record{ID: "s1", Kind: catalog.KindMovie, Title: "First", ReleaseYear: 2000, Duration: "90 min", Genres: "Dramas"}
	if err := s.InsertTitle(&rec); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	rec.Title = "Second"
	if err := s.InsertTitle(&rec); err != nil {
		t.Fatalf("failed to re-insert: %v", err)
	}

	n, err := s.CountTitles()
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 record after replace, got %d", n)
	}

	records, _ := s.ListTitles()
	if records[0].Title != "Second" {
		t.Errorf("expected replaced title, got %q", records[0].Title)
	}
}

func TestReplaceTitles(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	old := catalog.Record{ID: "old", Kind: catalog.KindMovie, Title: "Old", ReleaseYear: 1990, Duration: "90 min", Genres: "Dramas"}
	if err := s.InsertTitle(&old); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	fresh := []catalog.Record{
		{ID: "a", Kind: catalog.KindMovie, Title: "A", ReleaseYear: 2020, Duration: "100 min", Genres: "Dramas"},
		{ID: "b", Kind: catalog.KindTVShow, Title: "B", ReleaseYear: 2021, Duration: "2 Seasons", Genres: "TV Dramas"},
	}
	if err := s.ReplaceTitles(fresh); err != nil {
		t.Fatalf("ReplaceTitles failed: %v", err)
	}

	records, err := s.ListTitles()
	if err != nil {
		t.Fatalf("failed to list titles: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after replace, got %d", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("insertion order not preserved: %+v", records)
	}
}

func TestListTitles_Empty(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	records, err := s.ListTitles()
	if err != nil {
		t.Fatalf("failed to list titles: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty list, got %d records", len(records))
	}
}
