package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reportTestCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,Dust Road,Ana Obi,"Ravi Kumar, Mira Sen",India,"June 1, 2020",2020,PG-13,90 min,Dramas,A quiet family drama.
s2,TV Show,Harbor Lights,Ben Ode,"Lena Park",United Kingdom,"September 25, 2016",2016,TV-14,7 Seasons,TV Dramas,Storms test a small port town.
`

func writeReportCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(reportTestCSV), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestGetDBPath_FlagWins(t *testing.T) {
	dbPath = "/tmp/custom.db"
	defer func() { dbPath = "" }()

	got, err := getDBPath()
	if err != nil {
		t.Fatalf("getDBPath failed: %v", err)
	}
	if got != "/tmp/custom.db" {
		t.Errorf("expected flag value, got %q", got)
	}
}

func TestGetDBPath_EnvFallback(t *testing.T) {
	dbPath = ""
	t.Setenv("STREAMLENS_DB", "/tmp/env.db")

	got, err := getDBPath()
	if err != nil {
		t.Fatalf("getDBPath failed: %v", err)
	}
	if got != "/tmp/env.db" {
		t.Errorf("expected env value, got %q", got)
	}
}

func TestNewReportAnalyzer_FromCSV(t *testing.T) {
	reportCSV = writeReportCSV(t)
	reportAsOf = "2021-09-25"
	defer func() {
		reportCSV = ""
		reportAsOf = ""
	}()

	a, err := newReportAnalyzer()
	if err != nil {
		t.Fatalf("newReportAnalyzer failed: %v", err)
	}

	counts := a.TypeCounts()
	if len(counts) != 2 {
		t.Fatalf("expected 2 kinds, got %v", counts)
	}
	if counts[0].Kind != "Movie" || counts[0].Count != 1 {
		t.Errorf("unexpected first row: %+v", counts[0])
	}

	// asOf anchoring: the boundary record from 2016-09-25 is inside a
	// 5-year window ending 2021-09-25.
	if got := a.RecentlyAdded(5); len(got) != 2 {
		t.Errorf("expected both records in window, got %v", got)
	}
}

func TestNewReportAnalyzer_BadAsOf(t *testing.T) {
	reportCSV = writeReportCSV(t)
	reportAsOf = "25/09/2021"
	defer func() {
		reportCSV = ""
		reportAsOf = ""
	}()

	_, err := newReportAnalyzer()
	if err == nil {
		t.Fatal("expected error for malformed --as-of")
	}
	if !strings.Contains(err.Error(), "as-of") {
		t.Errorf("error should mention the flag, got: %v", err)
	}
}

func TestNewReportAnalyzer_EmptyCatalog(t *testing.T) {
	reportCSV = ""
	dbPath = filepath.Join(t.TempDir(), "empty.db")
	defer func() { dbPath = "" }()

	// A fresh database has no titles table rows; the analyzer refuses to
	// run reports over nothing.
	_, err := newReportAnalyzer()
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
