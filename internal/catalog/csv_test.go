package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,,United States,"September 25, 2021",2020,PG-13,90 min,Documentaries,As her father nears the end of his life.
s2,TV Show,Blood & Water,,"Ama Qamata, Khosi Ngema",South Africa,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, TV Dramas",After crossing paths at a party.
s3,Movie,Sankofa,Haile Gerima,"Kofi Ghanaba, Oyafunmike Ogunlano","United States, Ghana",not a date,1993,TV-MA,125 min,"Dramas, Independent Movies",On a photo shoot in Ghana.
s4,Unknown,Mystery Row,,,,,2000,,10 min,Dramas,Should be skipped.
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFixture(t, testCSV)

	records, skipped, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", skipped)
	}

	first := records[0]
	if first.ID != "s1" {
		t.Errorf("expected ID s1, got %s", first.ID)
	}
	if first.Kind != KindMovie {
		t.Errorf("expected kind %s, got %s", KindMovie, first.Kind)
	}
	if first.ReleaseYear != 2020 {
		t.Errorf("expected release year 2020, got %d", first.ReleaseYear)
	}
	if first.Director == nil || *first.Director != "Kirsten Johnson" {
		t.Errorf("expected director Kirsten Johnson, got %v", first.Director)
	}

	// Empty cast cell must become absent, not "".
	if first.Cast != nil {
		t.Errorf("expected absent cast, got %q", *first.Cast)
	}

	second := records[1]
	if second.Kind != KindTVShow {
		t.Errorf("expected kind %s, got %s", KindTVShow, second.Kind)
	}
	if second.Director != nil {
		t.Errorf("expected absent director, got %q", *second.Director)
	}
	if second.Cast == nil || *second.Cast != "Ama Qamata, Khosi Ngema" {
		t.Errorf("unexpected cast: %v", second.Cast)
	}

	// Malformed date survives loading; date-windowed reports exclude it later.
	third := records[2]
	if third.DateAdded == nil || *third.DateAdded != "not a date" {
		t.Errorf("unexpected date_added: %v", third.DateAdded)
	}
	if _, ok := ParseAdded(third.DateAdded); ok {
		t.Error("malformed date parsed, want failure")
	}
}

func TestReadRecords_MissingRequiredColumn(t *testing.T) {
	_, _, err := ReadRecords(strings.NewReader("title,director\nSomething,Someone\n"))
	if err == nil {
		t.Fatal("expected error for missing required columns")
	}
	if !strings.Contains(err.Error(), "show_id") {
		t.Errorf("error should name the missing column, got: %v", err)
	}
}

func TestReadRecords_HeaderCaseInsensitive(t *testing.T) {
	csv := "Show_ID,Type,Title,Duration\ns1,Movie,Example,95 min\n"
	records, _, err := ReadRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Example" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
