package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Expected header names in the source export. Column order is not assumed;
// fields are resolved by header name.
const (
	colID          = "show_id"
	colKind        = "type"
	colTitle       = "title"
	colDirector    = "director"
	colCast        = "cast"
	colCountry     = "country"
	colDateAdded   = "date_added"
	colReleaseYear = "release_year"
	colRating      = "rating"
	colDuration    = "duration"
	colGenres      = "listed_in"
	colDescription = "description"
)

// LoadCSV reads a catalog export from path and returns the parsed records.
// Rows with an unknown type value are skipped and reported in the second
// return; empty optional cells become nil pointers.
func LoadCSV(path string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// ReadRecords parses catalog records from r. The first row must be a
// header naming the twelve expected columns.
func ReadRecords(r io.Reader) ([]Record, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, validated per field below

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header row: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{colID, colKind, colTitle, colDuration} {
		if _, ok := idx[required]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q in header", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, name string) *string {
		v := field(row, name)
		if v == "" {
			return nil
		}
		return &v
	}

	var records []Record
	skipped := 0

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		kind, ok := parseKind(field(row, colKind))
		if !ok {
			skipped++
			continue
		}

		year, _ := strconv.Atoi(field(row, colReleaseYear))

		records = append(records, Record{
			ID:          field(row, colID),
			Kind:        kind,
			Title:       field(row, colTitle),
			Director:    optional(row, colDirector),
			Cast:        optional(row, colCast),
			Country:     optional(row, colCountry),
			DateAdded:   optional(row, colDateAdded),
			ReleaseYear: year,
			Rating:      optional(row, colRating),
			Duration:    field(row, colDuration),
			Genres:      field(row, colGenres),
			Description: field(row, colDescription),
		})
	}

	return records, skipped, nil
}

func parseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "movie":
		return KindMovie, true
	case "tv show", "tvshow", "tv_show":
		return KindTVShow, true
	default:
		return "", false
	}
}
