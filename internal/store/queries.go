package store

import (
	"database/sql"
	"fmt"

	"github.com/blackwell-systems/streamlens/internal/catalog"
)

// InsertTitle inserts or replaces a catalog record. Absent optional fields
// are stored as SQL NULL, never as empty strings, so the absent state
// survives a round trip.
func (s *Store) InsertTitle(rec *catalog.Record) error {
	query := `
		INSERT OR REPLACE INTO titles
		(show_id, kind, title, director, cast_members, country, date_added, release_year, rating, duration, genres, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		rec.ID,
		string(rec.Kind),
		rec.Title,
		nullable(rec.Director),
		nullable(rec.Cast),
		nullable(rec.Country),
		nullable(rec.DateAdded),
		rec.ReleaseYear,
		nullable(rec.Rating),
		rec.Duration,
		rec.Genres,
		rec.Description,
	)

	if err != nil {
		return fmt.Errorf("failed to insert title %s: %w", rec.ID, err)
	}

	return nil
}

// ReplaceTitles clears the titles table and inserts the given records in a
// single transaction, so a failed import never leaves a half-written
// catalog behind.
func (s *Store) ReplaceTitles(records []catalog.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM titles`); err != nil {
		return fmt.Errorf("failed to clear titles: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO titles
		(show_id, kind, title, director, cast_members, country, date_added, release_year, rating, duration, genres, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		rec := &records[i]
		_, err := stmt.Exec(
			rec.ID,
			string(rec.Kind),
			rec.Title,
			nullable(rec.Director),
			nullable(rec.Cast),
			nullable(rec.Country),
			nullable(rec.DateAdded),
			rec.ReleaseYear,
			nullable(rec.Rating),
			rec.Duration,
			rec.Genres,
			rec.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert title %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	return nil
}

// ListTitles returns every stored record in insertion (rowid) order, the
// stable input order the reports rely on.
func (s *Store) ListTitles() ([]catalog.Record, error) {
	query := `
		SELECT show_id, kind, title, director, cast_members, country, date_added, release_year, rating, duration, genres, description
		FROM titles
		ORDER BY rowid
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var rec catalog.Record
		var kind string
		var director, cast, country, dateAdded, rating sql.NullString

		err := rows.Scan(
			&rec.ID,
			&kind,
			&rec.Title,
			&director,
			&cast,
			&country,
			&dateAdded,
			&rec.ReleaseYear,
			&rating,
			&rec.Duration,
			&rec.Genres,
			&rec.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan title row: %w", err)
		}

		rec.Kind = catalog.Kind(kind)
		rec.Director = fromNull(director)
		rec.Cast = fromNull(cast)
		rec.Country = fromNull(country)
		rec.DateAdded = fromNull(dateAdded)
		rec.Rating = fromNull(rating)

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating titles: %w", err)
	}

	return records, nil
}

// CountTitles returns the number of stored records.
func (s *Store) CountTitles() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM titles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count titles: %w", err)
	}
	return n, nil
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
