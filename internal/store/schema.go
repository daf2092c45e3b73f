package store

const schema = `
CREATE TABLE IF NOT EXISTS titles (
    show_id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    title TEXT NOT NULL,
    director TEXT,
    cast_members TEXT,
    country TEXT,
    date_added TEXT,
    release_year INTEGER NOT NULL,
    rating TEXT,
    duration TEXT NOT NULL,
    genres TEXT NOT NULL,
    description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_titles_kind ON titles(kind);
CREATE INDEX IF NOT EXISTS idx_titles_release_year ON titles(release_year);
`
