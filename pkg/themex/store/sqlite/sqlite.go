package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/themex/pkg/themex/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and the schema
// initialized.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	created_at TEXT NOT NULL,
	unique_terms INTEGER NOT NULL,
	total_terms INTEGER NOT NULL,
	payload BLOB
);

CREATE TABLE IF NOT EXISTS analysis_themes (
	analysis_id TEXT NOT NULL,
	term TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	PRIMARY KEY(analysis_id, term),
	FOREIGN KEY(analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source_file);
CREATE INDEX IF NOT EXISTS idx_themes_term ON analysis_themes(term);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveAnalysis inserts or replaces an analysis record
func (s *sqliteStore) SaveAnalysis(ctx context.Context, a store.Analysis) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO analyses (id, source_file, created_at, unique_terms, total_terms, payload)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source_file=excluded.source_file,
	created_at=excluded.created_at,
	unique_terms=excluded.unique_terms,
	total_terms=excluded.total_terms,
	payload=excluded.payload;`

	if _, err := tx.ExecContext(ctx, stmt,
		a.ID, a.SourceFile, a.CreatedAt.UTC().Format(time.RFC3339Nano),
		a.UniqueTerms, a.TotalTerms, a.Payload); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM analysis_themes WHERE analysis_id = ?", a.ID); err != nil {
		return err
	}
	for _, th := range a.Themes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO analysis_themes (analysis_id, term, frequency) VALUES (?, ?, ?)",
			a.ID, th.Term, th.Frequency); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetAnalysis returns the record with the given id
func (s *sqliteStore) GetAnalysis(ctx context.Context, id string) (store.Analysis, bool, error) {
	const stmt = `
SELECT id, source_file, created_at, unique_terms, total_terms, payload
FROM analyses WHERE id = ?`

	var a store.Analysis
	var createdAt string
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&a.ID, &a.SourceFile, &createdAt, &a.UniqueTerms, &a.TotalTerms, &a.Payload)
	if err == sql.ErrNoRows {
		return store.Analysis{}, false, nil
	}
	if err != nil {
		return store.Analysis{}, false, err
	}

	a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Analysis{}, false, err
	}

	a.Themes, err = s.loadThemes(ctx, id)
	if err != nil {
		return store.Analysis{}, false, err
	}

	return a, true, nil
}

func (s *sqliteStore) loadThemes(ctx context.Context, id string) ([]store.ThemeEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT term, frequency FROM analysis_themes WHERE analysis_id = ? ORDER BY rowid", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []store.ThemeEntry
	for rows.Next() {
		var th store.ThemeEntry
		if err := rows.Scan(&th.Term, &th.Frequency); err != nil {
			return nil, err
		}
		themes = append(themes, th)
	}
	return themes, rows.Err()
}

// ListAnalyses returns up to limit records ordered by creation time, then id
func (s *sqliteStore) ListAnalyses(ctx context.Context, limit int) ([]store.Analysis, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, source_file, created_at, unique_terms, total_terms, payload
FROM analyses ORDER BY created_at, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Analysis
	for rows.Next() {
		var a store.Analysis
		var createdAt string
		if err := rows.Scan(&a.ID, &a.SourceFile, &createdAt,
			&a.UniqueTerms, &a.TotalTerms, &a.Payload); err != nil {
			return nil, err
		}
		a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Themes, err = s.loadThemes(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// TopThemes aggregates dominant-theme frequencies across the archive
func (s *sqliteStore) TopThemes(ctx context.Context, limit int) ([]store.ThemeTotal, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT term, SUM(frequency) AS total
FROM analysis_themes
GROUP BY term
ORDER BY total DESC, term ASC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.ThemeTotal
	for rows.Next() {
		var tt store.ThemeTotal
		if err := rows.Scan(&tt.Term, &tt.TotalFrequency); err != nil {
			return nil, err
		}
		out = append(out, tt)
	}
	return out, rows.Err()
}
