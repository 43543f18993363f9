// Package store provides a SQLite-backed cache for loaded datasets.
// PDF extraction is the slow path; caching by file identity lets repeated
// commands against an unchanged file skip the re-parse.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"findash/internal/dataset"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed dataset caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// CachePath returns the default cache database location.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "findash", "datasets.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "findash", "datasets.db")
}

// Get returns the cached dataset for path if its recorded mtime and size
// still match, or (nil, false) on a miss.
func (c *Cache) Get(path string, mtimeNs, sizeBytes int64) (*dataset.Dataset, bool, error) {
	var storedMtime, storedSize int64
	err := c.db.QueryRow(
		"SELECT mtime_ns, size_bytes FROM datasets WHERE file_path = ?", path,
	).Scan(&storedMtime, &storedSize)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if storedMtime != mtimeNs || storedSize != sizeBytes {
		return nil, false, nil
	}

	rows, err := c.db.Query(
		"SELECT name, kind, values_json FROM dataset_columns WHERE file_path = ? ORDER BY position", path,
	)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = rows.Close() }()

	ds := &dataset.Dataset{}
	for rows.Next() {
		var name, valuesJSON string
		var kind int
		if err := rows.Scan(&name, &kind, &valuesJSON); err != nil {
			return nil, false, err
		}
		var values []string
		if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
			return nil, false, fmt.Errorf("decoding cached column %s: %w", name, err)
		}
		ds.Columns = append(ds.Columns, dataset.RestoreColumn(name, dataset.Kind(kind), values))
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(ds.Columns) == 0 {
		return nil, false, nil
	}
	return ds, true, nil
}

// Put stores a dataset along with the source file's identity.
func (c *Cache) Put(path string, mtimeNs, sizeBytes int64, ds *dataset.Dataset) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO datasets
		(file_path, mtime_ns, size_bytes, row_count, loaded_at)
		VALUES (?, ?, ?, ?, ?)`,
		path, mtimeNs, sizeBytes, ds.RowCount(), now,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM dataset_columns WHERE file_path = ?", path); err != nil {
		return err
	}

	for i, col := range ds.Columns {
		valuesJSON, err := json.Marshal(col.Values)
		if err != nil {
			return fmt.Errorf("encoding column %s: %w", col.Name, err)
		}
		_, err = tx.Exec(`INSERT INTO dataset_columns
			(file_path, position, name, kind, values_json)
			VALUES (?, ?, ?, ?, ?)`,
			path, i, col.Name, int(col.Kind), string(valuesJSON),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Evict drops the cached dataset for a file, if any.
func (c *Cache) Evict(path string) error {
	_, err := c.db.Exec("DELETE FROM datasets WHERE file_path = ?", path)
	return err
}
