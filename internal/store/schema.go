package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS datasets (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    row_count            INTEGER NOT NULL,
    loaded_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dataset_columns (
    file_path            TEXT NOT NULL REFERENCES datasets(file_path) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    kind                 INTEGER NOT NULL,
    values_json          TEXT NOT NULL,
    PRIMARY KEY (file_path, position)
);

CREATE INDEX IF NOT EXISTS idx_datasets_loaded ON datasets(loaded_at);
`
