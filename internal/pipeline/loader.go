// Package pipeline ties ingestion and the dataset cache together into the
// shared loading path used by every command.
package pipeline

import (
	"os"
	"time"

	"findash/internal/dataset"
	"findash/internal/ingest"
	"findash/internal/store"
)

// LoadResult holds the output of the data loading pipeline.
type LoadResult struct {
	Dataset   *dataset.Dataset
	FromCache bool
	Elapsed   time.Duration
}

// Load reads the file at path into a dataset, consulting the cache first
// when one is provided. Parsing a PDF can block for a while; cache hits
// skip it entirely. A cache write failure is not fatal and the parsed
// dataset is still returned.
func Load(path string, cache *store.Cache) (*LoadResult, error) {
	start := time.Now()

	var mtimeNs, size int64
	if fi, err := os.Stat(path); err == nil {
		mtimeNs = fi.ModTime().UnixNano()
		size = fi.Size()
	}

	if cache != nil {
		if ds, hit, err := cache.Get(path, mtimeNs, size); err == nil && hit {
			return &LoadResult{Dataset: ds, FromCache: true, Elapsed: time.Since(start)}, nil
		}
	}

	ds, err := ingest.Load(path)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		_ = cache.Put(path, mtimeNs, size, ds)
	}

	return &LoadResult{Dataset: ds, Elapsed: time.Since(start)}, nil
}
