package ingest

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor PDF.
var ErrUnsupportedFormat = errors.New("unsupported file format: upload a CSV or PDF file")

// ErrNoTablesFound is returned when a PDF parses cleanly but contains no
// tabular content.
var ErrNoTablesFound = errors.New("no tables found in the PDF")

// ParseError wraps a failure from an underlying parser.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaMismatchError reports incompatible column sets across tables
// extracted from one PDF.
type SchemaMismatchError struct {
	Page     int
	Expected int
	Actual   int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("table on page %d has %d columns, expected %d", e.Page, e.Actual, e.Expected)
}
