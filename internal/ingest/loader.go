// Package ingest loads uploaded CSV and PDF files into tabular datasets.
package ingest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"findash/internal/dataset"
)

// Load reads the file at path and returns a typed dataset.
// Dispatch is by extension, case-insensitive: .csv and .pdf are accepted,
// anything else is ErrUnsupportedFormat.
func Load(path string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		defer f.Close()
		return loadCSV(path, f)
	case ".pdf":
		return loadPDFFile(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// LoadReader loads a dataset from an already-open reader. name is used for
// extension dispatch and error reporting, mirroring Load.
func LoadReader(name string, r io.Reader) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return loadCSV(name, r)
	case ".pdf":
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(r); err != nil {
			return nil, &ParseError{Path: name, Err: err}
		}
		return loadPDF(name, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	default:
		return nil, ErrUnsupportedFormat
	}
}
