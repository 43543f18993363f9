package ingest

import (
	"encoding/csv"
	"io"

	"findash/internal/dataset"
)

// loadCSV parses comma-delimited data where the first row names the columns.
func loadCSV(path string, r io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Path: path, Err: io.ErrUnexpectedEOF}
	}

	ds, err := dataset.FromRows(records[0], records[1:])
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return ds, nil
}
