package ingest

import (
	"io"

	"github.com/ledongthuc/pdf"

	"findash/internal/dataset"
)

// minCellGap is the horizontal whitespace, in PDF points, that separates
// two cells within a table row. Word spacing inside a cell stays well
// under this.
const minCellGap = 12.0

func loadPDFFile(path string) (*dataset.Dataset, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()
	return extractTables(path, r)
}

func loadPDF(name string, ra io.ReaderAt, size int64) (*dataset.Dataset, error) {
	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	return extractTables(name, r)
}

// tableRow is one extracted table row with the page it came from.
type tableRow struct {
	page  int
	cells []string
}

// extractTables scans every page for rows of horizontally separated cells
// and assembles them into one dataset.
func extractTables(path string, r *pdf.Reader) (*dataset.Dataset, error) {
	var rows []tableRow

	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		textRows, err := page.GetTextByRow()
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}

		for _, tr := range textRows {
			cells := splitRowCells(tr.Content)
			if len(cells) < 2 {
				// Single-cell rows are prose, not table content.
				continue
			}
			rows = append(rows, tableRow{page: pageNum, cells: cells})
		}
	}

	return assembleTable(path, rows)
}

// assembleTable concatenates extracted table rows into a dataset. The first
// row becomes the header; every later row must match its width or the whole
// document is rejected.
func assembleTable(path string, rows []tableRow) (*dataset.Dataset, error) {
	var header []string
	var data [][]string

	for _, r := range rows {
		if header == nil {
			header = r.cells
			continue
		}
		if len(r.cells) != len(header) {
			return nil, &SchemaMismatchError{Page: r.page, Expected: len(header), Actual: len(r.cells)}
		}
		// A repeated header from a follow-up page is tolerated.
		if sameCells(r.cells, header) {
			continue
		}
		data = append(data, r.cells)
	}

	if header == nil {
		return nil, ErrNoTablesFound
	}

	ds, err := dataset.FromRows(header, data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return ds, nil
}

// splitRowCells groups the words of one text row into cells. A new cell
// starts wherever the horizontal gap to the previous word exceeds
// minCellGap.
func splitRowCells(words []pdf.Text) []string {
	var cells []string
	var current string
	var prevEnd float64

	for i, w := range words {
		if i > 0 && w.X-prevEnd > minCellGap {
			cells = append(cells, current)
			current = w.S
		} else if current == "" {
			current = w.S
		} else {
			current += " " + w.S
		}
		prevEnd = w.X + w.W
	}
	if current != "" {
		cells = append(cells, current)
	}
	return cells
}

func sameCells(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
