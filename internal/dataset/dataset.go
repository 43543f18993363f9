// Package dataset defines the in-memory tabular dataset produced by ingestion.
package dataset

import "fmt"

// Kind classifies a column's inferred value type.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

// String returns the display name of a Kind.
func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Column is a named, typed column of values.
// Values holds the raw strings as parsed; Numbers is populated for
// numeric columns and has the same length as Values.
type Column struct {
	Name    string
	Kind    Kind
	Values  []string
	Numbers []float64
}

// Dataset is an ordered collection of equal-length columns.
type Dataset struct {
	Columns []Column
}

// RowCount returns the number of rows. All columns share this length.
func (d *Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// ColumnNames returns column names in dataset order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name, or nil.
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// NumericColumns returns the names of all numeric-typed columns, in order.
func (d *Dataset) NumericColumns() []string {
	var names []string
	for _, c := range d.Columns {
		if c.Kind == KindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// TextColumns returns the names of all text-typed columns, in order.
func (d *Dataset) TextColumns() []string {
	var names []string
	for _, c := range d.Columns {
		if c.Kind == KindText {
			names = append(names, c.Name)
		}
	}
	return names
}

// Row returns the values of row i across all columns.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// FromRows builds a Dataset from a header and raw string rows,
// running type inference on each column. Every row must match the
// header width.
func FromRows(header []string, rows [][]string) (*Dataset, error) {
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
	}

	d := &Dataset{Columns: make([]Column, len(header))}
	for j, name := range header {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[j]
		}
		d.Columns[j] = inferColumn(name, values)
	}
	return d, nil
}
