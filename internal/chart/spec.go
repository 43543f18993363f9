// Package chart builds abstract chart specifications from a dataset and
// axis selections. Rendering is left to the caller: PNG via render.go,
// unicode bars in the TUI.
package chart

import (
	"errors"
	"fmt"

	"findash/internal/dataset"
)

// Type enumerates the supported chart types.
type Type int

const (
	Bar Type = iota
	Line
	Pie
	Scatter3D
	Area
)

var typeNames = map[Type]string{
	Bar:       "bar",
	Line:      "line",
	Pie:       "pie",
	Scatter3D: "scatter3d",
	Area:      "area",
}

// String returns the lowercase name of the chart type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType parses a chart type name.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return Bar, fmt.Errorf("unknown chart type %q (bar, line, pie, scatter3d, area)", s)
}

// ErrNoNumericColumns is returned when a dataset has no numeric column
// to plot. Chart construction never runs in that case.
var ErrNoNumericColumns = errors.New("no numeric columns found for visualization")

// Request selects the chart type and axis columns.
type Request struct {
	Type  Type
	X     string // numeric column
	Y     string // numeric column (values column for pie)
	Z     string // numeric column, scatter3d only
	Names string // label column for pie, any type
}

// Series is one bound data series: labels (optional) and values.
type Series struct {
	Name   string
	Labels []string
	Values []float64
}

// Spec is the abstract chart description handed to a renderer.
type Spec struct {
	Type    Type
	Title   string
	XLabel  string
	YLabel  string
	ZLabel  string
	ColorBy string // grouping column for scatter3d point colors
	Palette string
	Series  []Series
}

// palette names follow the qualitative palettes the dashboard uses per
// chart type.
var paletteByType = map[Type]string{
	Bar:       "Bold",
	Line:      "Pastel",
	Pie:       "Safe",
	Scatter3D: "Prism",
	Area:      "Vivid",
}

// Build validates the request against the dataset and produces a Spec.
// All axis columns must be numeric; pie additionally needs a names column
// of any type; scatter3d needs a z axis and colors by the first dataset
// column.
func Build(ds *dataset.Dataset, req Request) (*Spec, error) {
	if len(ds.NumericColumns()) == 0 {
		return nil, ErrNoNumericColumns
	}

	spec := &Spec{
		Type:    req.Type,
		Palette: paletteByType[req.Type],
	}

	switch req.Type {
	case Pie:
		names := ds.Column(req.Names)
		if names == nil {
			return nil, fmt.Errorf("pie chart: names column %q not found", req.Names)
		}
		values, err := numericColumn(ds, req.Y, "values")
		if err != nil {
			return nil, err
		}
		spec.Title = fmt.Sprintf("%s by %s", req.Y, req.Names)
		spec.Series = []Series{{
			Name:   req.Y,
			Labels: names.Values,
			Values: values.Numbers,
		}}

	case Scatter3D:
		x, err := numericColumn(ds, req.X, "x-axis")
		if err != nil {
			return nil, err
		}
		y, err := numericColumn(ds, req.Y, "y-axis")
		if err != nil {
			return nil, err
		}
		z, err := numericColumn(ds, req.Z, "z-axis")
		if err != nil {
			return nil, err
		}
		spec.XLabel, spec.YLabel, spec.ZLabel = req.X, req.Y, req.Z
		spec.ColorBy = ds.Columns[0].Name
		spec.Title = fmt.Sprintf("%s vs %s vs %s", req.X, req.Y, req.Z)
		spec.Series = []Series{
			{Name: req.X, Values: x.Numbers},
			{Name: req.Y, Values: y.Numbers},
			{Name: req.Z, Values: z.Numbers},
		}

	default: // Bar, Line, Area
		x, err := numericColumn(ds, req.X, "x-axis")
		if err != nil {
			return nil, err
		}
		y, err := numericColumn(ds, req.Y, "y-axis")
		if err != nil {
			return nil, err
		}
		spec.XLabel, spec.YLabel = req.X, req.Y
		spec.Title = fmt.Sprintf("%s by %s", req.Y, req.X)
		spec.Series = []Series{
			{Name: req.X, Values: x.Numbers},
			{Name: req.Y, Values: y.Numbers},
		}
	}

	return spec, nil
}

func numericColumn(ds *dataset.Dataset, name, role string) (*dataset.Column, error) {
	col := ds.Column(name)
	if col == nil {
		return nil, fmt.Errorf("%s column %q not found", role, name)
	}
	if col.Kind != dataset.KindNumeric {
		return nil, fmt.Errorf("%s column %q is not numeric", role, name)
	}
	return col, nil
}
