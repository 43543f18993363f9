package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderPNG renders a spec to PNG. Scatter3d is projected onto the x/y
// plane; PNG has no 3D backend.
func RenderPNG(spec *Spec, w io.Writer) error {
	colors := PaletteColors(spec.Palette)

	switch spec.Type {
	case Bar:
		return renderBar(spec, colors, w)
	case Pie:
		return renderPie(spec, colors, w)
	case Line, Area, Scatter3D:
		return renderXY(spec, colors, w)
	default:
		return fmt.Errorf("no renderer for chart type %s", spec.Type)
	}
}

func renderBar(spec *Spec, colors []string, w io.Writer) error {
	if len(spec.Series) < 2 {
		return fmt.Errorf("bar chart needs x and y series")
	}
	x, y := spec.Series[0], spec.Series[1]

	bars := make([]gochart.Value, len(y.Values))
	for i, v := range y.Values {
		bars[i] = gochart.Value{
			Value: v,
			Label: strconv.FormatFloat(x.Values[i], 'g', -1, 64),
			Style: gochart.Style{
				FillColor:   hexColor(colors[i%len(colors)]),
				StrokeColor: hexColor(colors[i%len(colors)]),
			},
		}
	}

	c := gochart.BarChart{
		Title:    spec.Title,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}
	return c.Render(gochart.PNG, w)
}

func renderPie(spec *Spec, colors []string, w io.Writer) error {
	if len(spec.Series) == 0 {
		return fmt.Errorf("pie chart needs a values series")
	}
	s := spec.Series[0]

	values := make([]gochart.Value, len(s.Values))
	for i, v := range s.Values {
		label := ""
		if i < len(s.Labels) {
			label = s.Labels[i]
		}
		values[i] = gochart.Value{
			Value: v,
			Label: label,
			Style: gochart.Style{
				FillColor: hexColor(colors[i%len(colors)]),
			},
		}
	}

	c := gochart.PieChart{
		Title:  spec.Title,
		Width:  512,
		Height: 512,
		Values: values,
	}
	return c.Render(gochart.PNG, w)
}

func renderXY(spec *Spec, colors []string, w io.Writer) error {
	if len(spec.Series) < 2 {
		return fmt.Errorf("%s chart needs x and y series", spec.Type)
	}
	x, y := spec.Series[0], spec.Series[1]

	style := gochart.Style{StrokeColor: hexColor(colors[0]), StrokeWidth: 2}
	switch spec.Type {
	case Area:
		style.FillColor = hexColor(colors[0]).WithAlpha(96)
	case Scatter3D:
		style.StrokeWidth = gochart.Disabled
		style.DotWidth = 4
		style.DotColor = hexColor(colors[0])
	}

	c := gochart.Chart{
		Title:  spec.Title,
		Height: 512,
		XAxis:  gochart.XAxis{Name: spec.XLabel},
		YAxis:  gochart.YAxis{Name: spec.YLabel},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    y.Name,
				XValues: x.Values,
				YValues: y.Values,
				Style:   style,
			},
		},
	}
	return c.Render(gochart.PNG, w)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
