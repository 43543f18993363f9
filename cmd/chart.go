package cmd

import (
	"fmt"
	"os"
	"strings"

	"findash/internal/chart"
	"findash/internal/cli"
	"findash/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagChartType string
	flagChartX    string
	flagChartY    string
	flagChartZ    string
	flagNames     string
	flagChartOut  string
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Build a chart from the dataset",
	Long: `Build a chart specification from numeric columns of the dataset.

Types: bar, line, pie, scatter3d, area. Pie needs --names for the label
column; scatter3d needs --z. With --out the chart is rendered to a PNG
(scatter3d is projected onto the x/y plane).`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagChartType, "type", "t", "", "Chart type (default from config)")
	chartCmd.Flags().StringVarP(&flagChartX, "x", "x", "", "X-axis column (numeric)")
	chartCmd.Flags().StringVarP(&flagChartY, "y", "y", "", "Y-axis column (numeric)")
	chartCmd.Flags().StringVarP(&flagChartZ, "z", "z", "", "Z-axis column for scatter3d (numeric)")
	chartCmd.Flags().StringVar(&flagNames, "names", "", "Label column for pie charts")
	chartCmd.Flags().StringVarP(&flagChartOut, "out", "o", "", "Write a PNG rendering to this path")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	typeName := flagChartType
	if typeName == "" {
		typeName = cfg.General.DefaultChartType
	}
	chartType, err := chart.ParseType(typeName)
	if err != nil {
		return err
	}

	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return chart.ErrNoNumericColumns
	}

	// Default axes to the first numeric columns, like the dashboard's
	// selectors do.
	req := chart.Request{
		Type:  chartType,
		X:     flagChartX,
		Y:     flagChartY,
		Z:     flagChartZ,
		Names: flagNames,
	}
	if req.X == "" {
		req.X = numeric[0]
	}
	if req.Y == "" {
		req.Y = numeric[len(numeric)-1]
	}
	if chartType == chart.Scatter3D && req.Z == "" {
		req.Z = numeric[len(numeric)/2]
	}
	if chartType == chart.Pie && req.Names == "" {
		req.Names = ds.Columns[0].Name
	}

	spec, err := chart.Build(ds, req)
	if err != nil {
		return err
	}

	printSpec(spec)

	if flagChartOut != "" {
		f, err := os.Create(flagChartOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagChartOut, err)
		}
		defer f.Close()
		if err := chart.RenderPNG(spec, f); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagChartOut)
		}
	}

	return nil
}

func printSpec(spec *chart.Spec) {
	fmt.Println(cli.RenderTitle(spec.Title))
	fmt.Println()

	t := cli.Table{Headers: []string{"Field", "Value"}}
	t.Rows = append(t.Rows, []string{"Type", spec.Type.String()})
	t.Rows = append(t.Rows, []string{"Palette", spec.Palette})
	if spec.XLabel != "" {
		t.Rows = append(t.Rows, []string{"X", spec.XLabel})
	}
	if spec.YLabel != "" {
		t.Rows = append(t.Rows, []string{"Y", spec.YLabel})
	}
	if spec.ZLabel != "" {
		t.Rows = append(t.Rows, []string{"Z", spec.ZLabel})
	}
	if spec.ColorBy != "" {
		t.Rows = append(t.Rows, []string{"Color by", spec.ColorBy})
	}
	names := make([]string, len(spec.Series))
	for i, s := range spec.Series {
		names[i] = s.Name
	}
	t.Rows = append(t.Rows, []string{"Series", strings.Join(names, ", ")})
	fmt.Print(cli.RenderTable(t))
}
