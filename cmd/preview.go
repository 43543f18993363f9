package cmd

import (
	"fmt"

	"findash/internal/cli"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Load a CSV or PDF file and preview the dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("Uploaded Data Preview"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.DatasetTable(ds, "")))
	fmt.Println()

	schema := cli.Table{Title: "Schema", Headers: []string{"Column", "Type"}}
	for _, col := range ds.Columns {
		schema.Rows = append(schema.Rows, []string{col.Name, col.Kind.String()})
	}
	fmt.Print(cli.RenderTable(schema))

	return nil
}
