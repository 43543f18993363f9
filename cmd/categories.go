package cmd

import (
	"fmt"

	"findash/internal/budget"
	"findash/internal/cli"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories <file>",
	Short: "Show the detected spending categories",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	cats := budget.DetectCategories(ds)
	if len(cats) == 0 {
		fmt.Println("  No categories detected (the category column has no rows).")
		return nil
	}

	t := cli.Table{Title: "Detected Categories", Headers: []string{"#", "Category"}}
	for i, c := range cats {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("%d", i+1), c})
	}
	fmt.Print(cli.RenderTable(t))
	return nil
}
