package cmd

import (
	"fmt"
	"strings"

	"findash/internal/budget"
	"findash/internal/cli"
	"findash/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagPicks []string
	flagGoal  float64
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <file>",
	Short: "Budgeting recommendations for your priority categories",
	Long: `Detect spending categories in the dataset, pick priorities, and get
advice plus a proportional budget split. Without --pick, every detected
category is selected in order.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVarP(&flagPicks, "pick", "p", nil, "Priority categories, in order (repeatable)")
	recommendCmd.Flags().Float64VarP(&flagGoal, "goal", "g", -1, "Monthly savings goal in dollars (default from config)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	goal := cfg.Budget.SavingsGoal
	if flagGoal >= 0 {
		goal = config.ClampGoal(flagGoal)
	}

	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	detected := budget.DetectCategories(ds)
	picks, err := resolvePicks(detected, flagPicks)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("Smart Finance Recommendations"))
	fmt.Println()

	if len(picks) == 0 {
		fmt.Println("  No categories selected.")
		return nil
	}

	for _, category := range picks {
		fmt.Printf("  %s:\n", category)
		for _, line := range budget.Recommend(category, goal) {
			fmt.Printf("    - %s\n", line)
		}
		fmt.Println()
	}

	fmt.Println("  Recommended Monthly Budget Distribution")
	fmt.Print(cli.RenderAllocation(budget.Allocate(picks), 72))

	return nil
}

// resolvePicks validates user picks against the detected set, preserving
// the user's order. Matching is case-insensitive.
func resolvePicks(detected, picks []string) ([]string, error) {
	if len(picks) == 0 {
		return detected, nil
	}

	byLower := make(map[string]string, len(detected))
	for _, c := range detected {
		byLower[strings.ToLower(c)] = c
	}

	out := make([]string, 0, len(picks))
	for _, p := range picks {
		canonical, ok := byLower[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return nil, fmt.Errorf("category %q not found; detected: %s", p, strings.Join(detected, ", "))
		}
		out = append(out, canonical)
	}
	return out, nil
}
