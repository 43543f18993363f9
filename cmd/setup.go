package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"findash/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to findash!")
	fmt.Println()

	// 1. Default chart type
	fmt.Println("  1. Default chart type")
	fmt.Println("     (1) Bar [default]")
	fmt.Println("     (2) Line")
	fmt.Println("     (3) Pie")
	fmt.Println("     (4) Area")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultChartType = "line"
	case "3":
		cfg.General.DefaultChartType = "pie"
	case "4":
		cfg.General.DefaultChartType = "area"
	default:
		cfg.General.DefaultChartType = "bar"
	}
	fmt.Println()

	// 2. Monthly savings goal
	fmt.Printf("  2. Monthly savings goal in dollars (0-%d)\n", config.MaxSavingsGoal)
	fmt.Printf("     Current: $%.0f\n", cfg.Budget.SavingsGoal)
	fmt.Print("     > ")
	goalStr, _ := reader.ReadString('\n')
	goalStr = strings.TrimSpace(goalStr)
	if goalStr != "" {
		goal, err := strconv.ParseFloat(goalStr, 64)
		if err != nil {
			return fmt.Errorf("invalid savings goal %q", goalStr)
		}
		cfg.Budget.SavingsGoal = config.ClampGoal(goal)
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `findash setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
