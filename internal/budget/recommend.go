package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Recommend returns advice lines for one category. Dispatch is by
// case-insensitive substring match, first rule wins: saving, invest, bill,
// then a generic fallback parameterized by the category name.
// savingsGoal is the monthly savings goal in dollars.
func Recommend(category string, savingsGoal float64) []string {
	lower := strings.ToLower(category)

	switch {
	case strings.Contains(lower, "saving"):
		daily := decimal.NewFromFloat(savingsGoal).
			Div(decimal.NewFromInt(30)).
			Round(2)
		return []string{
			"Set up automatic transfers to your savings account",
			fmt.Sprintf("To reach your $%s monthly goal, save $%s daily",
				decimal.NewFromFloat(savingsGoal).String(), daily.StringFixed(2)),
		}
	case strings.Contains(lower, "invest"):
		return []string{
			"Consider low-cost index funds",
			"Diversify your investment portfolio",
		}
	case strings.Contains(lower, "bill"):
		return []string{
			"Set up automatic bill payments",
			"Review subscriptions monthly",
		}
	default:
		return []string{
			fmt.Sprintf("Create a budget for %s", category),
			fmt.Sprintf("Track %s expenses regularly", lower),
		}
	}
}
