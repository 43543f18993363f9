// Package budget holds category detection, budget allocation, and the
// recommendation rules behind the recommendations view.
package budget

import (
	"strings"

	"findash/internal/dataset"
)

// fallbackCategories is used when a dataset has no text-typed column at all.
var fallbackCategories = []string{
	"Essential Bills",
	"Savings",
	"Investment",
	"Entertainment",
	"Shopping",
}

// DetectCategories derives the category labels that drive recommendations.
// A column named "category" (any case) wins; otherwise the first text-typed
// column is used. The built-in fallback applies only when the dataset has
// no text column; a text column with zero rows yields an empty set.
func DetectCategories(ds *dataset.Dataset) []string {
	for i := range ds.Columns {
		if strings.EqualFold(ds.Columns[i].Name, "category") {
			return distinct(ds.Columns[i].Values)
		}
	}
	for i := range ds.Columns {
		if ds.Columns[i].Kind == dataset.KindText {
			return distinct(ds.Columns[i].Values)
		}
	}
	return append([]string(nil), fallbackCategories...)
}

// distinct returns unique values in first-appearance order.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
