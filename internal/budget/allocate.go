package budget

// Allocation maps each selected category to its budget fraction.
// Order preserves the user's priority order for display.
type Allocation struct {
	Order  []string
	Shares map[string]float64
}

// Allocate splits the whole budget across the selected categories by
// sequential remainder-splitting: each category takes an equal share of
// what remains, and the last one absorbs the remainder. Shares always sum
// to 1. An empty selection yields an empty allocation.
func Allocate(priorities []string) Allocation {
	alloc := Allocation{
		Order:  append([]string(nil), priorities...),
		Shares: make(map[string]float64, len(priorities)),
	}

	n := len(priorities)
	remaining := 1.0
	for i, category := range priorities {
		if i == n-1 {
			alloc.Shares[category] = remaining
			break
		}
		share := remaining / float64(n-i)
		alloc.Shares[category] = share
		remaining -= share
	}
	return alloc
}
