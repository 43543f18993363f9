package tui

import "testing"

func TestTogglePick_AppendsInOrder(t *testing.T) {
	picked := togglePick(nil, "Savings")
	picked = togglePick(picked, "Rent")
	if len(picked) != 2 || picked[0] != "Savings" || picked[1] != "Rent" {
		t.Fatalf("picked = %v, want [Savings Rent]", picked)
	}
}

func TestTogglePick_RemovePreservesRest(t *testing.T) {
	picked := []string{"A", "B", "C"}
	picked = togglePick(picked, "B")
	if len(picked) != 2 || picked[0] != "A" || picked[1] != "C" {
		t.Fatalf("picked = %v, want [A C]", picked)
	}
}

func TestCycleOption(t *testing.T) {
	opts := []string{"bar", "line", "pie"}
	if got := cycleOption(opts, "bar"); got != "line" {
		t.Fatalf("cycleOption = %q, want line", got)
	}
	if got := cycleOption(opts, "pie"); got != "bar" {
		t.Fatalf("cycleOption wrap = %q, want bar", got)
	}
	if got := cycleOption(opts, "unknown"); got != "bar" {
		t.Fatalf("cycleOption unknown = %q, want bar", got)
	}
}
