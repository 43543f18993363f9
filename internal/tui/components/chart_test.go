package components

import (
	"strings"
	"testing"
)

func TestSparkline_Empty(t *testing.T) {
	if got := Sparkline(nil, "#ffffff"); got != "" {
		t.Fatalf("Sparkline(nil) = %q, want empty", got)
	}
}

func TestSparkline_PeakGetsFullBlock(t *testing.T) {
	got := Sparkline([]float64{1, 2, 8}, "#ffffff")
	if !strings.ContainsRune(got, '█') {
		t.Fatalf("Sparkline = %q, want full block for peak value", got)
	}
}

func TestAxisLabel(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{2500000, "2.5M"},
		{1500, "1.5k"},
		{42, "42"},
		{0.25, "0.25"},
	}
	for _, c := range cases {
		if got := axisLabel(c.v); got != c.want {
			t.Errorf("axisLabel(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestXAxisLabels_SkipsColliding(t *testing.T) {
	got := xAxisLabels([]string{"January", "Feb", "Mar"}, 2, 1, 9)
	if !strings.HasPrefix(got, "January") {
		t.Fatalf("labels = %q, want first label placed", got)
	}
	if strings.Contains(got, "Feb") {
		t.Fatalf("labels = %q, overlapping label not skipped", got)
	}
}

func TestHBarList_OneLinePerEntry(t *testing.T) {
	got := HBarList([]string{"Rent", "Food"}, []float64{0.5, 0.5}, 40)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "Rent") || !strings.Contains(lines[0], "50.0%") {
		t.Fatalf("line = %q, want label and percent", lines[0])
	}
}
