package dataset

import (
	"strconv"
	"strings"
)

// numericThreshold is the fraction of non-empty values that must parse as
// numbers for a column to be classified numeric.
const numericThreshold = 0.8

// inferColumn classifies a column as numeric or text by sampling its values.
// Currency symbols and thousands separators are tolerated ("$1,234.56").
// A column with no non-empty values is text. In a numeric column the odd
// value that fails to parse is recorded as 0 in Numbers; Values keeps the
// raw string.
func inferColumn(name string, values []string) Column {
	col := Column{Name: name, Kind: KindText, Values: values}

	nonEmpty := 0
	numeric := 0
	parsed := make([]float64, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		nonEmpty++
		if f, ok := parseNumber(v); ok {
			numeric++
			parsed[i] = f
		}
	}

	if nonEmpty > 0 && float64(numeric) >= numericThreshold*float64(nonEmpty) {
		col.Kind = KindNumeric
		col.Numbers = parsed
	}
	return col
}

// RestoreColumn rebuilds a column from cached values with a known kind,
// reparsing numbers for numeric columns.
func RestoreColumn(name string, kind Kind, values []string) Column {
	col := Column{Name: name, Kind: kind, Values: values}
	if kind == KindNumeric {
		col.Numbers = make([]float64, len(values))
		for i, v := range values {
			if f, ok := parseNumber(v); ok {
				col.Numbers[i] = f
			}
		}
	}
	return col
}

// parseNumber parses a numeric string, stripping currency prefixes and
// comma separators.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	for _, sym := range []string{"$", "€", "£"} {
		s = strings.TrimPrefix(s, sym)
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
