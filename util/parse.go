package util

import (
	"strconv"
	"strings"
)

// ParseFloat64 parses a string to float64 after trimming whitespace.
// The second return reports whether the input was a valid number.
func ParseFloat64(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// NumericID extracts the integer sort key from a record ID by stripping
// every non-digit character. "E10" → 10, "exp_007" → 7. IDs with no
// digits (or digits overflowing int) sort as 0.
func NumericID(id string) int {
	var b strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
