package util

import "strconv"

// FormatCrystals renders an amount with thousands separators ("2,450").
func FormatCrystals(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// Percent converts a ratio in [0,1] to a whole percentage.
func Percent(ratio float64) int {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 100
	}
	return int(ratio*100 + 0.5)
}
