package config

import (
	"math"
	"strconv"
	"strings"
)

// ParseRollout parses a staged-rollout percentage from operator input.
// A trailing "%" is allowed ("50%" and "50" are equivalent). Empty or
// unparseable input defaults to a full 100% rollout; the value is NOT
// clamped, so out-of-range numbers like "-1" or "101" parse successfully
// and are rejected later by Validate.
//
// strconv accepts "NaN" and "Inf", which a percentage never is; those
// count as unparseable so the range check downstream always sees a
// comparable number.
func ParseRollout(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 100
	}
	return v
}

// FormatPercentage renders a percentage the way it appears in error
// messages and logs: no trailing zeros, no "%" suffix.
func FormatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
