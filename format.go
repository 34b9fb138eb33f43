package funcdemo

import (
	"math"
	"strconv"
	"strings"
)

// FormatDouble renders x the way a JVM prints a double: always at least
// one fractional digit ("6.0"), scientific notation outside [1e-3, 1e7)
// ("1.0E7"), and "NaN" / "Infinity" for the special values.
func FormatDouble(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	abs := math.Abs(x)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(x, 'f', -1, 64))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'E', -1, 64), "E")
	e, _ := strconv.Atoi(exp)
	return withFraction(mantissa) + "E" + strconv.Itoa(e)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// FormatList renders items as "[a, b, c]".
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
