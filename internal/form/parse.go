package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseValue reads the longest numeric prefix of raw after leading
// whitespace (Unicode spaces and the BOM included), the way a browser's
// parseFloat does. Text without a numeric prefix, and any non-finite
// result, yields 0.
func ParseValue(raw string) float64 {
	m := numericPrefix.FindString(strings.TrimLeftFunc(raw, isLeadingSpace))
	if m == "" {
		return 0
	}
	// strconv spells it "Inf"; either way the result is not finite
	if strings.HasSuffix(m, "Infinity") {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatValue prints v in its shortest round-trip form: 1, 2.5, -2.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
