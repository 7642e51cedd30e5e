// Package numfmt renders cell values as plain text for CSV output.
//
// [Format] canonicalizes numbers so that no scientific notation or
// floating-point noise reaches the output: large magnitudes are rendered in
// fixed point, near-integers snap to the integer, and everything else keeps
// its shortest exact decimal form. [Text] renders a raw value the way a
// spreadsheet script would stringify it, without any normalization.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// FixedThreshold is the magnitude at and above which numbers are always
	// rendered in fixed point with no decimals.
	FixedThreshold = 1e10

	// SnapTolerance is the distance from the nearest integer under which a
	// number is rendered as that integer.
	SnapTolerance = 0.0001
)

// Format renders v with numeric normalization.
//
// The dynamic type of v should be one of: nil, string, bool, float64.
// Integer types are accepted too. Any other type falls back to [fmt.Sprint].
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return formatText(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return FormatNumber(val)
	case float32:
		return FormatNumber(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(v)
	}
}

// FormatNumber renders a number without exponent notation.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return jsNumber(v)
	}
	if math.Abs(v) >= FixedThreshold {
		return FixedZero(v)
	}
	if s, ok := Snap(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Snap renders v as an integer when it is one, or lies within SnapTolerance
// of one. It reports false otherwise.
func Snap(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	r := math.Round(v)
	if v != r && math.Abs(v-r) >= SnapTolerance {
		return "", false
	}
	return FixedZero(r), true
}

// FixedZero renders v rounded half away from zero with no decimals.
func FixedZero(v float64) string {
	r := math.Round(v)
	if r == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// Text renders a raw value verbatim: strings unchanged, booleans as
// "true"/"false", numbers in their shortest round-trip form.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return jsNumber(val)
	case float32:
		return jsNumber(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(v)
	}
}

// formatText converts exponent-notation text to a fixed-point integer.
// Text that does not parse as a finite number is returned unchanged.
// This includes text that is only partly numeric, such as "12 Eggs".
func formatText(s string) string {
	if !strings.ContainsAny(s, "Ee") {
		return s
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	return FixedZero(f)
}

// jsNumber stringifies a number the way spreadsheet tooling does: plain
// decimal between 1e-6 and 1e21, exponent form outside of it.
func jsNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
