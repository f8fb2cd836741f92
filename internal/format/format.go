// Package format provides display formatting helpers shared by the CLI
// presenter, the table writer, and the server: durations, float64
// values in the tabulation style, and complex values as re+imi pairs.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Float formats a float64 in the tabulation style: %.15g, wide enough
// to round-trip, with Inf and NaN spelled the way the table consumers
// expect.
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The formatted value.
func Float(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.15g", v)
}

// Complex formats a complex128 as "re +imi" / "re -imi" with both
// components in Float style.
//
// Parameters:
//   - z: The value to format.
//
// Returns:
//   - string: The formatted value.
func Complex(z complex128) string {
	im := imag(z)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s %s%si", Float(real(z)), sign, Float(im))
}

// Rate formats an evaluations-per-second figure with a thousands
// separator group, e.g. "12,345,678 eval/s".
//
// Parameters:
//   - perSecond: The rate.
//
// Returns:
//   - string: The formatted rate.
func Rate(perSecond float64) string {
	n := int64(perSecond)
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",") + " eval/s"
}

// FormatExecutionDuration renders a wall-time measurement at the
// precision a reader cares about. Single evaluations finish in the
// microsecond range and full sweeps in milliseconds, where Go's default
// rendering prints noisy fractional values, so those bands collapse to
// whole units; anything of a second or more keeps the standard form.
//
// Parameters:
//   - d: The measured duration.
//
// Returns:
//   - string: The formatted duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
