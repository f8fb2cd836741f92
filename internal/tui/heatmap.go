package tui

import (
	"math"
	"math/cmplx"
	"strings"

	"github.com/loriab/libcerf/internal/sweep"
)

// shadeRunes is the magnitude ramp from faint to dense.
var shadeRunes = []rune(" .:-=+*#%@")

// sampleGrid evaluates log10|f| on a w×h cell grid centered on
// (centerRe, centerIm). The imaginary step is twice the real step to
// compensate for the 2:1 aspect of terminal cells. Row 0 is the top of
// the viewport (largest imaginary part).
//
// Parameters:
//   - f: The evaluator.
//   - centerRe, centerIm: The viewport center.
//   - scale: Real-axis units per cell.
//   - w, h: The grid size in cells.
//
// Returns:
//   - [][]float64: log10|f| per cell; -Inf for a zero value, +Inf for
//     an overflowed one, NaN where f is NaN.
func sampleGrid(f sweep.Func, centerRe, centerIm, scale float64, w, h int) [][]float64 {
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]float64, w)
		im := centerIm + float64(h/2-y)*2*scale
		for x := 0; x < w; x++ {
			re := centerRe + float64(x-w/2)*scale
			rows[y][x] = math.Log10(cmplx.Abs(f(complex(re, im))))
		}
	}
	return rows
}

// finiteRange returns the smallest and largest finite sample, and
// whether any finite sample exists.
func finiteRange(samples [][]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range samples {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	return lo, hi, ok
}

// renderHeat renders the sampled magnitude field as colored shade
// characters. Zeros render as blanks, overflows as '∞', NaN as '?'.
//
// Parameters:
//   - samples: The log-magnitude grid from sampleGrid.
//
// Returns:
//   - string: The rendered viewport, one line per row.
func renderHeat(samples [][]float64) string {
	lo, hi, ok := finiteRange(samples)
	span := hi - lo
	if !ok || span == 0 {
		span = 1
	}

	var b strings.Builder
	for y, row := range samples {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			switch {
			case math.IsNaN(v):
				b.WriteString(specialStyle.Render("?"))
			case math.IsInf(v, 1):
				b.WriteString(specialStyle.Render("∞"))
			case math.IsInf(v, -1):
				b.WriteByte(' ')
			default:
				t := (v - lo) / span
				r := shadeRunes[rampIndex(t, len(shadeRunes))]
				b.WriteString(rampStyles[rampIndex(t, len(rampStyles))].Render(string(r)))
			}
		}
	}
	return b.String()
}

// rampIndex maps t in [0, 1] onto a ramp of n entries.
func rampIndex(t float64, n int) int {
	i := int(t * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
