// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayEvaluation], [DisplayTable], [DisplaySelfTest].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatRow].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteTableToFile].

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/loriab/libcerf/internal/format"
	"github.com/loriab/libcerf/internal/sweep"
	"github.com/loriab/libcerf/internal/ui"
)

// DisplayEvaluation shows a single-point evaluation result.
//
// Parameters:
//   - out: The output writer.
//   - fn: The evaluated function name.
//   - z: The argument.
//   - value: The computed value.
//   - duration: The evaluation wall time.
func DisplayEvaluation(out io.Writer, fn string, z, value complex128, duration time.Duration) {
	fmt.Fprintf(out, "%s%s%s(%s%s%s) = %s%s%s\n",
		ui.ColorCyan(), fn, ui.ColorReset(),
		ui.ColorYellow(), format.Complex(z), ui.ColorReset(),
		ui.ColorGreen(), format.Complex(value), ui.ColorReset())
	fmt.Fprintf(out, "  Time: %s%s%s\n",
		ui.ColorGrey(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayTable writes a tabulation result as an aligned text table.
// Real-valued rows print a single value column; rows with a nonzero
// imaginary part print both components.
//
// Parameters:
//   - out: The output writer.
//   - res: The sweep result.
func DisplayTable(out io.Writer, res sweep.Result) {
	fmt.Fprintf(out, "%s%-24s  %s%s\n",
		ui.ColorUnderline(), "x", res.Function+"(x)", ui.ColorReset())
	for _, row := range res.Rows {
		fmt.Fprintf(out, "%-24s  %s\n", format.Float(row.X), FormatRow(row))
	}
	fmt.Fprintf(out, "\n%s%d points in %s%s\n",
		ui.ColorGrey(), len(res.Rows), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
}

// FormatRow formats the value column of one tabulated row. Purely real
// values drop the imaginary component.
func FormatRow(row sweep.Row) string {
	if imag(row.Value) == 0 {
		return format.Float(real(row.Value))
	}
	return format.Complex(row.Value)
}

// DisplaySelfTest reports a self-test summary, listing each failing
// vector with its relative error against the tolerance.
//
// Parameters:
//   - out: The output writer.
//   - s: The self-test summary.
func DisplaySelfTest(out io.Writer, s sweep.Summary) {
	for _, o := range s.Failed {
		fmt.Fprintf(out, "%sFAIL%s %s(%s): got %s, want %s (relerr %.3g > %.3g)\n",
			ui.ColorRed(), ui.ColorReset(),
			o.Function, format.Complex(o.Z),
			format.Complex(o.Got), format.Complex(o.Want),
			o.RelErr, o.Tol)
	}
	if s.Failures == 0 {
		fmt.Fprintf(out, "%s✓ %d/%d reference checks passed%s\n",
			ui.ColorGreen(), s.Total, s.Total, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s✗ %d of %d reference checks failed%s\n",
		ui.ColorRed(), s.Failures, s.Total, ui.ColorReset())
}

// DisplayBench reports a timing-loop result. The checksum is printed so
// the compiler cannot discard the loop body; it carries no meaning.
//
// Parameters:
//   - out: The output writer.
//   - res: The bench result.
func DisplayBench(out io.Writer, res sweep.BenchResult) {
	fmt.Fprintf(out, "%s%d%s evaluations in %s%s%s\n",
		ui.ColorCyan(), res.Evals, ui.ColorReset(),
		ui.ColorGreen(), format.FormatExecutionDuration(res.Elapsed), ui.ColorReset())
	fmt.Fprintf(out, "  Rate:     %s%s%s\n", ui.ColorBold(), format.Rate(res.Rate), ui.ColorReset())
	fmt.Fprintf(out, "  Checksum: %s\n", format.Float(res.Checksum))
}
