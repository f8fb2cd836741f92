package sweep

import (
	"context"
	"time"

	cerf "github.com/loriab/libcerf"
)

// BenchResult reports a timing loop run.
type BenchResult struct {
	// Evals is the number of evaluations performed.
	Evals int
	// Elapsed is the wall time of the loop.
	Elapsed time.Duration
	// Rate is evaluations per second.
	Rate float64
	// Checksum accumulates the results so the loop body cannot be
	// optimized away; it is printed, not interpreted.
	Checksum float64
}

// benchSpan is the argument range of the timing loop; n evaluations
// cover [0, 40), the full quadrature range of the real-axis kernel.
const benchSpan = 40.0

// RunBench times n real-axis Faddeeva evaluations over [0, 40),
// checking for cancellation once per 64k iterations.
//
// Parameters:
//   - ctx: The context bounding the run.
//   - n: The number of evaluations.
//
// Returns:
//   - BenchResult: Counts, wall time, rate and checksum.
//   - error: The context error if canceled, nil otherwise.
func RunBench(ctx context.Context, n int) (BenchResult, error) {
	step := benchSpan / float64(n)
	start := time.Now()
	var sum float64
	for i := 0; i < n; i++ {
		if i&0xffff == 0 {
			if err := ctx.Err(); err != nil {
				return BenchResult{}, err
			}
		}
		sum += imag(cerf.W(complex(float64(i)*step, 0)))
	}
	elapsed := time.Since(start)
	return BenchResult{
		Evals:    n,
		Elapsed:  elapsed,
		Rate:     float64(n) / elapsed.Seconds(),
		Checksum: sum / float64(n),
	}, nil
}
