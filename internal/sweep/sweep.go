package sweep

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/loriab/libcerf/internal/config"
)

// renard6 subdivides a decade at the six Renard R6 preferred points,
// matching the fine tabulation grid of classical function tables.
var renard6 = []float64{1.0, 1.5, 2.2, 3.3, 4.7, 6.8}

// Row is one tabulated grid point.
type Row struct {
	// X is the abscissa on the real axis.
	X float64
	// Value is f(X). Real functions carry a zero imaginary part.
	Value complex128
}

// Result is the outcome of a grid sweep.
type Result struct {
	// Function is the evaluated function name.
	Function string
	// Rows are the tabulated points, in grid order.
	Rows []Row
	// Duration is the wall time of the parallel evaluation.
	Duration time.Duration
}

// BuildGrid constructs the abscissa grid from the configuration:
// Points log-uniform values spanning decades From..To, or the Renard
// R6 subdivision of each whole decade when R6 is set. With Negative
// set the mirrored points precede the positive ones in descending
// magnitude, so the full grid is monotonically increasing.
func BuildGrid(cfg config.AppConfig) []float64 {
	var pos []float64
	if cfg.R6 {
		for d := math.Ceil(cfg.From); d <= math.Floor(cfg.To); d++ {
			scale := math.Pow(10, d)
			for _, r := range renard6 {
				pos = append(pos, r*scale)
			}
		}
	} else {
		n := cfg.Points
		if n == 1 {
			return []float64{math.Pow(10, cfg.From)}
		}
		step := (cfg.To - cfg.From) / float64(n-1)
		for i := 0; i < n; i++ {
			pos = append(pos, math.Pow(10, cfg.From+float64(i)*step))
		}
	}

	if !cfg.Negative {
		return pos
	}
	grid := make([]float64, 0, 2*len(pos))
	for i := len(pos) - 1; i >= 0; i-- {
		grid = append(grid, -pos[i])
	}
	return append(grid, pos...)
}

// Run evaluates the configured function over the grid with an errgroup
// worker pool. Each worker owns a disjoint chunk of the result slice,
// so no aggregation lock is needed; progress, if non-nil, receives the
// completed fraction after every chunk.
//
// Parameters:
//   - ctx: The context bounding the sweep.
//   - cfg: The application configuration (function, grid, workers).
//   - progress: Optional callback receiving values in (0, 1].
//
// Returns:
//   - Result: The tabulated rows in grid order.
//   - error: A context or resolution error; partial rows are discarded.
func Run(ctx context.Context, cfg config.AppConfig, progress func(float64)) (Result, error) {
	f, err := Resolve(cfg.Function)
	if err != nil {
		return Result{}, err
	}

	grid := BuildGrid(cfg)
	rows := make([]Row, len(grid))

	workers := cfg.Workers
	if workers <= 0 {
		workers = config.EstimateWorkers()
	}
	chunk := (len(grid) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	// The channel is sized for one completion per chunk, so workers
	// never block on it.
	done := make(chan int, workers)
	var drainWg sync.WaitGroup
	drainWg.Add(1)
	go func() {
		defer drainWg.Done()
		drained := 0
		for n := range done {
			drained += n
			if progress != nil {
				progress(float64(drained) / float64(len(grid)))
			}
		}
	}()

	for lo := 0; lo < len(grid); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(grid))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rows[i] = Row{X: grid[i], Value: f(complex(grid[i], 0))}
			}
			done <- hi - lo
			return nil
		})
	}

	err = g.Wait()
	close(done)
	drainWg.Wait()
	if err != nil {
		return Result{}, err
	}

	return Result{Function: cfg.Function, Rows: rows, Duration: time.Since(start)}, nil
}
