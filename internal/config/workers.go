package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. CLI flag (-workers)
//   2. Environment variable (CERF_WORKERS)
//   3. Hardware estimation (this file)

// ApplyAdaptiveWorkers fills in the sweep worker count from the
// hardware heuristic when the configuration left it at its zero
// default, preserving any user-specified value.
func ApplyAdaptiveWorkers(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateWorkers provides a heuristic sweep worker count. A Faddeeva
// evaluation takes well under a microsecond, so per-chunk scheduling
// overhead dominates quickly; capping the fan-out below the core count
// on large machines keeps the workers saturated.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 16:
		return numCPU - 1 // Leave a core for the progress drain.
	default:
		return 16
	}
}
