// Package sweep evaluates a function over a logarithmic grid with a
// bounded worker pool. It backs the table, selftest and bench modes of
// the cerf command: grid construction, parallel fan-out with progress
// reporting, the embedded reference-vector suite, and the timing loop.
package sweep
