// Package cerf computes complex error functions: the Faddeeva function
// w(z), the error functions erf, erfc, erfcx, erfi, the Dawson integral,
// and the Voigt profile with its half width at half maximum.
//
// All functions accept complex128 arguments over the full double range
// and target a relative accuracy of 1e-13 or better. Arguments with
// NaN or Inf components follow the IEEE conventions of the C99 complex
// error functions: NaN propagates, and infinities map to the exact
// limiting values where those limits exist.
//
// The package is pure computation. It allocates nothing, never returns
// errors, and is safe for concurrent use.
package cerf
