package sweep

import (
	"fmt"

	cerf "github.com/loriab/libcerf"
	apperrors "github.com/loriab/libcerf/internal/errors"
)

// Func is a scalar evaluator over the complex plane. The voigt entry
// folds the real profile into the same shape: the real part of the
// argument is the offset, the imaginary part the Lorentzian width
// against a unit Gaussian width.
type Func func(complex128) complex128

// functions maps the CLI function names onto the library.
var functions = map[string]Func{
	"w":      cerf.W,
	"erf":    cerf.Erf,
	"erfc":   cerf.Erfc,
	"erfcx":  cerf.Erfcx,
	"erfi":   cerf.Erfi,
	"dawson": cerf.Dawson,
	"voigt": func(z complex128) complex128 {
		gamma := imag(z)
		if gamma == 0 {
			gamma = 1
		}
		return complex(cerf.Voigt(real(z), 1, gamma), 0)
	},
}

// Resolve returns the evaluator for the given function name.
//
// Parameters:
//   - name: The function name (w, erf, erfc, erfcx, erfi, dawson, voigt).
//
// Returns:
//   - Func: The evaluator.
//   - error: ErrUnknownFunction wrapped with the offending name.
func Resolve(name string) (Func, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownFunction, name)
	}
	return f, nil
}

// Names returns the supported function names in registration order of
// the CLI documentation.
func Names() []string {
	return []string{"w", "erf", "erfc", "erfcx", "erfi", "dawson", "voigt"}
}
