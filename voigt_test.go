package cerf

import (
	"math"
	"testing"
)

// TestVoigtGoldenVectors checks Voigt against reference densities,
// including the pure Gaussian and Lorentzian limits and arguments
// scaled by ten orders of magnitude in both directions.
func TestVoigtGoldenVectors(t *testing.T) {
	tests := []struct {
		x, sigma, gamma float64
		want            float64
		tol             float64
	}{
		{0, 1, 0, 1 / sqrt2Pi, 1e-15},
		{0, 0, 1, 1 / math.Pi, 1e-15},
		{0, 0.5, 0.5, 0.41741856104074, 1e-13},
		{1, 0.5, 0.5, 0.18143039885260323, 1e-12},
		{1e5, 0.5e5, 0.5e5, 0.18143039885260323e-5, 1e-12},
		{1e-5, 0.5e-5, 0.5e-5, 0.18143039885260323e5, 1e-12},
		{1, 0.2, 5, 0.06113399719916219, 1e-12},
		{1, 5, 0.2, 0.07582140674553575, 1e-12},
	}
	for _, tt := range tests {
		got := Voigt(tt.x, tt.sigma, tt.gamma)
		if e := relErr(tt.want, got); e > tt.tol {
			t.Errorf("Voigt(%g, %g, %g) = %v, want %v (rel err %g)",
				tt.x, tt.sigma, tt.gamma, got, tt.want, e)
		}
	}
}

// TestVoigtDegenerate checks the delta function limit and the sign
// conventions for negative widths.
func TestVoigtDegenerate(t *testing.T) {
	if got := Voigt(0, 0, 0); !math.IsInf(got, 1) {
		t.Errorf("Voigt(0, 0, 0) = %v, want +Inf", got)
	}
	if got := Voigt(2, 0, 0); got != 0 {
		t.Errorf("Voigt(2, 0, 0) = %v, want 0", got)
	}
	if a, b := Voigt(1, -0.5, 0.5), Voigt(1, 0.5, -0.5); a != b {
		t.Errorf("Voigt sign convention: %v != %v", a, b)
	}
}

// TestVoigtHWHMLimits checks the closed-form degenerate widths and the
// non-finite argument policy.
func TestVoigtHWHMLimits(t *testing.T) {
	if got := VoigtHWHM(0, 0); got != 0 {
		t.Errorf("VoigtHWHM(0, 0) = %v, want 0", got)
	}
	if got := VoigtHWHM(0, 3); got != 3 {
		t.Errorf("VoigtHWHM(0, 3) = %v, want 3", got)
	}
	if got, want := VoigtHWHM(2, 0), 2*sqrt2Ln2; relErr(want, got) > 1e-15 {
		t.Errorf("VoigtHWHM(2, 0) = %v, want %v", got, want)
	}
	if got := VoigtHWHM(math.Inf(1), 1); !math.IsInf(got, 1) {
		t.Errorf("VoigtHWHM(+Inf, 1) = %v, want +Inf", got)
	}
	if got := VoigtHWHM(1, nan); !math.IsNaN(got) {
		t.Errorf("VoigtHWHM(1, NaN) = %v, want NaN", got)
	}
}

// TestVoigtHWHMSweep compares the refined width against the
// Olivero-Longbothum approximation over 180 decades of the width
// ratio. The approximation itself is good to about 0.02 percent, so a
// one percent agreement bound isolates gross bracketing or scaling
// mistakes without depending on its exact error curve.
func TestVoigtHWHMSweep(t *testing.T) {
	const n = 20000
	var errmax, argmax float64
	for i := 0; i < n; i++ {
		gamma := math.Pow(10, 180*(float64(i)-n/2)/n)
		hwhm0 := 0.5 * (1.06868*gamma + math.Sqrt(0.86743*gamma*gamma+8*math.Ln2))
		got := VoigtHWHM(1, gamma)
		if e := relErr(hwhm0, got); e > errmax {
			errmax, argmax = e, gamma
		}
	}
	if errmax > 1e-2 {
		t.Errorf("VoigtHWHM sweep: max deviation %g from approximation at gamma=%g", errmax, argmax)
	}
}

// TestVoigtHWHMHalfHeight verifies the defining property directly: the
// profile at the returned width is half the center value.
func TestVoigtHWHMHalfHeight(t *testing.T) {
	cases := []struct{ sigma, gamma float64 }{
		{1, 1},
		{1, 1e-8},
		{1e-8, 1},
		{0.3, 7},
		{1e150, 1e-150},
	}
	for _, c := range cases {
		h := VoigtHWHM(c.sigma, c.gamma)
		got := Voigt(h, c.sigma, c.gamma)
		want := 0.5 * Voigt(0, c.sigma, c.gamma)
		if e := relErr(want, got); e > 1e-10 {
			t.Errorf("Voigt(HWHM) for sigma=%g gamma=%g: %v, want %v (rel err %g)",
				c.sigma, c.gamma, got, want, e)
		}
	}
}
