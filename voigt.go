package cerf

import "math"

// Voigt computes the Voigt profile at x: the convolution of a
// Gaussian with standard deviation sigma and a Lorentzian with
// half width gamma, normalized to unit integral.
//
// The profile is evaluated as Re[w((x + i gamma)/(sigma sqrt(2)))]
// scaled by the Gaussian norm. Degenerate widths reduce to the pure
// Gaussian, the pure Lorentzian, or the delta function limit; signs
// of sigma and gamma are ignored.
//
// Parameters:
//   - x: The offset from the line center.
//   - sigma: The Gaussian standard deviation.
//   - gamma: The Lorentzian half width at half maximum.
//
// Returns:
//   - float64: The profile density at x.
func Voigt(x, sigma, gamma float64) float64 {
	gam := math.Abs(gamma)
	sig := math.Abs(sigma)

	if gam == 0 {
		if sig == 0 {
			// Delta function limit.
			if x != 0 {
				return 0
			}
			return math.Inf(1)
		}
		return math.Exp(-x*x/(2*sig*sig)) / (sqrt2Pi * sig)
	}
	if sig == 0 {
		return gam / (math.Pi * (x*x + gam*gam))
	}

	s := 1 / (math.Sqrt2 * sig)
	return real(W(complex(x*s, gam*s))) / (sqrt2Pi * sig)
}

// VoigtHWHM computes the half width at half maximum of the Voigt
// profile with widths sigma and gamma.
//
// The Olivero-Longbothum approximation, itself accurate to about
// 1e-4, provides the starting bracket; bisection on Voigt then
// refines the root to fourteen digits. The search runs in units of
// max(|sigma|, |gamma|), so extreme width ratios neither overflow nor
// underflow.
//
// Parameters:
//   - sigma: The Gaussian standard deviation.
//   - gamma: The Lorentzian half width at half maximum.
//
// Returns:
//   - float64: The half width at half maximum.
func VoigtHWHM(sigma, gamma float64) float64 {
	if math.IsNaN(sigma) || math.IsNaN(gamma) {
		return math.NaN()
	}
	sig := math.Abs(sigma)
	gam := math.Abs(gamma)
	if math.IsInf(sig, 0) || math.IsInf(gam, 0) {
		return math.Inf(1)
	}

	switch {
	case sig == 0 && gam == 0:
		return 0
	case sig == 0:
		return gam
	case gam == 0:
		return sig * sqrt2Ln2
	}

	scale := math.Max(sig, gam)
	sig /= scale
	gam /= scale

	hwhm0 := 0.5 * (1.06868*gam + math.Sqrt(0.86743*gam*gam+8*math.Ln2*sig*sig))
	half := 0.5 * Voigt(0, sig, gam)

	// The profile decreases monotonically away from the center, so a
	// bracket around the approximate root pins the true one.
	lo := 0.99 * hwhm0
	hi := 1.01 * hwhm0
	for Voigt(lo, sig, gam) < half {
		hi = lo
		lo *= 0.9
	}
	for Voigt(hi, sig, gam) > half {
		lo = hi
		hi *= 1.1
	}
	for hi-lo > 1e-14*hi {
		mid := 0.5 * (lo + hi)
		if Voigt(mid, sig, gam) > half {
			lo = mid
		} else {
			hi = mid
		}
	}
	return scale * 0.5 * (lo + hi)
}
