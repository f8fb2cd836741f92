package cerf

import "math"

// ─────────────────────────────────────────────────────────────────────────────
// Mathematical Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// All values are given to more digits than a float64 holds, so that the
// compile-time rounding alone decides the stored bit pattern.

const (
	// invSqrtPi is 1/sqrt(pi), the prefactor of the Faddeeva continued
	// fraction and of every asymptotic expansion in this package.
	invSqrtPi = 0.56418958354775628694807945156

	// halfSqrtPi is sqrt(pi)/2, the prefactor relating the Dawson
	// integral to the imaginary part of the Faddeeva function:
	// dawson(x) = sqrt(pi)/2 * imwx(x).
	halfSqrtPi = 0.8862269254527580136490837416705725913990

	// trapA is the step length a = pi/sqrt(-log(eps/2)) of the
	// trapezoidal quadrature behind the small-|z| series. With
	// eps = 2^-52 the discretization error of the rule is below eps
	// over the whole region where the series is used.
	trapA = 0.518321480430085929872

	// trapC is (2/pi)*a, the weight in front of the quadrature sums.
	trapC = 0.329973702884629072537

	// trapA2 is a*a, kept as its own constant because it appears in
	// every denominator a^2 n^2 + y^2 of the quadrature terms.
	trapA2 = 0.268657157075235951582

	// twoTrapA is 2a, the spacing of the exponential arguments
	// exp(±2anx) in the series sums.
	twoTrapA = 1.036642960860171859744

	// machEps is the double precision unit roundoff 2^-52, used as the
	// relative convergence target of every truncated sum.
	machEps = 0x1p-52

	// sqrt2Pi is sqrt(2*pi), the Gaussian normalization of the Voigt
	// profile.
	sqrt2Pi = 2.5066282746310005024157652848110

	// sqrt2Ln2 is sqrt(2*log(2)), converting a Gaussian sigma into its
	// half width at half maximum.
	sqrt2Ln2 = 1.1774100225154746910115693264596996
)

// ─────────────────────────────────────────────────────────────────────────────
// Quadrature Weights
// ─────────────────────────────────────────────────────────────────────────────

// expA2N2 holds the quadrature weights exp(-a^2 n^2) for n = 1..52.
// Beyond n = 52 the weight underflows below the smallest subnormal, so
// the series loops never index past the end. The worst case inside the
// series region converges near n = 31.
var expA2N2 [52]float64

func init() {
	for n := 1; n <= len(expA2N2); n++ {
		an := trapA * float64(n)
		expA2N2[n-1] = math.Exp(-an * an)
	}
}
