package cerf

import "math"

// erfcx computes the underflow-compensated complementary error function
// erfcx(x) = exp(x^2) * erfc(x) for a real argument.
//
// Three regimes cover the real line:
//
//   - x >= 12: the asymptotic expansion of erfcx, which converges to
//     machine precision in at most a dozen terms and avoids the total
//     cancellation of erfc against exp(x^2).
//   - x <= -12: the reflection erfcx(x) = 2 exp(x^2) - erfcx(-x). The
//     exp term overflows to +Inf beyond x ≈ -26.64, which is the exact
//     limiting value.
//   - |x| < 12: the direct product exp(x^2) * erfc(x). The rounding of
//     x^2 to a float64 alone would cost up to x^2 * eps ≈ 1.6e-14 in
//     relative error near the regime boundary, so the discarded low
//     bits are recovered with an FMA and applied as a first order
//     correction to the exponential.
//
// Parameters:
//   - x: The real argument.
//
// Returns:
//   - float64: erfcx(x), with NaN propagated and erfcx(-Inf) = +Inf.
func erfcx(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x >= 12:
		return erfcxAsymptotic(x)
	case x <= -12:
		if math.IsInf(x, -1) {
			return math.Inf(1)
		}
		p := x * x
		e := math.FMA(x, x, -p)
		return 2*math.Exp(p)*(1+e) - erfcxAsymptotic(-x)
	default:
		p := x * x
		e := math.FMA(x, x, -p)
		return math.Exp(p) * (1 + e) * math.Erfc(x)
	}
}

// erfcxAsymptotic evaluates the divergent asymptotic series
//
//	erfcx(x) ~ 1/(x sqrt(pi)) * (1 - 1/(2x^2) + 3/(4x^4) - ...)
//
// by summing until the terms stop shrinking below the roundoff of the
// partial sum. For x >= 12 the truncation error stays below 1.3e-17.
func erfcxAsymptotic(x float64) float64 {
	u := 1 / (2 * x * x)
	sum := 1.0
	term := 1.0
	for k := 1; k <= 40; k++ {
		term *= -u * float64(2*k-1)
		sum += term
		if math.Abs(term) < machEps*math.Abs(sum) {
			break
		}
	}
	return invSqrtPi / x * sum
}
