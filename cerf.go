package cerf

import (
	"math"
	"math/cmplx"
)

// Across this file, arguments in the half plane where exp(-z^2) is
// large are mirrored into the other half through the symmetries of w
// before any exponential is formed, so that exponentially large and
// exponentially small factors are never multiplied. Scaling by real
// factors goes through mulReal: forming complex(s, 0)*z would turn an
// infinite component of z into NaN via the 0*Inf cross terms.

// Erf computes the complex error function erf(z).
//
// For arguments off the axes it is derived from the Faddeeva function
// through erf(z) = 1 - exp(-z^2) w(iz), with the exponential kept in
// polar pieces. Near the origin short Taylor expansions take over
// where the subtraction from 1 would cancel.
//
// Parameters:
//   - z: The complex argument.
//
// Returns:
//   - complex128: erf(z), accurate to 1e-13 relative error.
func Erf(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		// Real argument; keep the sign of zero in the imaginary part.
		return complex(math.Erf(x), y)
	}
	if x == 0 {
		// Purely imaginary: erf(iy) = i erfi(y).
		return complex(x, erfi(y))
	}

	mRe := (y - x) * (x + y) // Re(-z^2), no overflow near the diagonal
	mIm := -2 * x * y        // Im(-z^2)
	if mRe < -750 {
		// exp(-z^2) underflows; erf saturates at its sign limit.
		if x >= 0 {
			return complex(1, 0)
		}
		return complex(-1, 0)
	}

	if x >= 0 {
		if x < 8e-2 {
			if math.Abs(y) < 1e-2 {
				return erfTaylor(z, complex(mRe, mIm))
			}
			if math.Abs(mIm) < 5e-3 && x < 5e-3 {
				return erfTaylorErfi(x, y)
			}
		}
		e := math.Exp(mRe)
		q := complex(math.Cos(mIm), math.Sin(mIm)) * W(complex(-y, x))
		return complex(1-e*real(q), -e*imag(q))
	}

	if x > -8e-2 {
		if math.Abs(y) < 1e-2 {
			return erfTaylor(z, complex(mRe, mIm))
		}
		if math.Abs(mIm) < 5e-3 && x > -5e-3 {
			return erfTaylorErfi(x, y)
		}
	} else if math.IsNaN(x) {
		return complex(math.NaN(), math.NaN())
	}
	e := math.Exp(mRe)
	q := complex(math.Cos(mIm), math.Sin(mIm)) * W(complex(y, -x))
	return complex(e*real(q)-1, e*imag(q))
}

// erfTaylor sums the leading Maclaurin terms of erf. The caller
// supplies mz2 = -z^2; four terms reach double precision for |z|
// below the dispatch thresholds.
func erfTaylor(z, mz2 complex128) complex128 {
	return z * (1.1283791670955125739 +
		mz2*(0.37612638903183752464+
			mz2*(0.11283791670955125739+
				mz2*(0.026866170645131251760+
					mz2*0.0052239776254421878422))))
}

// erfTaylorErfi expands erf(x+iy) to second order in the small real
// part x while keeping y exact through erfi. It covers the strip
// where z sits close to the imaginary axis but |y| is too large for
// the plain Taylor form.
func erfTaylorErfi(x, y float64) complex128 {
	x2 := x * x
	y2 := y * y
	expy2 := math.Exp(y2)
	return complex(
		expy2*x*(1.1283791670955125739-
			x2*(0.37612638903183752464+0.75225277806367504925*y2)+
			x2*x2*(0.11283791670955125739+
				y2*(0.45135166683820502956+0.15045055561273500986*y2))),
		expy2*(imwx(y)-
			x2*y*(1.1283791670955125739-
				x2*(0.56418958354775628695+0.37612638903183752464*y2))))
}

// Erfc computes the complex complementary error function
// erfc(z) = 1 - erf(z), evaluated directly as exp(-z^2) w(iz) in the
// right half plane so that no accuracy is lost where erfc is tiny.
//
// Parameters:
//   - z: The complex argument.
//
// Returns:
//   - complex128: erfc(z), accurate to 1e-13 relative error.
func Erfc(z complex128) complex128 {
	x, y := real(z), imag(z)
	if x == 0 {
		// erfc(iy) = 1 - i erfi(y).
		return complex(1, -erfi(y))
	}
	if y == 0 {
		if x*x > 750 {
			// exp(-x^2) underflows.
			if x >= 0 {
				return complex(0, -y)
			}
			return complex(2, -y)
		}
		if x >= 0 {
			return complex(math.Exp(-x*x)*erfcx(x), -y)
		}
		return complex(2-math.Exp(-x*x)*erfcx(-x), -y)
	}

	mRe := (y - x) * (x + y)
	mIm := -2 * x * y
	if mRe < -750 {
		if x >= 0 {
			return complex(0, 0)
		}
		return complex(2, 0)
	}

	if x >= 0 {
		return mulReal(math.Exp(mRe),
			complex(math.Cos(mIm), math.Sin(mIm))*W(complex(-y, x)))
	}
	q := mulReal(math.Exp(mRe),
		complex(math.Cos(mIm), math.Sin(mIm))*W(complex(y, -x)))
	return complex(2-real(q), -imag(q))
}

// Erfcx computes the underflow-compensated complementary error
// function erfcx(z) = exp(z^2) erfc(z), which is the Faddeeva
// function of the rotated argument: erfcx(z) = w(iz).
func Erfcx(z complex128) complex128 {
	return W(complex(-imag(z), real(z)))
}

// Erfi computes the imaginary error function erfi(z) = -i erf(iz).
// It is real valued on the real axis, where it grows like
// exp(x^2)/(x sqrt(pi)).
func Erfi(z complex128) complex128 {
	e := Erf(complex(-imag(z), real(z)))
	return complex(imag(e), -real(e))
}

// Dawson computes the complex Dawson integral
//
//	D(z) = exp(-z^2) * integral(exp(t^2), t=0..z)
//	     = sqrt(pi)/2 * i * (exp(-z^2) - w(z)),
//
// with the usual half-plane mirroring and, near the real axis, an
// expansion in powers of y around the real Dawson function.
//
// Parameters:
//   - z: The complex argument.
//
// Returns:
//   - complex128: D(z), accurate to 1e-13 relative error.
func Dawson(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		return complex(dawson(x), -y)
	}
	if x == 0 {
		y2 := y * y
		if y2 < 2.5e-5 {
			return complex(x, y*(1+y2*(0.6666666666666666666666666666666666666667+
				y2*0.26666666666666666666666666666666666667)))
		}
		// D(iy) = i sqrt(pi)/2 (exp(y^2) - erfcx(|y|)) for y > 0, odd in y.
		if y >= 0 {
			return complex(x, halfSqrtPi*(math.Exp(y2)-erfcx(y)))
		}
		return complex(x, halfSqrtPi*(erfcx(-y)-math.Exp(y2)))
	}

	mRe := (y - x) * (x + y)
	mIm := -2 * x * y
	mz2 := complex(mRe, mIm)

	if y >= 0 {
		if y < 5e-3 {
			if math.Abs(x) < 5e-3 {
				return dawsonTaylor(z, mz2)
			}
			if math.Abs(mIm) < 5e-3 {
				return dawsonRealAxis(x, y)
			}
		}
		res := cmplx.Exp(mz2) - W(z)
		return mulReal(halfSqrtPi, complex(-imag(res), real(res)))
	}

	if y > -5e-3 {
		if math.Abs(x) < 5e-3 {
			return dawsonTaylor(z, mz2)
		}
		if math.Abs(mIm) < 5e-3 {
			return dawsonRealAxis(x, y)
		}
	} else if math.IsNaN(y) {
		return complex(math.NaN(), math.NaN())
	}
	res := W(-z) - cmplx.Exp(mz2)
	return mulReal(halfSqrtPi, complex(-imag(res), real(res)))
}

// dawsonTaylor sums the leading Maclaurin terms of D(z) given
// mz2 = -z^2.
func dawsonTaylor(z, mz2 complex128) complex128 {
	return z * (1 + mz2*(0.6666666666666666666666666666666666666667+
		mz2*0.2666666666666666666666666666666666666667))
}

// dawsonRealAxis expands D(x+iy) in powers of the small imaginary
// part y around the real Dawson function. The direct formula loses
// all precision here because exp(-z^2) and w(z) agree to O(y).
// Large |x| switches to reciprocal expansions that avoid forming x^2
// past the overflow threshold where possible.
func dawsonRealAxis(x, y float64) complex128 {
	x2 := x * x
	if x2 > 1600 { // |x| > 40
		y2 := y * y
		if x2 > 25e14 { // |x| > 5e7
			xy2 := (x * y) * (x * y)
			return complex(
				(0.5+y2*(0.5+0.25*y2-0.16666666666666666667*xy2))/x,
				y*(-1+y2*(-0.66666666666666666667+
					0.13333333333333333333*xy2-
					0.26666666666666666667*y2))/(2*x2-1))
		}
		return mulReal(1/(-15+x2*(90+x2*(-60+8*x2))),
			complex(
				x*(33+x2*(-28+4*x2)+y2*(18-4*x2+4*y2)),
				y*(-15+x2*(24-4*x2)+y2*(4*x2-10-4*y2))))
	}
	d := dawson(x)
	y2 := y * y
	return complex(
		d+y2*(d+x-2*d*x2)+
			y2*y2*(d*(0.5-x2*(2-0.66666666666666666667*x2))+
				x*(0.83333333333333333333-0.33333333333333333333*x2)),
		y*(1-2*d*x+
			y2*0.66666666666666666667*(1-x2-d*x*(3-2*x2))+
			y2*y2*(0.26666666666666666667-
				x2*(0.6-0.13333333333333333333*x2)-
				d*x*(1-x2*(1.3333333333333333333-0.26666666666666666667*x2)))))
}

// erfi computes the real imaginary error function
// erfi(x) = exp(x^2) Im[w(x)], with the overflow limit taken by hand
// because exp(x^2) alone rounds to Inf while Im[w] goes to zero.
func erfi(x float64) float64 {
	if x*x > 720 {
		return math.Copysign(math.Inf(1), x)
	}
	return math.Exp(x*x) * imwx(x)
}

// dawson computes the real Dawson integral sqrt(pi)/2 * Im[w(x)].
func dawson(x float64) float64 {
	return halfSqrtPi * imwx(x)
}

// mulReal scales z componentwise by the real factor s.
func mulReal(s float64, z complex128) complex128 {
	return complex(s*real(z), s*imag(z))
}
