package cerf

import "fmt"

// ExampleW evaluates the Faddeeva function on the real axis, where its
// real part is the Gaussian exp(-x^2).
func ExampleW() {
	w := W(complex(1, 0))
	fmt.Printf("%.6f %.6f\n", real(w), imag(w))
	// Output:
	// 0.367879 0.607158
}

// ExampleErf computes the error function of a complex argument.
func ExampleErf() {
	v := Erf(complex(1, 2))
	fmt.Printf("%.6f %+.6fi\n", real(v), imag(v))
	// Output:
	// -0.536644 -5.049144i
}

// ExampleDawson computes Dawson's integral on the real axis.
func ExampleDawson() {
	v := Dawson(complex(1, 0))
	fmt.Printf("%.6f\n", real(v))
	// Output:
	// 0.538080
}

// ExampleErfcx shows the underflow-free scaled complement: erfc(2)
// underflows toward zero far slower through the exp(z^2) scaling.
func ExampleErfcx() {
	v := Erfcx(complex(2, 0))
	fmt.Printf("%.4f\n", real(v))
	// Output:
	// 0.2554
}

// ExampleVoigt evaluates the pure Gaussian limit of the profile, whose
// peak density is 1/(sigma sqrt(2 pi)).
func ExampleVoigt() {
	fmt.Printf("%.6f\n", Voigt(0, 1, 0))
	// Output:
	// 0.398942
}

// ExampleVoigtHWHM shows the Gaussian limit of the half width,
// sigma sqrt(2 ln 2).
func ExampleVoigtHWHM() {
	fmt.Printf("%.6f\n", VoigtHWHM(1, 0))
	// Output:
	// 1.177410
}
