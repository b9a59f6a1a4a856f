package common

// ToComplex promotes a real sequence to complex samples with zero imaginary part.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// RealPart returns the real parts of x.
func RealPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}

// ImagPart returns the imaginary parts of x.
func ImagPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = imag(v)
	}
	return out
}

// Abs2 returns |c|² without the square root of cmplx.Abs.
func Abs2(c complex128) float64 {
	re, im := real(c), imag(c)
	return re*re + im*im
}
