package inclination

import "gonum.org/v1/gonum/dsp/fourier"

// Transformer is the real-input discrete Fourier transform used to analyze
// the great-circle signal: Coefficients fills dst with the n/2+1 complex
// spectral bins (bin 0 = DC, increasing frequency) of a length-n real
// sequence. *fourier.FFT satisfies it; any implementation honoring the same
// bin order and (unscaled) normalization is interchangeable.
type Transformer interface {
	Len() int
	Coefficients(dst []complex128, seq []float64) []complex128
}

func newFFT(n int) Transformer {
	return fourier.NewFFT(n)
}

// sampleCount is the smallest power of two >= 2*lMax+1, the number of
// great-circle samples needed to resolve harmonics up to degree lMax.
func sampleCount(lMax int) (n int) {
	n = 1
	for n < 2*lMax+1 {
		n <<= 1
	}
	return
}
