// Package inclination computes normalized inclination functions Flmp (Kaula,
// 1966) and their inclination derivatives by Wagner's method: the functions
// are recovered as Fourier coefficients of a unit potential sampled along a
// great circle at inclination I, analyzed with a real-input FFT.
//
// Storage is a dense packed triangular pyramid over (l,m,p) with
// 0 <= p <= l and 0 <= m <= l <= lMax, addressed by LmpIdx. As in package
// harmonics, getters are unguarded except where a boundary policy is stated.
package inclination

import (
	"math"

	"github.com/notargets/goharmonics/harmonics"
	"github.com/notargets/goharmonics/utils"
)

// LmpIdx maps (l,m,p) into the packed pyramidal layout.
func LmpIdx(l, m, p int) int {
	return (l+1)*(l*(2*l+1))/6 + m*(l+1) + p
}

// LmkIdx maps (l,m,k) with k = l-2p.
func LmkIdx(l, m, k int) int {
	return LmpIdx(l, m, (l-k)/2)
}

// LIdx is the storage offset where degree l begins; LIdx(lMax+1) is the
// total table size.
func LIdx(l int) int {
	return l * (l + 1) * (2*l + 1) / 6
}

// Flmp holds inclination functions, and optionally their derivatives with
// respect to inclination, for all (l,m,p) up to a maximum degree.
type Flmp struct {
	LMax  int
	I     float64
	flmp  []float64
	dflmp []float64 // nil unless derivatives were requested
}

// NewFlmp computes inclination functions at inclination I (radians) for all
// degrees through lMax, using the gonum real FFT as the spectrum analyzer.
func NewFlmp(lMax int, I float64, derivatives bool) *Flmp {
	return NewFlmpTransform(lMax, I, derivatives, newFFT(sampleCount(lMax)))
}

// NewFlmpTransform is NewFlmp with a caller-supplied Fourier transform, which
// must be sized to sampleCount(lMax).
func NewFlmpTransform(lMax int, I float64, derivatives bool, ft Transformer) (F *Flmp) {
	var (
		n          = sampleCount(lMax)
		du         = 2 * math.Pi / float64(n)
		cosI, sinI = math.Cos(I), math.Sin(I)
	)
	if ft.Len() != n {
		panic("inclination: transform length does not match sample count")
	}
	F = &Flmp{
		LMax: lMax,
		I:    I,
		flmp: make([]float64, LIdx(lMax+1)),
	}
	// Great-circle sampling: auxiliary angle u around the circle induces a
	// longitude and co-latitude at each sample; one Legendre evaluation per
	// sample, scoped to this constructor.
	var (
		U     = utils.NewRangeVector(0, n-1).Scale(du)
		sinU  = U.Copy().Apply(math.Sin)
		cosU  = U.Copy().Apply(math.Cos)
		lam   = utils.NewVector(n)
		theta = utils.NewVector(n)
		plm   = make([]*harmonics.Plm, n)
		level = harmonics.NoDerivatives
	)
	if derivatives {
		level = harmonics.FirstDerivative
	}
	for i := 0; i < n; i++ {
		lam.SetVec(i, math.Atan2(cosI*sinU.AtVec(i), cosU.AtVec(i)))
		theta.SetVec(i, math.Acos(sinI*sinU.AtVec(i)))
		plm[i] = harmonics.NewPlm(lMax, theta.AtVec(i), level)
	}
	var (
		tlm   = utils.NewVector(n)
		coeff = make([]complex128, n/2+1)
		C     = make([]float64, lMax+1)
		S     = make([]float64, lMax+1)
	)
	lm := 0
	for l := 0; l <= lMax; l++ {
		for m := 0; m <= l; m++ {
			// Unit disturbing potential along the great circle
			for i := 0; i < n; i++ {
				s, c := math.Sincos(float64(m) * lam.AtVec(i))
				tlm.SetVec(i, plm[i].GetPlmBar(l, m)*(c+s))
			}
			ft.Coefficients(coeff, tlm.DataP())
			for i := 0; i <= l; i++ {
				C[i] = 2 * real(coeff[i]) / float64(n)
				S[i] = -2 * imag(coeff[i]) / float64(n)
			}
			mapHarmonics(F.flmp[lm:lm+l+1], l, m, C, S)
			lm += l + 1
		}
	}
	if derivatives {
		F.dflmp = make([]float64, LIdx(lMax+1))
		// Chain-rule factors for the sampled geometry
		var (
			dThetadI = utils.NewVector(n)
			dLamdI   = utils.NewVector(n)
			dtlm     = utils.NewVector(n)
		)
		for i := 0; i < n; i++ {
			su, cu := sinU.AtVec(i), cosU.AtVec(i)
			tu := su / cu
			dThetadI.SetVec(i, -su*cosI/math.Sqrt(1-sinI*sinI*su*su))
			dLamdI.SetVec(i, -sinI*tu/(1+cosI*cosI*tu*tu))
		}
		lm = 0
		for l := 0; l <= lMax; l++ {
			for m := 0; m <= l; m++ {
				for i := 0; i < n; i++ {
					s, c := math.Sincos(float64(m) * lam.AtVec(i))
					dtlm.SetVec(i,
						plm[i].GetDPlmBar(l, m)*dThetadI.AtVec(i)*(c+s)+
							plm[i].GetPlmBar(l, m)*float64(m)*(c-s)*dLamdI.AtVec(i))
				}
				ft.Coefficients(coeff, dtlm.DataP())
				for i := 0; i <= l; i++ {
					C[i] = 2 * real(coeff[i]) / float64(n)
					S[i] = -2 * imag(coeff[i]) / float64(n)
				}
				mapHarmonics(F.dflmp[lm:lm+l+1], l, m, C, S)
				lm += l + 1
			}
		}
	}
	return
}

// mapHarmonics maps the cosine/sine spectrum of one (l,m) great-circle signal
// into the p-indexed slots dst[0..l]. Only harmonics sharing the parity of l
// carry signal; the sign and slot pairing depend on whether l and m share
// parity. The C[0] write for even l comes first so the i=0 pass of the parity
// loops lands the final half-amplitude value in slot l/2.
func mapHarmonics(dst []float64, l, m int, C, S []float64) {
	if l%2 == 0 {
		if m%2 == 0 {
			dst[l/2] = C[0]
		} else {
			dst[l/2] = -C[0]
		}
	}
	if l%2 == m%2 {
		for i := 0; i <= l; i++ {
			if i%2 != l%2 {
				continue
			}
			dst[(l-i)/2] = (C[i] + S[i]) / 2
			dst[(l+i)/2] = (C[i] - S[i]) / 2
		}
	} else {
		for i := 0; i <= l; i++ {
			if i%2 != l%2 {
				continue
			}
			dst[(l+i)/2] = -(C[i] + S[i]) / 2
			dst[(l-i)/2] = -(C[i] - S[i]) / 2
		}
	}
}

func (F *Flmp) GetLMax() int {
	return F.LMax
}

func (F *Flmp) GetInclination() float64 {
	return F.I
}

func (F *Flmp) GetFlmp(l, m, p int) float64 {
	return F.flmp[LmpIdx(l, m, p)]
}

// GetFlmk returns Flmp at p = (l-k)/2, or 0 when |k| > l.
func (F *Flmp) GetFlmk(l, m, k int) float64 {
	if k < -l || k > l {
		return 0
	}
	return F.flmp[LmkIdx(l, m, k)]
}

func (F *Flmp) GetDFlmp(l, m, p int) float64 {
	return F.dflmp[LmpIdx(l, m, p)]
}

func (F *Flmp) GetDFlmk(l, m, k int) float64 {
	if k < -l || k > l {
		return 0
	}
	return F.dflmp[LmkIdx(l, m, k)]
}

// GetFlmkStar is the cross-track inclination function, the combination of
// neighboring-k inclination functions and derivatives used in cross-track
// perturbation spectra.
func (F *Flmp) GetFlmkStar(l, m, k int) float64 {
	var (
		cosI = math.Cos(F.I)
		sinI = math.Sin(F.I)
	)
	return 0.5 * ((float64(k-1)*cosI-float64(m))/sinI*F.GetFlmk(l, m, k-1) +
		(float64(k+1)*cosI-float64(m))/sinI*F.GetFlmk(l, m, k+1) -
		F.GetDFlmk(l, m, k-1) + F.GetDFlmk(l, m, k+1))
}

// Copy returns an independent deep copy.
func (F *Flmp) Copy() (out *Flmp) {
	out = &Flmp{
		LMax: F.LMax,
		I:    F.I,
		flmp: make([]float64, len(F.flmp)),
	}
	copy(out.flmp, F.flmp)
	if F.dflmp != nil {
		out.dflmp = make([]float64, len(F.dflmp))
		copy(out.dflmp, F.dflmp)
	}
	return
}
