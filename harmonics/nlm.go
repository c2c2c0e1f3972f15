// Package harmonics computes fully-normalized Associated Legendre Functions
// and the normalization constants relating them to the traditional
// (unnormalized) forms, for use in spherical-harmonic gravity field and
// orbital perturbation analysis.
//
// All tables are stored packed lower-triangular, one entry per (l,m) with
// 0 <= m <= l <= lMax, addressed by LmIdx. Getters are unguarded: indices
// outside the constructed maximum degree are a caller contract violation.
package harmonics

import "math"

// LmIdx maps (l,m) with 0 <= m <= l into the packed lower-triangular layout.
func LmIdx(l, m int) int {
	return l*(l+1)/2 + m
}

// LmTableSize is the packed storage length for degrees 0..lMax.
func LmTableSize(lMax int) int {
	return (lMax + 1) * (lMax + 2) / 2
}

// Nlm holds the constants converting fully-normalized spherical harmonic
// functions to their unnormalized counterparts, per Heiskanen and Moritz
// (1967, eq. 1-91):
//
//	Nlm = sqrt((2-d0m)(2l+1)(l-m)!/(l+m)!)
//
// computed by recursion over order to avoid factorial overflow at high degree.
type Nlm struct {
	LMax int
	nlm  []float64
}

func NewNlm(lMax int) (nl *Nlm) {
	nl = &Nlm{
		LMax: lMax,
		nlm:  make([]float64, LmTableSize(lMax)),
	}
	for l := 0; l <= lMax; l++ {
		nl.nlm[LmIdx(l, 0)] = math.Sqrt(float64(2*l + 1))
	}
	for m := 1; m <= lMax; m++ {
		for l := m; l <= lMax; l++ {
			nl.nlm[LmIdx(l, m)] = nl.nlm[LmIdx(l, m-1)] *
				math.Sqrt(1./float64((l-m+1)*(l+m)))
		}
	}
	// The sqrt(2) factor for m>0 is applied after the recursion completes:
	// the column recursion must consume pre-adjustment values.
	for m := 1; m <= lMax; m++ {
		for l := m; l <= lMax; l++ {
			nl.nlm[LmIdx(l, m)] *= math.Sqrt2
		}
	}
	return
}

func (nl *Nlm) GetNlm(l, m int) float64 {
	return nl.nlm[LmIdx(l, m)]
}

// Copy returns an independent deep copy.
func (nl *Nlm) Copy() (out *Nlm) {
	out = &Nlm{
		LMax: nl.LMax,
		nlm:  make([]float64, len(nl.nlm)),
	}
	copy(out.nlm, nl.nlm)
	return
}
