package harmonics

import "math"

// DerivativeLevel selects which co-latitude derivative tables a Plm allocates
// and fills at construction. Second derivatives require the first, so the
// request is a single level rather than independent flags.
type DerivativeLevel uint8

const (
	NoDerivatives DerivativeLevel = iota
	FirstDerivative
	SecondDerivative
)

// Plm evaluates fully-normalized Associated Legendre Functions at a single
// co-latitude theta for all (l,m) with 0 <= m <= l <= LMax, using the
// Fixed-Order-Increase-Degree recursion of Holmes and Featherstone (2002),
// which is stable to degrees in the hundreds. Theta is fixed for the life of
// the value; build a new Plm for a new co-latitude.
//
// Derivative formulas divide by sin(theta): polar co-latitudes (theta = 0 or
// pi) produce Inf/NaN when derivatives are requested. That is a singularity
// of the formulation and propagates to the caller.
type Plm struct {
	LMax  int
	Theta float64
	Nlm   *Nlm
	plm   []float64
	dplm  []float64 // nil unless level >= FirstDerivative
	ddplm []float64 // nil unless level == SecondDerivative
}

func NewPlm(lMax int, theta float64, level DerivativeLevel) (P *Plm) {
	var (
		size = LmTableSize(lMax)
		t    = math.Cos(theta)
		u    = math.Sin(theta)
	)
	P = &Plm{
		LMax:  lMax,
		Theta: theta,
		Nlm:   NewNlm(lMax),
		plm:   make([]float64, size),
	}
	// Coupling coefficients for the FOID recursion; b is zero by definition
	// when l-m == 1 (the recursion never reaches two degrees below the
	// diagonal there).
	a := make([]float64, size)
	b := make([]float64, size)
	for l := 0; l <= lMax; l++ {
		for m := 0; m < l; m++ {
			a[LmIdx(l, m)] = math.Sqrt(float64((2*l - 1) * (2*l + 1)) /
				float64((l-m)*(l+m)))
			if l-m != 1 {
				b[LmIdx(l, m)] = math.Sqrt(float64((2*l+1)*(l+m-1)*(l-m-1)) /
					float64((l-m)*(l+m)*(2*l-3)))
			}
		}
	}
	// Seeds
	P.plm[0] = 1
	if lMax > 0 {
		P.plm[LmIdx(1, 1)] = math.Sqrt(3) * u
	}
	// Sectorial recursion along the diagonal
	for l := 2; l <= lMax; l++ {
		P.plm[LmIdx(l, l)] = math.Sqrt(float64(2*l+1)/float64(2*l)) * u *
			P.plm[LmIdx(l-1, l-1)]
	}
	// Fix the order, increase the degree
	for m := 0; m < lMax; m++ {
		l := m + 1
		P.plm[LmIdx(l, m)] = a[LmIdx(l, m)] * t * P.plm[LmIdx(l-1, m)]
		for l = m + 2; l <= lMax; l++ {
			P.plm[LmIdx(l, m)] = a[LmIdx(l, m)]*t*P.plm[LmIdx(l-1, m)] -
				b[LmIdx(l, m)]*P.plm[LmIdx(l-2, m)]
		}
	}
	if level >= FirstDerivative {
		P.dplm = make([]float64, size)
		f := make([]float64, size)
		for l := 0; l <= lMax; l++ {
			for m := 0; m <= l; m++ {
				f[LmIdx(l, m)] = math.Sqrt(float64((l*l - m*m) * (2*l + 1)) /
					float64(2*l-1))
			}
		}
		for m := 0; m <= lMax; m++ {
			P.dplm[LmIdx(m, m)] = float64(m) * t / u * P.plm[LmIdx(m, m)]
		}
		for l := 1; l <= lMax; l++ {
			for m := 0; m < l; m++ {
				P.dplm[LmIdx(l, m)] = 1. / u *
					(float64(l)*t*P.plm[LmIdx(l, m)] -
						f[LmIdx(l, m)]*P.plm[LmIdx(l-1, m)])
			}
		}
		if level >= SecondDerivative {
			P.ddplm = make([]float64, size)
			for m := 0; m <= lMax; m++ {
				P.ddplm[LmIdx(m, m)] = float64(m-1)*t/u*P.dplm[LmIdx(m, m)] -
					float64(m)*P.plm[LmIdx(m, m)]
			}
			for l := 1; l <= lMax; l++ {
				for m := 0; m < l; m++ {
					P.ddplm[LmIdx(l, m)] = 1./u*
						(float64(l-1)*t*P.dplm[LmIdx(l, m)]-
							f[LmIdx(l, m)]*P.dplm[LmIdx(l-1, m)]) -
						float64(l)*P.plm[LmIdx(l, m)]
				}
			}
		}
	}
	return
}

// GetPlmBar returns the fully-normalized function value.
func (P *Plm) GetPlmBar(l, m int) float64 {
	return P.plm[LmIdx(l, m)]
}

// GetPlm returns the unnormalized (traditional) function value.
func (P *Plm) GetPlm(l, m int) float64 {
	return P.plm[LmIdx(l, m)] / P.Nlm.GetNlm(l, m)
}

func (P *Plm) GetDPlmBar(l, m int) float64 {
	return P.dplm[LmIdx(l, m)]
}

func (P *Plm) GetDPlm(l, m int) float64 {
	return P.dplm[LmIdx(l, m)] / P.Nlm.GetNlm(l, m)
}

func (P *Plm) GetDDPlmBar(l, m int) float64 {
	return P.ddplm[LmIdx(l, m)]
}

func (P *Plm) GetDDPlm(l, m int) float64 {
	return P.ddplm[LmIdx(l, m)] / P.Nlm.GetNlm(l, m)
}

func (P *Plm) GetTheta() float64 {
	return P.Theta
}

// Copy returns an independent deep copy, including whichever derivative
// tables were computed.
func (P *Plm) Copy() (out *Plm) {
	out = &Plm{
		LMax:  P.LMax,
		Theta: P.Theta,
		Nlm:   P.Nlm.Copy(),
		plm:   make([]float64, len(P.plm)),
	}
	copy(out.plm, P.plm)
	if P.dplm != nil {
		out.dplm = make([]float64, len(P.dplm))
		copy(out.dplm, P.dplm)
	}
	if P.ddplm != nil {
		out.ddplm = make([]float64, len(P.ddplm))
		copy(out.ddplm, P.ddplm)
	}
	return
}
