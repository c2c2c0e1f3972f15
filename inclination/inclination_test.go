package inclination

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLmpIdx(t *testing.T) {
	// Row-major enumeration of (l,m,p) must hit 0,1,2,... with no gaps, and
	// LIdx must give the offset where each degree begins
	lMax := 100
	i := 0
	for l := 0; l <= lMax; l++ {
		assert.Equal(t, i, LIdx(l))
		for m := 0; m <= l; m++ {
			for p := 0; p <= l; p++ {
				assert.Equal(t, i, LmpIdx(l, m, p))
				i++
			}
		}
	}
	assert.Equal(t, LIdx(lMax+1), i)
}

func TestSampleCount(t *testing.T) {
	assert.Equal(t, 1, sampleCount(0))
	assert.Equal(t, 4, sampleCount(1))
	assert.Equal(t, 8, sampleCount(2))
	assert.Equal(t, 256, sampleCount(100))
}

// complexFlmp applies the i^(l-m) phase relating the real-valued storage to
// the published (Kaula, 1966) convention.
func complexFlmp(F *Flmp, l, m, p int) float64 {
	return real(cmplx.Pow(1i, complex(float64(l-m), 0)) *
		complex(F.GetFlmp(l, m, p), 0))
}

func TestFlmpValue100(t *testing.T) {
	I := 109.9 * math.Pi / 180
	F := NewFlmp(100, I, false)

	assert.InDelta(t, 0.163727788669698, complexFlmp(F, 15, 15, 7), 1.e-10)
	assert.InDelta(t, 0.487417791777481, complexFlmp(F, 17, 15, 8), 1.e-10)
	assert.InDelta(t, 0.039444885080361, complexFlmp(F, 19, 15, 9), 1.e-10)
	assert.InDelta(t, -0.334234993689438, complexFlmp(F, 21, 15, 10), 1.e-10)
	assert.InDelta(t, 0.238101170358486, complexFlmp(F, 23, 15, 11), 1.e-10)
	assert.InDelta(t, 0.035197122324998, complexFlmp(F, 25, 15, 12), 1.e-10)
	assert.InDelta(t, -0.238961053270882, complexFlmp(F, 27, 15, 13), 1.e-10)
	assert.InDelta(t, 0.250820102027528, complexFlmp(F, 29, 15, 14), 1.e-10)
	assert.InDelta(t, -0.098284229213865, complexFlmp(F, 31, 15, 15), 1.e-10)
	assert.InDelta(t, -0.099812590952652, complexFlmp(F, 33, 15, 16), 1.e-10)
	assert.InDelta(t, 0.220401483107786, complexFlmp(F, 35, 15, 17), 1.e-10)
	assert.InDelta(t, -0.203459255803049, complexFlmp(F, 37, 15, 18), 1.e-10)
	assert.InDelta(t, 0.072853902584608, complexFlmp(F, 39, 15, 19), 1.e-10)
	assert.InDelta(t, 0.089117362850045, complexFlmp(F, 41, 15, 20), 1.e-10)
	assert.InDelta(t, -0.192487848426302, complexFlmp(F, 43, 15, 21), 1.e-10)
	assert.InDelta(t, 0.186917527873700, complexFlmp(F, 45, 15, 22), 1.e-10)
	assert.InDelta(t, -0.083106948025162, complexFlmp(F, 47, 15, 23), 1.e-10)
	assert.InDelta(t, -0.058636531371390, complexFlmp(F, 49, 15, 24), 1.e-10)
	assert.InDelta(t, 0.163214940273027, complexFlmp(F, 51, 15, 25), 1.e-10)
	assert.InDelta(t, -0.179533365185972, complexFlmp(F, 53, 15, 26), 1.e-10)
	assert.InDelta(t, 0.104101730627469, complexFlmp(F, 55, 15, 27), 1.e-10)
	assert.InDelta(t, 0.020582796611666, complexFlmp(F, 57, 15, 28), 1.e-10)
	assert.InDelta(t, -0.129982540091162, complexFlmp(F, 59, 15, 29), 1.e-10)

	assert.Equal(t, 100, F.GetLMax())
	assert.Equal(t, I, F.GetInclination())
}

func TestFlmpDerivative100(t *testing.T) {
	I := 25 * math.Pi / 180
	F := NewFlmp(100, I, true)

	assert.InDelta(t, 0.000193588834461, math.Abs(F.GetDFlmp(15, 15, 7)), 1.e-10)
	assert.InDelta(t, 0.002962643282053, math.Abs(F.GetDFlmp(17, 15, 8)), 1.e-10)
	assert.InDelta(t, 0.019210738800719, math.Abs(F.GetDFlmp(19, 15, 9)), 1.e-10)
	assert.InDelta(t, 0.080996204022307, math.Abs(F.GetDFlmp(21, 15, 10)), 1.e-10)
	assert.InDelta(t, 0.254529309868877, math.Abs(F.GetDFlmp(23, 15, 11)), 1.e-10)
	assert.InDelta(t, 0.635791817300206, math.Abs(F.GetDFlmp(25, 15, 12)), 1.e-10)
	assert.InDelta(t, 1.304718954007593, math.Abs(F.GetDFlmp(27, 15, 13)), 1.e-10)
	assert.InDelta(t, 2.229338572015512, math.Abs(F.GetDFlmp(29, 15, 14)), 1.e-10)
	assert.InDelta(t, 3.154511340102659, math.Abs(F.GetDFlmp(31, 15, 15)), 1.e-10)
	assert.InDelta(t, 3.561310705132132, math.Abs(F.GetDFlmp(33, 15, 16)), 1.e-10)
	assert.InDelta(t, 2.797301141098675, math.Abs(F.GetDFlmp(35, 15, 17)), 1.e-10)
	assert.InDelta(t, 7.135563481217891, math.Abs(F.GetDFlmp(59, 15, 29)), 1.e-10)
	assert.InDelta(t, 13.533758345144610, math.Abs(F.GetDFlmp(61, 15, 30)), 1.e-10)
	assert.InDelta(t, 12.842455780020720, math.Abs(F.GetDFlmp(63, 15, 31)), 1.e-10)
	assert.InDelta(t, 4.896633828451622, math.Abs(F.GetDFlmp(65, 15, 32)), 1.e-10)
	assert.InDelta(t, 6.247154772263426, math.Abs(F.GetDFlmp(67, 15, 33)), 1.e-10)
	assert.InDelta(t, 14.285109814165770, math.Abs(F.GetDFlmp(69, 15, 34)), 1.e-10)
	assert.InDelta(t, 14.262965486747120, math.Abs(F.GetDFlmp(71, 15, 35)), 1.e-10)
	assert.InDelta(t, 5.729761501008049, math.Abs(F.GetDFlmp(73, 15, 36)), 1.e-10)
}

func TestFlmpDerivativeFiniteDifference(t *testing.T) {
	var (
		lMax    = 10
		I       = 40 * math.Pi / 180
		dI      = 1.e-6
		checked int
	)
	Fa := NewFlmp(lMax, I+dI, false)
	Fb := NewFlmp(lMax, I-dI, false)
	F := NewFlmp(lMax, I, true)
	for l := 2; l <= lMax; l++ {
		for m := 0; m <= l; m++ {
			p := l / 2
			dNum := (Fa.GetFlmp(l, m, p) - Fb.GetFlmp(l, m, p)) / (2 * dI)
			// Skip entries where the finite-difference baseline is too small
			// to divide by
			if math.Abs(dNum) < 1.e-2 {
				continue
			}
			assert.InDelta(t, 0, (F.GetDFlmp(l, m, p)-dNum)/dNum, 1.e-5)
			checked++
		}
	}
	assert.GreaterOrEqual(t, checked, 10)
}

func TestFlmkBoundary(t *testing.T) {
	F := NewFlmp(12, 0.9, true)
	for l := 0; l <= 12; l++ {
		for m := 0; m <= l; m++ {
			assert.Equal(t, 0., F.GetFlmk(l, m, l+1))
			assert.Equal(t, 0., F.GetFlmk(l, m, -l-1))
			assert.Equal(t, 0., F.GetDFlmk(l, m, l+2))
			assert.Equal(t, 0., F.GetDFlmk(l, m, -l-2))
		}
	}
	// In range, the k-form aliases the p-form through k = l-2p
	for l := 0; l <= 12; l++ {
		for p := 0; p <= l; p++ {
			k := l - 2*p
			assert.Equal(t, F.GetFlmp(l, l, p), F.GetFlmk(l, l, k))
		}
	}
}

func TestFlmkStar(t *testing.T) {
	var (
		I       = 63.4 * math.Pi / 180
		l, m, k = 10, 4, 2
	)
	F := NewFlmp(12, I, true)
	cosI, sinI := math.Cos(I), math.Sin(I)
	want := 0.5 * ((float64(k-1)*cosI-float64(m))/sinI*F.GetFlmk(l, m, k-1) +
		(float64(k+1)*cosI-float64(m))/sinI*F.GetFlmk(l, m, k+1) -
		F.GetDFlmk(l, m, k-1) + F.GetDFlmk(l, m, k+1))
	assert.Equal(t, want, F.GetFlmkStar(l, m, k))
	assert.False(t, math.IsNaN(F.GetFlmkStar(12, 12, 12)))
}

func TestFlmpTransformInterchangeable(t *testing.T) {
	// Any transform honoring the bin contract must reproduce NewFlmp
	lMax := 8
	F1 := NewFlmp(lMax, 0.6, false)
	F2 := NewFlmpTransform(lMax, 0.6, false, newFFT(sampleCount(lMax)))
	for l := 0; l <= lMax; l++ {
		for m := 0; m <= l; m++ {
			for p := 0; p <= l; p++ {
				assert.Equal(t, F1.GetFlmp(l, m, p), F2.GetFlmp(l, m, p))
			}
		}
	}
}

func TestFlmpCopy(t *testing.T) {
	F := NewFlmp(10, 1.2, true)
	cp := F.Copy()
	assert.Equal(t, F.GetFlmp(10, 5, 3), cp.GetFlmp(10, 5, 3))
	assert.Equal(t, F.GetDFlmp(10, 5, 3), cp.GetDFlmp(10, 5, 3))
	F.flmp[LmpIdx(10, 5, 3)] = 42
	F.dflmp[LmpIdx(10, 5, 3)] = 42
	assert.NotEqual(t, 42., cp.GetFlmp(10, 5, 3))
	assert.NotEqual(t, 42., cp.GetDFlmp(10, 5, 3))
}
