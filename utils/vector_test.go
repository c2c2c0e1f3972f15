package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	{
		N := 5
		v1 := NewVector(N).Set(1)
		assert.Equal(t, N, v1.Len())
		for i := 0; i < N; i++ {
			assert.Equal(t, 1., v1.AtVec(i))
		}
		v1.Scale(2).Add(1)
		assert.Equal(t, 3., v1.Min())
		assert.Equal(t, 3., v1.Max())
	}
	{
		v := NewRangeVector(0, 3)
		assert.Equal(t, []float64{0, 1, 2, 3}, v.DataP())
		w := v.Copy().Apply(func(x float64) float64 { return x * x })
		assert.Equal(t, []float64{0, 1, 4, 9}, w.DataP())
		// Copy must not alias the source
		assert.Equal(t, []float64{0, 1, 2, 3}, v.DataP())
	}
	{
		v := NewRangeVector(0, 7).Scale(math.Pi / 4).Apply(math.Sin)
		assert.InDelta(t, 1, v.Max(), 1.e-15)
		assert.InDelta(t, -1, v.Min(), 1.e-15)
	}
}
