package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfmatch/element"
	"rfmatch/unit"
)

func TestCalcRI(t *testing.T) {
	ret, err := CalcRI([]float64{0, 20}, []unit.Unit{unit.Q, unit.Femto}, nil, "sc", 280e9, 50, false, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, ret[0], tol)
	assert.InDelta(t, -0.5684105110424832, ret[1], tol)

	ret, err = CalcRI([]float64{20, 10}, []unit.Unit{unit.Q, unit.Pico}, nil, "pi", 280e9, 50, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.8796459430051421/50, ret[0], tol)
	assert.InDelta(t, 17.59291886010284/50, ret[1], tol)

	ret, err = CalcRI([]float64{20, 10, 25, 0.35}, []unit.Unit{unit.Q, unit.Pico, unit.Pico, unit.K}, nil, "xfmr", 280e9, 50, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.049356692562632656, ret[0], tol)
	assert.InDelta(t, 0.7721580347576311, ret[1], tol)

	ret, err = CalcRI([]float64{10, -20}, nil, nil, "bb", 280e9, 50, true, false)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.1, -0.2, 0}, ret)
	ret, err = CalcRI([]float64{10, -20}, nil, nil, "bb", 280e9, 50, false, false)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.2, -0.4, 0}, ret)

	ret, err = CalcRI([]float64{100}, []unit.Unit{unit.Kilo}, nil, "sr", 280e9, 50, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 2000, ret[0], tol)

	ret, err = CalcRI([]float64{100}, []unit.Unit{unit.Micro}, nil, "tl", 280e9, 50, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 100e-6, ret[2], 1e-18)
	assert.Equal(t, 0.0, ret[0])
}

func TestCalcRIErrors(t *testing.T) {
	_, err := CalcRI([]float64{1}, nil, nil, "zz", 1e9, 50, false, false)
	assert.ErrorIs(t, err, element.ErrNotRecognized)
	assert.Contains(t, err.Error(), "element not recognized")

	_, err = CalcRI([]float64{1}, nil, nil, "sc", 1e9, 50, false, false)
	assert.ErrorIs(t, err, ErrMissingValue)

	_, err = CalcRI(nil, nil, nil, "customZ", 1e9, 50, false, false)
	assert.ErrorIs(t, err, ErrEmptyLUT)
}

func TestLUT(t *testing.T) {
	lut := LUT{{1e9, 10, 1}, {2e9, 20, 3}, {3e9, 30, 5}}
	for _, c := range []struct {
		freq float64
		want complex128
	}{
		{0.5e9, complex(10, 1)},
		{1e9, complex(10, 1)},
		{1.5e9, complex(15, 2)},
		{2.5e9, complex(25, 4)},
		{3e9, complex(30, 5)},
		{4e9, complex(30, 5)},
	} {
		z, err := lut.At(c.freq)
		require.NoError(t, err)
		assertComplex(t, c.want, z, "lut")
	}

	ret, err := CalcRI(nil, nil, lut, "customZ", 1.5e9, 10, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, ret[0], tol)
	assert.InDelta(t, 0.2, ret[1], tol)
}
