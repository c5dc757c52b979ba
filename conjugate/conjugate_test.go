package conjugate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfmatch/maths"
	"rfmatch/unit"
)

const tol = 1e-9

func TestMatch(t *testing.T) {
	s, err := ParseSParams([8]float64{0.34, 0.21, 0.0434, -0.0052, 0.32, -3.4, 0.34, -0.52}, "ri")
	require.NoError(t, err)

	res := Match(s, Options{Z0: 100, Freq: 275, FreqUnit: unit.Giga, CUnit: unit.Femto})
	assert.InDelta(t, 1.7031802961437423, res.K, tol)
	assert.InDelta(t, 0.7195251545599999, res.B1, tol)
	assert.InDelta(t, 1.1721251545600002, res.B2, tol)
	assert.InDelta(t, 14.039928315508192, res.MAG, tol)
	assert.True(t, res.Stable())

	assert.InDelta(t, 0.5040400052246673, real(res.Src.Gamma), tol)
	assert.InDelta(t, -0.13478919243703535, imag(res.Src.Gamma), tol)
	assert.InDelta(t, 275.52180881729475, real(res.Src.Z), 1e-8)
	assert.InDelta(t, -102.05718583392367, imag(res.Src.Z), 1e-8)
	assert.InDelta(t, 313.3252379725052, res.Src.R, 1e-8)
	assert.InDelta(t, 0.6841946397337534, res.Src.C, tol)

	assert.InDelta(t, 0.31959462490960494, real(res.Load.Gamma), tol)
	assert.InDelta(t, 0.6148725683749898, imag(res.Load.Gamma), tol)
	assert.InDelta(t, 61.804850661047205, real(res.Load.Z), 1e-8)
	assert.InDelta(t, 146.22072038786013, imag(res.Load.Z), 1e-8)
	assert.InDelta(t, 407.7404664268812, res.Load.R, 1e-8)
	assert.InDelta(t, -3.358071819928236, res.Load.C, tol)

	assert.Equal(t, "GHz", res.Src.FreqUnit)
	assert.Equal(t, "Ω", res.Load.ResUnit)
	assert.Equal(t, "fF", res.Load.CapUnit)
	assert.Equal(t, 100.0, res.Src.Z0)
}

func TestParseSParams(t *testing.T) {
	_, err := ParseSParams([8]float64{}, "xx")
	assert.ErrorIs(t, err, maths.ErrComplexType)

	s, err := ParseSParams([8]float64{0, 0, 0, 0, 20, 90, 0, 0}, "db")
	require.NoError(t, err)
	assert.InDelta(t, 0, real(s.S21), tol)
	assert.InDelta(t, 10, imag(s.S21), tol)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, sign(0))
	assert.Equal(t, -1.0, sign(-2))
	assert.Equal(t, 1.0, sign(3))
}
