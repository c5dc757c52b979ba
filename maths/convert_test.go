package maths

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfmatch/unit"
)

func TestChangeImpedance(t *testing.T) {
	src, load := Port{42.4, -19.6}, Port{212.3, 43.2}

	s, l, err := ChangeImpedance(src, load, ZRI, ZRI, 50, 275, unit.Giga, unit.Femto)
	require.NoError(t, err)
	assert.Equal(t, src, s)
	assert.Equal(t, load, l)

	s, l, err = ChangeImpedance(src, load, ZRI, YRI, 50, 275, unit.Giga, unit.Femto)
	require.NoError(t, err)
	ys := 1 / complex(42.4, -19.6)
	assert.InDelta(t, real(ys), s.Re, tol)
	assert.InDelta(t, imag(ys), s.Im, tol)

	s, _, err = ChangeImpedance(src, load, ZRI, GRI, 50, 275, unit.Giga, unit.Femto)
	require.NoError(t, err)
	assert.InDelta(t, -0.03565151895556114, s.Re, tol)
	assert.InDelta(t, -0.21968365553602814, s.Im, tol)

	s, _, err = ChangeImpedance(src, load, ZRI, RCP, 50, 275, unit.Giga, unit.Femto)
	require.NoError(t, err)
	assert.InDelta(t, 51.46037735849057, s.Re, tol)
	assert.InDelta(t, 5.198818862788317, s.Im, tol)

	_, _, err = ChangeImpedance(src, load, ZRI, "smith", 50, 275, unit.Giga, unit.Femto)
	assert.ErrorIs(t, err, ErrImpedanceUnit)
	_, _, err = ChangeImpedance(src, load, "abc", "abc", 50, 275, unit.Giga, unit.Femto)
	assert.ErrorIs(t, err, ErrImpedanceUnit)
}

func TestChangeImpedanceRoundTrip(t *testing.T) {
	src, load := Port{42.4, -19.6}, Port{212.3, 43.2}
	for _, rep := range []Representation{YRI, GMA, GRI, RCP} {
		s, l, err := ChangeImpedance(src, load, ZRI, rep, 50, 275, unit.Giga, unit.Femto)
		require.NoError(t, err, rep)
		s, l, err = ChangeImpedance(s, l, rep, ZRI, 50, 275, unit.Giga, unit.Femto)
		require.NoError(t, err, rep)
		assert.InDelta(t, src.Re, s.Re, 1e-9, rep)
		assert.InDelta(t, src.Im, s.Im, 1e-9, rep)
		assert.InDelta(t, load.Re, l.Re, 1e-9, rep)
		assert.InDelta(t, load.Im, l.Im, 1e-9, rep)
	}
}

func TestGMAPolar(t *testing.T) {
	s, _, err := ChangeImpedance(Port{0.5, 90}, Port{0, 0}, GMA, GRI, 50, 1, unit.Giga, unit.Femto)
	require.NoError(t, err)
	assert.InDelta(t, 0, s.Re, 1e-12)
	assert.InDelta(t, 0.5, s.Im, 1e-12)
	assert.False(t, math.IsNaN(s.Re))
}
