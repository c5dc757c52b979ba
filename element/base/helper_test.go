package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfmatch/element"
	"rfmatch/smith"
	"rfmatch/unit"
)

const tol = 1e-9

var f280 = unit.NewFrequency(280, unit.Giga)

func assertComplex(t *testing.T, want, got complex128, msg string) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), tol, "%s re", msg)
	assert.InDelta(t, imag(want), imag(got), tol, "%s im", msg)
}

func mustNew(t *testing.T, tag string, orient element.Orientation, params ...element.Param) element.Element {
	t.Helper()
	e, err := element.New(tag, params, orient)
	require.NoError(t, err)
	return e
}

// checkContinuity 首点为输入阻抗在圆图上的位置，末点为级联阻抗的位置
func checkContinuity(t *testing.T, e element.Element, zin complex128, z0 float64, npts int) element.ArcTrace {
	t.Helper()
	trace := e.Arc(f280, zin, z0, npts, false)
	require.Len(t, trace.X, npts+1)
	require.Len(t, trace.Y, npts+1)
	first := smith.ToChartC(zin, false, false)
	assert.InDelta(t, real(first), trace.X[0], 1e-9, "first x")
	assert.InDelta(t, imag(first), trace.Y[0], 1e-9, "first y")
	last := smith.ToChartC(e.Cascade(f280, zin, z0), false, false)
	assert.InDelta(t, real(last), trace.X[npts], 1e-9, "last x")
	assert.InDelta(t, imag(last), trace.Y[npts], 1e-9, "last y")
	return trace
}
