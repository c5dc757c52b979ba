package base

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rfmatch/element"
	"rfmatch/unit"
)

func TestCapacitor(t *testing.T) {
	c := mustNew(t, "c", element.Series, element.P(0, unit.Q), element.P(20, unit.Femto))
	assertComplex(t, complex(0, -28.420525552124168), c.Impedance(f280), "z")

	trace := checkContinuity(t, c, 1, 50, 10)
	assertComplex(t, 1, trace.Start, "start")
	assertComplex(t, complex(1, -0.5684105110424832), trace.End, "end")
	assert.Equal(t, 0.0, trace.X[0])
	assert.InDelta(t, 0.0008070743774802624, trace.X[1], tol)
	assert.InDelta(t, -0.02839758807415653, trace.Y[1], tol)
	assert.InDelta(t, 0.07473600388106648, trace.X[10], tol)
	assert.InDelta(t, -0.26296489044158666, trace.Y[10], tol)
}

func TestCapacitorShunt(t *testing.T) {
	c := mustNew(t, "pc", element.Shunt, element.P(0, unit.Q), element.P(20, unit.Femto))
	trace := checkContinuity(t, c, 1, 50, 10)
	assertComplex(t, complex(1, 1.7592918860102842), trace.End, "end admittance")
	assert.InDelta(t, -0.4362312689639495, trace.X[10], tol)
	assert.InDelta(t, -0.49591687704901904, trace.Y[10], tol)
}

func TestCapacitorResistance(t *testing.T) {
	c := mustNew(t, "c", element.Series, element.P(2, unit.Base), element.P(20, unit.Femto))
	assertComplex(t, complex(2, -28.420525552124168), c.Impedance(f280), "series R")

	// Q=10 → R = X/Q
	c = mustNew(t, "c", element.Series, element.P(10, unit.Q), element.P(20, unit.Femto))
	assertComplex(t, complex(2.8420525552124168, -28.420525552124168), c.Impedance(f280), "Q")
}
