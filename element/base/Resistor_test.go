package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfmatch/element"
	"rfmatch/unit"
)

func TestResistor(t *testing.T) {
	r := mustNew(t, "r", element.Series, element.P(25, unit.Base))
	assert.Equal(t, ResistorType, r.Type())
	assert.Equal(t, complex(25, 0), r.Impedance(f280))

	trace := checkContinuity(t, r, 1, 50, 10)
	assert.InDelta(t, 0.2, trace.X[10], tol)
	assertComplex(t, complex(1.5, 0), trace.End, "end")

	r = mustNew(t, "pr", element.Shunt, element.P(25, unit.Base))
	trace = checkContinuity(t, r, 1, 50, 10)
	assert.InDelta(t, -0.5, trace.X[10], tol)
	// 并联元件端点为导纳
	assertComplex(t, complex(3, 0), trace.End, "end admittance")
}

func TestRegistry(t *testing.T) {
	for tag, want := range map[string]element.ElementType{
		"resistor": ResistorType, "SC": CapacitorType, "pi": InductorType,
		"rlc": RlcType, "xfmr": TransformerType, "tl": TLineType,
		"so": OpenStubType, "ss": ShortedStubType, "bb": BlackBoxType,
	} {
		got, ok := element.Lookup(tag)
		require.True(t, ok, tag)
		assert.Equal(t, want, got, tag)
	}

	_, err := element.New("diode", nil, element.Series)
	assert.ErrorIs(t, err, element.ErrNotRecognized)
	assert.EqualError(t, element.ErrNotRecognized, "element not recognized")

	_, err = element.New("r", make([]element.Param, 3), element.Series)
	assert.Error(t, err)

	assert.Panics(t, func() {
		element.AddElement(ResistorType, &element.Config{Name: "dup"})
	})
}

func TestDefaults(t *testing.T) {
	c := mustNew(t, "capacitor", element.Shunt)
	assert.Equal(t, []string{"res", "cap"}, c.Labels())
	assert.Equal(t, []float64{0, 1}, c.Values())
	assert.Equal(t, []unit.Unit{unit.Q, unit.Pico}, c.Units())
	assert.Equal(t, []float64{0, 0}, c.Tols())
	assert.Equal(t, element.Shunt, c.Orientation())

	// 固定方向的元件忽略传入方向
	tl := mustNew(t, "tline", element.Shunt)
	assert.Equal(t, element.Series, tl.Orientation())
	so := mustNew(t, "so", element.Series)
	assert.Equal(t, element.Shunt, so.Orientation())
}
