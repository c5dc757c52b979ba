package load

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfmatch/element"
	"rfmatch/unit"
)

const designYAML = `
z0: 50
freq: {val: 280, unit: GHz}
points: 20
source: {re: 42.4, im: -19.6}
elements:
  - {type: capacitor, orientation: series, params: [{val: 0, unit: Q}, {val: 20, unit: fF}]}
  - {type: tline, params: [{val: 100}, {val: 100, unit: um}, {val: 1}, {val: 50}]}
  - {type: pi, orientation: shunt, params: [{val: 0, unit: Q}, {val: 45, unit: pH, tol: 5}]}
`

const designNetlist = `.z0 50
.freq 280GHz
.points 20
.source 42.4 -19.6
.value l 45pH/5
sc 1 [series] [0Q, 20fF]
tl 2 [100, 100um, 1, 50]
pi 3 [shunt] [0Q, %l]
`

func TestLoad(t *testing.T) {
	design, err := Load(strings.NewReader(designYAML))
	require.NoError(t, err)
	checkDesign(t, design)
}

func TestLoadNetlist(t *testing.T) {
	design, err := LoadString(designNetlist)
	require.NoError(t, err)
	checkDesign(t, design)
	assert.Equal(t, 6, design.Elements[0].Line)
}

func checkDesign(t *testing.T, design *Design) {
	t.Helper()
	assert.Equal(t, 50.0, design.Z0)
	assert.Equal(t, 20, design.Points)
	assert.Equal(t, complex(42.4, -19.6), design.SourceZ())
	assert.Equal(t, unit.NewFrequency(280, unit.Giga), design.Frequency())

	elements, err := design.Build()
	require.NoError(t, err)
	require.Len(t, elements, 3)
	assert.Equal(t, "capacitor", elements[0].Type().String())
	assert.Equal(t, element.Series, elements[0].Orientation())
	assert.Equal(t, []float64{0, 20}, elements[0].Values())
	assert.Equal(t, []unit.Unit{unit.Q, unit.Femto}, elements[0].Units())

	assert.Equal(t, "tline", elements[1].Type().String())
	assert.Equal(t, unit.Micro, elements[1].Units()[1])

	assert.Equal(t, element.Shunt, elements[2].Orientation())
	assert.Equal(t, []float64{0, 5}, elements[2].Tols())
}

func TestDefaults(t *testing.T) {
	design, err := Load(strings.NewReader("z0: 75\nfreq: {val: 10, unit: GHz}\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPoints, design.Points)
	assert.Empty(t, design.Elements)

	design, err = LoadString("r 1 [shunt]\n")
	require.NoError(t, err)
	assert.Equal(t, 50.0, design.Z0)
	elements, err := design.Build()
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, elements[0].Values())
}

func TestValidate(t *testing.T) {
	_, err := Load(strings.NewReader("z0: 0\n"))
	assert.ErrorIs(t, err, ErrZ0)
	_, err = Load(strings.NewReader("z0: 50\npoints: -1\n"))
	assert.ErrorIs(t, err, ErrPoints)
	_, err = Load(strings.NewReader("z0: 50\nfreq: {val: 1, unit: parsec}\n"))
	assert.ErrorIs(t, err, ErrUnit)
	_, err = Load(strings.NewReader("z0: 50\nbogus: 1\n"))
	assert.Error(t, err)
	_, err = LoadString(".bogus 1\n")
	assert.EqualError(t, err, "第 1 行: 未知指令 .bogus")
	_, err = LoadString("sc 1 [0Q, %missing]\n")
	assert.Error(t, err)
}

func TestUnknownElement(t *testing.T) {
	design, err := Load(strings.NewReader(`
z0: 50
freq: {val: 1, unit: GHz}
elements:
  - {type: resistor}
  - {type: flux_capacitor}
`))
	require.NoError(t, err)
	_, err = design.Build()
	assert.ErrorIs(t, err, element.ErrNotRecognized)
	assert.Contains(t, err.Error(), "元件 1")

	design, err = LoadString("sc 1 [sideways] [0Q, 1fF]\n")
	require.NoError(t, err)
	_, err = design.Build()
	assert.Error(t, err)

	design, err = LoadString("sc 1 [0Q, 1zz]\n")
	require.NoError(t, err)
	_, err = design.Build()
	assert.ErrorIs(t, err, ErrUnit)
}

func TestExport(t *testing.T) {
	design, err := Load(strings.NewReader(designYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, design.Export(&buf))
	assert.Contains(t, buf.String(), "\ncapacitor 1 [series] [0Q, 20fF]\n")
	again, err := LoadNetlist(&buf)
	require.NoError(t, err)
	for i := range again.Elements {
		again.Elements[i].Line = 0
	}
	assert.Equal(t, design, again)

	buf.Reset()
	require.NoError(t, design.Save(&buf))
	again, err = Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, design, again)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(designYAML), 0o644))
	net := filepath.Join(dir, "design.net")
	require.NoError(t, os.WriteFile(net, []byte(designNetlist), 0o644))

	a, err := LoadFile(yml)
	require.NoError(t, err)
	b, err := LoadFile(net)
	require.NoError(t, err)
	assert.Equal(t, a.Frequency(), b.Frequency())
	assert.Len(t, b.Elements, len(a.Elements))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
