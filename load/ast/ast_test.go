package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netlist = `# 280GHz 匹配
.z0 50
.freq 280GHz
.source 42.4 -19.6
.value cap 20fF
sc 1 [series] [0Q, %cap]
pc2 [shunt] [0Q, 12.5fF/5]
tl 3 [100, 100um, 1, 50] // 传输线
/* 短路枝节 */
ss 4 [100, 0.1λ]
r 5 [shunt]
`

func TestNewParseTree(t *testing.T) {
	tree, err := NewParseTree(strings.NewReader(netlist))
	require.NoError(t, err)
	require.Len(t, tree.ElementNodes, 5)
	assert.Len(t, tree.CommentNodes, 3)
	assert.Equal(t, "20fF", tree.ValueNodes["cap"])

	sc := tree.ElementNodes[0]
	assert.Equal(t, "sc", sc.Type)
	assert.Equal(t, "1", sc.ID)
	assert.Equal(t, 6, sc.Line)
	require.Len(t, sc.Attrs, 1)
	assert.Equal(t, "series", sc.Attrs[0].Value)
	require.Len(t, sc.Values, 2)
	assert.Equal(t, "0Q", sc.Values[0].Value)
	assert.True(t, sc.Values[1].IsVar)

	pc := tree.ElementNodes[1]
	assert.Equal(t, "pc", pc.Type)
	assert.Equal(t, "2", pc.ID)
	assert.Equal(t, "12.5fF/5", pc.Values[1].Value)

	tl := tree.ElementNodes[2]
	assert.Empty(t, tl.Attrs)
	assert.Len(t, tl.Values, 4)

	assert.Equal(t, "0.1λ", tree.ElementNodes[3].Values[1].Value)

	r := tree.ElementNodes[4]
	assert.Equal(t, "shunt", r.Attrs[0].Value)
	assert.Empty(t, r.Values)
	assert.Equal(t, 11, r.Line)

	freq, ok := tree.Directive("freq")
	require.True(t, ok)
	assert.Equal(t, "280GHz", freq.Values[0].Value)
	src, ok := tree.Directive("source")
	require.True(t, ok)
	require.Len(t, src.Values, 2)
	assert.Equal(t, -19.6, src.Values[1].ParseFloat64(0))
	_, ok = tree.Directive("points")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	tree, err := NewParseTree(strings.NewReader(netlist))
	require.NoError(t, err)
	v, err := tree.Resolve(tree.ElementNodes[0].Values[1])
	require.NoError(t, err)
	assert.Equal(t, "20fF", v.Value)
	assert.False(t, v.IsVar)

	_, err = tree.Resolve(Value{Value: "missing", IsVar: true, Line: 3})
	assert.EqualError(t, err, "第 3 行: 未定义的变量 'missing'")
}

func TestParseErrors(t *testing.T) {
	_, err := NewParseTree(strings.NewReader("sc [series]\n"))
	assert.Error(t, err)
	_, err = NewParseTree(strings.NewReader("sc 1 [0Q, 20fF\n"))
	assert.Error(t, err)
	_, err = NewParseTree(strings.NewReader(".value x\n"))
	assert.Error(t, err)
	_, err = NewParseTree(strings.NewReader("50 60\n"))
	assert.Error(t, err)
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		in     string
		num    float64
		suffix string
		tol    float64
	}{
		{"20fF", 20, "fF", 0},
		{"100um/5", 100, "um", 5},
		{"0.25λ", 0.25, "λ", 0},
		{"50", 50, "", 0},
		{"1e-3GHz", 1e-3, "GHz", 0},
		{"-3.5pH/10%", -3.5, "pH", 10},
	}
	for _, tt := range tests {
		num, suffix, tol, err := Value{Value: tt.in}.Quantity()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.num, num, tt.in)
		assert.Equal(t, tt.suffix, suffix, tt.in)
		assert.Equal(t, tt.tol, tol, tt.in)
	}
	_, _, _, err := Value{Value: "fF", Line: 2}.Quantity()
	assert.EqualError(t, err, "第 2 行: 数值无效 'fF'")
	_, _, _, err = Value{Value: "1fF/x"}.Quantity()
	assert.Error(t, err)

	assert.Equal(t, complex(50, -10), Value{Value: "50-10j"}.ParseComplex128(0))
	assert.Equal(t, "%cap", Value{Value: "cap", IsVar: true}.String())
	assert.Equal(t, "20fF/5", FormatQuantity(20, "fF", 5))
	assert.Equal(t, "[a, b]", FormatList([]string{"a", "b"}))
}
