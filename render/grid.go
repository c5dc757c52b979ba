// Package render 绘制圆图与匹配网络结果
package render

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"rfmatch/element"
	"rfmatch/smith"
)

var (
	// GridR 等电阻圆
	GridR = []float64{0, 0.2, 0.5, 1, 2, 5}
	// GridX 等电抗弧
	GridX = []float64{0.2, 0.5, 1, 2, 5, -0.2, -0.5, -1, -2, -5}
)

// gridSamples 每条网格线的采样数
const gridSamples = 181

// Curve 圆图上的一条曲线
type Curve struct {
	Name string
	X, Y []float64
}

// Grid 圆图网格，坐标为反射系数平面
func Grid() []Curve {
	out := make([]Curve, 0, len(GridR)+len(GridX))
	// 参数 t∈(−π/2, π/2)，tan(t) 覆盖整个实轴
	ts := floats.Span(make([]float64, gridSamples), -math.Pi/2+1e-3, math.Pi/2-1e-3)
	for _, r := range GridR {
		c := Curve{Name: fmt.Sprintf("r=%g", r), X: make([]float64, len(ts)), Y: make([]float64, len(ts))}
		for i, t := range ts {
			g := smith.ToChart(r, math.Tan(t), false, false)
			c.X[i], c.Y[i] = real(g), imag(g)
		}
		out = append(out, c)
	}
	// 电阻从 0 扫到极大，tan 映射到 [0, π/2)
	rs := floats.Span(make([]float64, gridSamples), 0, math.Pi/2-1e-3)
	for _, x := range GridX {
		c := Curve{Name: fmt.Sprintf("x=%g", x), X: make([]float64, len(rs)), Y: make([]float64, len(rs))}
		for i, t := range rs {
			g := smith.ToChart(math.Tan(t), x, false, false)
			c.X[i], c.Y[i] = real(g), imag(g)
		}
		out = append(out, c)
	}
	return out
}

// Traces 轨迹转为曲线，跳过无法绘制的点
func Traces(traces []element.ArcTrace, names []string) []Curve {
	out := make([]Curve, 0, len(traces))
	for i, trace := range traces {
		name := fmt.Sprintf("#%d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		c := Curve{Name: name}
		for j := range trace.X {
			x, y := trace.X[j], trace.Y[j]
			if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
				continue
			}
			c.X = append(c.X, x)
			c.Y = append(c.Y, y)
		}
		out = append(out, c)
	}
	return out
}
