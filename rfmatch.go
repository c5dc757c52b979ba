// Package rfmatch 元件级联的圆图轨迹计算
package rfmatch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rfmatch/element"
	_ "rfmatch/element/base"
	"rfmatch/load"
	"rfmatch/smith"
	"rfmatch/unit"
)

// ErrZ0 参考阻抗无效
var ErrZ0 = errors.New("z0 must be positive")

// Cascade 从源端开始依次级联的元件链
type Cascade struct {
	Z0       float64
	Freq     unit.Frequency
	Points   int        // 每段轨迹采样数
	Source   complex128 // 源阻抗(Ω)
	Elements []element.Element
}

// NewCascade 初始化
func NewCascade(z0 float64, freq unit.Frequency, source complex128) *Cascade {
	return &Cascade{Z0: z0, Freq: freq, Points: load.DefaultPoints, Source: source}
}

// FromDesign 由设计文件创建
func FromDesign(design *load.Design) (*Cascade, error) {
	elements, err := design.Build()
	if err != nil {
		return nil, err
	}
	cas := NewCascade(design.Z0, design.Frequency(), design.SourceZ())
	cas.Points = design.Points
	cas.Elements = elements
	return cas, nil
}

// Load 加载设计文件
func Load(path string) (*Cascade, error) {
	design, err := load.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromDesign(design)
}

// Add 追加元件
func (cas *Cascade) Add(e ...element.Element) *Cascade {
	cas.Elements = append(cas.Elements, e...)
	return cas
}

// Input 第 i 个元件之后的归一化输入阻抗，i < 0 为源端
func (cas *Cascade) Input(i int) complex128 {
	zin := cas.Source / complex(cas.Z0, 0)
	for j := 0; j <= i && j < len(cas.Elements); j++ {
		zin = cas.Elements[j].Cascade(cas.Freq, zin, cas.Z0)
	}
	return zin
}

// Impedance 末端输入阻抗(Ω)
func (cas *Cascade) Impedance() complex128 {
	return cas.Input(len(cas.Elements)-1) * complex(cas.Z0, 0)
}

// Gamma 末端反射系数
func (cas *Cascade) Gamma() complex128 {
	zin := cas.Input(len(cas.Elements) - 1)
	return smith.ToChart(real(zin), imag(zin), false, false)
}

// Trace 依次计算每个元件的圆图轨迹
// 第 i+1 段轨迹从第 i 段的级联结果开始
func (cas *Cascade) Trace(verbose bool) ([]element.ArcTrace, error) {
	if cas.Z0 <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrZ0, cas.Z0)
	}
	if cas.Points <= 0 {
		return nil, fmt.Errorf("%w: %d", smith.ErrResolution, cas.Points)
	}
	zin := cas.Source / complex(cas.Z0, 0)
	traces := make([]element.ArcTrace, 0, len(cas.Elements))
	for i, e := range cas.Elements {
		trace := e.Arc(cas.Freq, zin, cas.Z0, cas.Points, verbose)
		next := e.Cascade(cas.Freq, zin, cas.Z0)
		if verbose {
			zap.L().Debug("rfmatch.Trace",
				zap.Int("index", i), zap.Stringer("type", e.Type()),
				zap.Stringer("orientation", e.Orientation()),
				zap.Complex128("zin", zin), zap.Complex128("zout", next),
				zap.Int("points", trace.Len()))
		}
		traces = append(traces, trace)
		zin = next
	}
	return traces, nil
}
