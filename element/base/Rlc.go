package base

import (
	"rfmatch/element"
	"rfmatch/maths"
	"rfmatch/unit"
)

// RlcType 定义元件
var RlcType element.ElementType = element.AddElement(4, &element.Config{
	Name:      "rlc",
	ValueName: []string{"res", "ind", "cap"},
	ValueInit: []element.Param{{}, {Unit: unit.Nano}, {Unit: unit.Pico}}, // 0:R 1:L 2:C
	New:       func(base *element.Base) element.Element { return &Rlc{base} },
})

// Rlc 电阻、电感、电容串联支路
// 电容为零时视为短路，只保留 R+jwL
type Rlc struct{ *element.Base }

func (e *Rlc) Impedance(f unit.Frequency) complex128 {
	w := f.W()
	x := w * e.SI(1)
	if c := e.SI(2); !maths.ApproxZero(c) {
		x -= 1 / (w * c)
	}
	return complex(e.SI(0), x)
}

func (e *Rlc) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(e.Impedance(f), e.Orient, zin, z0)
}

func (e *Rlc) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	return element.LumpedArc(e.Impedance(f), e.Orient, zin, z0, npts, verbose)
}
