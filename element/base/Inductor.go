package base

import (
	"rfmatch/element"
	"rfmatch/maths"
	"rfmatch/unit"
)

// InductorType 定义元件
var InductorType element.ElementType = element.AddElement(3, &element.Config{
	Name:      "inductor",
	Tags:      []string{"l", "si", "pi"},
	ValueName: []string{"res", "ind"},
	ValueInit: []element.Param{{Unit: unit.Q}, {Val: 1, Unit: unit.Nano}}, // 0:R或Q 1:L
	New:       func(base *element.Base) element.Element { return &Inductor{base} },
})

// Inductor 电感
type Inductor struct{ *element.Base }

func (l *Inductor) Impedance(f unit.Frequency) complex128 {
	x := f.W() * l.SI(1)
	res := l.Param(0)
	r := res.SI()
	switch {
	case maths.ApproxZero(res.Val):
		r = 0
	case res.Unit == unit.Q:
		r = x / res.Val
	}
	return complex(r, x)
}

func (l *Inductor) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(l.Impedance(f), l.Orient, zin, z0)
}

func (l *Inductor) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	return element.LumpedArc(l.Impedance(f), l.Orient, zin, z0, npts, verbose)
}
