package base

import (
	"rfmatch/element"
	"rfmatch/maths"
	"rfmatch/unit"
)

// CapacitorType 定义元件
var CapacitorType element.ElementType = element.AddElement(2, &element.Config{
	Name:      "capacitor",
	Tags:      []string{"c", "sc", "pc"},
	ValueName: []string{"res", "cap"},
	ValueInit: []element.Param{{Unit: unit.Q}, {Val: 1, Unit: unit.Pico}}, // 0:R或Q 1:C
	New:       func(base *element.Base) element.Element { return &Capacitor{base} },
})

// Capacitor 电容
// 电阻单位为 Q 时按品质因数折算串联电阻
type Capacitor struct{ *element.Base }

func (c *Capacitor) Impedance(f unit.Frequency) complex128 {
	w, capacitance := f.W(), c.SI(1)
	return complex(c.resistance(w, capacitance), -1/(w*capacitance))
}

func (c *Capacitor) resistance(w, capacitance float64) float64 {
	res := c.Param(0)
	switch {
	case maths.ApproxZero(res.Val):
		return 0
	case res.Unit == unit.Q:
		return 1 / (w * capacitance * res.Val)
	}
	return res.SI()
}

func (c *Capacitor) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(c.Impedance(f), c.Orient, zin, z0)
}

func (c *Capacitor) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	return element.LumpedArc(c.Impedance(f), c.Orient, zin, z0, npts, verbose)
}
