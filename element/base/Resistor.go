package base

import (
	"rfmatch/element"
	"rfmatch/unit"
)

// ResistorType 定义元件
var ResistorType element.ElementType = element.AddElement(1, &element.Config{
	Name:      "resistor",
	Tags:      []string{"r", "sr", "pr"},
	ValueName: []string{"res"},
	ValueInit: []element.Param{{Val: 50}},
	New:       func(base *element.Base) element.Element { return &Resistor{base} },
})

// Resistor 电阻
type Resistor struct{ *element.Base }

func (r *Resistor) Impedance(unit.Frequency) complex128 {
	return complex(r.SI(0), 0)
}

func (r *Resistor) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(r.Impedance(f), r.Orient, zin, z0)
}

func (r *Resistor) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	return element.LumpedArc(r.Impedance(f), r.Orient, zin, z0, npts, verbose)
}
