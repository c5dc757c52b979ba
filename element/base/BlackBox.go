package base

import (
	"rfmatch/element"
	"rfmatch/unit"
)

// BlackBoxType 定义元件
var BlackBoxType element.ElementType = element.AddElement(9, &element.Config{
	Name:      "blackbox",
	Tags:      []string{"bb"},
	ValueName: []string{"res", "reac"},
	ValueInit: []element.Param{{Val: 50}, {}},
	Orient:    element.Series,
	Fixed:     true,
	New:       func(base *element.Base) element.Element { return &BlackBox{base} },
})

// BlackBox 固定阻抗，与频率无关
type BlackBox struct{ *element.Base }

func (b *BlackBox) Impedance(unit.Frequency) complex128 {
	return complex(b.SI(0), b.SI(1))
}

func (b *BlackBox) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(b.Impedance(f), element.Series, zin, z0)
}

func (b *BlackBox) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	return element.LumpedArc(b.Impedance(f), element.Series, zin, z0, npts, verbose)
}
