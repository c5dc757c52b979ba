package base

import (
	"math"

	"rfmatch/element"
	"rfmatch/smith"
	"rfmatch/unit"
)

// OpenStubType 定义元件
var OpenStubType element.ElementType = element.AddElement(7, &element.Config{
	Name:      "openstub",
	Tags:      []string{"so"},
	ValueName: []string{"z0", "length", "er"},
	ValueInit: []element.Param{{Val: 50}, {Val: 0.125, Unit: unit.Lambda}, {Val: 1}},
	Orient:    element.Shunt,
	Fixed:     true,
	New:       func(base *element.Base) element.Element { return &OpenStub{base} },
})

// OpenStub 并联开路枝节
type OpenStub struct{ *element.Base }

func (s *OpenStub) Impedance(f unit.Frequency) complex128 {
	zo, length, beta := lineParams(s.Base, f)
	return complex(0, -zo/math.Tan(beta*length))
}

func (s *OpenStub) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(s.Impedance(f), element.Shunt, zin, z0)
}

// Arc 在导纳平面从 1/zin 开始按电长度扫描
func (s *OpenStub) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	zo, length, beta := lineParams(s.Base, f)
	yin := 1 / zin
	return lineArc(smith.ArcRequest{
		X1: real(yin), Y1: imag(yin),
		X2: length, Y2: zo,
		Type:       smith.ArcOpenStub,
		Rotate:     true,
		Beta:       beta,
		Z0:         z0,
		Resolution: npts,
		Verbose:    verbose,
	}, yin, 1/s.Cascade(f, zin, z0))
}
