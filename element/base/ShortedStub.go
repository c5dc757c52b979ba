package base

import (
	"math"

	"rfmatch/element"
	"rfmatch/smith"
	"rfmatch/unit"
)

// ShortedStubType 定义元件
var ShortedStubType element.ElementType = element.AddElement(8, &element.Config{
	Name:      "shortedstub",
	Tags:      []string{"ss"},
	ValueName: []string{"z0", "length", "er"},
	ValueInit: []element.Param{{Val: 50}, {Val: 0.125, Unit: unit.Lambda}, {Val: 1}},
	Orient:    element.Shunt,
	Fixed:     true,
	New:       func(base *element.Base) element.Element { return &ShortedStub{base} },
})

// ShortedStub 并联短路枝节
type ShortedStub struct{ *element.Base }

func (s *ShortedStub) Impedance(f unit.Frequency) complex128 {
	zo, length, beta := lineParams(s.Base, f)
	return complex(0, zo*math.Tan(beta*length))
}

func (s *ShortedStub) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return element.Compose(s.Impedance(f), element.Shunt, zin, z0)
}

// QuarterWaveStart 扫描起点：短于半波长时从 λ/4（导纳为零）开始，否则从零开始
func (s *ShortedStub) QuarterWaveStart(f unit.Frequency) float64 {
	er := s.Param(2).Val
	if er <= 0 {
		er = 1
	}
	_, length, _ := lineParams(s.Base, f)
	if wave := f.Wavelength(er); length < wave/2 {
		return wave / 4
	}
	return 0
}

// Arc 在导纳平面从 1/zin 开始按电长度扫描
func (s *ShortedStub) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	zo, length, beta := lineParams(s.Base, f)
	yin := 1 / zin
	return lineArc(smith.ArcRequest{
		X1: real(yin), Y1: imag(yin),
		X2: length, Y2: zo,
		Type:         smith.ArcShortedStub,
		Rotate:       true,
		Beta:         beta,
		StartAtQtrWl: s.QuarterWaveStart(f),
		Z0:           z0,
		Resolution:   npts,
		Verbose:      verbose,
	}, yin, 1/s.Cascade(f, zin, z0))
}
