package base

import (
	"math"

	"rfmatch/element"
	"rfmatch/smith"
	"rfmatch/unit"
)

// TLineType 定义元件
var TLineType element.ElementType = element.AddElement(6, &element.Config{
	Name:      "tline",
	Tags:      []string{"tl", "transmission_line"},
	ValueName: []string{"z0", "length", "er", "zl"},
	ValueInit: []element.Param{{Val: 50}, {Val: 0.25, Unit: unit.Lambda}, {Val: 1}, {Val: 50}},
	Orient:    element.Series,
	Fixed:     true,
	New:       func(base *element.Base) element.Element { return &TLine{base} },
})

// TLine 传输线
type TLine struct{ *element.Base }

// input 负载 zl(Ω) 经线变换后的输入阻抗
func input(zo, betal float64, zl complex128) complex128 {
	t := complex(0, math.Tan(betal))
	z := complex(zo, 0)
	return z * (zl + z*t) / (z + zl*t)
}

// Impedance 以自身负载 zl 计算的输入阻抗
func (tl *TLine) Impedance(f unit.Frequency) complex128 {
	zo, length, beta := lineParams(tl.Base, f)
	return input(zo, beta*length, complex(tl.SI(3), 0))
}

func (tl *TLine) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	zo, length, beta := lineParams(tl.Base, f)
	return input(zo, beta*length, zin*complex(z0, 0)) / complex(z0, 0)
}

func (tl *TLine) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	zo, length, beta := lineParams(tl.Base, f)
	return lineArc(smith.ArcRequest{
		X1: real(zin), Y1: imag(zin),
		X2: length, Y2: zo,
		Type:       smith.ArcTLine,
		Beta:       beta,
		Z0:         z0,
		Resolution: npts,
		Verbose:    verbose,
	}, zin, tl.Cascade(f, zin, z0))
}
