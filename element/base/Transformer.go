package base

import (
	"math"

	"rfmatch/element"
	"rfmatch/maths"
	"rfmatch/unit"
)

// TransformerType 定义元件
var TransformerType element.ElementType = element.AddElement(5, &element.Config{
	Name:      "transformer",
	Tags:      []string{"xfmr"},
	ValueName: []string{"res", "indp", "inds", "m"},
	ValueInit: []element.Param{ // 0:R或Q 1:Lp 2:Ls或N 3:M或K
		{Unit: unit.Q},
		{Val: 1, Unit: unit.Nano},
		{Val: 1, Unit: unit.Nano},
		{Val: 0.5, Unit: unit.K},
	},
	Orient: element.Series,
	Fixed:  true,
	New:    func(base *element.Base) element.Element { return &Transformer{base} },
})

// Transformer 互感变压器，按 T 型等效电路计算
// 次级单位为 N 时按匝数比 Ls=N²·Lp，互感单位为 K 时按耦合系数 M=K·√(Lp·Ls)
type Transformer struct{ *element.Base }

// Inductance 初级、次级自感与互感(H)
func (x *Transformer) Inductance() (lp, ls, m float64) {
	lp = x.SI(1)
	ls = x.SI(2)
	if inds := x.Param(2); inds.Unit == unit.N {
		ls = inds.Val * inds.Val * lp
	}
	m = x.SI(3)
	if k := x.Param(3); k.Unit == unit.K {
		m = k.Val * math.Sqrt(lp*ls)
	}
	return lp, ls, m
}

// Tee T 型等效的三个支路阻抗：Lp−M、M、Ls−M
func (x *Transformer) Tee(f unit.Frequency) (z1, z2, z3 complex128) {
	w := f.W()
	lp, ls, m := x.Inductance()
	rp, rs := x.SI(0), x.SI(0)
	if res := x.Param(0); res.Unit == unit.Q {
		rp, rs = 0, 0
		if !maths.ApproxZero(res.Val) {
			rp, rs = w*lp/res.Val, w*ls/res.Val
		}
	}
	return complex(rp, w*(lp-m)), complex(0, w*m), complex(rs, w*(ls-m))
}

// Load 负载 zl(Ω) 接在初级时的输入阻抗
func (x *Transformer) Load(f unit.Frequency, zl complex128) complex128 {
	z1, z2, z3 := x.Tee(f)
	return 1/(1/(zl+z1)+1/z2) + z3
}

func (x *Transformer) Impedance(f unit.Frequency) complex128 {
	return x.Load(f, 0)
}

func (x *Transformer) Cascade(f unit.Frequency, zin complex128, z0 float64) complex128 {
	return x.Load(f, zin*complex(z0, 0)) / complex(z0, 0)
}

func (x *Transformer) Arc(f unit.Frequency, zin complex128, z0 float64, npts int, verbose bool) element.ArcTrace {
	return element.Linear(zin, x.Cascade(f, zin, z0), false, npts, verbose)
}
