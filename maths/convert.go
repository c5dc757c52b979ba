package maths

import (
	"fmt"
	"math"
	"math/cmplx"

	"rfmatch/unit"
)

// Representation 阻抗表示方式
type Representation string

const (
	ZRI Representation = "zri" // 阻抗 实部/虚部
	YRI Representation = "yri" // 导纳 实部/虚部
	GMA Representation = "gma" // 反射系数 幅度/角度(度)
	GRI Representation = "gri" // 反射系数 实部/虚部
	RCP Representation = "rc"  // 并联 R-C
)

// Valid 是否为已知表示
func (r Representation) Valid() bool {
	switch r {
	case ZRI, YRI, GMA, GRI, RCP:
		return true
	}
	return false
}

// Port 端口值，含义由表示方式决定
type Port struct {
	Re float64
	Im float64
}

// ToZ 任意表示转阻抗
// w 为角频率，cUnit 为 rc 表示中电容的单位
func (r Representation) ToZ(p Port, z0, w float64, cUnit unit.Unit) (complex128, error) {
	switch r {
	case ZRI:
		return complex(p.Re, p.Im), nil
	case YRI:
		return 1 / complex(p.Re, p.Im), nil
	case GMA:
		return Z(cmplx.Rect(p.Re, p.Im*math.Pi/180), z0), nil
	case GRI:
		return Z(complex(p.Re, p.Im), z0), nil
	case RCP:
		return 1 / complex(1/p.Re, unit.Unscale(p.Im, cUnit)*w), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrImpedanceUnit, string(r))
}

// FromZ 阻抗转到指定表示
func (r Representation) FromZ(z complex128, z0, w float64, cUnit unit.Unit) (Port, error) {
	switch r {
	case ZRI:
		return Port{real(z), imag(z)}, nil
	case YRI:
		y := 1 / z
		return Port{real(y), imag(y)}, nil
	case GMA:
		g := Gamma(z, z0)
		return Port{cmplx.Abs(g), cmplx.Phase(g) * 180 / math.Pi}, nil
	case GRI:
		g := Gamma(z, z0)
		return Port{real(g), imag(g)}, nil
	case RCP:
		y := 1 / z
		return Port{1 / real(y), unit.Scale(imag(y)/w, cUnit)}, nil
	}
	return Port{}, fmt.Errorf("%w: %q", ErrImpedanceUnit, string(r))
}

// ChangeImpedance 转换源与负载的阻抗表示
func ChangeImpedance(src, load Port, in, out Representation, z0, freq float64, fUnit, cUnit unit.Unit) (Port, Port, error) {
	if !in.Valid() || !out.Valid() {
		return Port{}, Port{}, fmt.Errorf("%w: %q -> %q", ErrImpedanceUnit, string(in), string(out))
	}
	if in == out {
		return src, load, nil
	}
	w := 2 * math.Pi * unit.Unscale(freq, fUnit)
	zs, err := in.ToZ(src, z0, w, cUnit)
	if err != nil {
		return Port{}, Port{}, err
	}
	zl, err := in.ToZ(load, z0, w, cUnit)
	if err != nil {
		return Port{}, Port{}, err
	}
	s, err := out.FromZ(zs, z0, w, cUnit)
	if err != nil {
		return Port{}, Port{}, err
	}
	l, err := out.FromZ(zl, z0, w, cUnit)
	if err != nil {
		return Port{}, Port{}, err
	}
	return s, l, nil
}
