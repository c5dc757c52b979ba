package maths

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"rfmatch/unit"
)

var (
	// ErrComplexType 复数格式无法识别
	ErrComplexType = errors.New("ComplexType not recognized")
	// ErrImpedanceUnit 阻抗表示无法识别
	ErrImpedanceUnit = errors.New("impedance unit(s) not recognized")
)

// Gamma 反射系数 (z-z0)/(z+z0)
func Gamma(z complex128, z0 float64) complex128 {
	zz := complex(z0, 0)
	return (z - zz) / (z + zz)
}

// Z 反射系数转阻抗 z0(1+Γ)/(1-Γ)
func Z(gamma complex128, z0 float64) complex128 {
	return complex(z0, 0) * (1 + gamma) / (1 - gamma)
}

// ZNorm 反射系数转归一化阻抗
func ZNorm(gamma complex128) complex128 {
	return (1 + gamma) / (1 - gamma)
}

// RC 阻抗转并联 R-C
// r 按 rUnit 显示，c 按 cUnit 显示
func RC(z complex128, freq float64, fUnit, rUnit, cUnit unit.Unit) (r, c float64) {
	y := 1 / z
	w := 2 * math.Pi * unit.Unscale(freq, fUnit)
	return 1 / unit.Scale(real(y), rUnit), unit.Scale(imag(y)/w, cUnit)
}

// ZFromRC 并联 R-C 转阻抗
func ZFromRC(r, c, freq float64, fUnit, rUnit, cUnit unit.Unit) complex128 {
	w := 2 * math.Pi * unit.Unscale(freq, fUnit)
	return 1 / complex(1/unit.Unscale(r, rUnit), w*unit.Unscale(c, cUnit))
}

// GammaFromRC 并联 R-C 转反射系数
func GammaFromRC(r, c, z0, freq float64, fUnit, rUnit, cUnit unit.Unit) complex128 {
	return Gamma(ZFromRC(r, c, freq, fUnit, rUnit, cUnit), z0)
}

// GenComplex 按格式生成复数
// ri: 实部/虚部 ma: 幅度/角度(度) db: dB/角度(度)
func GenComplex(a, b float64, form string) (complex128, error) {
	switch form {
	case "ri":
		return complex(a, b), nil
	case "ma":
		return cmplx.Rect(a, b*math.Pi/180), nil
	case "db":
		return cmplx.Rect(math.Pow(10, a/20), b*math.Pi/180), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrComplexType, form)
}

// ImpedanceInfo 阻抗信息
type ImpedanceInfo struct {
	Z     complex128 // 阻抗
	G     complex128 // 反射系数
	GMag  float64    // |Γ|
	GAng  float64    // ∠Γ(度)
	R     float64    // 并联电阻
	C     float64    // 并联电容
	CUnit string     // 电容显示单位
}

// Impedance 按输入格式计算阻抗与反射系数
// imp: z ri ma db rc
func Impedance(re, im float64, imp string, z0, freq float64, fUnit, cUnit unit.Unit) (info ImpedanceInfo, err error) {
	var z, g complex128
	switch imp {
	case "z":
		z = complex(re, im)
		g = Gamma(z, z0)
	case "rc":
		z = ZFromRC(re, im, freq, fUnit, unit.Base, cUnit)
		g = Gamma(z, z0)
	default:
		if g, err = GenComplex(re, im, imp); err != nil {
			return info, err
		}
		z = Z(g, z0)
	}
	r, c := RC(z, freq, fUnit, unit.Base, cUnit)
	return ImpedanceInfo{
		Z:     z,
		G:     g,
		GMag:  cmplx.Abs(g),
		GAng:  cmplx.Phase(g) * 180 / math.Pi,
		R:     r,
		C:     c,
		CUnit: unit.Format(cUnit, unit.Farad),
	}, nil
}
