// Package conjugate 双端口同时共轭匹配
package conjugate

import (
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"rfmatch/maths"
	"rfmatch/unit"
)

// SParams 双端口 S 参数
type SParams struct {
	S11, S12, S21, S22 complex128
}

// ParseSParams 按 ri/ma/db 格式生成 S 参数，vals 依次为 S11..S22 的两个分量
func ParseSParams(vals [8]float64, form string) (SParams, error) {
	var s [4]complex128
	for i := range s {
		v, err := maths.GenComplex(vals[2*i], vals[2*i+1], form)
		if err != nil {
			return SParams{}, err
		}
		s[i] = v
	}
	return SParams{S11: s[0], S12: s[1], S21: s[2], S22: s[3]}, nil
}

// Port 端口匹配阻抗
type Port struct {
	Gamma    complex128
	Z        complex128
	R, C     float64 // 并联 R-C
	Z0       float64
	Freq     float64
	FreqUnit string
	ResUnit  string
	CapUnit  string
}

// Result 匹配结果
type Result struct {
	K, B1, B2 float64
	MAG       float64 // 最大可用增益(dB)
	Src, Load Port
}

// Stable 无条件稳定
func (r Result) Stable() bool { return r.K > 1 }

// Options 计算条件
type Options struct {
	Z0              float64
	Freq            float64
	FreqUnit, CUnit unit.Unit
	Verbose         bool
}

// Match 计算同时共轭匹配的源与负载反射系数
func Match(s SParams, opts Options) Result {
	ds := s.S11*s.S22 - s.S12*s.S21
	m11, m22, md := cmplx.Abs(s.S11), cmplx.Abs(s.S22), cmplx.Abs(ds)
	m12, m21 := cmplx.Abs(s.S12), cmplx.Abs(s.S21)

	k := (1 + md*md - m11*m11 - m22*m22) / (2 * m12 * m21)
	b1 := 1 + m11*m11 - m22*m22 - md*md
	b2 := 1 + m22*m22 - m11*m11 - md*md
	mag := 10*math.Log10(m21/m12) + 10*math.Log10(math.Abs(k-sign(b1)*math.Sqrt(k*k-1)))

	c2 := s.S22 - ds*cmplx.Conj(s.S11)
	mc2 := cmplx.Abs(c2)
	gl := cmplx.Rect((b2-sign(b2)*math.Sqrt(b2*b2-4*mc2*mc2))/(2*mc2), -cmplx.Phase(c2))
	gs := cmplx.Conj(s.S11 + s.S12*s.S21*gl/(1-gl*s.S22))

	out := Result{
		K: k, B1: b1, B2: b2, MAG: mag,
		Src:  opts.port(gs),
		Load: opts.port(gl),
	}
	if opts.Verbose {
		zap.L().Debug("conjugate.Match", zap.Any("s", s), zap.Any("result", out))
	}
	return out
}

func (opts Options) port(g complex128) Port {
	z := maths.Z(g, opts.Z0)
	r, c := maths.RC(z, opts.Freq, opts.FreqUnit, unit.Base, opts.CUnit)
	return Port{
		Gamma:    g,
		Z:        z,
		R:        r,
		C:        c,
		Z0:       opts.Z0,
		Freq:     opts.Freq,
		FreqUnit: unit.Format(opts.FreqUnit, unit.Hz),
		ResUnit:  unit.Format(unit.Base, unit.Ohm),
		CapUnit:  unit.Format(opts.CUnit, unit.Farad),
	}
}

// sign 零按正号处理
func sign(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}
