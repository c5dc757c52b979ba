package maths

import (
	"math"
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// 浮点精度阈值
const Epsilon = 1e-16

// ulps 近似比较允许的最小单位差
const ulps = 4

// Number 是一个约束，允许任何浮点或复数类型
type Number interface {
	constraints.Float | constraints.Complex
}

// Abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// Lerp 线性插值 a + (b-a)·t
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp 限制到区间 [lo, hi]
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual 浮点近似相等
// 先按绝对误差 Epsilon 判断，再按 ULP 距离判断
func ApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.Abs(a-b) <= Epsilon {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	d := int64(math.Float64bits(a)) - int64(math.Float64bits(b))
	if d < 0 {
		d = -d
	}
	return d <= ulps
}

// ApproxZero 是否近似为零
func ApproxZero(a float64) bool { return ApproxEqual(a, 0) }

// ApproxEqualC 复数近似相等
func ApproxEqualC(a, b complex128) bool {
	return ApproxEqual(real(a), real(b)) && ApproxEqual(imag(a), imag(b))
}

// IsConjugate 两个端口阻抗共轭（已匹配）
func IsConjugate(zs, zl complex128) bool {
	return ApproxEqual(real(zs), real(zl)) && ApproxEqual(imag(zs), -imag(zl))
}
