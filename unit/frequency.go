package unit

import (
	"math"
	"strconv"
)

// Frequency 频率
type Frequency struct {
	Val  float64 // 显示值
	Unit Unit    // 单位
}

// NewFrequency 创建频率
func NewFrequency(val float64, u Unit) Frequency {
	return Frequency{Val: val, Unit: u}
}

// Freq 频率(Hz)
func (f Frequency) Freq() float64 { return Unscale(f.Val, f.Unit) }

// W 角频率
func (f Frequency) W() float64 { return 2 * math.Pi * f.Freq() }

// Wavelength 波长(m)
func (f Frequency) Wavelength(er float64) float64 {
	return LambdaScale(f.Freq(), er)
}

// SetUnit 修改显示单位，保持频率不变
func (f *Frequency) SetUnit(u Unit) {
	f.Val = Scale(f.Freq(), u)
	f.Unit = u
}

func (f Frequency) String() string {
	return strconv.FormatFloat(f.Val, 'g', -1, 64) + " " + Format(f.Unit, Hz)
}
