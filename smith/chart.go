package smith

import (
	"math"

	"go.uber.org/zap"
)

// ToChart 归一化阻抗映射到史密斯圆图坐标
// 虚部非有限值（开路）按 0 处理；rotate 时先取倒数，映射到导纳圆图
func ToChart(re, im float64, rotate, verbose bool) complex128 {
	if math.IsNaN(im) || math.IsInf(im, 0) {
		im = 0
	}
	z := complex(re, im)
	if rotate {
		z = 1 / z
	}
	g := (z - 1) / (z + 1)
	if verbose {
		zap.L().Debug("smith.ToChart",
			zap.Float64("re", re), zap.Float64("im", im), zap.Bool("rotate", rotate),
			zap.Complex128("z", z), zap.Complex128("gamma", g))
	}
	return g
}

// ToChartC 复数形式的 ToChart
func ToChartC(z complex128, rotate, verbose bool) complex128 {
	return ToChart(real(z), imag(z), rotate, verbose)
}
