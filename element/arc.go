package element

import (
	"go.uber.org/zap"

	"rfmatch/smith"
	"rfmatch/unit"
)

// ArcTrace 圆图轨迹
// Start/End 为轨迹对应的归一化阻抗端点，并联集总元件为导纳
type ArcTrace struct {
	X, Y       []float64
	Start, End complex128
}

// Len 采样点数
func (trace ArcTrace) Len() int { return len(trace.X) }

// Last 最后一个坐标
func (trace ArcTrace) Last() complex128 {
	if len(trace.X) == 0 {
		return 0
	}
	return complex(trace.X[len(trace.X)-1], trace.Y[len(trace.Y)-1])
}

// ZNorm 元件归一化阻抗
func ZNorm(e Element, f unit.Frequency, z0 float64) complex128 {
	return e.Impedance(f) / complex(z0, 0)
}

// Compose 按方向把元件阻抗 z(Ω) 级联到归一化输入阻抗 zin
// 串联相加阻抗，并联相加导纳
func Compose(z complex128, orient Orientation, zin complex128, z0 float64) complex128 {
	zn := z / complex(z0, 0)
	if orient == Shunt {
		return 1 / (1/zin + 1/zn)
	}
	return zin + zn
}

// Linear 在归一化平面内从 start 到 end 线性扫描
// rotate 时 start/end 为导纳
func Linear(start, end complex128, rotate bool, npts int, verbose bool) ArcTrace {
	xs := smith.Sweep(real(start), real(end), npts)
	ys := smith.Sweep(imag(start), imag(end), npts)
	trace := ArcTrace{
		X:     make([]float64, len(xs)),
		Y:     make([]float64, len(xs)),
		Start: start,
		End:   end,
	}
	for i := range xs {
		pt := smith.ToChart(xs[i], ys[i], rotate, verbose)
		trace.X[i], trace.Y[i] = real(pt), imag(pt)
	}
	return trace
}

// LumpedArc 集总元件轨迹
// 串联在阻抗平面扫描 zin→zin+z/z0，并联在导纳平面扫描 1/zin→1/zin+z0/z
func LumpedArc(z complex128, orient Orientation, zin complex128, z0 float64, npts int, verbose bool) ArcTrace {
	zn := z / complex(z0, 0)
	var trace ArcTrace
	if orient == Shunt {
		yin := 1 / zin
		trace = Linear(yin, yin+1/zn, true, npts, verbose)
	} else {
		trace = Linear(zin, zin+zn, false, npts, verbose)
	}
	if verbose {
		zap.L().Debug("element.LumpedArc",
			zap.Complex128("z", z), zap.Stringer("orientation", orient),
			zap.Complex128("start", trace.Start), zap.Complex128("end", trace.End),
			zap.Float64s("x", trace.X), zap.Float64s("y", trace.Y))
	}
	return trace
}
