package base

import (
	"math"

	"rfmatch/element"
	"rfmatch/smith"
	"rfmatch/unit"
)

// lineParams 传输线族参数：特征阻抗(Ω)、物理长度(m)、相位常数(rad/m)
// 参数顺序固定为 z0, length, er
func lineParams(b *element.Base, f unit.Frequency) (zo, length, beta float64) {
	er := b.Param(2).Val
	if er <= 0 {
		er = 1
	}
	length = unit.Length(b.Param(1).Val, b.Param(1).Unit, f.Freq(), er)
	return b.SI(0), length, f.W() * math.Sqrt(er) / unit.C
}

// lineArc 按电长度扫描，采样数为零时只返回终点
func lineArc(req smith.ArcRequest, start, end complex128) element.ArcTrace {
	ret, err := smith.ArcPoints(req)
	if err != nil {
		pt := smith.ToChartC(end, req.Rotate, req.Verbose)
		return element.ArcTrace{X: []float64{real(pt)}, Y: []float64{imag(pt)}, Start: start, End: end}
	}
	return element.ArcTrace{
		X:     ret.XCoord,
		Y:     ret.YCoord,
		Start: start,
		End:   complex(ret.RealOld, ret.ImagOld),
	}
}
