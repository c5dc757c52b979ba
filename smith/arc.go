package smith

import (
	"errors"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"rfmatch/maths"
)

// 通用弧线类型
const (
	ArcTLine       = "transmission_line" // 传输线
	ArcShortedStub = "ss"                // 短路枝节
	ArcOpenStub    = "so"                // 开路枝节
)

var (
	ErrResolution    = errors.New("smith: resolution must be positive") // 采样数无效
	ErrNotRecognized = errors.New("element not recognized")             // 元件类型无法识别
)

// ArcRequest 弧线采样参数
// 传输线与枝节时 X2 为线长，Y2 为线特征阻抗
type ArcRequest struct {
	X1, Y1       float64
	X2, Y2       float64
	Type         string
	Rotate       bool
	Beta         float64 // 相位常数
	StartAtQtrWl float64 // 短路枝节起始长度，0 表示从零开始
	Z0           float64
	Resolution   int
	Verbose      bool
}

// ArcReturn 弧线采样结果
type ArcReturn struct {
	XCoord, YCoord   []float64
	EndX, EndY       float64
	RealOld, ImagOld float64 // 映射前的终点，供级联元件校验连续性
	StartX, StartY   float64
	X1, Y1, X2, Y2   float64
}

// Sweep 生成 n+1 个等距采样点
func Sweep(a, b float64, n int) []float64 {
	if n <= 0 {
		return []float64{b}
	}
	return floats.Span(make([]float64, n+1), a, b)
}

// ArcPoints 按类型离散弧线
func ArcPoints(req ArcRequest) (ret ArcReturn, err error) {
	if req.Resolution <= 0 {
		return ret, ErrResolution
	}
	n := req.Resolution
	ret = ArcReturn{
		XCoord: make([]float64, n+1),
		YCoord: make([]float64, n+1),
		X1:     req.X1, Y1: req.Y1, X2: req.X2, Y2: req.Y2,
	}
	start := ToChart(req.X1, req.Y1, req.Rotate, false)
	ret.StartX, ret.StartY = real(start), imag(start)

	lineZo, lineLength := req.Y2, req.X2
	zl := maths.Z(start, req.Z0)
	var end complex128
	var stubIm float64
	var zi complex128
	xs, ys := Sweep(req.X1, req.X2, n), Sweep(req.Y1, req.Y2, n)
	for i := 0; i <= n; i++ {
		frac := float64(i) / float64(n)
		var pt complex128
		switch req.Type {
		case ArcTLine:
			t := complex(math.Tan(req.Beta*lineLength*frac), 0)
			zo := complex(lineZo, 0)
			zi = zo * ((zl + 1i*zo*t) / (zo + 1i*zl*t)) / complex(req.Z0, 0)
			pt = ToChartC(zi, req.Rotate, false)
		case ArcShortedStub:
			arg := req.Beta * lineLength * frac
			if !maths.ApproxZero(req.StartAtQtrWl) {
				arg = req.Beta * (req.StartAtQtrWl + (lineLength-req.StartAtQtrWl)*frac)
			}
			stubIm = -1 / ((math.Tan(arg) * lineZo) / req.Z0)
			pt = ToChart(req.X1, req.Y1+stubIm, req.Rotate, false)
		case ArcOpenStub:
			stubIm = math.Tan(req.Beta*lineLength*frac) / (lineZo / req.Z0)
			pt = ToChart(req.X1, req.Y1+stubIm, req.Rotate, false)
		default:
			pt = ToChart(xs[i], ys[i], req.Rotate, false)
		}
		ret.XCoord[i], ret.YCoord[i] = real(pt), imag(pt)
		end = pt
	}
	switch req.Type {
	case ArcTLine:
		end = ToChartC(zi, req.Rotate, false)
		ret.RealOld, ret.ImagOld = real(zi), imag(zi)
	case ArcShortedStub, ArcOpenStub:
		ret.RealOld, ret.ImagOld = req.X1, req.Y1+stubIm
	}
	ret.EndX, ret.EndY = real(end), imag(end)

	if req.Verbose {
		zap.L().Debug("smith.ArcPoints",
			zap.String("type", req.Type),
			zap.Float64s("x", ret.XCoord), zap.Float64s("y", ret.YCoord),
			zap.Float64("endX", ret.EndX), zap.Float64("endY", ret.EndY),
			zap.Float64("realOld", ret.RealOld), zap.Float64("imagOld", ret.ImagOld))
	}
	return ret, nil
}
