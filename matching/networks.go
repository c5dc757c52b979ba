package matching

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rfmatch/maths"
	"rfmatch/unit"
)

// ErrImpedanceType 阻抗表示或差分模式无法识别
var ErrImpedanceType = errors.New("Impedance type not recognized")

// ZScale 端口阻抗模式
type ZScale string

const (
	Diff   ZScale = "diff" // 差分，端口阻抗折半
	Single ZScale = "se"   // 单端
)

// NetworkRequest 匹配网络计算请求
// Rs/Xs/Rl/Xl 的含义由 Imp 决定
type NetworkRequest struct {
	Rs, Xs, Rl, Xl float64
	Imp            maths.Representation
	QNet           float64 // Pi/Tee 的目标 Q
	Q              float64 // L 节并联元件的 Q
	Z0             float64
	Freq           float64
	FreqUnit       unit.Unit
	CUnit, LUnit   unit.Unit
	ZScale         ZScale
	Verbose        bool
}

// W 角频率
func (req NetworkRequest) W() float64 {
	return unit.NewFrequency(req.Freq, req.FreqUnit).W()
}

// Ports 转换后的源与负载阻抗
func (req NetworkRequest) Ports() (zs, zl complex128, err error) {
	w := req.W()
	if !req.Imp.Valid() {
		return 0, 0, fmt.Errorf("%w: %q", ErrImpedanceType, string(req.Imp))
	}
	if zs, err = req.Imp.ToZ(maths.Port{Re: req.Rs, Im: req.Xs}, req.Z0, w, req.CUnit); err != nil {
		return 0, 0, err
	}
	if zl, err = req.Imp.ToZ(maths.Port{Re: req.Rl, Im: req.Xl}, req.Z0, w, req.CUnit); err != nil {
		return 0, 0, err
	}
	switch req.ZScale {
	case Diff:
		return zs / 2, zl / 2, nil
	case Single:
		return zs, zl, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrImpedanceType, string(req.ZScale))
}

// NetworkResult 全部拓扑的计算结果
type NetworkResult struct {
	ZS, ZL complex128

	HPEllCL, HPEllLC, LPEllCL, LPEllLC CL

	HPEllCLWithQ, HPEllLCWithQ, LPEllCLWithQ, LPEllLCWithQ CLQ

	Tee, Pi PiTee

	LP1, LP2, HP1, HP2, BP1, BP2, BP3, BP4 CCLL
}

// Networks 计算全部 18 种匹配网络
func Networks(req NetworkRequest) (NetworkResult, error) {
	zs, zl, err := req.Ports()
	if err != nil {
		return NetworkResult{}, err
	}
	w := req.W()
	c, l := req.CUnit, req.LUnit
	out := NetworkResult{
		ZS: zs,
		ZL: zl,

		HPEllCL:      HPEllCL(zs, zl, w, c, l),
		HPEllCLWithQ: HPEllCLWithQ(zs, zl, req.Q, w, c, l),
		HPEllLC:      HPEllLC(zs, zl, w, c, l),
		HPEllLCWithQ: HPEllLCWithQ(zs, zl, req.Q, w, c, l),
		LPEllCL:      LPEllCL(zs, zl, w, c, l),
		LPEllCLWithQ: LPEllCLWithQ(zs, zl, req.Q, w, c, l),
		LPEllLC:      LPEllLC(zs, zl, w, c, l),
		LPEllLCWithQ: LPEllLCWithQ(zs, zl, req.Q, w, c, l),

		Tee: Tee(zs, zl, w, req.QNet, c, l),
		Pi:  Pi(zs, zl, w, req.QNet, c, l),

		LP1: LP1(zs, zl, w, c, l),
		LP2: LP2(zs, zl, w, c, l),
		HP1: HP1(zs, zl, w, c, l),
		HP2: HP2(zs, zl, w, c, l),
		BP1: BP1(zs, zl, w, c, l),
		BP2: BP2(zs, zl, w, c, l),
		BP3: BP3(zs, zl, w, c, l),
		BP4: BP4(zs, zl, w, c, l),
	}
	if req.Verbose {
		zap.L().Debug("matching.Networks",
			zap.Complex128("zs", zs), zap.Complex128("zl", zl),
			zap.Float64("w", w), zap.Float64("q", req.Q), zap.Float64("qNet", req.QNet),
			zap.Any("pi", out.Pi), zap.Any("tee", out.Tee))
	}
	return out, nil
}

// ChangeImpedance 转换源与负载的阻抗表示，未知表示返回 ErrImpedanceType
func ChangeImpedance(src, load maths.Port, in, out maths.Representation, z0, freq float64, fUnit, cUnit unit.Unit) (maths.Port, maths.Port, error) {
	s, l, err := maths.ChangeImpedance(src, load, in, out, z0, freq, fUnit, cUnit)
	if errors.Is(err, maths.ErrImpedanceUnit) {
		return s, l, fmt.Errorf("%w: %w", ErrImpedanceType, err)
	}
	return s, l, err
}
