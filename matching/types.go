package matching

import (
	"math"

	"rfmatch/unit"
)

// CL 单 L 节匹配，Q 为网络的负载 Q
type CL struct {
	C, L, Q      float64
	CUnit, LUnit string
}

// CLQ 指定 Q 的 L 节匹配
// SolutionIndex 为所选的二次方程根（1 或 2），无解时为 0
type CLQ struct {
	C, L          float64
	QTarget, QNet float64
	SolutionIndex int
	CUnit, LUnit  string
}

// CCLL 双梯形带通网络，源端与负载端各一组串并联元件
type CCLL struct {
	CS, CL, LS, LL float64
	CUnit, LUnit   string
}

// PiTee Pi/Tee 网络：电容型 (CS, L, CL) 与电感型 (LS, C, LL) 两种实现
type PiTee struct {
	C, CS, CL float64
	L, LS, LL float64
	Q         float64
	CUnit     string
	LUnit     string
}

var nan = math.NaN()

// unrealizable 负值、NaN 或无穷大的元件无法实现
func unrealizable(vals ...float64) bool {
	for _, v := range vals {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// setNaN 全部置为 NaN
func setNaN(vals ...*float64) {
	for _, v := range vals {
		*v = nan
	}
}

// transfer 分数转移吸收端口已有电抗 x·xp/(xp−x)，相等时为 +Inf
func transfer(x, xp float64) float64 {
	if x == xp {
		return math.Inf(1)
	}
	return x * xp / (xp - x)
}

func unitNames(cUnit, lUnit unit.Unit) (string, string) {
	return unit.Format(cUnit, unit.Farad), unit.Format(lUnit, unit.Henry)
}

func newCCLL(cUnit, lUnit unit.Unit) CCLL {
	out := CCLL{}
	out.CUnit, out.LUnit = unitNames(cUnit, lUnit)
	return out
}

func (out *CCLL) infeasible() CCLL {
	setNaN(&out.CS, &out.CL, &out.LS, &out.LL)
	return *out
}

// scale 换算到显示单位，任何元件无法实现时整体置为 NaN
func (out *CCLL) scale(cUnit, lUnit unit.Unit) CCLL {
	out.CS, out.CL = unit.Scale(out.CS, cUnit), unit.Scale(out.CL, cUnit)
	out.LS, out.LL = unit.Scale(out.LS, lUnit), unit.Scale(out.LL, lUnit)
	if unrealizable(out.CS, out.CL, out.LS, out.LL) {
		return out.infeasible()
	}
	return *out
}

func newCL(cUnit, lUnit unit.Unit) CL {
	out := CL{}
	out.CUnit, out.LUnit = unitNames(cUnit, lUnit)
	return out
}

func (out *CL) infeasible() CL {
	setNaN(&out.C, &out.L, &out.Q)
	return *out
}

func (out *CL) scale(cUnit, lUnit unit.Unit) CL {
	out.C, out.L = unit.Scale(out.C, cUnit), unit.Scale(out.L, lUnit)
	if unrealizable(out.C, out.L) {
		return out.infeasible()
	}
	return *out
}

func newPiTee(cUnit, lUnit unit.Unit) PiTee {
	out := PiTee{}
	out.CUnit, out.LUnit = unitNames(cUnit, lUnit)
	return out
}

func (out *PiTee) infeasible() PiTee {
	setNaN(&out.C, &out.CS, &out.CL, &out.L, &out.LS, &out.LL, &out.Q)
	return *out
}

// scale 换算到显示单位
// 两种实现分别检查：(C, LS, LL) 与 (L, CS, CL)
func (out *PiTee) scale(cUnit, lUnit unit.Unit) PiTee {
	out.C, out.CS, out.CL = unit.Scale(out.C, cUnit), unit.Scale(out.CS, cUnit), unit.Scale(out.CL, cUnit)
	out.L, out.LS, out.LL = unit.Scale(out.L, lUnit), unit.Scale(out.LS, lUnit), unit.Scale(out.LL, lUnit)
	if unrealizable(out.C, out.LS, out.LL) {
		setNaN(&out.C, &out.LS, &out.LL)
	}
	if unrealizable(out.L, out.CS, out.CL) {
		setNaN(&out.L, &out.CS, &out.CL)
	}
	return *out
}
