package matching

import (
	"math"

	"rfmatch/maths"
	"rfmatch/unit"
)

// piTeeStart 公共前置检查
// 返回 done 为真时结果已确定
func piTeeStart(zs, zl complex128, q float64, cUnit, lUnit unit.Unit) (out PiTee, done bool) {
	out = newPiTee(cUnit, lUnit)
	if q < 0 {
		return out.infeasible(), true
	}
	if maths.IsConjugate(zs, zl) {
		return out, true
	}
	rs, rl := real(zs), real(zl)
	if q == 0 && rs == rl {
		return out, true
	}
	if q < MinQ(rs, rl) {
		return out.infeasible(), true
	}
	out.Q = q
	return out, false
}

// MinQ 电阻比决定的最小网络 Q
func MinQ(rs, rl float64) float64 {
	return math.Sqrt(math.Max(rs, rl)/math.Min(rs, rl) - 1)
}

// Pi Pi 网络，虚拟电阻 rv = max(Rs, Rl)/(q²+1)
//
//	C-L-C:               L-C-L:
//	-------IND-------    -------CAP-------
//	   |         |          |         |
//	  CAP       CAP        IND       IND
//	   |         |          |         |
//	  GND       GND        GND       GND
func Pi(zs, zl complex128, w, qTarget float64, cUnit, lUnit unit.Unit) PiTee {
	out, done := piTeeStart(zs, zl, qTarget, cUnit, lUnit)
	if done {
		return out
	}
	rv := math.Max(real(zs), real(zl)) / (qTarget*qTarget + 1)
	qs := -imag(zs) / real(zs)
	ql := -imag(zl) / real(zl)
	rps := real(zs) * (1 + qs*qs)
	rpl := real(zl) * (1 + ql*ql)
	qxs := math.Sqrt(rps/rv - 1)
	qxl := math.Sqrt(rpl/rv - 1)

	// C-L-C
	out.CS = qxs/(w*rps) - qs/(rps*w)
	out.CL = qxl/(w*rpl) - ql/(rpl*w)
	out.L = qxs*rv/w + qxl*rv/w

	// L-C-L
	out.LS = rps / (w * qxs)
	if qs != 0 {
		out.LS = -transfer(out.LS, rps/(qs*w))
	}
	out.LL = rpl / (w * qxl)
	if ql != 0 {
		out.LL = -transfer(out.LL, rpl/(ql*w))
	}
	c5 := 1 / (w * qxs * rv)
	c1 := 1 / (w * qxl * rv)
	out.C = c1 * c5 / (c1 + c5)
	return out.scale(cUnit, lUnit)
}

// Tee T 网络，虚拟电阻 rv = min(Rs, Rl)·(q²+1)
//
//	L-C-L:               C-L-C:
//	---IND-------IND---  ---CAP-------CAP---
//	         |                    |
//	        CAP                  IND
//	         |                    |
//	        GND                  GND
func Tee(zs, zl complex128, w, qTarget float64, cUnit, lUnit unit.Unit) PiTee {
	out, done := piTeeStart(zs, zl, qTarget, cUnit, lUnit)
	if done {
		return out
	}
	rv := math.Min(real(zs), real(zl)) * (qTarget*qTarget + 1)
	qxs := math.Sqrt(rv/real(zs) - 1)
	qxl := math.Sqrt(rv/real(zl) - 1)

	// C-L-C
	out.CS = 1 / (w * real(zs) * qxs)
	if imag(zs) != 0 {
		out.CS = -transfer(out.CS, -1/(w*imag(zs)))
	}
	out.CL = 1 / (w * real(zl) * qxl)
	if imag(zl) != 0 {
		out.CL = -transfer(out.CL, -1/(w*imag(zl)))
	}
	l5 := rv / (w * qxs)
	l1 := rv / (w * qxl)
	out.L = l1 * l5 / (l1 + l5)

	// L-C-L
	out.LS = qxs*real(zs)/w - imag(zs)/w
	out.LL = qxl*real(zl)/w - imag(zl)/w
	out.C = qxs/(w*rv) + qxl/(w*rv)
	return out.scale(cUnit, lUnit)
}
