package matching

import (
	"math"

	"rfmatch/maths"
	"rfmatch/unit"
)

// roots 指定 Q 时 L 节的并联电抗 xp 与串联电抗 xc
// sign 为判别式平方根的符号，+1 为根 1，-1 为根 2
type roots func(rs, xs, rl, xl, q, sign float64) (xp, xc float64)

// withQ 依次尝试两个根，并联元件先检查
// shuntL 为真时并联元件为电感，否则为电容
// 先取 +√D（根 1）再取 −√D（根 2）；并联元件值为负的根不可实现，所以按此顺序取首个可实现的根即为对并联元件的符号检查
func withQ(zs, zl complex128, q, qNet, w float64, cUnit, lUnit unit.Unit, solve roots, shuntL bool) CLQ {
	out := CLQ{}
	out.CUnit, out.LUnit = unitNames(cUnit, lUnit)
	if maths.IsConjugate(zs, zl) {
		return out
	}
	out.QTarget = q
	for i, sign := range []float64{1, -1} {
		xp, xc := solve(real(zs), imag(zs), real(zl), imag(zl), q, sign)
		l := unit.Scale(xp/w, lUnit)
		c := unit.Scale(-1/(w*xc), cUnit)
		shunt, series := c, l
		if shuntL {
			shunt, series = l, c
		}
		if unrealizable(shunt) || unrealizable(series) {
			continue
		}
		out.C, out.L, out.QNet, out.SolutionIndex = c, l, qNet, i+1
		return out
	}
	setNaN(&out.C, &out.L, &out.QTarget, &out.QNet)
	return out
}

// HPEllCLWithQ 高通 L 节，并联电感带有限 Q
//
//	---CAP---------
//	         |
//	        RES
//	         |
//	        IND
//	         |
//	        GND
func HPEllCLWithQ(zs, zl complex128, q, w float64, cUnit, lUnit unit.Unit) CLQ {
	qs := imag(zs) / real(zs)
	rp := (1 + qs*qs) * real(zl)
	qNet := math.Sqrt(rp/real(zs) - 1)
	return withQ(zs, zl, q, qNet, w, cUnit, lUnit, hpCLRoots, true)
}

func hpCLRoots(rs, xs, rl, xl, q, sign float64) (xp, xc float64) {
	q2 := q * q
	d := math.Pow(xl, 4) - 4*q*rs*math.Pow(xl, 3) +
		(-4*rs*rs+4*q2*rl*rs+2*rl*rl)*xl*xl +
		(8*q*rl*rs*rs-4*q*rl*rl*rs)*xl -
		4*q2*rl*rl*rs*rs + 4*q2*math.Pow(rl, 3)*rs + math.Pow(rl, 4)
	s := sign * math.Sqrt(d)
	xp = -((q*s - q*xl*xl + 2*q2*rs*xl + 2*q*rl*rs - q*rl*rl) /
		((2*q2+2)*rs + (-2*q2-2)*rl))
	xc = ((2*q*rl-2*xl)*xs + s - xl*xl - rl*rl) / (2*xl - 2*q*rl)
	return xp, xc
}

// HPEllLCWithQ 高通 L 节，并联电感在源端
//
//	--------CAP----
//	    |
//	   RES
//	    |
//	   IND
//	    |
//	   GND
func HPEllLCWithQ(zs, zl complex128, q, w float64, cUnit, lUnit unit.Unit) CLQ {
	qs := imag(zs) / real(zs)
	rp := (1 + qs*qs) * real(zs)
	qNet := math.Sqrt(rp/real(zs) - 1)
	return withQ(zs, zl, q, qNet, w, cUnit, lUnit, hpLCRoots, true)
}

func hpLCRoots(rs, xs, rl, xl, q, sign float64) (xp, xc float64) {
	q2 := q * q
	d := math.Pow(xs, 4) - 4*q*rl*math.Pow(xs, 3) +
		(2*rs*rs+4*q2*rl*rs-4*rl*rl)*xs*xs +
		(8*q*rl*rl*rs-4*q*rl*rs*rs)*xs +
		math.Pow(rs, 4) + 4*q2*rl*math.Pow(rs, 3) - 4*q2*rl*rl*rs*rs
	s := sign * math.Sqrt(d)
	xp = (q*s - q*xs*xs + 2*q2*rl*xs - q*rs*rs + 2*q*rl*rs) /
		((2*q2+2)*rs + (-2*q2-2)*rl)
	xc = (s - xs*xs - 2*xl*xs + 2*q*rs*xl - rs*rs) / (2*xs - 2*q*rs)
	return xp, xc
}

// LPEllCLWithQ 低通 L 节，并联电容带有限 Q
//
//	--------IND----
//	    |
//	   RES
//	    |
//	   CAP
//	    |
//	   GND
func LPEllCLWithQ(zs, zl complex128, q, w float64, cUnit, lUnit unit.Unit) CLQ {
	qs := -imag(zs) / real(zs)
	rp := real(zs) * (1 + qs*qs)
	qNet := math.Sqrt(rp/real(zl) - 1)
	return withQ(zs, zl, q, qNet, w, cUnit, lUnit, lpCLRoots, false)
}

func lpCLRoots(rs, xs, rl, xl, q, sign float64) (xp, xc float64) {
	q2 := q * q
	d := math.Pow(xs, 4) + (4*q*rs*xl+2*rs*rs+4*q2*rl*rs)*xs*xs -
		4*rs*rs*xl*xl + (4*q*math.Pow(rs, 3)-8*q*rl*rs*rs)*xl +
		math.Pow(rs, 4) + 4*q2*rl*math.Pow(rs, 3) - 4*q2*rl*rl*rs*rs
	s := sign * math.Sqrt(d)
	xp = (q*s - q*xs*xs - 2*q2*rs*xl - q*rs*rs + 2*q*rl*rs) / ((2*q2 + 2) * rs)
	xc = (s - xs*xs + (-2*xl-2*q*rl)*xs - rs*rs) / (2*xs + 2*xl - 2*q*rs + 2*q*rl)
	return xp, xc
}

// LPEllLCWithQ 低通 L 节，并联电容在负载端
//
//	---IND---------
//	         |
//	        RES
//	         |
//	        CAP
//	         |
//	        GND
func LPEllLCWithQ(zs, zl complex128, q, w float64, cUnit, lUnit unit.Unit) CLQ {
	qs := -imag(zl) / real(zl)
	rp := real(zl) * (1 + qs*qs)
	qNet := math.Sqrt(rp/real(zs) - 1)
	return withQ(zs, zl, q, qNet, w, cUnit, lUnit, lpLCRoots, false)
}

func lpLCRoots(rs, xs, rl, xl, q, sign float64) (xp, xc float64) {
	q2 := q * q
	d := -4*rl*rl*xs*xs + (4*q*rl*xl*xl-8*q*rl*rl*rs+4*q*math.Pow(rl, 3))*xs +
		math.Pow(xl, 4) + (4*q2*rl*rs+2*rl*rl)*xl*xl -
		4*q2*rl*rl*rs*rs + 4*q2*math.Pow(rl, 3)*rs + math.Pow(rl, 4)
	s := sign * math.Sqrt(d)
	xp = -((q*s + 2*q2*rl*xs + q*xl*xl - 2*q*rl*rs + q*rl*rl) / ((2*q2 + 2) * rl))
	xc = -((s + 2*xl*xs + xl*xl + 2*q*rs*xl + rl*rl) / (2*xs + 2*xl + 2*q*rs - 2*q*rl))
	return xp, xc
}
