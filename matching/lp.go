package matching

import (
	"math"

	"rfmatch/maths"
	"rfmatch/unit"
)

// LP1 低通双 L 节
//
//	--------IND-------IND--
//	    |         |
//	   CAP       CAP
//	    |         |
//	   GND       GND
func LP1(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
	out := newCCLL(cUnit, lUnit)
	if maths.IsConjugate(zs, zl) {
		return out
	}
	q := -imag(zs) / real(zs)
	rp := (1 + q*q) * real(zs)
	rv := math.Sqrt(rp * real(zl))
	if rp <= rv {
		return out.infeasible()
	}
	qs := math.Sqrt(rp/rv - 1)
	ql := math.Sqrt(rv/real(zl) - 1)
	cp := q / (w * rp)
	out.CS = qs/(w*rp) - cp
	out.LS = qs * rv / w
	out.LL = real(zl)*ql/w - imag(zl)/w
	out.CL = ql / (w * rv)
	return out.scale(cUnit, lUnit)
}

// LP2 LP1 的镜像，从负载端开始匹配
//
//	--IND--------IND-------
//	        |         |
//	       CAP       CAP
//	        |         |
//	       GND       GND
func LP2(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
	return LP1(zl, zs, w, cUnit, lUnit)
}
