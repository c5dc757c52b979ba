package matching

import (
	"math"

	"rfmatch/maths"
	"rfmatch/unit"
)

// BP1 带通：源端高通节，负载端低通节
//
//	--------CAP-------IND--
//	    |         |
//	   IND       CAP
//	    |         |
//	   GND       GND
func BP1(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
	out := newCCLL(cUnit, lUnit)
	if maths.IsConjugate(zs, zl) {
		return out
	}
	q := imag(zs) / real(zs)
	rp := (1 + q*q) * real(zs)
	rv := math.Sqrt(rp * real(zl))
	if rp <= rv {
		return out.infeasible()
	}
	qs := math.Sqrt(rp/rv - 1)
	ql := math.Sqrt(rv/real(zl) - 1)
	out.CS = 1 / (w * rv * qs)
	out.LS = rp / (w * qs)
	if imag(zs) != 0 {
		out.LS = transfer(out.LS, rp/(w*q))
	}
	out.LL = ql*real(zl)/w - imag(zl)/w
	out.CL = ql / (w * rv)
	return out.scale(cUnit, lUnit)
}

// BP2 BP1 的镜像
//
//	---IND-------CAP-------
//	         |         |
//	        CAP       IND
//	         |         |
//	        GND       GND
func BP2(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
	return BP1(zl, zs, w, cUnit, lUnit)
}

// BP3 带通：源端低通节，负载端高通节
//
//	--------IND-------CAP--
//	    |         |
//	   CAP       IND
//	    |         |
//	   GND       GND
func BP3(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
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
	out.LL = rv / (w * ql)
	out.CL = 1 / (w * real(zl) * ql)
	if imag(zl) != 0 {
		out.CL = transfer(out.CL, -1/(w*imag(zl)))
	}
	return out.scale(cUnit, lUnit)
}

// BP4 BP3 的镜像
//
//	---CAP-------IND-------
//	         |         |
//	        IND       CAP
//	         |         |
//	        GND       GND
func BP4(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
	return BP3(zl, zs, w, cUnit, lUnit)
}
