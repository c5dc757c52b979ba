package matching

import (
	"math"

	"rfmatch/maths"
	"rfmatch/unit"
)

// HP1 高通双 L 节
//
//	--------CAP-------CAP--
//	    |         |
//	   IND       IND
//	    |         |
//	   GND       GND
func HP1(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
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
	out.LL = rv / (w * ql)
	out.CL = 1 / (w * real(zl) * ql)
	if imag(zl) != 0 {
		out.CL = transfer(out.CL, -1/(w*imag(zl)))
	}
	return out.scale(cUnit, lUnit)
}

// HP2 HP1 的镜像
//
//	--CAP--------CAP-------
//	        |         |
//	       IND       IND
//	        |         |
//	       GND       GND
func HP2(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CCLL {
	return HP1(zl, zs, w, cUnit, lUnit)
}
