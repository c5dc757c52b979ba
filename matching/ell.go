package matching

import (
	"math"

	"rfmatch/maths"
	"rfmatch/unit"
)

// HPEllCL 高通 L 节：串联电容接源端，并联电感接负载端
//
//	---CAP---------
//	         |
//	        IND
//	         |
//	        GND
func HPEllCL(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CL {
	out := newCL(cUnit, lUnit)
	if maths.IsConjugate(zs, zl) {
		return out
	}
	qs := imag(zl) / real(zl)
	rp := (1 + qs*qs) * real(zl)
	if real(zs) > rp {
		return out.infeasible()
	}
	out.Q = math.Sqrt(rp/real(zs) - 1)
	out.L = rp / (w * out.Q)
	out.C = 1 / (out.Q * w * real(zs))
	if imag(zs) != 0 {
		out.C = transfer(out.C, -1/(w*imag(zs)))
	}
	if imag(zl) != 0 {
		out.L = transfer(out.L, (1+qs*qs)*imag(zl)/(w*qs*qs))
	}
	return out.scale(cUnit, lUnit)
}

// HPEllLC HPEllCL 的镜像
//
//	--------CAP----
//	    |
//	   IND
//	    |
//	   GND
func HPEllLC(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CL {
	return HPEllCL(zl, zs, w, cUnit, lUnit)
}

// LPEllCL 低通 L 节：并联电容接源端，串联电感接负载端
//
//	--------IND----
//	    |
//	   CAP
//	    |
//	   GND
func LPEllCL(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CL {
	out := newCL(cUnit, lUnit)
	if maths.IsConjugate(zs, zl) {
		return out
	}
	qs := -imag(zs) / real(zs)
	rp := real(zs) * (1 + qs*qs)
	if real(zl) > rp {
		return out.infeasible()
	}
	out.Q = math.Sqrt(rp/real(zl) - 1)
	out.C = out.Q/(rp*w) - qs/(rp*w)
	out.L = out.Q*real(zl)/w - imag(zl)/w
	return out.scale(cUnit, lUnit)
}

// LPEllLC LPEllCL 的镜像
//
//	---IND---------
//	         |
//	        CAP
//	         |
//	        GND
func LPEllLC(zs, zl complex128, w float64, cUnit, lUnit unit.Unit) CL {
	return LPEllCL(zl, zs, w, cUnit, lUnit)
}
