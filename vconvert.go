package rtasm

// Conversions between packed single-precision and 32-bit integers.
//
//   cvzis: float -> int32, rounding toward zero   cvttps2dq / xvcvspsxws
//   cvnin: int32 -> float, round-to-nearest       cvtdq2ps  / xvcvsxwsp
//
// Out-of-range inputs give 0x80000000 on x86 and saturate on POWER.

const (
	ppcXVCVSPSXWS = 0xF0000260
	ppcXVCVSXWSP  = 0xF00002E0
)

var (
	vCvz = &simdOp{name: "cvzis", sse: sseOp{pfx: 0xF3, op: 0x5B, unary: true}, ppc: vsx2(ppcXVCVSPSXWS)}
	vCvn = &simdOp{name: "cvnin", sse: sseOp{op: 0x5B, unary: true}, ppc: vsx2(ppcXVCVSXWSP)}
)

func (o *Out) CvzisRR(xg, xs XReg) { o.simdRR(vCvz, xg, xs) }
func (o *Out) CvzisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCvz, xg, ms, ds) }
func (o *Out) CvninRR(xg, xs XReg) { o.simdRR(vCvn, xg, xs) }
func (o *Out) CvninLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCvn, xg, ms, ds) }
