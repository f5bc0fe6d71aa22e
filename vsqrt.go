package rtasm

// SQRIS - packed single-precision square root: G = sqrt(S).
//
// Architecture details:
//   x86-64: sqrtps xmm, xmm/m128 (0F 51)
//   POWER:  xvsqrtsp (XX2-form)

const ppcXVSQRTSP = 0xF000022C

var vSqrt = &simdOp{name: "sqris", sse: sseOp{op: 0x51, unary: true}, ppc: vsx2(ppcXVSQRTSP)}

func (o *Out) SqrisRR(xg, xs XReg) { o.simdRR(vSqrt, xg, xs) }
func (o *Out) SqrisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vSqrt, xg, ms, ds) }
