package rtasm

// Packed single-precision minimum and maximum.
//
// Architecture details:
//   x86-64: minps/maxps (0F 5D/5F)
//   POWER:  xvminsp/xvmaxsp
//
// With a NaN in an element the result differs: minps/maxps return the
// second source, xvminsp/xvmaxsp return the non-NaN operand.

const (
	ppcXVMAXSP = 0xF0000600
	ppcXVMINSP = 0xF0000640
)

var (
	vMin = &simdOp{name: "minis", sse: sseOp{op: 0x5D}, ppc: vsx3(ppcXVMINSP)}
	vMax = &simdOp{name: "maxis", sse: sseOp{op: 0x5F}, ppc: vsx3(ppcXVMAXSP)}
)

func (o *Out) MinisRR(xg, xs XReg) { o.simdRR(vMin, xg, xs) }
func (o *Out) MinisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vMin, xg, ms, ds) }
func (o *Out) MaxisRR(xg, xs XReg) { o.simdRR(vMax, xg, xs) }
func (o *Out) MaxisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vMax, xg, ms, ds) }
