package rtasm

// Packed single-precision arithmetic: addis, subis, mulis, divis.
//
// Architecture details:
//   x86-64: addps/subps/mulps/divps (0F 58/5C/59/5E), vaddps etc. with AVX
//   POWER:  xvaddsp/xvsubsp/xvmulsp/xvdivsp
//
// Results follow IEEE-754 round-to-nearest on both targets.

const (
	ppcXVADDSP = 0xF0000200
	ppcXVSUBSP = 0xF0000240
	ppcXVMULSP = 0xF0000280
	ppcXVDIVSP = 0xF00002C0
)

var (
	vAdd = &simdOp{name: "addis", sse: sseOp{op: 0x58}, ppc: vsx3(ppcXVADDSP)}
	vSub = &simdOp{name: "subis", sse: sseOp{op: 0x5C}, ppc: vsx3(ppcXVSUBSP)}
	vMul = &simdOp{name: "mulis", sse: sseOp{op: 0x59}, ppc: vsx3(ppcXVMULSP)}
	vDiv = &simdOp{name: "divis", sse: sseOp{op: 0x5E}, ppc: vsx3(ppcXVDIVSP)}
)

// AddisRR: G = G + S, elementwise.
func (o *Out) AddisRR(xg, xs XReg) { o.simdRR(vAdd, xg, xs) }

// AddisLD: G = G + [MS + DS].
func (o *Out) AddisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vAdd, xg, ms, ds) }

func (o *Out) SubisRR(xg, xs XReg) { o.simdRR(vSub, xg, xs) }
func (o *Out) SubisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vSub, xg, ms, ds) }
func (o *Out) MulisRR(xg, xs XReg) { o.simdRR(vMul, xg, xs) }
func (o *Out) MulisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vMul, xg, ms, ds) }
func (o *Out) DivisRR(xg, xs XReg) { o.simdRR(vDiv, xg, xs) }
func (o *Out) DivisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vDiv, xg, ms, ds) }
