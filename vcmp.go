package rtasm

// Packed single-precision compares. Each element of G becomes all ones when
// G cc S holds and all zeros otherwise.
//
// Architecture details:
//   x86-64: cmpps xmm, xmm/m128, pred (0F C2 ib)
//   POWER:  xvcmpeqsp/xvcmpgtsp/xvcmpgesp; ne adds xxlnor, lt and le swap
//           the operands of gt and ge
//
// gt and ge use the not-le/not-lt predicates on x86, which are true for
// unordered elements, while the POWER forms are false for them.

const (
	ppcXVCMPEQSP = 0xF0000218
	ppcXVCMPGTSP = 0xF0000258
	ppcXVCMPGESP = 0xF0000298
)

func cmpps(pred byte) sseOp { return sseOp{op: 0xC2, cmp: true, pred: pred} }

var (
	vCeq = &simdOp{name: "ceqis", sse: cmpps(0), ppc: vsx3(ppcXVCMPEQSP)}
	vCne = &simdOp{name: "cneis", sse: cmpps(4), ppc: func(o *Out, g, s uint32) {
		o.pw(xx3(ppcXVCMPEQSP, vsr(g), vsr(g), vsr(s)))
		o.pw(xx3(ppcXXLNOR, vsr(g), vsr(g), vsr(g)))
	}}
	vClt = &simdOp{name: "cltis", sse: cmpps(1), ppc: vsx3r(ppcXVCMPGTSP)}
	vCle = &simdOp{name: "cleis", sse: cmpps(2), ppc: vsx3r(ppcXVCMPGESP)}
	vCgt = &simdOp{name: "cgtis", sse: cmpps(6), ppc: vsx3(ppcXVCMPGTSP)}
	vCge = &simdOp{name: "cgeis", sse: cmpps(5), ppc: vsx3(ppcXVCMPGESP)}
)

func (o *Out) CeqisRR(xg, xs XReg) { o.simdRR(vCeq, xg, xs) }
func (o *Out) CeqisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCeq, xg, ms, ds) }
func (o *Out) CneisRR(xg, xs XReg) { o.simdRR(vCne, xg, xs) }
func (o *Out) CneisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCne, xg, ms, ds) }
func (o *Out) CltisRR(xg, xs XReg) { o.simdRR(vClt, xg, xs) }
func (o *Out) CltisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vClt, xg, ms, ds) }
func (o *Out) CleisRR(xg, xs XReg) { o.simdRR(vCle, xg, xs) }
func (o *Out) CleisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCle, xg, ms, ds) }
func (o *Out) CgtisRR(xg, xs XReg) { o.simdRR(vCgt, xg, xs) }
func (o *Out) CgtisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCgt, xg, ms, ds) }
func (o *Out) CgeisRR(xg, xs XReg) { o.simdRR(vCge, xg, xs) }
func (o *Out) CgeisLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vCge, xg, ms, ds) }
