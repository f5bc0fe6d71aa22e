package rtasm

// MOVIX - full 128-bit register moves, loads and stores (movix_rr/_ld/_st).
//
// Architecture details:
//   x86-64: movaps xmm, xmm/m128 (0F 28) and movaps m128, xmm (0F 29)
//   POWER:  xxlor vs, vs, vs and lxvw4x/stxvw4x through TDxx
//
// Memory operands must be 16-byte aligned on both targets.

var movaps = sseOp{op: 0x28, unary: true}

// MovixRR copies XS into XG.
func (o *Out) MovixRR(xg, xs XReg) {
	if !o.begin("movix_rr", o.checkXReg(xg, xs)) {
		return
	}
	defer o.end()
	if o.power() {
		o.pw(xx3(ppcXXLOR, vsr(uint32(xg)), vsr(uint32(xs)), vsr(uint32(xs))))
		return
	}
	o.sseRR(movaps, uint32(xg), uint32(xs))
}

// MovixLD loads XG from [MS + DS].
func (o *Out) MovixLD(xg XReg, ms Mem, ds Disp) {
	if !o.begin("movix_ld", o.checkXReg(xg), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcVecLoad(vsr(uint32(xg)), ms, ds)
		return
	}
	o.sseLD(movaps, uint32(xg), ms, ds)
}

// MovixST stores XS to [MD + DD].
func (o *Out) MovixST(xs XReg, md Mem, dd Disp) {
	if !o.begin("movix_st", o.checkXReg(xs), o.checkMem(md, dd)) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcVecStore(vsr(uint32(xs)), md, dd)
		return
	}
	o.sseLD(sseOp{op: 0x29, unary: true}, uint32(xs), md, dd)
}
