package rtasm

// CMP family: cmpxx_ri, _mi, _rr, _rm, _mr. The result is consumed by the
// next conditional jump, which picks signed or unsigned interpretation.
//
// x86 sets flags right away. POWER only loads the operands into TLxx/TRxx
// (32-bit operands sign-extended on P64) and the jump emits cmp + bc, so
// nothing may touch TLxx/TRxx in between.

// CmpRI compares RS with IT.
func (o *Out) CmpRI(s Sub, rs Reg, it Imm) {
	if !o.begin(mnemonic("cmp", s, "ri"), o.checkSub(s), o.checkReg(rs), o.checkImm(it)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcCmpLeft(wide, o.hr(rs))
		o.ppcLoadImm(o.scr.TRxx, it, wide)
		return
	}
	o.x86AluRI(aluCmp, wide, o.hr(rs), it)
}

// CmpMI compares [MS + DS] with IT.
func (o *Out) CmpMI(s Sub, ms Mem, ds Disp, it Imm) {
	if !o.begin(mnemonic("cmp", s, "mi"), o.checkSub(s), o.checkMem(ms, ds), o.checkImm(it)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcCmpLoad(wide, o.scr.TLxx, ms, ds)
		o.ppcLoadImm(o.scr.TRxx, it, wide)
		return
	}
	o.x86AluMI(aluCmp, wide, ms, ds, it)
}

// CmpRR compares RS with RT.
func (o *Out) CmpRR(s Sub, rs, rt Reg) {
	if !o.begin(mnemonic("cmp", s, "rr"), o.checkSub(s), o.checkReg(rs, rt)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcCmpLeft(wide, o.hr(rs))
		o.ppcCmpOperand(wide, o.scr.TRxx, o.hr(rt))
		return
	}
	o.x86AluRR(aluCmp, wide, o.hr(rs), o.hr(rt))
}

// CmpRM compares RS with [MT + DT].
func (o *Out) CmpRM(s Sub, rs Reg, mt Mem, dt Disp) {
	if !o.begin(mnemonic("cmp", s, "rm"), o.checkSub(s), o.checkReg(rs), o.checkMem(mt, dt)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcCmpLeft(wide, o.hr(rs))
		o.ppcCmpLoad(wide, o.scr.TRxx, mt, dt)
		return
	}
	o.x86AluLD(aluCmp, wide, o.hr(rs), mt, dt)
}

// CmpMR compares [MS + DS] with RT.
func (o *Out) CmpMR(s Sub, ms Mem, ds Disp, rt Reg) {
	if !o.begin(mnemonic("cmp", s, "mr"), o.checkSub(s), o.checkMem(ms, ds), o.checkReg(rt)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcCmpLoad(wide, o.scr.TLxx, ms, ds)
		o.ppcCmpOperand(wide, o.scr.TRxx, o.hr(rt))
		return
	}
	o.x86AluST(aluCmp, wide, o.hr(rt), ms, ds)
}

func (o *Out) ppcCmpLeft(wide bool, rs uint32) {
	o.ppcCmpOperand(wide, o.scr.TLxx, rs)
}

// ppcCmpOperand copies r into t, sign-extending a 32-bit operand on P64 so
// that the full-width compare in the jump sees the 32-bit order.
func (o *Out) ppcCmpOperand(wide bool, t, r uint32) {
	if wide || !o.p64() {
		o.ppcMR(t, r)
		return
	}
	o.pw(ppcEXTSW | msm(t, r, 0))
}

func (o *Out) ppcCmpLoad(wide bool, t uint32, m Mem, d Disp) {
	o.ppcLoad(wide, t, o.ppcAddress(m, d))
	if !wide && o.p64() {
		o.pw(ppcEXTSW | msm(t, t, 0))
	}
}
