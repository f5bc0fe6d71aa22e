package rtasm

// NotRX inverts a register: RG = ~RG.
func (o *Out) NotRX(s Sub, rg Reg) { o.unaryRX(opNot, s, rg) }

// NotMX inverts memory: [MG + DG] = ~[MG + DG].
func (o *Out) NotMX(s Sub, mg Mem, dg Disp) { o.unaryMX(opNot, s, mg, dg) }

// unaryOp describes a one-operand family (not, neg).
type unaryOp struct {
	family string
	digit  uint32 // x86 F7 digit
	flags  bool   // x86 instruction sets ZF itself
	ppc    func(g uint32) uint32
}

var opNot = &unaryOp{family: "not", digit: 2, ppc: func(g uint32) uint32 { return ppcNOR | msm(g, g, g) }}

func (o *Out) unaryRX(op *unaryOp, s Sub, rg Reg) {
	if !o.begin(mnemonic(op.family, s, "rx"), o.checkSub(s), o.checkReg(rg)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		o.ppcZ(op.ppc(g), s.Flags(), wide, g)
		return
	}
	o.x86RR(0, wide, op.digit, g, 0xF7)
	if s.Flags() && !op.flags {
		o.x86Test(wide, g)
	}
}

func (o *Out) unaryMX(op *unaryOp, s Sub, mg Mem, dg Disp) {
	if !o.begin(mnemonic(op.family, s, "mx"), o.checkSub(s), o.checkMem(mg, dg)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		tm := o.scr.TMxx
		a := o.ppcAddress(mg, dg)
		o.ppcLoad(wide, tm, a)
		o.ppcZ(op.ppc(tm), s.Flags(), wide, tm)
		o.ppcStore(wide, tm, a)
		return
	}
	o.x86RM(0, wide, op.digit, mg, dg, 0xF7)
	if s.Flags() && !op.flags {
		o.x86TestM(wide, mg, dg)
	}
}
