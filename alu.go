package rtasm

// aluOp describes a two-operand family G = G op S shared by and, ann, orr,
// orn, xor, add and sub. Each family file only fills in the table entry.
type aluOp struct {
	family string
	digit  byte // x86 group-1 digit
	invert bool // x86: complement G before the operation (ann, orn)

	// ppc returns the POWER word computing g = g op s.
	ppc func(g, s uint32) uint32
	// ppcImm is the logic D-form (andi., ori, xori) used when the immediate
	// fits unsigned 16 bits; 0 routes every immediate through TIxx.
	ppcImm uint32
}

func (o *Out) aluRI(op *aluOp, s Sub, rg Reg, is Imm) {
	if !o.begin(mnemonic(op.family, s, "ri"), o.checkSub(s), o.checkReg(rg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if !o.power() {
		if op.invert {
			o.x86RR(0, wide, 2, g, 0xF7)
		}
		o.x86AluRI(op.digit, wide, g, is)
		return
	}
	o.ppcAluImm(op, s.Flags(), wide, g, is)
}

func (o *Out) aluMI(op *aluOp, s Sub, mg Mem, dg Disp, is Imm) {
	if !o.begin(mnemonic(op.family, s, "mi"), o.checkSub(s), o.checkMem(mg, dg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if !o.power() {
		if op.invert {
			o.x86RM(0, wide, 2, mg, dg, 0xF7)
		}
		o.x86AluMI(op.digit, wide, mg, dg, is)
		return
	}
	tm := o.scr.TMxx
	a := o.ppcAddress(mg, dg)
	o.ppcLoad(wide, tm, a)
	o.ppcAluImm(op, s.Flags(), wide, tm, is)
	o.ppcStore(wide, tm, a)
}

func (o *Out) aluRR(op *aluOp, s Sub, rg, rs Reg) {
	if !o.begin(mnemonic(op.family, s, "rr"), o.checkSub(s), o.checkReg(rg, rs)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if !o.power() {
		if op.invert {
			o.x86RR(0, wide, 2, g, 0xF7)
		}
		o.x86AluRR(op.digit, wide, g, o.hr(rs))
		return
	}
	o.ppcZ(op.ppc(g, o.hr(rs)), s.Flags(), wide, g)
}

func (o *Out) aluLD(op *aluOp, s Sub, rg Reg, ms Mem, ds Disp) {
	if !o.begin(mnemonic(op.family, s, "ld"), o.checkSub(s), o.checkReg(rg), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if !o.power() {
		if op.invert {
			o.x86RR(0, wide, 2, g, 0xF7)
		}
		o.x86AluLD(op.digit, wide, g, ms, ds)
		return
	}
	tm := o.scr.TMxx
	o.ppcLoad(wide, tm, o.ppcAddress(ms, ds))
	o.ppcZ(op.ppc(g, tm), s.Flags(), wide, g)
}

func (o *Out) aluST(op *aluOp, s Sub, rs Reg, mg Mem, dg Disp) {
	if !o.begin(mnemonic(op.family, s, "st"), o.checkSub(s), o.checkReg(rs), o.checkMem(mg, dg)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if !o.power() {
		if op.invert {
			o.x86RM(0, wide, 2, mg, dg, 0xF7)
		}
		o.x86AluST(op.digit, wide, o.hr(rs), mg, dg)
		return
	}
	tm := o.scr.TMxx
	a := o.ppcAddress(mg, dg)
	o.ppcLoad(wide, tm, a)
	o.ppcZ(op.ppc(tm, o.hr(rs)), s.Flags(), wide, tm)
	o.ppcStore(wide, tm, a)
}

// ppcAluImm applies an immediate to g. Logic families use their D-form when
// tp2 allows it (ori and xori do not set CR0, so z subsets take the register
// form); everything else loads TIxx through the move class first.
func (o *Out) ppcAluImm(op *aluOp, flags, wide bool, g uint32, is Imm) {
	native := op.ppcImm != 0 && powerImmTags[is.class].TP2 == Tag2Native
	if native && (op.ppcImm == ppcANDI || !flags) {
		o.pw(op.ppcImm | msm(g, g, 0) | is.Val())
		return
	}
	ti := o.scr.TIxx
	o.ppcLoadImm(ti, is, wide)
	o.ppcZ(op.ppc(g, ti), flags, wide, g)
}
