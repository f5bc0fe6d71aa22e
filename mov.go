package rtasm

// MOV family: movxx_ri, _mi, _rr, _ld, _st. Moves never touch flags, so the
// subset kind is ignored.

// MovRI loads an immediate: RG = IS.
func (o *Out) MovRI(s Sub, rg Reg, is Imm) {
	if !o.begin(mnemonic("mov", s, "ri"), o.checkSub(s), o.checkReg(rg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcLoadImm(o.hr(rg), is, wide)
		return
	}
	r := o.hr(rg)
	if !wide || x86ImmTags[is.class].TP2 == Tag2Zero {
		// mov r32, imm32 zero-extends into the full register
		o.x86Head(0, false, false, byte(r>>3&1))
		o.w.Write(0xB8 | byte(r&7))
		o.x86Imm32(is.Val())
		return
	}
	o.x86RR(0, true, 0, r, 0xC7)
	o.x86Imm32(is.Val())
}

// MovMI stores an immediate: [MG + DG] = IS.
func (o *Out) MovMI(s Sub, mg Mem, dg Disp, is Imm) {
	if !o.begin(mnemonic("mov", s, "mi"), o.checkSub(s), o.checkMem(mg, dg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		a := o.ppcAddress(mg, dg)
		o.ppcLoadImm(o.scr.TIxx, is, wide)
		o.ppcStore(wide, o.scr.TIxx, a)
		return
	}
	if wide && x86ImmTags[is.class].TP2 == Tag2Zero {
		o.x86LoadTI(is.Val())
		o.x86RM(0, true, o.scr.TIxx, mg, dg, 0x89)
		return
	}
	o.x86RM(0, wide, 0, mg, dg, 0xC7)
	o.x86Imm32(is.Val())
}

// MovRR copies a register: RG = RS.
func (o *Out) MovRR(s Sub, rg, rs Reg) {
	if !o.begin(mnemonic("mov", s, "rr"), o.checkSub(s), o.checkReg(rg, rs)) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcMR(o.hr(rg), o.hr(rs))
		return
	}
	o.x86MovRR(o.wide(s), o.hr(rg), o.hr(rs))
}

// MovLD loads from memory: RG = [MS + DS].
func (o *Out) MovLD(s Sub, rg Reg, ms Mem, ds Disp) {
	if !o.begin(mnemonic("mov", s, "ld"), o.checkSub(s), o.checkReg(rg), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcLoad(wide, o.hr(rg), o.ppcAddress(ms, ds))
		return
	}
	o.x86RM(0, wide, o.hr(rg), ms, ds, 0x8B)
}

// MovST stores to memory: [MG + DG] = RS.
func (o *Out) MovST(s Sub, rs Reg, mg Mem, dg Disp) {
	if !o.begin(mnemonic("mov", s, "st"), o.checkSub(s), o.checkReg(rs), o.checkMem(mg, dg)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcStore(wide, o.hr(rs), o.ppcAddress(mg, dg))
		return
	}
	o.x86RM(0, wide, o.hr(rs), mg, dg, 0x89)
}
