package rtasm

// MUL family. The _ri/_rr/_ld forms keep the low half of the product in RG.
// The _xr/_xm forms produce the full product in Redx:Reax from Reax, unsigned
// for x subsets and signed for n subsets.

// MulRI: RG = RG * IS
func (o *Out) MulRI(s Sub, rg Reg, is Imm) {
	if !o.begin(mnemonic("mul", s, "ri"), o.checkSub(s), o.checkReg(rg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	t := o.immTags(is)
	if o.power() {
		if t.TP1 == Tag1Native {
			o.pw(ppcMULLI | mim(g, g, is.Val()))
			return
		}
		o.ppcLoadImm(o.scr.TIxx, is, wide)
		o.pw(ppcMul(wide) | mrm(g, g, o.scr.TIxx))
		return
	}
	switch {
	case wide && t.TP2 == Tag2Zero:
		o.x86LoadTI(is.Val())
		o.x86RR(0, true, g, o.scr.TIxx, 0x0F, 0xAF)
	case t.TP1 == Tag1Short:
		o.x86RR(0, wide, g, g, 0x6B)
		o.w.Write(byte(is.Val()))
	default:
		o.x86RR(0, wide, g, g, 0x69)
		o.x86Imm32(is.Val())
	}
}

// MulRR: RG = RG * RS
func (o *Out) MulRR(s Sub, rg, rs Reg) {
	if !o.begin(mnemonic("mul", s, "rr"), o.checkSub(s), o.checkReg(rg, rs)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		o.pw(ppcMul(wide) | mrm(g, g, o.hr(rs)))
		return
	}
	o.x86RR(0, wide, g, o.hr(rs), 0x0F, 0xAF)
}

// MulLD: RG = RG * [MS + DS]
func (o *Out) MulLD(s Sub, rg Reg, ms Mem, ds Disp) {
	if !o.begin(mnemonic("mul", s, "ld"), o.checkSub(s), o.checkReg(rg), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		tm := o.scr.TMxx
		o.ppcLoad(wide, tm, o.ppcAddress(ms, ds))
		o.pw(ppcMul(wide) | mrm(g, g, tm))
		return
	}
	o.x86RM(0, wide, g, ms, ds, 0x0F, 0xAF)
}

// MulXR: Redx:Reax = Reax * RS
func (o *Out) MulXR(s Sub, rs Reg) {
	if !o.begin(mnemonic("mul", s, "xr"), o.checkSub(s), o.checkReg(rs)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		o.ppcMulX(s.Signed(), wide, o.hr(rs))
		return
	}
	o.x86RR(0, wide, x86MulDigit(s), o.hr(rs), 0xF7)
}

// MulXM: Redx:Reax = Reax * [MS + DS]
func (o *Out) MulXM(s Sub, ms Mem, ds Disp) {
	if !o.begin(mnemonic("mul", s, "xm"), o.checkSub(s), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		tm := o.scr.TMxx
		o.ppcLoad(wide, tm, o.ppcAddress(ms, ds))
		o.ppcMulX(s.Signed(), wide, tm)
		return
	}
	o.x86RM(0, wide, x86MulDigit(s), ms, ds, 0xF7)
}

func x86MulDigit(s Sub) uint32 {
	if s.Signed() {
		return 5
	}
	return 4
}

func ppcMul(wide bool) uint32 {
	if wide {
		return ppcMULLD
	}
	return ppcMULLW
}

// ppcMulX computes the full product of Reax and rs: the high half goes through
// TWxx so rs may be Reax or Redx.
func (o *Out) ppcMulX(signed, wide bool, rs uint32) {
	var hi uint32
	switch {
	case signed && wide:
		hi = ppcMULHD
	case signed:
		hi = ppcMULHW
	case wide:
		hi = ppcMULHDU
	default:
		hi = ppcMULHWU
	}
	eax, edx, tw := o.hr(Reax), o.hr(Redx), o.scr.TWxx
	o.pw(hi | mrm(tw, eax, rs))
	o.pw(ppcMul(wide) | mrm(eax, eax, rs))
	o.ppcMR(edx, tw)
}
