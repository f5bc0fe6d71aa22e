package rtasm

// DIV and REM families, unsigned for x subsets and signed for n subsets.
//
// The _xr/_xm forms divide Reax (Redx:Reax on x86, prepared by PreXX) and
// leave the quotient in Reax. The _rr/_ri/_ld forms work in place on RG.
// On x86 they go through rax/rdx, which is why RG cannot be Reax and RS cannot
// be Reax or Redx. Division by zero and the signed INT_MIN / -1 overflow fault
// on x86 and give an undefined result on POWER.

// PreXX prepares Redx for DivXR/DivXM (prewx_xx, prewn_xx).
func (o *Out) PreXX(s Sub) {
	if !o.begin(mnemonic("pre", s, "xx"), o.checkSub(s)) {
		return
	}
	defer o.end()
	if !o.power() {
		o.x86Prep(s.Signed(), o.wide(s))
	}
}

// DivXR: Reax = Redx:Reax / RS
func (o *Out) DivXR(s Sub, rs Reg) {
	if !o.begin(mnemonic("div", s, "xr"), o.checkSub(s), o.checkReg(rs)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		eax := o.hr(Reax)
		o.pw(ppcDiv(s.Signed(), wide) | mrm(eax, eax, o.hr(rs)))
		return
	}
	o.x86RR(0, wide, x86DivDigit(s), o.hr(rs), 0xF7)
}

// DivXM: Reax = Redx:Reax / [MS + DS]
func (o *Out) DivXM(s Sub, ms Mem, ds Disp) {
	if !o.begin(mnemonic("div", s, "xm"), o.checkSub(s), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		eax, tm := o.hr(Reax), o.scr.TMxx
		o.ppcLoad(wide, tm, o.ppcAddress(ms, ds))
		o.pw(ppcDiv(s.Signed(), wide) | mrm(eax, eax, tm))
		return
	}
	o.x86RM(0, wide, x86DivDigit(s), ms, ds, 0xF7)
}

// DivRR: RG = RG / RS
func (o *Out) DivRR(s Sub, rg, rs Reg) { o.divRR("div", s, rg, rs) }

// DivRI: RG = RG / IS
func (o *Out) DivRI(s Sub, rg Reg, is Imm) { o.divRI("div", s, rg, is) }

// DivLD: RG = RG / [MS + DS]
func (o *Out) DivLD(s Sub, rg Reg, ms Mem, ds Disp) { o.divLD("div", s, rg, ms, ds) }

// RemRR: RG = RG % RS
func (o *Out) RemRR(s Sub, rg, rs Reg) { o.divRR("rem", s, rg, rs) }

// RemRI: RG = RG % IS
func (o *Out) RemRI(s Sub, rg Reg, is Imm) { o.divRI("rem", s, rg, is) }

// RemLD: RG = RG % [MS + DS]
func (o *Out) RemLD(s Sub, rg Reg, ms Mem, ds Disp) { o.divLD("rem", s, rg, ms, ds) }

// RemXX opens a remainder bracket around DivXR/DivXM:
//
//	RemXX(s); DivXR(s, RS); RemXR(s, RS)   // Redx = Reax % RS
//
// x86 prepares Redx like PreXX; POWER keeps a copy of the dividend in Redx.
func (o *Out) RemXX(s Sub) {
	if !o.begin(mnemonic("rem", s, "xx"), o.checkSub(s)) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcMR(o.hr(Redx), o.hr(Reax))
		return
	}
	o.x86Prep(s.Signed(), o.wide(s))
}

// RemXR closes the bracket opened by RemXX, leaving the remainder in Redx.
// x86 div already left it there.
func (o *Out) RemXR(s Sub, rs Reg) {
	if !o.begin(mnemonic("rem", s, "xr"), o.checkSub(s), o.checkReg(rs)) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcRemFix(o.wide(s), o.hr(rs))
	}
}

// RemXM closes a bracket around DivXM.
func (o *Out) RemXM(s Sub, ms Mem, ds Disp) {
	if !o.begin(mnemonic("rem", s, "xm"), o.checkSub(s), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	if o.power() {
		wide := o.wide(s)
		o.ppcLoad(wide, o.scr.TMxx, o.ppcAddress(ms, ds))
		o.ppcRemFix(wide, o.scr.TMxx)
	}
}

// ppcRemFix turns the quotient in Reax and the dividend in Redx into the
// remainder: Redx -= Reax * rs.
func (o *Out) ppcRemFix(wide bool, rs uint32) {
	eax, edx, tw := o.hr(Reax), o.hr(Redx), o.scr.TWxx
	o.pw(ppcMul(wide) | mrm(tw, eax, rs))
	o.pw(ppcSUBF | mrm(edx, tw, edx))
}

func (o *Out) divChecks(rg Reg) error {
	return o.pre(o.power() || rg != Reax, "RG no Reax")
}

func (o *Out) divRR(family string, s Sub, rg, rs Reg) {
	if !o.begin(mnemonic(family, s, "rr"), o.checkSub(s), o.checkReg(rg, rs), o.divChecks(rg),
		o.pre(o.power() || (rs != Reax && rs != Redx), "RS no Reax/Redx")) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		o.ppcDivRem(family == "rem", s.Signed(), wide, g, o.hr(rs))
		return
	}
	o.x86DivSeq(family == "rem", s, g, func() {
		o.x86RR(0, wide, x86DivDigit(s), o.hr(rs), 0xF7)
	})
}

func (o *Out) divRI(family string, s Sub, rg Reg, is Imm) {
	if !o.begin(mnemonic(family, s, "ri"), o.checkSub(s), o.checkReg(rg), o.checkImm(is), o.divChecks(rg)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	ti := o.scr.TIxx
	if o.power() {
		o.ppcLoadImm(ti, is, wide)
		o.ppcDivRem(family == "rem", s.Signed(), wide, g, ti)
		return
	}
	o.x86LoadTI(is.Val())
	o.x86DivSeq(family == "rem", s, g, func() {
		o.x86RR(0, wide, x86DivDigit(s), ti, 0xF7)
	})
}

func (o *Out) divLD(family string, s Sub, rg Reg, ms Mem, ds Disp) {
	if !o.begin(mnemonic(family, s, "ld"), o.checkSub(s), o.checkReg(rg), o.checkMem(ms, ds), o.divChecks(rg),
		o.pre(o.power() || (!ms.usesReax() && ms.base != Redx && ms.base != Resp), "MS no Oeax/Meax/Medx/Mesp/index")) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		tw := o.scr.TWxx
		o.ppcLoad(wide, tw, o.ppcAddress(ms, ds))
		o.ppcDivRem(family == "rem", s.Signed(), wide, g, tw)
		return
	}
	o.x86DivSeq(family == "rem", s, g, func() {
		o.x86RM(0, wide, x86DivDigit(s), ms, ds, 0xF7)
	})
}

// x86DivSeq divides g in place through rax/rdx, both preserved on the stack.
func (o *Out) x86DivSeq(rem bool, s Sub, g uint32, div func()) {
	wide := o.wide(s)
	rax, rdx := o.hr(Reax), o.hr(Redx)
	o.w.Write(0x50) // push rax
	o.w.Write(0x52) // push rdx
	o.x86MovRR(wide, rax, g)
	o.x86Prep(s.Signed(), wide)
	div()
	if rem {
		o.x86MovRR(wide, rax, rdx)
	}
	o.w.Write(0x5A) // pop rdx
	o.x86MovRR(wide, g, rax)
	o.w.Write(0x58) // pop rax
}

// x86Prep fills rdx for div (xor edx, edx) or idiv (cdq / cqo).
func (o *Out) x86Prep(signed, wide bool) {
	if !signed {
		o.x86RR(0, false, o.hr(Redx), o.hr(Redx), 0x31)
		return
	}
	o.x86Head(0, false, wide, 0)
	o.w.Write(0x99)
}

func x86DivDigit(s Sub) uint32 {
	if s.Signed() {
		return 7
	}
	return 6
}

func ppcDiv(signed, wide bool) uint32 {
	switch {
	case signed && wide:
		return ppcDIVD
	case signed:
		return ppcDIVW
	case wide:
		return ppcDIVDU
	}
	return ppcDIVWU
}

func ppcMod(signed, wide bool) uint32 {
	switch {
	case signed && wide:
		return ppcMODSD
	case signed:
		return ppcMODSW
	case wide:
		return ppcMODUD
	}
	return ppcMODUW
}

// ppcDivRem computes g = g / rs or g = g % rs. Without native mod the
// remainder is divide, multiply, subtract through TMxx.
func (o *Out) ppcDivRem(rem, signed, wide bool, g, rs uint32) {
	switch {
	case !rem:
		o.pw(ppcDiv(signed, wide) | mrm(g, g, rs))
	case o.cfg.RemNative:
		o.pw(ppcMod(signed, wide) | mrm(g, g, rs))
	default:
		tm := o.scr.TMxx
		o.pw(ppcDiv(signed, wide) | mrm(tm, g, rs))
		o.pw(ppcMul(wide) | mrm(tm, tm, rs))
		o.pw(ppcSUBF | mrm(g, tm, g))
	}
}
