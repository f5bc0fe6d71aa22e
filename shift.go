package rtasm

// Shift and rotate families: shlxx, shrxx (logical), shrxn (arithmetic) and
// rorxx. Counts are taken modulo the operation width (& 0x1F or & 0x3F) on
// both backends.
//
// On x86 a count in a register other than Recx is moved into cl while rcx is
// parked in TMxx. Recx cannot be used as first operand of the _rr/_ld forms,
// and not as the base of _st.

type shiftKind uint8

const (
	shiftLeft shiftKind = iota
	shiftRight
	shiftArith
	rotateRight
)

// x86 C1/D3 digits per kind.
var x86ShiftDigit = [...]uint32{shiftLeft: 4, shiftRight: 5, shiftArith: 7, rotateRight: 1}

var shiftNames = [...]string{shiftLeft: "shl", shiftRight: "shr", shiftArith: "shr", rotateRight: "ror"}

// shrKind picks the arithmetic shift for the n subsets.
func shrKind(s Sub) shiftKind {
	if s.Signed() {
		return shiftArith
	}
	return shiftRight
}

func countMask(wide bool) uint32 {
	if wide {
		return 0x3F
	}
	return 0x1F
}

// ShlRI: RG <<= IS
func (o *Out) ShlRI(s Sub, rg Reg, is Imm) { o.shiftRI(shiftLeft, s, rg, is) }

// ShlMI: [MG + DG] <<= IS
func (o *Out) ShlMI(s Sub, mg Mem, dg Disp, is Imm) { o.shiftMI(shiftLeft, s, mg, dg, is) }

// ShlRR: RG <<= RS
func (o *Out) ShlRR(s Sub, rg, rs Reg) { o.shiftRR(shiftLeft, s, rg, rs) }

// ShlLD: RG <<= [MS + DS]
func (o *Out) ShlLD(s Sub, rg Reg, ms Mem, ds Disp) { o.shiftLD(shiftLeft, s, rg, ms, ds) }

// ShlST: [MG + DG] <<= RS
func (o *Out) ShlST(s Sub, rs Reg, mg Mem, dg Disp) { o.shiftST(shiftLeft, s, rs, mg, dg) }

// ShlRX: RG <<= Recx
func (o *Out) ShlRX(s Sub, rg Reg) { o.shiftRX(shiftLeft, s, rg) }

// ShlMX: [MG + DG] <<= Recx
func (o *Out) ShlMX(s Sub, mg Mem, dg Disp) { o.shiftMX(shiftLeft, s, mg, dg) }

// ShrRI shifts right, arithmetic for the n subsets.
func (o *Out) ShrRI(s Sub, rg Reg, is Imm) { o.shiftRI(shrKind(s), s, rg, is) }
func (o *Out) ShrMI(s Sub, mg Mem, dg Disp, is Imm) { o.shiftMI(shrKind(s), s, mg, dg, is) }
func (o *Out) ShrRR(s Sub, rg, rs Reg) { o.shiftRR(shrKind(s), s, rg, rs) }
func (o *Out) ShrLD(s Sub, rg Reg, ms Mem, ds Disp) { o.shiftLD(shrKind(s), s, rg, ms, ds) }
func (o *Out) ShrST(s Sub, rs Reg, mg Mem, dg Disp) { o.shiftST(shrKind(s), s, rs, mg, dg) }
func (o *Out) ShrRX(s Sub, rg Reg) { o.shiftRX(shrKind(s), s, rg) }
func (o *Out) ShrMX(s Sub, mg Mem, dg Disp) { o.shiftMX(shrKind(s), s, mg, dg) }

// RorRI rotates right.
func (o *Out) RorRI(s Sub, rg Reg, is Imm) { o.shiftRI(rotateRight, s, rg, is) }
func (o *Out) RorMI(s Sub, mg Mem, dg Disp, is Imm) { o.shiftMI(rotateRight, s, mg, dg, is) }
func (o *Out) RorRR(s Sub, rg, rs Reg) { o.shiftRR(rotateRight, s, rg, rs) }
func (o *Out) RorLD(s Sub, rg Reg, ms Mem, ds Disp) { o.shiftLD(rotateRight, s, rg, ms, ds) }
func (o *Out) RorST(s Sub, rs Reg, mg Mem, dg Disp) { o.shiftST(rotateRight, s, rs, mg, dg) }
func (o *Out) RorRX(s Sub, rg Reg) { o.shiftRX(rotateRight, s, rg) }
func (o *Out) RorMX(s Sub, mg Mem, dg Disp) { o.shiftMX(rotateRight, s, mg, dg) }

func (o *Out) shiftRI(k shiftKind, s Sub, rg Reg, is Imm) {
	if !o.begin(mnemonic(shiftNames[k], s, "ri"), o.checkSub(s), o.checkReg(rg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	n := is.Val() & countMask(wide)
	if o.power() {
		o.ppcZ(ppcShiftImm(k, wide, g, n), s.Flags(), wide, g)
		return
	}
	o.x86RR(0, wide, x86ShiftDigit[k], g, 0xC1)
	o.w.Write(byte(n))
	if s.Flags() && (n == 0 || k == rotateRight) {
		o.x86Test(wide, g)
	}
}

func (o *Out) shiftMI(k shiftKind, s Sub, mg Mem, dg Disp, is Imm) {
	if !o.begin(mnemonic(shiftNames[k], s, "mi"), o.checkSub(s), o.checkMem(mg, dg), o.checkImm(is)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	n := is.Val() & countMask(wide)
	if o.power() {
		tm := o.scr.TMxx
		a := o.ppcAddress(mg, dg)
		o.ppcLoad(wide, tm, a)
		o.ppcZ(ppcShiftImm(k, wide, tm, n), s.Flags(), wide, tm)
		o.ppcStore(wide, tm, a)
		return
	}
	o.x86RM(0, wide, x86ShiftDigit[k], mg, dg, 0xC1)
	o.w.Write(byte(n))
	if s.Flags() && (n == 0 || k == rotateRight) {
		o.x86TestM(wide, mg, dg)
	}
}

func (o *Out) shiftRR(k shiftKind, s Sub, rg, rs Reg) {
	if !o.begin(mnemonic(shiftNames[k], s, "rr"), o.checkSub(s), o.checkReg(rg, rs),
		o.pre(o.power() || rg != Recx, "Recx cannot be used as first operand")) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		o.ppcZ(o.ppcShiftReg(k, wide, g, o.hr(rs)), s.Flags(), wide, g)
		return
	}
	o.x86WithCL(func() {
		if rs != Recx {
			o.x86MovRR(false, o.hr(Recx), o.hr(rs))
		}
	}, func() {
		o.x86RR(0, wide, x86ShiftDigit[k], g, 0xD3)
		if s.Flags() {
			o.x86Test(wide, g)
		}
	})
}

func (o *Out) shiftLD(k shiftKind, s Sub, rg Reg, ms Mem, ds Disp) {
	if !o.begin(mnemonic(shiftNames[k], s, "ld"), o.checkSub(s), o.checkReg(rg), o.checkMem(ms, ds),
		o.pre(o.power() || rg != Recx, "Recx cannot be used as first operand")) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		tm := o.scr.TMxx
		o.ppcLoad(wide, tm, o.ppcAddress(ms, ds))
		o.ppcZ(o.ppcShiftReg(k, wide, g, tm), s.Flags(), wide, g)
		return
	}
	o.x86WithCL(func() {
		o.x86RM(0, false, o.hr(Recx), ms, ds, 0x8B)
	}, func() {
		o.x86RR(0, wide, x86ShiftDigit[k], g, 0xD3)
		if s.Flags() {
			o.x86Test(wide, g)
		}
	})
}

func (o *Out) shiftST(k shiftKind, s Sub, rs Reg, mg Mem, dg Disp) {
	if !o.begin(mnemonic(shiftNames[k], s, "st"), o.checkSub(s), o.checkReg(rs), o.checkMem(mg, dg),
		o.pre(o.power() || mg.base != Recx, "Recx cannot be used as memory base")) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		tm := o.scr.TMxx
		a := o.ppcAddress(mg, dg)
		o.ppcLoad(wide, tm, a)
		o.ppcZ(o.ppcShiftReg(k, wide, tm, o.hr(rs)), s.Flags(), wide, tm)
		o.ppcStore(wide, tm, a)
		return
	}
	o.x86WithCL(func() {
		if rs != Recx {
			o.x86MovRR(false, o.hr(Recx), o.hr(rs))
		}
	}, func() {
		o.x86RM(0, wide, x86ShiftDigit[k], mg, dg, 0xD3)
		if s.Flags() {
			o.x86TestM(wide, mg, dg)
		}
	})
}

func (o *Out) shiftRX(k shiftKind, s Sub, rg Reg) {
	if !o.begin(mnemonic(shiftNames[k], s, "rx"), o.checkSub(s), o.checkReg(rg)) {
		return
	}
	defer o.end()
	wide, g := o.wide(s), o.hr(rg)
	if o.power() {
		o.ppcZ(o.ppcShiftReg(k, wide, g, o.hr(Recx)), s.Flags(), wide, g)
		return
	}
	o.x86RR(0, wide, x86ShiftDigit[k], g, 0xD3)
	if s.Flags() {
		o.x86Test(wide, g)
	}
}

func (o *Out) shiftMX(k shiftKind, s Sub, mg Mem, dg Disp) {
	if !o.begin(mnemonic(shiftNames[k], s, "mx"), o.checkSub(s), o.checkMem(mg, dg)) {
		return
	}
	defer o.end()
	wide := o.wide(s)
	if o.power() {
		tm := o.scr.TMxx
		a := o.ppcAddress(mg, dg)
		o.ppcLoad(wide, tm, a)
		o.ppcZ(o.ppcShiftReg(k, wide, tm, o.hr(Recx)), s.Flags(), wide, tm)
		o.ppcStore(wide, tm, a)
		return
	}
	o.x86RM(0, wide, x86ShiftDigit[k], mg, dg, 0xD3)
	if s.Flags() {
		o.x86TestM(wide, mg, dg)
	}
}

// x86WithCL runs load (which fills cl) and shift with rcx parked in TMxx.
func (o *Out) x86WithCL(load, shift func()) {
	rcx := o.hr(Recx)
	o.x86MovRR(true, o.scr.TMxx, rcx)
	load()
	shift()
	o.x86MovRR(true, rcx, o.scr.TMxx)
}

// ppcShiftImm returns the single word shifting ra in place by the constant n.
func ppcShiftImm(k shiftKind, wide bool, ra, n uint32) uint32 {
	switch {
	case k == shiftLeft && wide:
		return rldicr(ra, ra, n, 63-n)
	case k == shiftLeft:
		return rlwinm(ra, ra, n, 0, 31-n)
	case k == shiftRight && wide:
		return rldicl(ra, ra, (64-n)&63, n)
	case k == shiftRight:
		return rlwinm(ra, ra, (32-n)&31, n, 31)
	case k == shiftArith && wide:
		return ppcSRADI | msm(ra, ra, 0) | mdShift(n)
	case k == shiftArith:
		return ppcSRAWI | msm(ra, ra, 0) | n<<11
	case wide:
		return rldicl(ra, ra, (64-n)&63, 0)
	default:
		return rlwinm(ra, ra, (32-n)&31, 0, 31)
	}
}

// ppcShiftReg prepares the count from c in TWxx and returns the final word
// shifting ra in place. Shifts mask the count to the operation width; the
// rotate negates it and rotates left, which only looks at the low bits.
func (o *Out) ppcShiftReg(k shiftKind, wide bool, ra, c uint32) uint32 {
	tw := o.scr.TWxx
	if k == rotateRight {
		o.pw(ppcNEG | mrm(tw, c, 0))
		if wide {
			return ppcRLDCL | msm(ra, ra, tw) | mdMask(0)
		}
		return ppcRLWNM | msm(ra, ra, tw) | 31<<1
	}
	o.pw(ppcANDI | msm(tw, c, 0) | countMask(wide))
	var op uint32
	switch k {
	case shiftLeft:
		op = ppcSLW
		if wide {
			op = ppcSLD
		}
	case shiftRight:
		op = ppcSRW
		if wide {
			op = ppcSRD
		}
	default:
		op = ppcSRAW
		if wide {
			op = ppcSRAD
		}
	}
	return op | msm(ra, ra, tw)
}
