package rtasm

// Width bridges between the 32-bit and 64-bit subsets. A 32-bit result on a
// 64-bit profile has an unspecified upper half until one of these runs.

// ExtZX zero-extends the low 32 bits of RS into RG (extzx_rr).
func (o *Out) ExtZX(rg, rs Reg) {
	if !o.begin("extzx_rr", o.checkSub(ZX), o.checkReg(rg, rs)) {
		return
	}
	defer o.end()
	if o.power() {
		o.pw(clrldi32(o.hr(rg), o.hr(rs)))
		return
	}
	o.x86MovRR(false, o.hr(rg), o.hr(rs))
}

// ExtZN sign-extends the low 32 bits of RS into RG (extzn_rr).
func (o *Out) ExtZN(rg, rs Reg) {
	if !o.begin("extzn_rr", o.checkSub(ZN), o.checkReg(rg, rs)) {
		return
	}
	defer o.end()
	if o.power() {
		o.pw(ppcEXTSW | msm(o.hr(rg), o.hr(rs), 0))
		return
	}
	o.x86RR(0, true, o.hr(rg), o.hr(rs), 0x63)
}
