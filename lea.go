package rtasm

// LeaLD computes an address at pointer size: RG = MS + DS (leaxx_ld).
func (o *Out) LeaLD(rg Reg, ms Mem, ds Disp) {
	if !o.begin("leaxx_ld", o.checkReg(rg), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	if !o.power() {
		o.x86RM(0, o.wide(XX), o.hr(rg), ms, ds, 0x8D)
		return
	}
	a := o.ppcAddress(ms, ds)
	switch {
	case a.x:
		o.pw(ppcADD | mrm(o.hr(rg), a.ra, a.rb))
	case ms.mode == ModePlain:
		o.ppcMR(o.hr(rg), a.ra)
	default:
		o.pw(ppcADDI | mim(o.hr(rg), a.ra, a.disp))
	}
}
