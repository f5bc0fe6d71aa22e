package rtasm

import "github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"

// POWER encoding primitives shared by every instruction family. Every
// instruction is one 32-bit word written in the profile's byte order.

// Primary opcodes and X-form words used across families.
const (
	ppcADDI   = 0x38000000 // li when RA=0
	ppcADDIS  = 0x3C000000 // lis when RA=0
	ppcORI    = 0x60000000
	ppcXORI   = 0x68000000
	ppcANDI   = 0x70000000 // andi. (always sets CR0)
	ppcMULLI  = 0x1C000000
	ppcCMPI   = 0x2C000000
	ppcCMPLI  = 0x28000000
	ppcRLWINM = 0x54000000
	ppcRLWNM  = 0x5C000000
	ppcRLDICL = 0x78000000
	ppcRLDICR = 0x78000004
	ppcRLDCL  = 0x78000010
	ppcLWZ    = 0x80000000
	ppcSTW    = 0x90000000
	ppcLD     = 0xE8000000
	ppcSTD    = 0xF8000000
	ppcBC     = 0x40000000
	ppcB      = 0x48000000

	ppcADD    = 0x7C000214
	ppcSUBF   = 0x7C000050
	ppcNEG    = 0x7C0000D0
	ppcAND    = 0x7C000038
	ppcANDC   = 0x7C000078
	ppcOR     = 0x7C000378
	ppcORC    = 0x7C000338
	ppcXOR    = 0x7C000278
	ppcNOR    = 0x7C0000F8
	ppcMULLW  = 0x7C0001D6
	ppcMULLD  = 0x7C0001D2
	ppcMULHW  = 0x7C000096
	ppcMULHWU = 0x7C000016
	ppcMULHD  = 0x7C000092
	ppcMULHDU = 0x7C000012
	ppcDIVW   = 0x7C0003D6
	ppcDIVWU  = 0x7C000396
	ppcDIVD   = 0x7C0003D2
	ppcDIVDU  = 0x7C000392
	ppcMODSW  = 0x7C000616
	ppcMODUW  = 0x7C000216
	ppcMODSD  = 0x7C000612
	ppcMODUD  = 0x7C000212
	ppcSLW    = 0x7C000030
	ppcSRW    = 0x7C000430
	ppcSRAW   = 0x7C000630
	ppcSLD    = 0x7C000036
	ppcSRD    = 0x7C000436
	ppcSRAD   = 0x7C000634
	ppcSRAWI  = 0x7C000670
	ppcSRADI  = 0x7C000674
	ppcEXTSW  = 0x7C0007B4
	ppcCMP    = 0x7C000000
	ppcCMPL   = 0x7C000040
	ppcLWZX   = 0x7C00002E
	ppcSTWX   = 0x7C00012E
	ppcLDX    = 0x7C00002A
	ppcSTDX   = 0x7C00012A
	ppcMTCTR  = 0x7C0903A6
	ppcBCTR   = 0x4E800420
)

// Condition register bits of CR0 and branch options for bc.
const (
	crLT = 0
	crGT = 1
	crEQ = 2

	boTrue  = 12
	boFalse = 4
)

func (o *Out) pw(w uint32) { o.w.WriteWord(w) }

func (o *Out) hr(r Reg) uint32 { return HardwareReg(o.cfg.Arch, r) }

// mrm packs an arithmetic X/XO-form: destination first.
func mrm(rt, ra, rb uint32) uint32 { return rt<<21 | ra<<16 | rb<<11 }

// msm packs a logical X-form: the destination goes in the RA slot.
func msm(ra, rs, rb uint32) uint32 { return rs<<21 | ra<<16 | rb<<11 }

// mim packs a D-form with a 16-bit field.
func mim(rt, ra, v uint32) uint32 { return rt<<21 | ra<<16 | v&0xFFFF }

func (o *Out) ppcMR(ra, rs uint32) { o.pw(ppcOR | msm(ra, rs, rs)) }

func rlwinm(ra, rs, sh, mb, me uint32) uint32 {
	return ppcRLWINM | rs<<21 | ra<<16 | (sh&0x1F)<<11 | (mb&0x1F)<<6 | (me&0x1F)<<1
}

// mdMask encodes the split 6-bit mask field of the MD/MDS forms.
func mdMask(m uint32) uint32 { return ((m&0x1F)<<1 | m>>5&1) << 5 }

// mdShift encodes the split 6-bit shift field of the MD/XS forms.
func mdShift(s uint32) uint32 { return (s&0x1F)<<11 | (s>>5&1)<<1 }

func rldicl(ra, rs, sh, mb uint32) uint32 {
	return ppcRLDICL | rs<<21 | ra<<16 | mdShift(sh) | mdMask(mb)
}

func rldicr(ra, rs, sh, me uint32) uint32 {
	return ppcRLDICR | rs<<21 | ra<<16 | mdShift(sh) | mdMask(me)
}

// clrldi clears the upper 32 bits of rs into ra.
func clrldi32(ra, rs uint32) uint32 { return rldicl(ra, rs, 0, 32) }

// ppcLoadImm materializes an immediate into r, the G3 move class:
//
//	tp1 native: li r, v
//	otherwise:  lis r, v>>16; ori r, r, v&0xFFFF
//
// In a 64-bit operation a value with bit 31 set is cleared back to 32 bits,
// lis sign-extends.
func (o *Out) ppcLoadImm(r uint32, is Imm, wide bool) {
	v := is.Val()
	if powerImmTags[is.class].TP1 == Tag1Native {
		o.pw(ppcADDI | mim(r, 0, v))
		return
	}
	o.pw(ppcADDIS | mim(r, 0, v>>16))
	o.pw(ppcORI | msm(r, r, 0) | v&0xFFFF)
	if wide && v&0x80000000 != 0 {
		o.pw(clrldi32(r, r))
	}
}

// ppcAddr is a memory operand after its preamble: either D-form (ra + disp)
// or X-form (ra + rb).
type ppcAddr struct {
	ra   uint32
	disp uint32
	rb   uint32
	x    bool
}

// ppcAddress emits the address preamble of m+d: index scaling into TPxx and
// out-of-range displacements into TDxx.
func (o *Out) ppcAddress(m Mem, d Disp) ppcAddr {
	ra := o.hr(m.base)
	if m.mode == ModeIndex {
		tp, idx := o.scr.TPxx, o.hr(Reax)
		sh := uint32(scaleBits(m.scale))
		if sh != 0 {
			if o.cfg.Pointer == engine.P64 {
				o.pw(rldicr(tp, idx, sh, 63-sh))
			} else {
				o.pw(rlwinm(tp, idx, sh, 0, 31-sh))
			}
			idx = tp
		}
		o.pw(ppcADD | mrm(tp, ra, idx))
		ra = tp
	}
	if m.mode == ModePlain {
		return ppcAddr{ra: ra}
	}
	v := d.Val()
	if o.dispTag(d) == DispNative {
		return ppcAddr{ra: ra, disp: v}
	}
	td := o.scr.TDxx
	o.pw(ppcADDIS | mim(td, 0, v>>16))
	o.pw(ppcORI | msm(td, td, 0) | v&0xFFFF)
	return ppcAddr{ra: ra, rb: td, x: true}
}

func (o *Out) ppcLoad(wide bool, rt uint32, a ppcAddr) {
	switch {
	case a.x && wide:
		o.pw(ppcLDX | mrm(rt, a.ra, a.rb))
	case a.x:
		o.pw(ppcLWZX | mrm(rt, a.ra, a.rb))
	case wide:
		o.pw(ppcLD | mim(rt, a.ra, a.disp))
	default:
		o.pw(ppcLWZ | mim(rt, a.ra, a.disp))
	}
}

func (o *Out) ppcStore(wide bool, rs uint32, a ppcAddr) {
	switch {
	case a.x && wide:
		o.pw(ppcSTDX | mrm(rs, a.ra, a.rb))
	case a.x:
		o.pw(ppcSTWX | mrm(rs, a.ra, a.rb))
	case wide:
		o.pw(ppcSTD | mim(rs, a.ra, a.disp))
	default:
		o.pw(ppcSTW | mim(rs, a.ra, a.disp))
	}
}

// ppcZ emits w and, for flag-setting subsets, makes CR0 reflect the result in
// ra at the operation width. On P64 a 32-bit result is checked with extsw.
// into TZxx, leaving ra untouched.
func (o *Out) ppcZ(w uint32, flags, wide bool, ra uint32) {
	switch {
	case !flags:
		o.pw(w)
	case wide || o.cfg.Pointer == engine.P32:
		o.pw(w | 1)
	default:
		o.pw(w)
		o.ppcFlags(ra, false)
	}
}

// ppcFlags sets CR0 from ra alone: or. at full width, extsw. for a 32-bit
// value on P64.
func (o *Out) ppcFlags(ra uint32, wide bool) {
	if wide || o.cfg.Pointer == engine.P32 {
		o.pw(ppcOR | msm(o.scr.TZxx, ra, ra) | 1)
		return
	}
	o.pw(ppcEXTSW | msm(o.scr.TZxx, ra, 0) | 1)
}

// ppcBranch emits a conditional branch to name.
func (o *Out) ppcBranch(bo, bi uint32, name string) {
	w := uint32(ppcBC) | bo<<21 | bi<<16
	at := o.w.Len()
	o.pw(w)
	o.jumpTo(name, fixup{kind: fixBC, at: at, word: w})
}

// ppcJump emits an unconditional branch to name.
func (o *Out) ppcJump(name string) {
	at := o.w.Len()
	o.pw(ppcB)
	o.jumpTo(name, fixup{kind: fixB, at: at, word: ppcB})
}
