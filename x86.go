package rtasm

import (
	"encoding/binary"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// x86_64 encoding primitives shared by every instruction family.
//
// Layout of one instruction:
//
//	[66|F2|F3] [67 on P32 memory operands] [REX] opcode ModRM [SIB] [disp32] [imm]
//
// All displacement forms use disp32 (mod=10) so the length of an instruction
// never depends on the displacement value.

const (
	rexB = 0x01
	rexX = 0x02
	rexR = 0x04
	rexW = 0x08
)

// ALU group-1 digits, also the base of the rr/ld opcodes (digit<<3 | 1 / 3).
const (
	aluAdd = 0
	aluOr  = 1
	aluAnd = 4
	aluSub = 5
	aluXor = 6
	aluCmp = 7
)

func (o *Out) x86Head(pfx byte, mem, w bool, rex byte) {
	if pfx != 0 {
		o.w.Write(pfx)
	}
	if mem && o.cfg.Pointer == engine.P32 {
		o.w.Write(0x67)
	}
	if w {
		rex |= rexW
	}
	if rex != 0 {
		o.w.Write(0x40 | rex)
	}
}

// x86RR emits a register-direct form: ModRM mod=11.
func (o *Out) x86RR(pfx byte, w bool, reg, rm uint32, op ...byte) {
	rex := byte(reg>>3&1)<<2 | byte(rm>>3&1)
	o.x86Head(pfx, false, w, rex)
	o.w.WriteBytes(op)
	o.w.Write(0xC0 | byte(reg&7)<<3 | byte(rm&7))
}

// x86RM emits a memory form with reg in the ModRM reg field (or an opcode digit).
func (o *Out) x86RM(pfx byte, w bool, reg uint32, m Mem, d Disp, op ...byte) {
	rex, addr := x86Address(reg, m, d)
	rex |= byte(reg>>3&1) << 2
	o.x86Head(pfx, true, w, rex)
	o.w.WriteBytes(op)
	o.w.WriteBytes(addr)
}

// x86Address returns the REX.X/REX.B bits and the ModRM, SIB and displacement
// bytes addressing m+d.
func x86Address(reg uint32, m Mem, d Disp) (byte, []byte) {
	base := x86RegMap[m.base]
	rex := byte(base >> 3 & 1)
	r := byte(reg&7) << 3
	var enc []byte
	switch m.mode {
	case ModePlain:
		switch base & 7 {
		case 4:
			return rex, []byte{r | 0x04, 0x24}
		case 5:
			// mod=00 rm=101 is RIP-relative, use a zero disp8 instead
			return rex, []byte{0x40 | r | 0x05, 0x00}
		}
		return rex, []byte{r | byte(base&7)}
	case ModeIndex:
		idx := x86RegMap[Reax]
		rex |= byte(idx>>3&1) << 1
		enc = []byte{0x80 | r | 0x04, scaleBits(m.scale)<<6 | byte(idx&7)<<3 | byte(base&7)}
	default:
		if base&7 == 4 {
			enc = []byte{0x80 | r | 0x04, 0x24}
		} else {
			enc = []byte{0x80 | r | byte(base&7)}
		}
	}
	return rex, binary.LittleEndian.AppendUint32(enc, d.Val())
}

func scaleBits(scale uint8) byte {
	switch scale {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	}
	return 0
}

func (o *Out) x86Imm32(v uint32) {
	o.w.WriteBytes(binary.LittleEndian.AppendUint32(nil, v))
}

// x86LoadTI loads v zero-extended into TIxx (mov r15d, imm32).
func (o *Out) x86LoadTI(v uint32) {
	t := o.scr.TIxx
	o.x86Head(0, false, false, byte(t>>3&1))
	o.w.Write(0xB8 | byte(t&7))
	o.x86Imm32(v)
}

// x86MovRR copies rs into rg (89 /r).
func (o *Out) x86MovRR(w bool, rg, rs uint32) {
	o.x86RR(0, w, rs, rg, 0x89)
}

// Group-1 ALU forms. The immediate form is picked from the (tp1, tp2) tags:
// tp2 forces the zero-extended scratch load in 64-bit operations, tp1 picks
// imm8 over imm32.

func (o *Out) x86AluRI(digit byte, w bool, rg uint32, is Imm) {
	t := x86ImmTags[is.class]
	switch {
	case w && t.TP2 == Tag2Zero:
		o.x86LoadTI(is.Val())
		o.x86RR(0, true, o.scr.TIxx, rg, digit<<3|0x01)
	case t.TP1 == Tag1Short:
		o.x86RR(0, w, uint32(digit), rg, 0x83)
		o.w.Write(byte(is.Val()))
	default:
		o.x86RR(0, w, uint32(digit), rg, 0x81)
		o.x86Imm32(is.Val())
	}
}

func (o *Out) x86AluMI(digit byte, w bool, m Mem, d Disp, is Imm) {
	t := x86ImmTags[is.class]
	switch {
	case w && t.TP2 == Tag2Zero:
		o.x86LoadTI(is.Val())
		o.x86RM(0, true, o.scr.TIxx, m, d, digit<<3|0x01)
	case t.TP1 == Tag1Short:
		o.x86RM(0, w, uint32(digit), m, d, 0x83)
		o.w.Write(byte(is.Val()))
	default:
		o.x86RM(0, w, uint32(digit), m, d, 0x81)
		o.x86Imm32(is.Val())
	}
}

func (o *Out) x86AluRR(digit byte, w bool, rg, rs uint32) {
	o.x86RR(0, w, rs, rg, digit<<3|0x01)
}

func (o *Out) x86AluLD(digit byte, w bool, rg uint32, m Mem, d Disp) {
	o.x86RM(0, w, rg, m, d, digit<<3|0x03)
}

func (o *Out) x86AluST(digit byte, w bool, rs uint32, m Mem, d Disp) {
	o.x86RM(0, w, rs, m, d, digit<<3|0x01)
}

// x86Test sets ZF from rg (test rg, rg).
func (o *Out) x86Test(w bool, rg uint32) {
	o.x86RR(0, w, rg, rg, 0x85)
}

// x86TestM sets ZF from a memory operand (cmp [m], 0).
func (o *Out) x86TestM(w bool, m Mem, d Disp) {
	o.x86RM(0, w, aluCmp, m, d, 0x83)
	o.w.Write(0)
}

// x86Vex emits a VEX.128 prefix for map 0F with the given pp (0 none, 1 66,
// 2 F3, 3 F2). vvvv is the extra source register, 0 when unused.
func (o *Out) x86Vex(pp byte, mem bool, reg, vvvv uint32, rexXB byte) {
	if mem && o.cfg.Pointer == engine.P32 {
		o.w.Write(0x67)
	}
	r := byte(reg>>3&1) ^ 1
	v := byte(^vvvv&0xF) << 3
	if rexXB == 0 {
		o.w.WriteBytes([]byte{0xC5, r<<7 | v | pp})
		return
	}
	x := (rexXB >> 1 & 1) ^ 1
	b := (rexXB & 1) ^ 1
	o.w.WriteBytes([]byte{0xC4, r<<7 | x<<6 | b<<5 | 0x01, v | pp})
}

// x86VexRR emits a VEX.128 0F-map register form.
func (o *Out) x86VexRR(pp byte, op byte, reg, vvvv, rm uint32) {
	o.x86Vex(pp, false, reg, vvvv, byte(rm>>3&1))
	o.w.Write(op)
	o.w.Write(0xC0 | byte(reg&7)<<3 | byte(rm&7))
}

// x86VexRM emits a VEX.128 0F-map memory form.
func (o *Out) x86VexRM(pp byte, op byte, reg, vvvv uint32, m Mem, d Disp) {
	rex, addr := x86Address(reg, m, d)
	o.x86Vex(pp, true, reg, vvvv, rex)
	o.w.Write(op)
	o.w.WriteBytes(addr)
}
