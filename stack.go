package rtasm

import (
	"encoding/binary"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// Stack operations: single registers (stack_st, stack_ld) and the bulk
// save/restore of every BASE register (stack_sa, stack_la).
//
// Architecture details:
//   x86-64: push/pop; bulk forms reserve the frame with lea rsp and use mov
//   POWER:  addi r1 + std/stw (ld/lwz); there is no push instruction

// saveSlot is one entry of the bulk save table.
type saveSlot struct {
	hw  uint32
	off uint32
}

// saveTable lists every register stack_sa stores, in store order. stack_la
// walks the same table backwards.
type saveTable struct {
	slots []saveSlot
	frame uint32
}

func newSaveTable(hw []uint32, slot uint32) saveTable {
	t := saveTable{slots: make([]saveSlot, len(hw))}
	for i, r := range hw {
		t.slots[i] = saveSlot{hw: r, off: uint32(i) * slot}
	}
	t.frame = (uint32(len(hw))*slot + 15) &^ 15
	return t
}

// savedRegs returns the hardware numbers of the portable BASE registers
// other than Resp, followed by the scratch registers that hold values.
func savedRegs(a engine.Arch) []uint32 {
	var hw []uint32
	for r := Reax; r < numRegs; r++ {
		if r != Resp {
			hw = append(hw, HardwareReg(a, r))
		}
	}
	if a == engine.ArchPower {
		s := powerScratch
		return append(hw, s.TLxx, s.TRxx, s.TIxx, s.TDxx, s.TPxx, s.TMxx, s.TWxx)
	}
	return append(hw, x86Scratch.TMxx)
}

var (
	x86Saves     = newSaveTable(savedRegs(engine.ArchX86_64), 8)
	power64Saves = newSaveTable(savedRegs(engine.ArchPower), 8)
	power32Saves = newSaveTable(savedRegs(engine.ArchPower), 4)
)

func (o *Out) saves() saveTable {
	switch {
	case !o.power():
		return x86Saves
	case o.p64():
		return power64Saves
	}
	return power32Saves
}

// slot is the size of one single-register stack slot.
func (o *Out) slot() uint32 {
	if o.power() && !o.p64() {
		return 4
	}
	return 8
}

// StackST pushes RS.
func (o *Out) StackST(rs Reg) {
	if !o.begin("stack_st", o.checkReg(rs), o.pre(rs != Resp, "Resp cannot be pushed")) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcFrame(-int32(o.slot()))
		o.ppcStore(o.p64(), o.hr(rs), ppcAddr{ra: o.hr(Resp)})
		return
	}
	o.x86PushPop(0x50, o.hr(rs))
}

// StackLD pops into RG.
func (o *Out) StackLD(rg Reg) {
	if !o.begin("stack_ld", o.checkReg(rg), o.pre(rg != Resp, "Resp cannot be popped")) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcLoad(o.p64(), o.hr(rg), ppcAddr{ra: o.hr(Resp)})
		o.ppcFrame(int32(o.slot()))
		return
	}
	o.x86PushPop(0x58, o.hr(rg))
}

// StackSA saves all BASE registers in one frame.
func (o *Out) StackSA() {
	if !o.begin("stack_sa") {
		return
	}
	defer o.end()
	t := o.saves()
	if o.power() {
		o.ppcFrame(-int32(t.frame))
		for _, s := range t.slots {
			o.ppcStore(o.p64(), s.hw, ppcAddr{ra: o.hr(Resp), disp: s.off})
		}
		return
	}
	o.x86Frame(-int32(t.frame))
	for _, s := range t.slots {
		o.x86SlotMov(0x89, s)
	}
}

// StackLA restores what StackSA saved, in reverse order.
func (o *Out) StackLA() {
	if !o.begin("stack_la") {
		return
	}
	defer o.end()
	t := o.saves()
	if o.power() {
		for i := len(t.slots) - 1; i >= 0; i-- {
			s := t.slots[i]
			o.ppcLoad(o.p64(), s.hw, ppcAddr{ra: o.hr(Resp), disp: s.off})
		}
		o.ppcFrame(int32(t.frame))
		return
	}
	for i := len(t.slots) - 1; i >= 0; i-- {
		o.x86SlotMov(0x8B, t.slots[i])
	}
	o.x86Frame(int32(t.frame))
}

// SregsSA stores every SIMD register at [MS + DS + 16*i].
func (o *Out) SregsSA(ms Mem, ds Disp) {
	if !o.begin("sregs_sa", o.checkMem(ms, ds), checkSregs(ms, ds)) {
		return
	}
	defer o.end()
	for x := Xmm0; x < numXRegs; x++ {
		d := sregsSlot(ds, x)
		if o.power() {
			o.ppcVecStore(vsr(uint32(x)), ms, d)
		} else {
			o.sseLD(sseOp{op: 0x29, unary: true}, uint32(x), ms, d)
		}
	}
}

// SregsLA loads every SIMD register back from [MS + DS + 16*i].
func (o *Out) SregsLA(ms Mem, ds Disp) {
	if !o.begin("sregs_la", o.checkMem(ms, ds), checkSregs(ms, ds)) {
		return
	}
	defer o.end()
	for x := numXRegs - 1; ; x-- {
		d := sregsSlot(ds, x)
		if o.power() {
			o.ppcVecLoad(vsr(uint32(x)), ms, d)
		} else {
			o.sseLD(movaps, uint32(x), ms, d)
		}
		if x == Xmm0 {
			break
		}
	}
}

// sregsSlot is the displacement of register x in the sregs block, counted
// from the masked base so that lenient truncation moves the whole block.
func sregsSlot(ds Disp, x XReg) Disp {
	return Disp{int64(ds.Val()) + 16*int64(x), ds.class}
}

// checkSregs rejects blocks that cannot hold every SIMD register at distinct
// offsets, in both strict and lenient mode: a plain operand has no
// displacement, and the last slot must still fit the class of ds.
func checkSregs(ms Mem, ds Disp) error {
	if ms.mode == ModePlain {
		return newError(CategoryOperand, "", ErrSyntax, "sregs needs a displacement mode, got %v", ms)
	}
	if ds.class >= numDispClasses {
		return nil
	}
	return sregsSlot(ds, numXRegs-1).Check()
}

func (o *Out) x86PushPop(op byte, r uint32) {
	if r >= 8 {
		o.w.Write(0x40 | rexB)
	}
	o.w.Write(op | byte(r&7))
}

// x86Frame moves rsp by n with lea, leaving the flags alone.
func (o *Out) x86Frame(n int32) {
	o.w.WriteBytes([]byte{0x40 | rexW, 0x8D, 0xA4, 0x24})
	o.w.WriteBytes(binary.LittleEndian.AppendUint32(nil, uint32(n)))
}

// x86SlotMov moves a full register to or from [rsp + off].
func (o *Out) x86SlotMov(op byte, s saveSlot) {
	rex := byte(rexW) | byte(s.hw>>3&1)<<2
	o.w.WriteBytes([]byte{0x40 | rex, op, 0x84 | byte(s.hw&7)<<3, 0x24})
	o.w.WriteBytes(binary.LittleEndian.AppendUint32(nil, s.off))
}

func (o *Out) ppcFrame(n int32) {
	sp := o.hr(Resp)
	o.pw(ppcADDI | mim(sp, sp, uint32(n)))
}
