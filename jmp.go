package rtasm

import "fmt"

// Cond is a jump condition. EZx/NZx test the result of a preceding z subset
// operation; the others test the preceding cmp, unsigned (x) or signed (n).
type Cond uint8

const (
	EZx Cond = iota
	NZx
	EQx
	NEx
	LTx
	LEx
	GTx
	GEx
	LTn
	LEn
	GTn
	GEn

	numConds
)

var condNames = [numConds]string{"EZ_x", "NZ_x", "EQ_x", "NE_x", "LT_x", "LE_x", "GT_x", "GE_x", "LT_n", "LE_n", "GT_n", "GE_n"}

// jump mnemonics: jezxx_lb .. jgexn_lb
var condJumps = [numConds]string{"jezxx", "jnzxx", "jeqxx", "jnexx", "jltxx", "jlexx", "jgtxx", "jgexx", "jltxn", "jlexn", "jgtxn", "jgexn"}

func (c Cond) String() string {
	if c < numConds {
		return condNames[c]
	}
	return fmt.Sprintf("Cond(%d)", uint8(c))
}

func (c Cond) valid() bool { return c < numConds }

// flagsOnly reports whether c reads the result of a z operation.
func (c Cond) flagsOnly() bool { return c == EZx || c == NZx }

func (c Cond) signed() bool { return c >= LTn }

// x86 jcc condition codes (0F 80+cc).
var x86CondCodes = [numConds]byte{
	EZx: 0x4, NZx: 0x5, EQx: 0x4, NEx: 0x5,
	LTx: 0x2, LEx: 0x6, GTx: 0x7, GEx: 0x3,
	LTn: 0xC, LEn: 0xE, GTn: 0xF, GEn: 0xD,
}

// POWER (BO, BI) pairs on CR0.
var ppcCondBranch = [numConds][2]uint32{
	EZx: {boTrue, crEQ}, NZx: {boFalse, crEQ},
	EQx: {boTrue, crEQ}, NEx: {boFalse, crEQ},
	LTx: {boTrue, crLT}, LEx: {boFalse, crGT}, GTx: {boTrue, crGT}, GEx: {boFalse, crLT},
	LTn: {boTrue, crLT}, LEn: {boFalse, crGT}, GTn: {boTrue, crGT}, GEn: {boFalse, crLT},
}

func (o *Out) checkCond(c Cond) error {
	if !c.valid() {
		return newError(CategoryOperand, "", ErrSyntax, "invalid condition %v", c)
	}
	return nil
}

func checkLabel(lb string) error {
	if lb == "" {
		return newError(CategoryLabel, "", ErrUnknownLabel, "empty label")
	}
	return nil
}

// JmpLB jumps to a label (jmpxx_lb).
func (o *Out) JmpLB(lb string) {
	if !o.begin("jmpxx_lb", checkLabel(lb)) {
		return
	}
	defer o.end()
	if o.power() {
		o.ppcJump(lb)
		return
	}
	at := o.w.Len()
	o.w.WriteBytes([]byte{0xE9, 0, 0, 0, 0})
	o.jumpTo(lb, fixup{kind: fixRel32, at: at + 1, end: at + 5})
}

// JmpXR jumps to the address in RS (jmpxx_xr).
func (o *Out) JmpXR(rs Reg) {
	if !o.begin("jmpxx_xr", o.checkReg(rs)) {
		return
	}
	defer o.end()
	if o.power() {
		o.pw(ppcMTCTR | o.hr(rs)<<21)
		o.pw(ppcBCTR)
		return
	}
	o.x86RR(0, false, 4, o.hr(rs), 0xFF)
}

// JmpXM jumps to the address stored at [MS + DS] (jmpxx_xm).
func (o *Out) JmpXM(ms Mem, ds Disp) {
	if !o.begin("jmpxx_xm", o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	if o.power() {
		tm := o.scr.TMxx
		o.ppcLoad(o.p64(), tm, o.ppcAddress(ms, ds))
		o.pw(ppcMTCTR | tm<<21)
		o.pw(ppcBCTR)
		return
	}
	o.x86RM(0, false, 4, ms, ds, 0xFF)
}

// JccLB jumps to lb when c holds (jezxx_lb, jeqxx_lb, jltxn_lb, ...).
func (o *Out) JccLB(c Cond, lb string) {
	name := "jcc_lb"
	if c.valid() {
		name = condJumps[c] + "_lb"
	}
	if !o.begin(name, o.checkCond(c), checkLabel(lb)) {
		return
	}
	defer o.end()
	o.jcc(c, lb)
}

func (o *Out) jcc(c Cond, lb string) {
	if o.power() {
		if !c.flagsOnly() {
			o.ppcCompare(c.signed())
		}
		br := ppcCondBranch[c]
		o.ppcBranch(br[0], br[1], lb)
		return
	}
	at := o.w.Len()
	o.w.WriteBytes([]byte{0x0F, 0x80 | x86CondCodes[c], 0, 0, 0, 0})
	o.jumpTo(lb, fixup{kind: fixRel32, at: at + 2, end: at + 6})
}

// ppcCompare compares TLxx with TRxx into CR0 at full register width.
func (o *Out) ppcCompare(signed bool) {
	w := uint32(ppcCMPL)
	if signed {
		w = ppcCMP
	}
	if o.p64() {
		w |= 1 << 21
	}
	o.pw(w | o.scr.TLxx<<16 | o.scr.TRxx<<11)
}

// Named conditional jumps.

func (o *Out) JezLB(lb string) { o.JccLB(EZx, lb) }
func (o *Out) JnzLB(lb string) { o.JccLB(NZx, lb) }
func (o *Out) JeqLB(lb string) { o.JccLB(EQx, lb) }
func (o *Out) JneLB(lb string) { o.JccLB(NEx, lb) }
