package rtasm

import "fmt"

// ArjOp is the operation of a fused arithmetic-jump.
type ArjOp uint8

const (
	AndX ArjOp = iota
	AnnX
	OrrX
	OrnX
	XorX
	NotX
	NegX
	AddX
	SubX
	ShlX
	ShrX
	ShrN
	RorX

	numArjOps
)

var arjOpNames = [numArjOps]string{
	"and_x", "ann_x", "orr_x", "orn_x", "xor_x", "not_x", "neg_x",
	"add_x", "sub_x", "shl_x", "shr_x", "shr_n", "ror_x",
}

func (op ArjOp) String() string {
	if op < numArjOps {
		return arjOpNames[op]
	}
	return fmt.Sprintf("ArjOp(%d)", uint8(op))
}

// first stage: op -> family
var arjAlu = map[ArjOp]*aluOp{
	AndX: opAnd, AnnX: opAnn, OrrX: opOrr, OrnX: opOrn, XorX: opXor, AddX: opAdd, SubX: opSub,
}

var arjShift = map[ArjOp]shiftKind{
	ShlX: shiftLeft, ShrX: shiftRight, ShrN: shiftArith, RorX: rotateRight,
}

var arjUnary = map[ArjOp]*unaryOp{NotX: opNot, NegX: opNeg}

// arjBegin validates the fused pair up front so a rejected arj emits nothing.
func (o *Out) arjBegin(shape string, s Sub, op ArjOp, c Cond, lb string, ok bool) bool {
	if o.err != nil {
		return false
	}
	o.op = "arj" + s.String() + "_" + shape
	var err error
	switch {
	case op >= numArjOps:
		err = newError(CategoryOperand, "", ErrSyntax, "invalid arj operation %v", op)
	case !ok:
		err = newError(CategoryUnsupported, "", ErrUnsupported, "%v has no %s form", op, shape)
	case !c.valid() || !c.flagsOnly():
		err = newError(CategoryOperand, "", ErrSyntax, "arj takes EZ_x or NZ_x, got %v", c)
	default:
		err = checkLabel(lb)
	}
	if err != nil {
		o.fail(err)
		return false
	}
	return true
}

// flagsSub turns any subset into its flag-setting variant of the same width.
func flagsSub(s Sub) Sub { return Sub{Width: s.Width, Kind: KindFlags} }

// ArjRI: RG = RG op IS, then jump to lb when cc holds for the result.
func (o *Out) ArjRI(s Sub, rg Reg, is Imm, op ArjOp, cc Cond, lb string) {
	_, alu := arjAlu[op]
	_, sh := arjShift[op]
	if !o.arjBegin("ri", s, op, cc, lb, alu || sh) {
		return
	}
	z := flagsSub(s)
	if alu {
		o.aluRI(arjAlu[op], z, rg, is)
	} else {
		o.shiftRI(arjShift[op], z, rg, is)
	}
	o.arjJump(cc, lb)
}

// ArjMI: [MG + DG] = [MG + DG] op IS, then jump.
func (o *Out) ArjMI(s Sub, mg Mem, dg Disp, is Imm, op ArjOp, cc Cond, lb string) {
	_, alu := arjAlu[op]
	_, sh := arjShift[op]
	if !o.arjBegin("mi", s, op, cc, lb, alu || sh) {
		return
	}
	z := flagsSub(s)
	if alu {
		o.aluMI(arjAlu[op], z, mg, dg, is)
	} else {
		o.shiftMI(arjShift[op], z, mg, dg, is)
	}
	o.arjJump(cc, lb)
}

// ArjRR: RG = RG op RS, then jump.
func (o *Out) ArjRR(s Sub, rg, rs Reg, op ArjOp, cc Cond, lb string) {
	_, alu := arjAlu[op]
	_, sh := arjShift[op]
	if !o.arjBegin("rr", s, op, cc, lb, alu || sh) {
		return
	}
	z := flagsSub(s)
	if alu {
		o.aluRR(arjAlu[op], z, rg, rs)
	} else {
		o.shiftRR(arjShift[op], z, rg, rs)
	}
	o.arjJump(cc, lb)
}

// ArjLD: RG = RG op [MS + DS], then jump.
func (o *Out) ArjLD(s Sub, rg Reg, ms Mem, ds Disp, op ArjOp, cc Cond, lb string) {
	_, alu := arjAlu[op]
	_, sh := arjShift[op]
	if !o.arjBegin("ld", s, op, cc, lb, alu || sh) {
		return
	}
	z := flagsSub(s)
	if alu {
		o.aluLD(arjAlu[op], z, rg, ms, ds)
	} else {
		o.shiftLD(arjShift[op], z, rg, ms, ds)
	}
	o.arjJump(cc, lb)
}

// ArjST: [MG + DG] = [MG + DG] op RS, then jump.
func (o *Out) ArjST(s Sub, rs Reg, mg Mem, dg Disp, op ArjOp, cc Cond, lb string) {
	_, alu := arjAlu[op]
	_, sh := arjShift[op]
	if !o.arjBegin("st", s, op, cc, lb, alu || sh) {
		return
	}
	z := flagsSub(s)
	if alu {
		o.aluST(arjAlu[op], z, rs, mg, dg)
	} else {
		o.shiftST(arjShift[op], z, rs, mg, dg)
	}
	o.arjJump(cc, lb)
}

// ArjRX: RG = op RG (not, neg) or RG = RG op Recx (shifts), then jump.
func (o *Out) ArjRX(s Sub, rg Reg, op ArjOp, cc Cond, lb string) {
	_, un := arjUnary[op]
	_, sh := arjShift[op]
	if !o.arjBegin("rx", s, op, cc, lb, un || sh) {
		return
	}
	z := flagsSub(s)
	if un {
		o.unaryRX(arjUnary[op], z, rg)
	} else {
		o.shiftRX(arjShift[op], z, rg)
	}
	o.arjJump(cc, lb)
}

// ArjMX: [MG + DG] = op [MG + DG] or [MG + DG] op Recx, then jump.
func (o *Out) ArjMX(s Sub, mg Mem, dg Disp, op ArjOp, cc Cond, lb string) {
	_, un := arjUnary[op]
	_, sh := arjShift[op]
	if !o.arjBegin("mx", s, op, cc, lb, un || sh) {
		return
	}
	z := flagsSub(s)
	if un {
		o.unaryMX(arjUnary[op], z, mg, dg)
	} else {
		o.shiftMX(arjShift[op], z, mg, dg)
	}
	o.arjJump(cc, lb)
}

// second stage: condition -> jump
func (o *Out) arjJump(cc Cond, lb string) {
	if o.err != nil {
		return
	}
	o.JccLB(cc, lb)
}
