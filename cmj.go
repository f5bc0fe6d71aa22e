package rtasm

// Fused compare-jump: cmjxx_ri(RS, IT, cc, lb) and friends. On POWER the
// compare operands are placed in TLxx/TRxx and the branch compares them,
// the same contract as cmp followed by a jump.

func (o *Out) cmjBegin(shape string, s Sub, cc Cond, lb string) bool {
	if o.err != nil {
		return false
	}
	o.op = "cmj" + s.String() + "_" + shape
	var err error
	switch {
	case !cc.valid() || cc.flagsOnly():
		err = newError(CategoryOperand, "", ErrSyntax, "cmj takes a compare condition, got %v", cc)
	default:
		err = checkLabel(lb)
	}
	if err != nil {
		o.fail(err)
		return false
	}
	return true
}

// CmjRI jumps to lb when RS cc IT.
func (o *Out) CmjRI(s Sub, rs Reg, it Imm, cc Cond, lb string) {
	if o.cmjBegin("ri", s, cc, lb) {
		o.CmpRI(s, rs, it)
		o.arjJump(cc, lb)
	}
}

// CmjMI jumps to lb when [MS + DS] cc IT.
func (o *Out) CmjMI(s Sub, ms Mem, ds Disp, it Imm, cc Cond, lb string) {
	if o.cmjBegin("mi", s, cc, lb) {
		o.CmpMI(s, ms, ds, it)
		o.arjJump(cc, lb)
	}
}

// CmjRR jumps to lb when RS cc RT.
func (o *Out) CmjRR(s Sub, rs, rt Reg, cc Cond, lb string) {
	if o.cmjBegin("rr", s, cc, lb) {
		o.CmpRR(s, rs, rt)
		o.arjJump(cc, lb)
	}
}

// CmjRM jumps to lb when RS cc [MT + DT].
func (o *Out) CmjRM(s Sub, rs Reg, mt Mem, dt Disp, cc Cond, lb string) {
	if o.cmjBegin("rm", s, cc, lb) {
		o.CmpRM(s, rs, mt, dt)
		o.arjJump(cc, lb)
	}
}

// CmjMR jumps to lb when [MS + DS] cc RT.
func (o *Out) CmjMR(s Sub, ms Mem, ds Disp, rt Reg, cc Cond, lb string) {
	if o.cmjBegin("mr", s, cc, lb) {
		o.CmpMR(s, ms, ds, rt)
		o.arjJump(cc, lb)
	}
}
