package rtasm

// SIMD primitives: 128-bit registers holding four 32-bit elements.
//
// x86 uses the legacy SSE encodings up to RT_128X1=2 and VEX.128 from 4 on;
// the operation is the same, VEX only adds the non-destructive source.
// POWER uses VSX (XX3/XX2 forms on VSR 32+n, which alias v0..v31) and the
// VMX integer forms on v0..v31 directly. TmmM (v31) holds memory operands.

// sseOp is one SSE instruction in the 0F map.
type sseOp struct {
	pfx   byte // mandatory prefix: 0, 0x66, 0xF3 or 0xF2
	op    byte
	unary bool // VEX.vvvv unused (moves, sqrt, conversions)
	cmp   bool // cmpps: predicate byte follows
	pred  byte
}

func (s sseOp) vexPP() byte {
	switch s.pfx {
	case 0x66:
		return 1
	case 0xF3:
		return 2
	case 0xF2:
		return 3
	}
	return 0
}

func (o *Out) vex() bool { return o.cfg.SIMD >= SIMD4 }

// sseRR emits xg = xg op xs (or xg = op xs for unary ops).
func (o *Out) sseRR(op sseOp, xg, xs uint32) {
	if o.vex() {
		v := xg
		if op.unary {
			v = 0
		}
		o.x86VexRR(op.vexPP(), op.op, xg, v, xs)
	} else {
		o.x86RR(op.pfx, false, xg, xs, 0x0F, op.op)
	}
	if op.cmp {
		o.w.Write(op.pred)
	}
}

// sseLD emits xg = xg op [m + d].
func (o *Out) sseLD(op sseOp, xg uint32, m Mem, d Disp) {
	if o.vex() {
		v := xg
		if op.unary {
			v = 0
		}
		o.x86VexRM(op.vexPP(), op.op, xg, v, m, d)
	} else {
		o.x86RM(op.pfx, false, xg, m, d, 0x0F, op.op)
	}
	if op.cmp {
		o.w.Write(op.pred)
	}
}

// vsr returns the VSX register aliasing vector register v.
func vsr(v uint32) uint32 { return 32 + v }

// xx3 packs an XX3-form on VSX registers t, a, b (0..63).
func xx3(op, t, a, b uint32) uint32 {
	return op | (t&31)<<21 | (a&31)<<16 | (b&31)<<11 | (a>>5)<<2 | (b>>5)<<1 | t>>5
}

// xx2 packs an XX2-form on VSX registers t, b.
func xx2(op, t, b uint32) uint32 {
	return op | (t&31)<<21 | (b&31)<<11 | (b>>5)<<1 | t>>5
}

// vx packs a VMX VX-form on vector registers.
func vx(op, t, a, b uint32) uint32 { return op | t<<21 | a<<16 | b<<11 }

const (
	ppcLXVW4X  = 0x7C000618
	ppcSTXVW4X = 0x7C000718
	ppcXXLOR   = 0xF0000490
	ppcXXLNOR  = 0xF0000510
)

// ppcVecAddr forms the X-form address of a vector access: VSX loads and
// stores have no displacement field, so the displacement always goes
// through TDxx.
func (o *Out) ppcVecAddr(m Mem, d Disp) (ra, rb uint32) {
	a := o.ppcAddress(m, d)
	if a.x {
		return a.ra, a.rb
	}
	td := o.scr.TDxx
	o.pw(ppcADDI | mim(td, 0, a.disp))
	return a.ra, td
}

// ppcVecLoad loads a vector into VSR t.
func (o *Out) ppcVecLoad(t uint32, m Mem, d Disp) {
	ra, rb := o.ppcVecAddr(m, d)
	o.pw(ppcLXVW4X | (t&31)<<21 | ra<<16 | rb<<11 | t>>5)
}

// ppcVecStore stores VSR s.
func (o *Out) ppcVecStore(s uint32, m Mem, d Disp) {
	ra, rb := o.ppcVecAddr(m, d)
	o.pw(ppcSTXVW4X | (s&31)<<21 | ra<<16 | rb<<11 | s>>5)
}

// simdOp is a packed operation G = G op S (or G = op S for unary ones).
type simdOp struct {
	name string
	sse  sseOp
	// ppc emits the POWER form on vector register numbers g and s.
	ppc func(o *Out, g, s uint32)
}

func (o *Out) simdRR(op *simdOp, xg, xs XReg) {
	if !o.begin(op.name+"_rr", o.checkXReg(xg, xs)) {
		return
	}
	defer o.end()
	if o.power() {
		op.ppc(o, uint32(xg), uint32(xs))
		return
	}
	o.sseRR(op.sse, uint32(xg), uint32(xs))
}

func (o *Out) simdLD(op *simdOp, xg XReg, ms Mem, ds Disp) {
	if !o.begin(op.name+"_ld", o.checkXReg(xg), o.checkMem(ms, ds)) {
		return
	}
	defer o.end()
	if o.power() {
		tmm := o.scr.TmmM
		o.ppcVecLoad(vsr(tmm), ms, ds)
		op.ppc(o, uint32(xg), tmm)
		return
	}
	o.sseLD(op.sse, uint32(xg), ms, ds)
}

// POWER emitters for the table entries.

func vsx3(opc uint32) func(o *Out, g, s uint32) {
	return func(o *Out, g, s uint32) { o.pw(xx3(opc, vsr(g), vsr(g), vsr(s))) }
}

// vsx3r swaps the sources: G = S op G.
func vsx3r(opc uint32) func(o *Out, g, s uint32) {
	return func(o *Out, g, s uint32) { o.pw(xx3(opc, vsr(g), vsr(s), vsr(g))) }
}

func vsx2(opc uint32) func(o *Out, g, s uint32) {
	return func(o *Out, g, s uint32) { o.pw(xx2(opc, vsr(g), vsr(s))) }
}

func vmx(opc uint32) func(o *Out, g, s uint32) {
	return func(o *Out, g, s uint32) { o.pw(vx(opc, g, g, s)) }
}
