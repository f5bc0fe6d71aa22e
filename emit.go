package rtasm

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// Text front door. A program is a sequence of invocations in the macro
// syntax, one or more per line separated by ';':
//
//	loop:
//	    addwx_ri(Reax, IB(5))
//	    cmjwx_rr(Reax, Recx, LT_x, loop)   // comment
//
// Operands are register and addressing-mode names, IC(..)..IW(..),
// DP(..)..DV(..) or PLAIN, arj operations (add_x), conditions (EQ_x) and
// labels (bare or LBL(name)).

// operand is one parsed argument: an identifier, a number, or a wrapped
// value such as IB(5).
type operand struct {
	name    string
	val     string
	wrapped bool
	col     int
}

func (a operand) String() string {
	if a.wrapped {
		return a.name + "(" + a.val + ")"
	}
	return a.name
}

// operands hands out typed arguments in order. The first failure sticks.
type operands struct {
	list []operand
	next int
	err  error
}

func (a *operands) fail(format string, args ...interface{}) {
	if a.err == nil {
		a.err = newError(CategorySyntax, "", ErrSyntax, format, args...)
	}
}

func (a *operands) take(what string) (operand, bool) {
	if a.err != nil {
		return operand{}, false
	}
	if a.next >= len(a.list) {
		a.fail("missing %s operand", what)
		return operand{}, false
	}
	v := a.list[a.next]
	a.next++
	return v, true
}

// end reports whether every operand parsed and none is left over.
func (a *operands) end() bool {
	if a.err == nil && a.next < len(a.list) {
		a.fail("unexpected operand %v at column %d", a.list[a.next], a.list[a.next].col)
	}
	return a.err == nil
}

func (a *operands) bare(what string) (operand, bool) {
	v, ok := a.take(what)
	if ok && v.wrapped {
		a.fail("expected %s, got %v", what, v)
		return operand{}, false
	}
	return v, ok
}

func (a *operands) reg() Reg {
	v, ok := a.bare("BASE register")
	if !ok {
		return 0
	}
	r, err := LookupReg(v.name)
	if err != nil && a.err == nil {
		a.err = err
	}
	return r
}

func (a *operands) xreg() XReg {
	v, ok := a.bare("SIMD register")
	if !ok {
		return 0
	}
	x, err := LookupXReg(v.name)
	if err != nil && a.err == nil {
		a.err = err
	}
	return x
}

func (a *operands) mem() Mem {
	v, ok := a.bare("addressing mode")
	if !ok {
		return Mem{}
	}
	m, err := LookupMem(v.name)
	if err != nil && a.err == nil {
		a.err = err
	}
	return m
}

var immCtors = map[string]func(int64) Imm{
	"IC": IC, "IB": IB, "IM": IM, "IG": IG, "IH": IH, "IV": IV, "IW": IW,
}

var dispCtors = map[string]func(int64) Disp{
	"DP": DP, "DE": DE, "DF": DF, "DG": DG, "DH": DH, "DV": DV,
}

func (a *operands) number(v operand) int64 {
	n, err := strconv.ParseInt(v.val, 0, 64)
	if err != nil {
		u, uerr := strconv.ParseUint(v.val, 0, 64)
		if uerr != nil {
			a.fail("bad number %q in %s", v.val, v.name)
			return 0
		}
		n = int64(u)
	}
	return n
}

func (a *operands) imm() Imm {
	v, ok := a.take("immediate")
	if !ok {
		return Imm{}
	}
	ctor, known := immCtors[v.name]
	if !v.wrapped || !known {
		a.fail("expected an immediate IC(..) .. IW(..), got %v", v)
		return Imm{}
	}
	return ctor(a.number(v))
}

func (a *operands) disp() Disp {
	v, ok := a.take("displacement")
	if !ok {
		return Disp{}
	}
	if !v.wrapped && v.name == "PLAIN" {
		return DP(0)
	}
	ctor, known := dispCtors[v.name]
	if !v.wrapped || !known {
		a.fail("expected a displacement DP(..) .. DV(..) or PLAIN, got %v", v)
		return Disp{}
	}
	return ctor(a.number(v))
}

func (a *operands) arjOp() ArjOp {
	v, ok := a.bare("arj operation")
	if !ok {
		return 0
	}
	for op := AndX; op < numArjOps; op++ {
		if op.String() == v.name {
			return op
		}
	}
	a.err = unknownName("arj operation", v.name, arjOpNames[:])
	return 0
}

func (a *operands) cond() Cond {
	v, ok := a.bare("condition")
	if !ok {
		return 0
	}
	for c := EZx; c < numConds; c++ {
		if c.String() == v.name {
			return c
		}
	}
	a.err = unknownName("condition", v.name, condNames[:])
	return 0
}

func (a *operands) label() string {
	v, ok := a.take("label")
	if !ok {
		return ""
	}
	if v.wrapped {
		if v.name != "LBL" {
			a.fail("expected a label, got %v", v)
			return ""
		}
		return v.val
	}
	return v.name
}

// Dispatch tables for the subset families, keyed by family then shape.

var riOps = map[string]func(*Out, Sub, Reg, Imm){
	"mov": (*Out).MovRI, "and": (*Out).AndRI, "ann": (*Out).AnnRI, "orr": (*Out).OrrRI,
	"orn": (*Out).OrnRI, "xor": (*Out).XorRI, "add": (*Out).AddRI, "sub": (*Out).SubRI,
	"shl": (*Out).ShlRI, "shr": (*Out).ShrRI, "ror": (*Out).RorRI, "mul": (*Out).MulRI,
	"div": (*Out).DivRI, "rem": (*Out).RemRI, "cmp": (*Out).CmpRI,
}

var miOps = map[string]func(*Out, Sub, Mem, Disp, Imm){
	"mov": (*Out).MovMI, "and": (*Out).AndMI, "ann": (*Out).AnnMI, "orr": (*Out).OrrMI,
	"orn": (*Out).OrnMI, "xor": (*Out).XorMI, "add": (*Out).AddMI, "sub": (*Out).SubMI,
	"shl": (*Out).ShlMI, "shr": (*Out).ShrMI, "ror": (*Out).RorMI, "cmp": (*Out).CmpMI,
}

var rrOps = map[string]func(*Out, Sub, Reg, Reg){
	"mov": (*Out).MovRR, "and": (*Out).AndRR, "ann": (*Out).AnnRR, "orr": (*Out).OrrRR,
	"orn": (*Out).OrnRR, "xor": (*Out).XorRR, "add": (*Out).AddRR, "sub": (*Out).SubRR,
	"shl": (*Out).ShlRR, "shr": (*Out).ShrRR, "ror": (*Out).RorRR, "mul": (*Out).MulRR,
	"div": (*Out).DivRR, "rem": (*Out).RemRR, "cmp": (*Out).CmpRR,
}

// ld, st and rm share the (register, memory, displacement) operand order.
var ldOps = map[string]func(*Out, Sub, Reg, Mem, Disp){
	"mov": (*Out).MovLD, "and": (*Out).AndLD, "ann": (*Out).AnnLD, "orr": (*Out).OrrLD,
	"orn": (*Out).OrnLD, "xor": (*Out).XorLD, "add": (*Out).AddLD, "sub": (*Out).SubLD,
	"shl": (*Out).ShlLD, "shr": (*Out).ShrLD, "ror": (*Out).RorLD, "mul": (*Out).MulLD,
	"div": (*Out).DivLD, "rem": (*Out).RemLD,
}

var stOps = map[string]func(*Out, Sub, Reg, Mem, Disp){
	"mov": (*Out).MovST, "and": (*Out).AndST, "ann": (*Out).AnnST, "orr": (*Out).OrrST,
	"orn": (*Out).OrnST, "xor": (*Out).XorST, "add": (*Out).AddST, "sub": (*Out).SubST,
	"shl": (*Out).ShlST, "shr": (*Out).ShrST, "ror": (*Out).RorST,
}

var rmOps = map[string]func(*Out, Sub, Reg, Mem, Disp){"cmp": (*Out).CmpRM}

var mrOps = map[string]func(*Out, Sub, Mem, Disp, Reg){"cmp": (*Out).CmpMR}

var rxOps = map[string]func(*Out, Sub, Reg){
	"not": (*Out).NotRX, "neg": (*Out).NegRX,
	"shl": (*Out).ShlRX, "shr": (*Out).ShrRX, "ror": (*Out).RorRX,
}

var mxOps = map[string]func(*Out, Sub, Mem, Disp){
	"not": (*Out).NotMX, "neg": (*Out).NegMX,
	"shl": (*Out).ShlMX, "shr": (*Out).ShrMX, "ror": (*Out).RorMX,
}

var xrOps = map[string]func(*Out, Sub, Reg){"mul": (*Out).MulXR, "div": (*Out).DivXR, "rem": (*Out).RemXR}

var xmOps = map[string]func(*Out, Sub, Mem, Disp){"mul": (*Out).MulXM, "div": (*Out).DivXM, "rem": (*Out).RemXM}

var xxOps = map[string]func(*Out, Sub){"pre": (*Out).PreXX, "rem": (*Out).RemXX}

// familyShapes lists the shapes each subset family accepts, for suggestions.
func familyShapes() map[string][]string {
	shapes := make(map[string][]string)
	add := func(shape string, fams []string) {
		for _, f := range fams {
			shapes[f] = append(shapes[f], shape)
		}
	}
	add("ri", keys(riOps))
	add("mi", keys(miOps))
	add("rr", keys(rrOps))
	add("ld", keys(ldOps))
	add("st", keys(stOps))
	add("rm", keys(rmOps))
	add("mr", keys(mrOps))
	add("rx", keys(rxOps))
	add("mx", keys(mxOps))
	add("xr", keys(xrOps))
	add("xm", keys(xmOps))
	add("xx", keys(xxOps))
	for _, s := range []string{"ri", "mi", "rr", "ld", "st", "rx", "mx"} {
		shapes["arj"] = append(shapes["arj"], s)
	}
	for _, s := range []string{"ri", "mi", "rr", "rm", "mr"} {
		shapes["cmj"] = append(shapes["cmj"], s)
	}
	return shapes
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// plainOps holds the mnemonics without a subset.
var plainOps = buildPlainOps()

func buildPlainOps() map[string]func(*Out, *operands) {
	ops := map[string]func(*Out, *operands){
		"leaxx_ld": func(o *Out, a *operands) {
			rg, ms, ds := a.reg(), a.mem(), a.disp()
			if a.end() {
				o.LeaLD(rg, ms, ds)
			}
		},
		"extzx_rr": func(o *Out, a *operands) {
			rg, rs := a.reg(), a.reg()
			if a.end() {
				o.ExtZX(rg, rs)
			}
		},
		"extzn_rr": func(o *Out, a *operands) {
			rg, rs := a.reg(), a.reg()
			if a.end() {
				o.ExtZN(rg, rs)
			}
		},
		"jmpxx_lb": func(o *Out, a *operands) {
			lb := a.label()
			if a.end() {
				o.JmpLB(lb)
			}
		},
		"jmpxx_xr": func(o *Out, a *operands) {
			rs := a.reg()
			if a.end() {
				o.JmpXR(rs)
			}
		},
		"jmpxx_xm": func(o *Out, a *operands) {
			ms, ds := a.mem(), a.disp()
			if a.end() {
				o.JmpXM(ms, ds)
			}
		},
		"stack_st": func(o *Out, a *operands) {
			rs := a.reg()
			if a.end() {
				o.StackST(rs)
			}
		},
		"stack_ld": func(o *Out, a *operands) {
			rg := a.reg()
			if a.end() {
				o.StackLD(rg)
			}
		},
		"stack_sa": func(o *Out, a *operands) {
			if a.end() {
				o.StackSA()
			}
		},
		"stack_la": func(o *Out, a *operands) {
			if a.end() {
				o.StackLA()
			}
		},
		"sregs_sa": func(o *Out, a *operands) {
			ms, ds := a.mem(), a.disp()
			if a.end() {
				o.SregsSA(ms, ds)
			}
		},
		"sregs_la": func(o *Out, a *operands) {
			ms, ds := a.mem(), a.disp()
			if a.end() {
				o.SregsLA(ms, ds)
			}
		},
		"movix_rr": func(o *Out, a *operands) {
			xg, xs := a.xreg(), a.xreg()
			if a.end() {
				o.MovixRR(xg, xs)
			}
		},
		"movix_ld": func(o *Out, a *operands) {
			xg, ms, ds := a.xreg(), a.mem(), a.disp()
			if a.end() {
				o.MovixLD(xg, ms, ds)
			}
		},
		"movix_st": func(o *Out, a *operands) {
			xs, md, dd := a.xreg(), a.mem(), a.disp()
			if a.end() {
				o.MovixST(xs, md, dd)
			}
		},
	}
	for c := EZx; c < numConds; c++ {
		c := c
		ops[condJumps[c]+"_lb"] = func(o *Out, a *operands) {
			lb := a.label()
			if a.end() {
				o.JccLB(c, lb)
			}
		}
	}
	for _, op := range simdOps {
		op := op
		ops[op.name+"_rr"] = func(o *Out, a *operands) {
			xg, xs := a.xreg(), a.xreg()
			if a.end() {
				o.simdRR(op, xg, xs)
			}
		}
		ops[op.name+"_ld"] = func(o *Out, a *operands) {
			xg, ms, ds := a.xreg(), a.mem(), a.disp()
			if a.end() {
				o.simdLD(op, xg, ms, ds)
			}
		}
	}
	for _, k := range []vShift{vShl, vShr, vShn} {
		k := k
		ops[k.name+"_ri"] = func(o *Out, a *operands) {
			xg, is := a.xreg(), a.imm()
			if a.end() {
				o.vshift(k, xg, is)
			}
		}
	}
	return ops
}

var simdOps = []*simdOp{
	vAnd, vAnn, vOrr, vXor, vAdd, vSub, vMul, vDiv, vSqrt, vMin, vMax,
	vCeq, vCne, vClt, vCle, vCgt, vCge, vCvz, vCvn, vAddInt, vSubInt,
}

// Mnemonics returns every mnemonic the text front door accepts, sorted.
func Mnemonics() []string {
	var names []string
	for name := range plainOps {
		names = append(names, name)
	}
	for fam, shapes := range familyShapes() {
		for _, sub := range []Sub{WX, WZ, WN, ZX, ZZ, ZN, XX, XZ, XN} {
			for _, shape := range shapes {
				names = append(names, mnemonic(fam, sub, shape))
			}
		}
	}
	sort.Strings(names)
	return names
}

// Emit parses and encodes one line. Parse failures are sticky like encoding
// failures: after the first error the Out accepts nothing more.
func (o *Out) Emit(line string) error {
	if o.err != nil {
		return o.err
	}
	if strings.TrimSpace(line) == "" {
		return ErrNoAssembly
	}
	toks := NewLexer(line).Tokens()
	for i := 0; toks[i].Type != TOKEN_EOF; {
		n, err := o.statement(toks[i:])
		if err != nil {
			o.fail(err)
			return o.err
		}
		if o.err != nil {
			return o.err
		}
		i += n
	}
	return nil
}

// EmitAll encodes a whole program. A failure is reported with its line
// number; empty programs return ErrNoAssembly.
func (o *Out) EmitAll(src string) error {
	sc := bufio.NewScanner(strings.NewReader(src))
	n, emitted := 0, false
	for sc.Scan() {
		n++
		line := sc.Text()
		if len(NewLexer(line).Tokens()) == 1 {
			continue
		}
		emitted = true
		if err := o.Emit(line); err != nil {
			var ee *EncodeError
			if errors.As(err, &ee) && ee.Line == 0 {
				ee.Line = n
			}
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if !emitted {
		return ErrNoAssembly
	}
	return nil
}

// statement handles one label definition or invocation at the start of
// toks and returns the number of tokens it used.
func (o *Out) statement(toks []Token) (int, error) {
	o.op = ""
	syntax := func(t Token, format string, args ...interface{}) (int, error) {
		return 0, newError(CategorySyntax, "", ErrSyntax, "column %d: %s", t.Col, fmt.Sprintf(format, args...))
	}
	switch {
	case toks[0].Type == TOKEN_SEMICOLON:
		return 1, nil
	case toks[0].Type != TOKEN_IDENT:
		return syntax(toks[0], "expected a mnemonic or label, got %v", toks[0].Type)
	case toks[1].Type == TOKEN_COLON:
		o.Label(toks[0].Value)
		return 2, nil
	case toks[1].Type != TOKEN_LPAREN:
		return syntax(toks[1], "expected '(' after %s", toks[0].Value)
	}
	name := toks[0].Value
	var args []operand
	i := 2
	for toks[i].Type != TOKEN_RPAREN {
		if len(args) > 0 {
			if toks[i].Type != TOKEN_COMMA {
				return syntax(toks[i], "expected ',' or ')', got %v", toks[i].Type)
			}
			i++
		}
		t := toks[i]
		if t.Type != TOKEN_IDENT {
			return syntax(t, "expected an operand, got %v", t.Type)
		}
		arg := operand{name: t.Value, col: t.Col}
		i++
		if toks[i].Type == TOKEN_LPAREN {
			v := toks[i+1]
			if (v.Type != TOKEN_NUMBER && v.Type != TOKEN_IDENT) || toks[i+2].Type != TOKEN_RPAREN {
				return syntax(v, "malformed %s(...)", t.Value)
			}
			arg.val, arg.wrapped = v.Value, true
			i += 3
		}
		args = append(args, arg)
	}
	i++
	if err := o.invoke(name, &operands{list: args}); err != nil {
		return 0, err
	}
	return i, nil
}

// invoke dispatches a parsed invocation to its encoder.
func (o *Out) invoke(name string, a *operands) error {
	o.op = name
	if fn, ok := plainOps[name]; ok {
		fn(o, a)
		return a.err
	}
	fam, s, shape, ok := splitMnemonic(name)
	if !ok || !o.invokeSub(fam, s, shape, a) {
		return unknownName("mnemonic", name, Mnemonics())
	}
	return a.err
}

// splitMnemonic splits "addwx_ri" into its family, subset and shape.
func splitMnemonic(name string) (string, Sub, string, bool) {
	head, shape, found := strings.Cut(name, "_")
	if !found || len(head) != 5 {
		return "", Sub{}, "", false
	}
	s, ok := ParseSub(head[3:])
	return head[:3], s, shape, ok
}

func (o *Out) invokeSub(fam string, s Sub, shape string, a *operands) bool {
	switch fam {
	case "arj":
		return o.invokeArj(s, shape, a)
	case "cmj":
		return o.invokeCmj(s, shape, a)
	}
	switch shape {
	case "ri":
		f, ok := riOps[fam]
		if ok {
			rg, is := a.reg(), a.imm()
			if a.end() {
				f(o, s, rg, is)
			}
		}
		return ok
	case "mi":
		f, ok := miOps[fam]
		if ok {
			mg, dg, is := a.mem(), a.disp(), a.imm()
			if a.end() {
				f(o, s, mg, dg, is)
			}
		}
		return ok
	case "rr":
		f, ok := rrOps[fam]
		if ok {
			rg, rs := a.reg(), a.reg()
			if a.end() {
				f(o, s, rg, rs)
			}
		}
		return ok
	case "ld", "st", "rm":
		table := map[string]map[string]func(*Out, Sub, Reg, Mem, Disp){"ld": ldOps, "st": stOps, "rm": rmOps}[shape]
		f, ok := table[fam]
		if ok {
			r, m, d := a.reg(), a.mem(), a.disp()
			if a.end() {
				f(o, s, r, m, d)
			}
		}
		return ok
	case "mr":
		f, ok := mrOps[fam]
		if ok {
			m, d, r := a.mem(), a.disp(), a.reg()
			if a.end() {
				f(o, s, m, d, r)
			}
		}
		return ok
	case "rx", "xr":
		f, ok := rxOps[fam]
		if shape == "xr" {
			f, ok = xrOps[fam]
		}
		if ok {
			r := a.reg()
			if a.end() {
				f(o, s, r)
			}
		}
		return ok
	case "mx", "xm":
		f, ok := mxOps[fam]
		if shape == "xm" {
			f, ok = xmOps[fam]
		}
		if ok {
			m, d := a.mem(), a.disp()
			if a.end() {
				f(o, s, m, d)
			}
		}
		return ok
	case "xx":
		f, ok := xxOps[fam]
		if ok && a.end() {
			f(o, s)
		}
		return ok
	}
	return false
}

func (o *Out) invokeArj(s Sub, shape string, a *operands) bool {
	switch shape {
	case "ri":
		rg, is := a.reg(), a.imm()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjRI(s, rg, is, op, cc, lb)
		}
	case "mi":
		mg, dg, is := a.mem(), a.disp(), a.imm()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjMI(s, mg, dg, is, op, cc, lb)
		}
	case "rr":
		rg, rs := a.reg(), a.reg()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjRR(s, rg, rs, op, cc, lb)
		}
	case "ld":
		rg, ms, ds := a.reg(), a.mem(), a.disp()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjLD(s, rg, ms, ds, op, cc, lb)
		}
	case "st":
		rs, mg, dg := a.reg(), a.mem(), a.disp()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjST(s, rs, mg, dg, op, cc, lb)
		}
	case "rx":
		rg := a.reg()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjRX(s, rg, op, cc, lb)
		}
	case "mx":
		mg, dg := a.mem(), a.disp()
		op, cc, lb := a.arjOp(), a.cond(), a.label()
		if a.end() {
			o.ArjMX(s, mg, dg, op, cc, lb)
		}
	default:
		return false
	}
	return true
}

func (o *Out) invokeCmj(s Sub, shape string, a *operands) bool {
	switch shape {
	case "ri":
		rs, it := a.reg(), a.imm()
		cc, lb := a.cond(), a.label()
		if a.end() {
			o.CmjRI(s, rs, it, cc, lb)
		}
	case "mi":
		ms, ds, it := a.mem(), a.disp(), a.imm()
		cc, lb := a.cond(), a.label()
		if a.end() {
			o.CmjMI(s, ms, ds, it, cc, lb)
		}
	case "rr":
		rs, rt := a.reg(), a.reg()
		cc, lb := a.cond(), a.label()
		if a.end() {
			o.CmjRR(s, rs, rt, cc, lb)
		}
	case "rm":
		rs, mt, dt := a.reg(), a.mem(), a.disp()
		cc, lb := a.cond(), a.label()
		if a.end() {
			o.CmjRM(s, rs, mt, dt, cc, lb)
		}
	case "mr":
		ms, ds, rt := a.mem(), a.disp(), a.reg()
		cc, lb := a.cond(), a.label()
		if a.end() {
			o.CmjMR(s, ms, ds, rt, cc, lb)
		}
	default:
		return false
	}
	return true
}

// Suggest returns up to n known mnemonics close to name.
func Suggest(name string, n int) []string {
	return engine.FindSimilar(name, Mnemonics(), n)
}
