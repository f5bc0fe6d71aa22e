package rtasm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// Out encodes portable instructions for one target profile into a Writer.
// An Out is not safe for concurrent use; give every code stream its own.
type Out struct {
	cfg    Config
	w      Writer
	order  binary.ByteOrder
	scr    Scratch
	labels map[string]*label
	err    error
	op     string
}

type fixupKind uint8

const (
	fixRel32 fixupKind = iota // x86 rel32, relative to the end of the instruction
	fixBC                     // POWER bc, 14-bit word displacement
	fixB                      // POWER b, 24-bit word displacement
)

type fixup struct {
	kind fixupKind
	at   int
	end  int
	word uint32
	op   string
}

type label struct {
	bound  bool
	pos    int
	fixups []fixup
}

// NewOut creates an Out writing into a fresh Buffer.
func NewOut(cfg Config) *Out {
	return NewOutWriter(cfg, NewBuffer(wordOrder(cfg)))
}

// NewOutWriter creates an Out writing into w. An invalid cfg is reported by Err
// and nothing is emitted.
func NewOutWriter(cfg Config, w Writer) *Out {
	o := &Out{
		cfg:    cfg,
		w:      w,
		order:  wordOrder(cfg),
		scr:    ScratchFor(cfg.Arch),
		labels: make(map[string]*label),
	}
	if err := cfg.Validate(); err != nil {
		o.err = err
	}
	return o
}

func wordOrder(cfg Config) binary.ByteOrder {
	if cfg.Endian == engine.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Config returns the profile o encodes for.
func (o *Out) Config() Config { return o.cfg }

// Err returns the first error, if any. Once set, every later call is a no-op.
func (o *Out) Err() error { return o.err }

// Len returns the number of bytes emitted so far.
func (o *Out) Len() int { return o.w.Len() }

// Bytes returns the emitted code when o writes into a Buffer.
func (o *Out) Bytes() []byte {
	if b, ok := o.w.(*Buffer); ok {
		return b.Bytes()
	}
	return nil
}

// Label binds name to the current position and resolves pending jumps to it.
func (o *Out) Label(name string) {
	if o.err != nil {
		return
	}
	l := o.label(name)
	if l.bound {
		o.fail(newError(CategoryLabel, "label", ErrSyntax, "label %q bound twice", name))
		return
	}
	l.bound, l.pos = true, o.w.Len()
	if VerboseMode {
		fmt.Fprintf(TraceOutput, "%s: @%#x\n", name, l.pos)
	}
	for _, f := range l.fixups {
		if err := o.patch(f, l.pos); err != nil {
			o.fail(err)
			return
		}
	}
	l.fixups = nil
}

// Finish reports jumps to labels that were never bound and commits the Buffer.
func (o *Out) Finish() error {
	if o.err != nil {
		return o.err
	}
	var missing []string
	for name, l := range o.labels {
		if !l.bound {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		o.fail(newError(CategoryLabel, "finish", ErrUnknownLabel, "unbound labels: %v", missing))
		return o.err
	}
	if b, ok := o.w.(*Buffer); ok {
		b.Commit()
	}
	return nil
}

func (o *Out) label(name string) *label {
	l, ok := o.labels[name]
	if !ok {
		l = &label{}
		o.labels[name] = l
	}
	return l
}

// jumpTo patches f now when name is bound, later otherwise.
func (o *Out) jumpTo(name string, f fixup) {
	f.op = o.op
	l := o.label(name)
	if !l.bound {
		l.fixups = append(l.fixups, f)
		return
	}
	if err := o.patch(f, l.pos); err != nil {
		o.fail(err)
	}
}

func (o *Out) patch(f fixup, target int) error {
	var field [4]byte
	switch f.kind {
	case fixRel32:
		binary.LittleEndian.PutUint32(field[:], uint32(int32(target-f.end)))
	case fixBC:
		d := target - f.at
		if d < -0x8000 || d > 0x7FFC {
			return newError(CategoryLabel, f.op, ErrBranchRange, "conditional branch displacement %d exceeds 16 bits", d)
		}
		o.order.PutUint32(field[:], f.word|uint32(d)&0xFFFC)
	case fixB:
		d := target - f.at
		if d < -0x2000000 || d > 0x1FFFFFC {
			return newError(CategoryLabel, f.op, ErrBranchRange, "branch displacement %d exceeds 26 bits", d)
		}
		o.order.PutUint32(field[:], f.word|uint32(d)&0x03FFFFFC)
	}
	o.w.Patch(f.at, field[:])
	return nil
}

// begin starts encoding op. It returns false, emitting nothing, when an earlier
// error is pending or one of the checks failed.
func (o *Out) begin(op string, checks ...error) bool {
	if o.err != nil {
		return false
	}
	o.op = op
	for _, err := range checks {
		if err != nil {
			o.fail(err)
			return false
		}
	}
	if VerboseMode {
		fmt.Fprintf(TraceOutput, "%s:", op)
	}
	return true
}

func (o *Out) end() {
	if VerboseMode {
		fmt.Fprintln(TraceOutput)
	}
}

func (o *Out) fail(err error) {
	if o.err != nil {
		return
	}
	var ee *EncodeError
	if errors.As(err, &ee) && ee.Op == "" {
		ee.Op = o.op
	}
	o.err = err
}

// Operand checks. Malformed operands are always rejected, range and
// precondition checks only in strict mode.

func (o *Out) checkSub(s Sub) error {
	if !s.valid() {
		return newError(CategoryOperand, "", ErrSyntax, "invalid subset %v", s)
	}
	if s.Width == W64 && o.cfg.Pointer == engine.P32 && o.cfg.Arch == engine.ArchPower {
		return newError(CategoryUnsupported, "", ErrUnsupported, "64-bit subset on a 32-bit POWER profile")
	}
	return nil
}

func (o *Out) checkReg(regs ...Reg) error {
	for _, r := range regs {
		if !r.valid() {
			return newError(CategoryOperand, "", ErrSyntax, "invalid BASE register %v", r)
		}
	}
	return nil
}

func (o *Out) checkXReg(regs ...XReg) error {
	for _, x := range regs {
		if !x.valid() {
			return newError(CategoryOperand, "", ErrSyntax, "invalid SIMD register %v", x)
		}
	}
	return nil
}

func (o *Out) checkMem(m Mem, d Disp) error {
	if !m.valid() {
		return newError(CategoryOperand, "", ErrSyntax, "invalid addressing mode %v", m)
	}
	if d.class >= numDispClasses {
		return d.Check()
	}
	if !o.cfg.Strict {
		return nil
	}
	if m.mode == ModePlain && d.raw != 0 {
		return newError(CategoryImmediate, "", ErrDisplacementRange, "%v takes no displacement, got %v", m, d)
	}
	return d.Check()
}

func (o *Out) checkImm(i Imm) error {
	if i.class >= numImmClasses || o.cfg.Strict {
		return i.Check()
	}
	return nil
}

// pre enforces a documented operand precondition in strict mode.
func (o *Out) pre(ok bool, format string, args ...interface{}) error {
	if ok || !o.cfg.Strict {
		return nil
	}
	return newError(CategoryPrecondition, "", ErrPrecondition, format, args...)
}

func (o *Out) power() bool { return o.cfg.Arch == engine.ArchPower }

// wide reports whether s resolves to a 64-bit operation on this profile.
func (o *Out) wide(s Sub) bool {
	switch s.Width {
	case W64:
		return true
	case WPtr:
		return o.cfg.Pointer == engine.P64
	}
	return false
}

func mnemonic(family string, s Sub, shape string) string {
	return family + s.String() + "_" + shape
}

func (o *Out) p64() bool { return o.cfg.Pointer == engine.P64 }
