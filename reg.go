package rtasm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// Reg is a portable BASE (general purpose) register.
// Each backend maps it to its own architectural number.
type Reg uint8

const (
	Reax Reg = iota
	Recx
	Redx
	Rebx
	Resp // stack pointer, addressing and stack ops only
	Rebp
	Resi
	Redi
	Reg08
	Reg09
	Reg10
	Reg11
	Reg12
	Reg13
	Reg14

	numRegs
)

var regNames = [numRegs]string{
	"Reax", "Recx", "Redx", "Rebx", "Resp", "Rebp", "Resi", "Redi",
	"Reg08", "Reg09", "Reg10", "Reg11", "Reg12", "Reg13", "Reg14",
}

func (r Reg) String() string {
	if r < numRegs {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Index returns the portable register index (the REG selector).
func (r Reg) Index() int { return int(r) }

func (r Reg) valid() bool { return r < numRegs }

// XReg is a portable SIMD register. BASE and SIMD registers are separate types
// and never interchange.
type XReg uint8

const (
	Xmm0 XReg = iota
	Xmm1
	Xmm2
	Xmm3
	Xmm4
	Xmm5
	Xmm6
	Xmm7
	Xmm8
	Xmm9
	XmmA
	XmmB
	XmmC
	XmmD
	XmmE
	XmmF

	numXRegs
)

func (x XReg) String() string {
	if x < numXRegs {
		return fmt.Sprintf("Xmm%X", uint8(x))
	}
	return fmt.Sprintf("XReg(%d)", uint8(x))
}

// Index returns the portable SIMD register index.
func (x XReg) Index() int { return int(x) }

func (x XReg) valid() bool { return x < numXRegs }

// x86 numbering is the natural one: eax=0 .. edi=7, r8..r14.
var x86RegMap = [numRegs]uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}

// POWER keeps r0 (zero in RA slots), r2 (TOC), r3 (argument/return), r11..r13 and the
// r21..r31 range (scratch) away from the portable set.
var powerRegMap = [numRegs]uint32{4, 5, 6, 7, 1, 8, 9, 10, 14, 15, 16, 17, 18, 19, 20}

// Scratch is the fixed allocation of reserved temporaries of one backend.
// Every instruction family uses the same names, so two families never run
// interleaved on one Out.
type Scratch struct {
	TZxx uint32 // reads as zero in RA slots (POWER)
	TLxx uint32 // left compare operand
	TRxx uint32 // right compare operand
	TIxx uint32 // immediate materialization
	TDxx uint32 // displacement materialization
	TPxx uint32 // address formation
	TMxx uint32 // memory operand / intermediate results
	TWxx uint32 // second intermediate
	TmmM uint32 // SIMD temporary
}

var x86Scratch = Scratch{TIxx: 15, TMxx: 15, TWxx: 15}

var powerScratch = Scratch{
	TZxx: 0,
	TLxx: 24,
	TRxx: 25,
	TIxx: 26,
	TDxx: 27,
	TPxx: 28,
	TMxx: 29,
	TWxx: 30,
	TmmM: 31,
}

// ScratchFor returns the scratch table of an architecture.
func ScratchFor(a engine.Arch) Scratch {
	if a == engine.ArchPower {
		return powerScratch
	}
	return x86Scratch
}

// HardwareReg returns the architectural number of r on a.
func HardwareReg(a engine.Arch, r Reg) uint32 {
	if a == engine.ArchPower {
		return powerRegMap[r]
	}
	return x86RegMap[r]
}

// MemMode is the fixed enumeration of addressing forms.
type MemMode uint8

const (
	ModePlain MemMode = iota // [base], no displacement (Oeax)
	ModeBase                 // [base + disp]
	ModeIndex                // [base + Reax*scale + disp]
)

func (m MemMode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeBase:
		return "base"
	case ModeIndex:
		return "index"
	default:
		return "unknown"
	}
}

// Mem is an addressing-mode descriptor: base register, mode tag and, for the
// index forms, the scale applied to Reax.
type Mem struct {
	base  Reg
	mode  MemMode
	scale uint8 // 1, 2, 4, 8 for ModeIndex
}

// MemBase returns [r + disp].
func MemBase(r Reg) Mem { return Mem{base: r, mode: ModeBase} }

// MemIndex returns [r + Reax*scale + disp]; scale must be 1, 2, 4 or 8.
func MemIndex(r Reg, scale uint8) Mem { return Mem{base: r, mode: ModeIndex, scale: scale} }

func (m Mem) Base() Reg          { return m.base }
func (m Mem) Mode() MemMode      { return m.mode }
func (m Mem) Scale() uint8       { return m.scale }
func (m Mem) Index() (Reg, bool) { return Reax, m.mode == ModeIndex }

// usesReax reports whether forming the address reads Reax.
func (m Mem) usesReax() bool {
	return m.base == Reax || m.mode == ModeIndex
}

func (m Mem) valid() bool {
	if !m.base.valid() {
		return false
	}
	switch m.mode {
	case ModePlain, ModeBase:
		return true
	case ModeIndex:
		return m.scale == 1 || m.scale == 2 || m.scale == 4 || m.scale == 8
	}
	return false
}

func (m Mem) String() string {
	if name, ok := memName(m); ok {
		return name
	}
	switch m.mode {
	case ModePlain:
		return fmt.Sprintf("[%s]", m.base)
	case ModeIndex:
		return fmt.Sprintf("[%s+Reax*%d]", m.base, m.scale)
	default:
		return fmt.Sprintf("[%s+disp]", m.base)
	}
}

var (
	Oeax = Mem{base: Reax, mode: ModePlain}

	Meax  = MemBase(Reax)
	Mecx  = MemBase(Recx)
	Medx  = MemBase(Redx)
	Mebx  = MemBase(Rebx)
	Mesp  = MemBase(Resp)
	Mebp  = MemBase(Rebp)
	Mesi  = MemBase(Resi)
	Medi  = MemBase(Redi)
	Meg08 = MemBase(Reg08)
	Meg09 = MemBase(Reg09)
	Meg10 = MemBase(Reg10)
	Meg11 = MemBase(Reg11)
	Meg12 = MemBase(Reg12)
	Meg13 = MemBase(Reg13)
	Meg14 = MemBase(Reg14)

	Iecx = MemIndex(Recx, 1)
	Iedx = MemIndex(Redx, 1)
	Iebx = MemIndex(Rebx, 1)
	Iesp = MemIndex(Resp, 1)
	Iebp = MemIndex(Rebp, 1)
	Iesi = MemIndex(Resi, 1)
	Iedi = MemIndex(Redi, 1)

	Jecx = MemIndex(Recx, 2)
	Jedx = MemIndex(Redx, 2)
	Jebx = MemIndex(Rebx, 2)
	Jesp = MemIndex(Resp, 2)
	Jebp = MemIndex(Rebp, 2)
	Jesi = MemIndex(Resi, 2)
	Jedi = MemIndex(Redi, 2)

	Kecx = MemIndex(Recx, 4)
	Kedx = MemIndex(Redx, 4)
	Kebx = MemIndex(Rebx, 4)
	Kesp = MemIndex(Resp, 4)
	Kebp = MemIndex(Rebp, 4)
	Kesi = MemIndex(Resi, 4)
	Kedi = MemIndex(Redi, 4)

	Lecx = MemIndex(Recx, 8)
	Ledx = MemIndex(Redx, 8)
	Lebx = MemIndex(Rebx, 8)
	Lesp = MemIndex(Resp, 8)
	Lebp = MemIndex(Rebp, 8)
	Lesi = MemIndex(Resi, 8)
	Ledi = MemIndex(Redi, 8)
)

var memNames = map[string]Mem{
	"Oeax": Oeax,
	"Meax": Meax, "Mecx": Mecx, "Medx": Medx, "Mebx": Mebx, "Mesp": Mesp, "Mebp": Mebp,
	"Mesi": Mesi, "Medi": Medi, "Meg08": Meg08, "Meg09": Meg09, "Meg10": Meg10,
	"Meg11": Meg11, "Meg12": Meg12, "Meg13": Meg13, "Meg14": Meg14,
	"Iecx": Iecx, "Iedx": Iedx, "Iebx": Iebx, "Iesp": Iesp, "Iebp": Iebp, "Iesi": Iesi, "Iedi": Iedi,
	"Jecx": Jecx, "Jedx": Jedx, "Jebx": Jebx, "Jesp": Jesp, "Jebp": Jebp, "Jesi": Jesi, "Jedi": Jedi,
	"Kecx": Kecx, "Kedx": Kedx, "Kebx": Kebx, "Kesp": Kesp, "Kebp": Kebp, "Kesi": Kesi, "Kedi": Kedi,
	"Lecx": Lecx, "Ledx": Ledx, "Lebx": Lebx, "Lesp": Lesp, "Lebp": Lebp, "Lesi": Lesi, "Ledi": Ledi,
}

func memName(m Mem) (string, bool) {
	for name, v := range memNames {
		if v == m {
			return name, true
		}
	}
	return "", false
}

// RegNames returns the portable BASE register names in index order.
func RegNames() []string { return append([]string(nil), regNames[:]...) }

// LookupReg finds a BASE register by its portable name (Reax, Reg08, ...).
func LookupReg(name string) (Reg, error) {
	for i, n := range regNames {
		if n == name {
			return Reg(i), nil
		}
	}
	return 0, unknownName("BASE register", name, regNames[:])
}

// LookupXReg finds a SIMD register by its portable name (Xmm0 .. XmmF).
func LookupXReg(name string) (XReg, error) {
	for x := Xmm0; x < numXRegs; x++ {
		if x.String() == name {
			return x, nil
		}
	}
	names := make([]string, 0, numXRegs)
	for x := Xmm0; x < numXRegs; x++ {
		names = append(names, x.String())
	}
	return 0, unknownName("SIMD register", name, names)
}

// LookupMem finds an addressing mode by its portable name (Oeax, Mebp, Kesi, ...).
func LookupMem(name string) (Mem, error) {
	if m, ok := memNames[name]; ok {
		return m, nil
	}
	names := make([]string, 0, len(memNames))
	for n := range memNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return Mem{}, unknownName("addressing mode", name, names)
}

func unknownName(kind, name string, candidates []string) error {
	msg := fmt.Sprintf("unknown %s %q", kind, name)
	if s := engine.FindSimilar(name, candidates, 3); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
	}
	return newError(CategoryOperand, "", ErrSyntax, "%s", msg)
}
