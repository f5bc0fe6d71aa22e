package rtasm

import "fmt"

// ImmClass is the width class of an immediate. Each backend turns a class into
// its own pair of encoding tags (tp1, tp2).
type ImmClass uint8

const (
	ClassIC ImmClass = iota // 7-bit, survives any sign extension
	ClassIB                 // 8-bit
	ClassIM                 // 12-bit
	ClassIG                 // 15-bit
	ClassIH                 // 16-bit
	ClassIV                 // 31-bit
	ClassIW                 // 32-bit

	numImmClasses
)

var immMasks = [numImmClasses]uint64{0x7F, 0xFF, 0xFFF, 0x7FFF, 0xFFFF, 0x7FFFFFFF, 0xFFFFFFFF}

var immClassNames = [numImmClasses]string{"IC", "IB", "IM", "IG", "IH", "IV", "IW"}

func (c ImmClass) String() string {
	if c < numImmClasses {
		return immClassNames[c]
	}
	return fmt.Sprintf("ImmClass(%d)", uint8(c))
}

// Mask returns the AND-mask applied to values of this class.
func (c ImmClass) Mask() uint64 { return immMasks[c] }

// Imm is an immediate operand: the value as written plus its class.
type Imm struct {
	raw   int64
	class ImmClass
}

func IC(v int64) Imm { return Imm{v, ClassIC} }
func IB(v int64) Imm { return Imm{v, ClassIB} }
func IM(v int64) Imm { return Imm{v, ClassIM} }
func IG(v int64) Imm { return Imm{v, ClassIG} }
func IH(v int64) Imm { return Imm{v, ClassIH} }
func IV(v int64) Imm { return Imm{v, ClassIV} }
func IW(v int64) Imm { return Imm{v, ClassIW} }

// Val returns the encoded value: the raw value truncated by the class mask.
// Out-of-range values truncate silently, the same way every time.
func (i Imm) Val() uint32 { return uint32(uint64(i.raw) & immMasks[i.class]) }

// Raw returns the value as written.
func (i Imm) Raw() int64 { return i.raw }

// Class returns the width class.
func (i Imm) Class() ImmClass { return i.class }

// Check reports ErrImmediateRange when masking changed the value.
func (i Imm) Check() error {
	if i.class >= numImmClasses {
		return newError(CategoryImmediate, "", ErrImmediateRange, "unknown immediate class %d", i.class)
	}
	if i.raw < 0 || uint64(i.raw) != uint64(i.raw)&immMasks[i.class] {
		return newError(CategoryImmediate, "", ErrImmediateRange,
			"%s(%d) does not fit mask %#x", i.class, i.raw, immMasks[i.class])
	}
	return nil
}

func (i Imm) String() string { return fmt.Sprintf("%s(%#x)", i.class, i.Val()) }

// DispClass is the width class of a displacement.
type DispClass uint8

const (
	ClassDP DispClass = iota // 12-bit
	ClassDE                  // 13-bit
	ClassDF                  // 14-bit
	ClassDG                  // 15-bit
	ClassDH                  // 16-bit
	ClassDV                  // 31-bit

	numDispClasses
)

var dispMasks = [numDispClasses]uint64{0xFFC, 0x1FFC, 0x3FFC, 0x7FFC, 0xFFFC, 0x7FFFFFFC}

var dispClassNames = [numDispClasses]string{"DP", "DE", "DF", "DG", "DH", "DV"}

func (c DispClass) String() string {
	if c < numDispClasses {
		return dispClassNames[c]
	}
	return fmt.Sprintf("DispClass(%d)", uint8(c))
}

// Mask returns the AND-mask applied to values of this class. The low two bits
// are always clear: displacements are word aligned.
func (c DispClass) Mask() uint64 { return dispMasks[c] }

// Disp is a memory displacement: the value as written plus its class.
type Disp struct {
	raw   int64
	class DispClass
}

func DP(v int64) Disp { return Disp{v, ClassDP} }
func DE(v int64) Disp { return Disp{v, ClassDE} }
func DF(v int64) Disp { return Disp{v, ClassDF} }
func DG(v int64) Disp { return Disp{v, ClassDG} }
func DH(v int64) Disp { return Disp{v, ClassDH} }
func DV(v int64) Disp { return Disp{v, ClassDV} }

// PLAIN is the displacement paired with Oeax.
var PLAIN = DP(0)

// Val returns the encoded displacement, truncated by the class mask.
func (d Disp) Val() uint32 { return uint32(uint64(d.raw) & dispMasks[d.class]) }

// Raw returns the value as written.
func (d Disp) Raw() int64 { return d.raw }

// Class returns the width class.
func (d Disp) Class() DispClass { return d.class }

// Check reports ErrDisplacementRange when masking changed the value.
func (d Disp) Check() error {
	if d.class >= numDispClasses {
		return newError(CategoryImmediate, "", ErrDisplacementRange, "unknown displacement class %d", d.class)
	}
	if d.raw < 0 || uint64(d.raw) != uint64(d.raw)&dispMasks[d.class] {
		return newError(CategoryImmediate, "", ErrDisplacementRange,
			"%s(%d) does not fit mask %#x", d.class, d.raw, dispMasks[d.class])
	}
	return nil
}

func (d Disp) String() string { return fmt.Sprintf("%s(%#x)", d.class, d.Val()) }

