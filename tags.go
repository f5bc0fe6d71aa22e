package rtasm

import "github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"

// Tag1 picks the arithmetic-class expansion of an immediate (signed fields).
type Tag1 uint8

// Tag2 picks the logic/move-class expansion of an immediate (unsigned fields).
// It is independent of Tag1: the same value can be native for one class and
// need a scratch load for the other.
type Tag2 uint8

const (
	Tag1Native Tag1 = iota // fits the instruction field
	Tag1Short              // x86: imm8 form; POWER: 16-bit value loaded with lis+ori
	Tag1Load               // POWER: full 32-bit load into TIxx
)

const (
	Tag2Native Tag2 = iota // fits the instruction field
	Tag2Zero               // x86: 64-bit op needs a zero-extended load into TIxx
	Tag2Load               // POWER: full 32-bit load into TIxx
)

// ImmTags is the (tp1, tp2) pair an immediate class maps to on one backend.
type ImmTags struct {
	TP1 Tag1
	TP2 Tag2
}

// x86: only IC survives sign extension from imm8; imm32 is sign extended in 64-bit
// operations, so IW is loaded zero-extended instead.
var x86ImmTags = [numImmClasses]ImmTags{
	ClassIC: {Tag1Short, Tag2Native},
	ClassIW: {Tag1Native, Tag2Zero},
}

// POWER: D-form arithmetic fields are signed 16-bit, logic fields unsigned 16-bit.
var powerImmTags = [numImmClasses]ImmTags{
	ClassIH: {Tag1Short, Tag2Native},
	ClassIV: {Tag1Load, Tag2Load},
	ClassIW: {Tag1Load, Tag2Load},
}

// DispTag picks how a displacement reaches the instruction.
type DispTag uint8

const (
	DispNative DispTag = iota // fits the D-form field
	DispShort                 // 16-bit unsigned, loaded into TDxx
	DispLoad                  // 31-bit, loaded into TDxx
)

// x86 always uses disp32, so every class is native there.
var powerDispTags = [numDispClasses]DispTag{
	ClassDH: DispShort,
	ClassDV: DispLoad,
}

// TagsFor returns the tag pair of class c on the profile's backend.
func TagsFor(cfg Config, c ImmClass) ImmTags {
	if cfg.Arch == engine.ArchPower {
		return powerImmTags[c]
	}
	return x86ImmTags[c]
}

func (o *Out) immTags(i Imm) ImmTags {
	if o.power() {
		return powerImmTags[i.class]
	}
	return x86ImmTags[i.class]
}

func (o *Out) dispTag(d Disp) DispTag {
	if o.power() {
		return powerDispTags[d.class]
	}
	return DispNative
}
