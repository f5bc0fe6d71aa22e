package rtasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

func TestImmediateMasks(t *testing.T) {
	tests := []struct {
		imm  Imm
		want uint32
	}{
		{IC(0x7F), 0x7F},
		{IC(0xFF), 0x7F},
		{IB(0x1FF), 0xFF},
		{IM(0x1FFF), 0xFFF},
		{IG(0xFFFF), 0x7FFF},
		{IH(0x12345), 0x2345},
		{IV(0xFFFFFFFF), 0x7FFFFFFF},
		{IW(-1), 0xFFFFFFFF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.imm.Val(), tt.imm.String())
		// masking is idempotent
		again := Imm{int64(tt.imm.Val()), tt.imm.Class()}
		assert.Equal(t, tt.want, again.Val())
		assert.NoError(t, again.Check())
	}
}

func TestImmediateCheck(t *testing.T) {
	assert.NoError(t, IH(0xFFFF).Check())
	assert.ErrorIs(t, IH(0x10000).Check(), ErrImmediateRange)
	assert.ErrorIs(t, IB(-1).Check(), ErrImmediateRange)
	assert.ErrorIs(t, Imm{1, numImmClasses}.Check(), ErrImmediateRange)
	assert.Equal(t, int64(-1), IB(-1).Raw())
}

func TestDisplacementMasks(t *testing.T) {
	assert.Equal(t, uint32(0xFFC), DP(0xFFF).Val())
	assert.Equal(t, uint32(0x1000), DE(0x1000).Val())
	assert.Equal(t, uint32(0x7FFFFFFC), DV(0x7FFFFFFF).Val())
	assert.NoError(t, DH(0xFFFC).Check())
	assert.ErrorIs(t, DP(0x1000).Check(), ErrDisplacementRange)
	assert.ErrorIs(t, DP(2).Check(), ErrDisplacementRange, "displacements are word aligned")
	assert.Equal(t, "DF(0x3000)", DF(0x3000).String())
}

func TestTagsPerBackend(t *testing.T) {
	x86, power := X64(), P64(engine.LittleEndian)

	// the pair is independent: x86 IC is short for arithmetic, native for logic
	assert.Equal(t, ImmTags{Tag1Short, Tag2Native}, TagsFor(x86, ClassIC))
	assert.Equal(t, ImmTags{Tag1Native, Tag2Zero}, TagsFor(x86, ClassIW))
	assert.Equal(t, ImmTags{Tag1Native, Tag2Native}, TagsFor(x86, ClassIH))

	assert.Equal(t, ImmTags{Tag1Short, Tag2Native}, TagsFor(power, ClassIH))
	assert.Equal(t, ImmTags{Tag1Load, Tag2Load}, TagsFor(power, ClassIV))
	assert.Equal(t, ImmTags{Tag1Native, Tag2Native}, TagsFor(power, ClassIG))
}

func TestImmediateClassesEncodeDifferently(t *testing.T) {
	// the same value takes a different path depending on its class
	cfg := ppc64()
	ib := words(t, cfg, encode(t, cfg, func(o *Out) { o.MovRI(ZX, Reax, IB(5)) }))
	iw := words(t, cfg, encode(t, cfg, func(o *Out) { o.MovRI(ZX, Reax, IW(5)) }))
	assert.Len(t, ib, 1)
	assert.Len(t, iw, 2)
}

func TestParseSub(t *testing.T) {
	for _, s := range []Sub{WX, WZ, WN, ZX, ZZ, ZN, XX, XZ, XN} {
		got, ok := ParseSub(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	for _, bad := range []string{"", "w", "wxx", "qx", "wq"} {
		_, ok := ParseSub(bad)
		assert.False(t, ok, bad)
	}
	assert.True(t, WZ.Flags())
	assert.True(t, ZN.Signed())
	assert.False(t, XX.Flags())
}

func TestRegisterLookup(t *testing.T) {
	r, err := LookupReg("Reg08")
	require.NoError(t, err)
	assert.Equal(t, Reg08, r)

	_, err = LookupReg("Reax2")
	require.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), "did you mean Reax")

	x, err := LookupXReg("XmmF")
	require.NoError(t, err)
	assert.Equal(t, 15, x.Index())

	m, err := LookupMem("Kesi")
	require.NoError(t, err)
	assert.Equal(t, Resi, m.Base())
	assert.Equal(t, uint8(4), m.Scale())
	_, idx := m.Index()
	assert.True(t, idx)

	assert.Equal(t, "Reax", RegNames()[0])
	assert.Len(t, RegNames(), 15)
}

func TestHardwareRegisters(t *testing.T) {
	assert.Equal(t, uint32(4), HardwareReg(engine.ArchPower, Reax))
	assert.Equal(t, uint32(1), HardwareReg(engine.ArchPower, Resp))
	assert.Equal(t, uint32(20), HardwareReg(engine.ArchPower, Reg14))
	assert.Equal(t, uint32(14), HardwareReg(engine.ArchX86_64, Reg14))

	s := ScratchFor(engine.ArchPower)
	assert.Equal(t, uint32(0), s.TZxx)
	assert.Equal(t, uint32(31), s.TmmM)
	assert.Equal(t, uint32(15), ScratchFor(engine.ArchX86_64).TIxx)

	// scratch never aliases a portable register
	for r := Reax; r < numRegs; r++ {
		hw := HardwareReg(engine.ArchPower, r)
		for _, t2 := range []uint32{s.TLxx, s.TRxx, s.TIxx, s.TDxx, s.TPxx, s.TMxx, s.TWxx, s.TZxx} {
			assert.NotEqual(t, t2, hw, "%v", r)
		}
	}
}
