package rtasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/ppc64/ppc64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

func decodePPC(t *testing.T, cfg Config, code []byte) []ppc64asm.Inst {
	t.Helper()
	require.Zero(t, len(code)%4)
	var out []ppc64asm.Inst
	for i := 0; i < len(code); i += 4 {
		inst, err := ppc64asm.Decode(code[i:i+4], wordOrder(cfg))
		require.NoError(t, err, "word %d", i/4)
		out = append(out, inst)
	}
	return out
}

func ppcOps(t *testing.T, cfg Config, code []byte) []ppc64asm.Op {
	var ops []ppc64asm.Op
	for _, inst := range decodePPC(t, cfg, code) {
		ops = append(ops, inst.Op)
	}
	return ops
}

func TestPowerSIMDGolden(t *testing.T) {
	cfg := P64(engine.BigEndian)
	code := encode(t, cfg, func(o *Out) { o.AddisRR(Xmm1, Xmm2) })
	assert.Equal(t, []uint32{0xF0211207}, words(t, cfg, code), "xvaddsp vs33,vs33,vs34")
}

func TestPowerSIMDDecodes(t *testing.T) {
	tests := []struct {
		name string
		emit func(o *Out)
		want []ppc64asm.Op
	}{
		{"move", func(o *Out) { o.MovixRR(Xmm3, Xmm4) }, []ppc64asm.Op{ppc64asm.XXLOR}},
		{"load", func(o *Out) { o.MovixLD(Xmm0, Mebp, DP(16)) }, []ppc64asm.Op{ppc64asm.LI, ppc64asm.LXVW4X}},
		{"store", func(o *Out) { o.MovixST(Xmm0, Kebp, DP(0)) },
			[]ppc64asm.Op{ppc64asm.RLDICR, ppc64asm.ADD, ppc64asm.LI, ppc64asm.STXVW4X}},
		{"add from memory", func(o *Out) { o.AddisLD(Xmm5, Mebp, DP(32)) },
			[]ppc64asm.Op{ppc64asm.LI, ppc64asm.LXVW4X, ppc64asm.XVADDSP}},
		{"sub", func(o *Out) { o.SubisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVSUBSP}},
		{"mul", func(o *Out) { o.MulisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVMULSP}},
		{"div", func(o *Out) { o.DivisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVDIVSP}},
		{"sqrt", func(o *Out) { o.SqrisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVSQRTSP}},
		{"min", func(o *Out) { o.MinisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVMINSP}},
		{"max", func(o *Out) { o.MaxisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVMAXSP}},
		{"and", func(o *Out) { o.AndixRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XXLAND}},
		{"ann", func(o *Out) { o.AnnixRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XXLANDC}},
		{"orr", func(o *Out) { o.OrrixRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XXLOR}},
		{"xor", func(o *Out) { o.XorixRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XXLXOR}},
		{"equal", func(o *Out) { o.CeqisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVCMPEQSP}},
		{"not equal", func(o *Out) { o.CneisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVCMPEQSP, ppc64asm.XXLNOR}},
		{"less", func(o *Out) { o.CltisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVCMPGTSP}},
		{"greater or equal", func(o *Out) { o.CgeisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVCMPGESP}},
		{"truncate", func(o *Out) { o.CvzisRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVCVSPSXWS}},
		{"convert", func(o *Out) { o.CvninRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.XVCVSXWSP}},
		{"integer add", func(o *Out) { o.AddixRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.VADDUWM}},
		{"integer sub", func(o *Out) { o.SubixRR(Xmm1, Xmm2) }, []ppc64asm.Op{ppc64asm.VSUBUWM}},
		{"shift left", func(o *Out) { o.ShlixRI(Xmm1, IB(3)) }, []ppc64asm.Op{ppc64asm.VSPLTISW, ppc64asm.VSLW}},
		{"shift right", func(o *Out) { o.ShrixRI(Xmm1, IB(3)) }, []ppc64asm.Op{ppc64asm.VSPLTISW, ppc64asm.VSRW}},
		{"shift arithmetic", func(o *Out) { o.ShrinRI(Xmm1, IB(3)) }, []ppc64asm.Op{ppc64asm.VSPLTISW, ppc64asm.VSRAW}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ppc64()
			assert.Equal(t, tt.want, ppcOps(t, cfg, encode(t, cfg, tt.emit)))
		})
	}
}

func TestPowerSIMDOperandOrder(t *testing.T) {
	cfg := ppc64()
	lt := decodePPC(t, cfg, encode(t, cfg, func(o *Out) { o.CltisRR(Xmm1, Xmm2) }))
	require.Len(t, lt, 1)
	// G < S is computed as S > G
	assert.Equal(t, ppc64asm.VS33, lt[0].Args[0])
	assert.Equal(t, ppc64asm.VS34, lt[0].Args[1])
	assert.Equal(t, ppc64asm.VS33, lt[0].Args[2])

	ann := decodePPC(t, cfg, encode(t, cfg, func(o *Out) { o.AnnixRR(Xmm1, Xmm2) }))
	require.Len(t, ann, 1)
	// ~G & S is S & ~G
	assert.Equal(t, ppc64asm.VS34, ann[0].Args[1])
	assert.Equal(t, ppc64asm.VS33, ann[0].Args[2])
}

func TestPowerSIMDMemoryUsesTemporary(t *testing.T) {
	cfg := ppc64()
	insts := decodePPC(t, cfg, encode(t, cfg, func(o *Out) { o.MulisLD(Xmm2, Mebp, DP(0x40)) }))
	require.Len(t, insts, 3)
	assert.Equal(t, ppc64asm.VS63, insts[1].Args[0])
	assert.Equal(t, ppc64asm.VS63, insts[2].Args[2])
	assert.Equal(t, ppc64asm.VS34, insts[2].Args[0])
}

func TestSIMDShiftCount(t *testing.T) {
	lenient := encode(t, X64(), func(o *Out) { o.ShlixRI(Xmm0, IB(33)) })
	assert.Equal(t, byte(1), lenient[len(lenient)-1], "count masked to 5 bits")

	o := NewOut(strict(X64()))
	o.ShlixRI(Xmm0, IB(32))
	assert.ErrorIs(t, o.Err(), ErrPrecondition)
	assert.Zero(t, o.Len())
}

func TestX86AVXForms(t *testing.T) {
	tests := []struct {
		name string
		emit func(o *Out)
		want []byte
	}{
		{"vsqrtps", func(o *Out) { o.SqrisRR(Xmm1, Xmm2) }, []byte{0xC5, 0xF8, 0x51, 0xCA}},
		{"vpaddd", func(o *Out) { o.AddixRR(Xmm1, Xmm2) }, []byte{0xC5, 0xF1, 0xFE, 0xCA}},
		{"vpslld", func(o *Out) { o.ShlixRI(Xmm1, IB(4)) }, []byte{0xC5, 0xF1, 0x72, 0xF1, 0x04}},
		{"vcmpltps", func(o *Out) { o.CltisRR(Xmm1, Xmm2) }, []byte{0xC5, 0xF0, 0xC2, 0xCA, 0x01}},
		{"vaddps high", func(o *Out) { o.AddisRR(Xmm9, XmmA) }, []byte{0xC4, 0x41, 0x30, 0x58, 0xCA}},
		{"vmovaps load", func(o *Out) { o.MovixLD(Xmm1, Mebp, DP(16)) }, []byte{0xC5, 0xF8, 0x28, 0x8D, 0x10, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, avx(), tt.emit))
		})
	}
}

func TestSregsRoundTrip(t *testing.T) {
	x86 := x86Ops(t, encode(t, X64(), func(o *Out) {
		o.SregsSA(Mebx, DP(0))
		o.SregsLA(Mebx, DP(0))
	}))
	require.Len(t, x86, 32)
	for _, op := range x86 {
		assert.Equal(t, x86asm.MOVAPS, op)
	}

	cfg := ppc64()
	insts := decodePPC(t, cfg, encode(t, cfg, func(o *Out) {
		o.SregsSA(Mebx, DP(0))
		o.SregsLA(Mebx, DP(0))
	}))
	require.Len(t, insts, 64)
	assert.Equal(t, ppc64asm.STXVW4X, insts[1].Op)
	assert.Equal(t, ppc64asm.VS32, insts[1].Args[0])
	// loads run backwards, XmmF first
	assert.Equal(t, ppc64asm.LXVW4X, insts[33].Op)
	assert.Equal(t, ppc64asm.VS47, insts[33].Args[0])
	assert.Equal(t, ppc64asm.VS32, insts[63].Args[0])

}

func TestSregsRejectsUnaddressableBlocks(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		emit func(o *Out)
		want error
	}{
		{"plain lenient", X64(), func(o *Out) { o.SregsSA(Oeax, PLAIN) }, ErrSyntax},
		{"plain strict", strict(X64()), func(o *Out) { o.SregsLA(Oeax, PLAIN) }, ErrSyntax},
		{"plain power", ppc64(), func(o *Out) { o.SregsSA(Oeax, PLAIN) }, ErrSyntax},
		{"last slot wraps strict", strict(X64()), func(o *Out) { o.SregsSA(Mebp, DP(0xF80)) }, ErrDisplacementRange},
		{"last slot wraps lenient", X64(), func(o *Out) { o.SregsLA(Mebp, DP(0xF80)) }, ErrDisplacementRange},
		{"last slot wraps power", ppc64(), func(o *Out) { o.SregsSA(Mebp, DH(0xFF80)) }, ErrDisplacementRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOut(tt.cfg)
			tt.emit(o)
			assert.ErrorIs(t, o.Err(), tt.want)
			assert.Zero(t, o.Len())
		})
	}
}

// sregsOffsets returns the displacement of every vector access in code.
func sregsOffsets(t *testing.T, cfg Config, code []byte) []int64 {
	t.Helper()
	var offs []int64
	if cfg.Arch == engine.ArchPower {
		for _, inst := range decodePPC(t, cfg, code) {
			if inst.Op == ppc64asm.LI {
				offs = append(offs, int64(inst.Args[1].(ppc64asm.Imm)))
			}
		}
		return offs
	}
	for _, inst := range decodeX86(t, code) {
		for _, a := range inst.Args {
			if m, ok := a.(x86asm.Mem); ok {
				offs = append(offs, m.Disp)
			}
		}
	}
	return offs
}

func TestSregsSlotsAreDistinct(t *testing.T) {
	// DP(0xF00) is the highest 12-bit base that still fits all 16 slots
	for _, cfg := range []Config{X64(), X32(), ppc64(), P32(engine.BigEndian)} {
		t.Run(cfg.String(), func(t *testing.T) {
			code := encode(t, cfg, func(o *Out) {
				o.SregsSA(Mebp, DP(0xF00))
				o.SregsLA(Mebp, DP(0xF00))
			})
			offs := sregsOffsets(t, cfg, code)
			require.Len(t, offs, 32)
			for i := 0; i < 16; i++ {
				assert.Equal(t, int64(0xF00+16*i), offs[i], "store %d", i)
				assert.Equal(t, offs[i], offs[31-i], "load mirrors store %d", i)
			}
		})
	}

	// lenient truncation moves the whole block: DP(0x1010) masks to 0x010
	moved := encode(t, X64(), func(o *Out) { o.SregsSA(Mebp, DP(0x1010)) })
	base := encode(t, X64(), func(o *Out) { o.SregsSA(Mebp, DP(0x010)) })
	assert.Equal(t, base, moved)
}
