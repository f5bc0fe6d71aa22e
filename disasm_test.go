package rtasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

func TestDisassemblePower(t *testing.T) {
	cfg := P32(engine.BigEndian)
	code := encode(t, cfg, func(o *Out) { o.AddRI(WX, Reax, IB(5)) })
	lines, err := Disassemble(cfg, code)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "li r26,5", lines[0].Text)
	assert.Equal(t, "add r4,r4,r26", lines[1].Text)
	assert.Equal(t, 4, lines[1].Offset)
	assert.Equal(t, []byte{0x7C, 0x84, 0xD2, 0x14}, lines[1].Bytes)
}

func TestDisassembleX86(t *testing.T) {
	code := encode(t, X64(), func(o *Out) {
		o.AddRR(ZX, Reax, Recx)
		o.Label("l")
		o.JmpLB("l")
	})
	lines, err := Disassemble(X64(), code)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "add %rcx,%rax", lines[0].Text)
	assert.True(t, strings.HasPrefix(lines[1].Text, "jmp"), lines[1].Text)
	assert.Equal(t, 3, lines[1].Offset)
}

func TestDisassembleBadInput(t *testing.T) {
	lines, err := Disassemble(ppc64(), []byte{0, 0, 0, 0, 1, 2})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "(bad)", lines[1].Text)
	assert.Len(t, lines[1].Bytes, 2)

	_, err = Disassemble(Config{}, []byte{0x90})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestListing(t *testing.T) {
	lines := []Line{{Offset: 0x10, Bytes: []byte{0x01, 0xC8}, Text: "add %ecx,%eax"}}
	out := Listing(lines)
	assert.Equal(t, "    10:\t01 c8                   \tadd %ecx,%eax\n", out)
}
