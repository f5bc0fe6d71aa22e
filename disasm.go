package rtasm

import (
	"fmt"
	"strings"

	"golang.org/x/arch/ppc64/ppc64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// Line is one decoded instruction of a listing.
type Line struct {
	Offset int
	Bytes  []byte
	Text   string
}

func (l Line) String() string {
	var hex strings.Builder
	for i, b := range l.Bytes {
		if i > 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02x", b)
	}
	return fmt.Sprintf("%6x:\t%-24s\t%s", l.Offset, hex.String(), l.Text)
}

// Disassemble decodes code emitted for cfg into a listing. It only serves to
// read back encoder output; undecodable bytes show up as "(bad)".
func Disassemble(cfg Config, code []byte) ([]Line, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var lines []Line
	for pc := 0; pc < len(code); {
		size, text := decodeOne(cfg, code[pc:], uint64(pc))
		lines = append(lines, Line{Offset: pc, Bytes: code[pc : pc+size], Text: text})
		pc += size
	}
	return lines, nil
}

func decodeOne(cfg Config, code []byte, pc uint64) (int, string) {
	if cfg.Arch == engine.ArchPower {
		if len(code) < 4 {
			return len(code), "(bad)"
		}
		inst, err := ppc64asm.Decode(code[:4], wordOrder(cfg))
		if err != nil {
			return 4, "(bad)"
		}
		return 4, ppc64asm.GNUSyntax(inst, pc)
	}
	inst, err := x86asm.Decode(code, 64)
	if err != nil || inst.Len == 0 {
		return 1, "(bad)"
	}
	return inst.Len, x86asm.GNUSyntax(inst, pc, nil)
}

// Listing formats a whole listing, one instruction per line.
func Listing(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
