package rtasm

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// ppcSim interprets the subset of 64-bit POWER the BASE families emit. It is
// only good enough to check encoder output: no exceptions, CR0 only, XER
// ignored.
type ppcSim struct {
	r     [32]uint64
	cr0   uint8 // LT GT EQ as bits 2 1 0
	ctr   uint64
	mem   map[uint64]byte
	order binary.ByteOrder
	steps int
}

const (
	simLT = 4
	simGT = 2
	simEQ = 1
)

func newPPCSim() *ppcSim {
	return &ppcSim{mem: make(map[uint64]byte), order: binary.LittleEndian}
}

func (s *ppcSim) load(addr uint64, n int) uint64 {
	buf := make([]byte, 8)
	for i := 0; i < n; i++ {
		buf[i] = s.mem[addr+uint64(i)]
	}
	if n == 4 {
		return uint64(s.order.Uint32(buf))
	}
	return s.order.Uint64(buf)
}

func (s *ppcSim) store(addr uint64, n int, v uint64) {
	buf := make([]byte, 8)
	if n == 4 {
		s.order.PutUint32(buf, uint32(v))
	} else {
		s.order.PutUint64(buf, v)
	}
	for i := 0; i < n; i++ {
		s.mem[addr+uint64(i)] = buf[i]
	}
}

func (s *ppcSim) setCR(v int64) {
	switch {
	case v < 0:
		s.cr0 = simLT
	case v > 0:
		s.cr0 = simGT
	default:
		s.cr0 = simEQ
	}
}

func (s *ppcSim) compare(a, b uint64, signed bool) {
	switch {
	case a == b:
		s.cr0 = simEQ
	case signed && int64(a) < int64(b), !signed && a < b:
		s.cr0 = simLT
	default:
		s.cr0 = simGT
	}
}

func sext16(v uint32) uint64 { return uint64(int64(int16(v))) }

func sext32(v uint64) uint64 { return uint64(int64(int32(v))) }

// mask64 returns MASK(mb, me) in big-endian bit numbering.
func mask64(mb, me uint32) uint64 {
	start := ^uint64(0) >> mb
	end := ^uint64(0) << (63 - me)
	if mb <= me {
		return start & end
	}
	return start | end
}

func rotl32dup(v uint64, n uint32) uint64 {
	w := uint64(bits.RotateLeft32(uint32(v), int(n)))
	return w<<32 | w
}

// run executes the words of code from the start until control leaves it.
func (s *ppcSim) run(code []byte) error {
	pc := 0
	for pc >= 0 && pc < len(code) {
		s.steps++
		if s.steps > 10000 {
			return fmt.Errorf("step limit at %#x", pc)
		}
		w := s.order.Uint32(code[pc:])
		next, err := s.exec(w, pc)
		if err != nil {
			return fmt.Errorf("%#x: %08x: %w", pc, w, err)
		}
		pc = next
	}
	return nil
}

func (s *ppcSim) exec(w uint32, pc int) (int, error) {
	rt, ra, rb := w>>21&31, w>>16&31, w>>11&31
	rc := w&1 != 0
	imm := w & 0xFFFF
	base := func() uint64 {
		if ra == 0 {
			return 0
		}
		return s.r[ra]
	}
	setRA := func(v uint64) {
		s.r[ra] = v
		if rc {
			s.setCR(int64(v))
		}
	}
	switch w >> 26 {
	case 14: // addi
		s.r[rt] = base() + sext16(imm)
	case 15: // addis
		s.r[rt] = base() + sext16(imm)<<16
	case 7: // mulli
		s.r[rt] = s.r[ra] * sext16(imm)
	case 24: // ori
		s.r[ra] = s.r[rt] | uint64(imm)
	case 26: // xori
		s.r[ra] = s.r[rt] ^ uint64(imm)
	case 28: // andi.
		s.r[ra] = s.r[rt] & uint64(imm)
		s.setCR(int64(s.r[ra]))
	case 10: // cmpli
		a, b := s.r[ra], uint64(imm)
		if w&(1<<21) == 0 {
			a = uint64(uint32(a))
		}
		s.compare(a, b, false)
	case 11: // cmpi
		a, b := s.r[ra], sext16(imm)
		if w&(1<<21) == 0 {
			a = sext32(a)
		}
		s.compare(a, b, true)
	case 21: // rlwinm
		sh, mb, me := rb, w>>6&31, w>>1&31
		setRA(rotl32dup(s.r[rt], sh) & mask64(mb+32, me+32))
	case 23: // rlwnm
		mb, me := w>>6&31, w>>1&31
		setRA(rotl32dup(s.r[rt], uint32(s.r[rb]&31)) & mask64(mb+32, me+32))
	case 30:
		sh := rb | (w>>1&1)<<5
		m := (w>>6)&31 | (w>>5&1)<<5
		switch {
		case w>>1&0xF == 8: // rldcl
			setRA(bits.RotateLeft64(s.r[rt], int(s.r[rb]&63)) & mask64(m, 63))
		case w>>2&7 == 0: // rldicl
			setRA(bits.RotateLeft64(s.r[rt], int(sh)) & mask64(m, 63))
		case w>>2&7 == 1: // rldicr
			setRA(bits.RotateLeft64(s.r[rt], int(sh)) & mask64(0, m))
		default:
			return 0, fmt.Errorf("unsupported MD-form")
		}
	case 32: // lwz
		s.r[rt] = s.load(base()+sext16(imm), 4)
	case 36: // stw
		s.store(base()+sext16(imm), 4, s.r[rt])
	case 58: // ld
		s.r[rt] = s.load(base()+sext16(imm&^3), 8)
	case 62: // std
		s.store(base()+sext16(imm&^3), 8, s.r[rt])
	case 16: // bc
		bo, bi := rt, ra
		d := int(int16(imm &^ 3))
		cond := s.cr0&(4>>bi) != 0
		switch bo {
		case 12:
			if cond {
				return pc + d, nil
			}
		case 4:
			if !cond {
				return pc + d, nil
			}
		default:
			return 0, fmt.Errorf("unsupported BO %d", bo)
		}
	case 18: // b
		d := int(int32(w<<6) >> 6 &^ 3)
		return pc + d, nil
	case 19:
		if w == ppcBCTR {
			return int(s.ctr), nil
		}
		return 0, fmt.Errorf("unsupported XL-form")
	case 31:
		return pc + 4, s.exec31(w, rt, ra, rb, rc)
	default:
		return 0, fmt.Errorf("unsupported primary opcode %d", w>>26)
	}
	return pc + 4, nil
}

func (s *ppcSim) exec31(w, rt, ra, rb uint32, rc bool) error {
	a, b := s.r[ra], s.r[rb]
	setRT := func(v uint64) {
		s.r[rt] = v
		if rc {
			s.setCR(int64(v))
		}
	}
	setRA := func(v uint64) {
		s.r[ra] = v
		if rc {
			s.setCR(int64(v))
		}
	}
	xbase := func() uint64 {
		if ra == 0 {
			return b
		}
		return a + b
	}
	rs := s.r[rt]
	if w>>2&0x1FF == 413 { // sradi
		sh := rb | (w>>1&1)<<5
		setRA(uint64(int64(rs) >> sh))
		return nil
	}
	switch xo := w >> 1 & 0x3FF; xo {
	case 266:
		setRT(a + b)
	case 40:
		setRT(b - a)
	case 104:
		setRT(-a)
	case 28:
		setRA(rs & b)
	case 60:
		setRA(rs &^ b)
	case 444:
		setRA(rs | b)
	case 412:
		setRA(rs | ^b)
	case 316:
		setRA(rs ^ b)
	case 124:
		setRA(^(rs | b))
	case 986:
		setRA(sext32(rs))
	case 235:
		setRT(uint64(int64(int32(a)) * int64(int32(b))))
	case 233:
		setRT(a * b)
	case 75:
		setRT(uint64(int64(int32(a)) * int64(int32(b)) >> 32))
	case 11:
		setRT(uint64(uint32(a)) * uint64(uint32(b)) >> 32)
	case 73:
		hi, _ := bits.Mul64(a, b)
		if int64(a) < 0 {
			hi -= b
		}
		if int64(b) < 0 {
			hi -= a
		}
		setRT(hi)
	case 9:
		hi, _ := bits.Mul64(a, b)
		setRT(hi)
	case 491:
		if int32(b) == 0 {
			return fmt.Errorf("divw by zero")
		}
		setRT(uint64(uint32(int32(a) / int32(b))))
	case 459:
		if uint32(b) == 0 {
			return fmt.Errorf("divwu by zero")
		}
		setRT(uint64(uint32(a) / uint32(b)))
	case 489:
		if b == 0 {
			return fmt.Errorf("divd by zero")
		}
		setRT(uint64(int64(a) / int64(b)))
	case 457:
		if b == 0 {
			return fmt.Errorf("divdu by zero")
		}
		setRT(a / b)
	case 779:
		s.r[rt] = sext32(uint64(int32(a) % int32(b)))
	case 267:
		s.r[rt] = uint64(uint32(a) % uint32(b))
	case 777:
		s.r[rt] = uint64(int64(a) % int64(b))
	case 265:
		s.r[rt] = a % b
	case 24:
		n := b & 63
		v := uint64(0)
		if n < 32 {
			v = uint64(uint32(rs) << n)
		}
		setRA(v)
	case 536:
		n := b & 63
		v := uint64(0)
		if n < 32 {
			v = uint64(uint32(rs) >> n)
		}
		setRA(v)
	case 792:
		n := b & 63
		if n > 31 {
			n = 31
		}
		setRA(sext32(uint64(uint32(int32(rs) >> n))))
	case 824:
		setRA(sext32(uint64(uint32(int32(rs) >> rb))))
	case 27:
		n := b & 127
		v := uint64(0)
		if n < 64 {
			v = rs << n
		}
		setRA(v)
	case 539:
		n := b & 127
		v := uint64(0)
		if n < 64 {
			v = rs >> n
		}
		setRA(v)
	case 794:
		n := b & 127
		if n > 63 {
			n = 63
		}
		setRA(uint64(int64(rs) >> n))
	case 0, 32:
		l := w&(1<<21) != 0
		x, y := a, b
		if !l {
			if xo == 0 {
				x, y = sext32(x), sext32(y)
			} else {
				x, y = uint64(uint32(x)), uint64(uint32(y))
			}
		}
		s.compare(x, y, xo == 0)
	case 23:
		s.r[rt] = s.load(xbase(), 4)
	case 21:
		s.r[rt] = s.load(xbase(), 8)
	case 151:
		s.store(xbase(), 4, rs)
	case 149:
		s.store(xbase(), 8, rs)
	case 467:
		if w == ppcMTCTR|rt<<21 {
			s.ctr = rs
			return nil
		}
		return fmt.Errorf("unsupported mtspr")
	default:
		return fmt.Errorf("unsupported X-form xo %d", xo)
	}
	return nil
}
