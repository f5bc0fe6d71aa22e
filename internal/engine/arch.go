package engine

import (
	"fmt"
	"strings"
)

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86_64
	ArchPower
)

func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "x86_64"
	case ArchPower:
		return "power"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string (like GOARCH values)
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86_64", "amd64", "x86-64", "x64", "x32":
		return ArchX86_64, nil
	case "power", "ppc64", "ppc64le", "ppc", "p32", "p64":
		return ArchPower, nil
	default:
		return ArchUnknown, fmt.Errorf("unsupported architecture: %s (supported: x86_64, power)", s)
	}
}

// Pointer is the address width of a target profile (RT_P32 / RT_P64).
type Pointer int

const (
	P64 Pointer = iota
	P32
)

func (p Pointer) String() string {
	if p == P32 {
		return "p32"
	}
	return "p64"
}

// Bits returns the pointer width in bits.
func (p Pointer) Bits() int {
	if p == P32 {
		return 32
	}
	return 64
}

// Endian is the byte order of emitted instruction words (RT_ENDIAN).
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// ParseEndian accepts "little"/"le"/"0" and "big"/"be"/"1".
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "le", "0":
		return LittleEndian, nil
	case "big", "be", "1":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("unsupported endianness: %s (supported: little, big)", s)
	}
}

// Platform represents a target profile (architecture + pointer width + byte order)
type Platform struct {
	Arch    Arch
	Pointer Pointer
	Endian  Endian
}

// String returns the short profile name used by the headers: x32, x64, p32, p64.
func (p Platform) String() string {
	prefix := "x"
	if p.Arch == ArchPower {
		prefix = "p"
	}
	return fmt.Sprintf("%s%d", prefix, p.Pointer.Bits())
}

// FullString returns a detailed platform string
func (p Platform) FullString() string {
	return fmt.Sprintf("%s %d-bit pointers, %s-endian", p.Arch, p.Pointer.Bits(), p.Endian)
}

// ParsePlatform parses a profile name. The short forms x32, x64, p32, p64 pick the
// pointer width; a trailing "le"/"be" (p64le) picks the byte order on POWER. Plain
// ppc/ppc64 default to big-endian like their toolchains.
func ParsePlatform(s string) (Platform, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	p := Platform{Pointer: P64, Endian: LittleEndian}
	explicit := false
	switch {
	case strings.HasSuffix(s, "le"):
		s, explicit = strings.TrimSuffix(s, "le"), true
	case strings.HasSuffix(s, "be"):
		s, explicit = strings.TrimSuffix(s, "be"), true
		p.Endian = BigEndian
	}
	arch, err := ParseArch(s)
	if err != nil {
		return Platform{}, err
	}
	p.Arch = arch
	switch s {
	case "x32", "p32", "ppc":
		p.Pointer = P32
	}
	if !explicit && (s == "ppc" || s == "ppc64") {
		p.Endian = BigEndian
	}
	return p, nil
}
