package rtasm

import "fmt"

// Width is the operand size of a BASE subset.
type Width uint8

const (
	W32  Width = iota // w: 32-bit
	W64               // z: 64-bit
	WPtr              // x: pointer size of the profile
)

// Kind is the flavor of a BASE subset.
type Kind uint8

const (
	KindPlain  Kind = iota // x: no flag contract
	KindFlags              // z: sets flags for a following jez/jnz
	KindSigned             // n: signed variant (shr, mul, div, rem)
)

// Sub names one of the nine BASE subsets, the two letters after the family
// in mnemonics such as addwz or divxn.
type Sub struct {
	Width Width
	Kind  Kind
}

var (
	WX = Sub{W32, KindPlain}
	WZ = Sub{W32, KindFlags}
	WN = Sub{W32, KindSigned}
	ZX = Sub{W64, KindPlain}
	ZZ = Sub{W64, KindFlags}
	ZN = Sub{W64, KindSigned}
	XX = Sub{WPtr, KindPlain}
	XZ = Sub{WPtr, KindFlags}
	XN = Sub{WPtr, KindSigned}
)

var (
	widthLetters = [...]byte{'w', 'z', 'x'}
	kindLetters  = [...]byte{'x', 'z', 'n'}
)

func (s Sub) String() string {
	if !s.valid() {
		return fmt.Sprintf("Sub(%d,%d)", s.Width, s.Kind)
	}
	return string([]byte{widthLetters[s.Width], kindLetters[s.Kind]})
}

func (s Sub) valid() bool { return s.Width <= WPtr && s.Kind <= KindSigned }

// Flags reports whether the subset promises flags for jez/jnz.
func (s Sub) Flags() bool { return s.Kind == KindFlags }

// Signed reports whether the subset is a signed variant.
func (s Sub) Signed() bool { return s.Kind == KindSigned }

// ParseSub reads a two letter subset suffix ("wx", "zn", ...).
func ParseSub(suffix string) (Sub, bool) {
	if len(suffix) != 2 {
		return Sub{}, false
	}
	var s Sub
	switch suffix[0] {
	case 'w':
		s.Width = W32
	case 'z':
		s.Width = W64
	case 'x':
		s.Width = WPtr
	default:
		return Sub{}, false
	}
	switch suffix[1] {
	case 'x':
		s.Kind = KindPlain
	case 'z':
		s.Kind = KindFlags
	case 'n':
		s.Kind = KindSigned
	default:
		return Sub{}, false
	}
	return s, true
}
