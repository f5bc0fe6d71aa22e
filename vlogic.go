package rtasm

// Packed bitwise logic on the full 128 bits.
//
//   andix: G = G & S     andps  / xxland
//   annix: G = ~G & S    andnps / xxlandc (sources swapped)
//   orrix: G = G | S     orps   / xxlor
//   xorix: G = G ^ S     xorps  / xxlxor

const (
	ppcXXLAND  = 0xF0000410
	ppcXXLANDC = 0xF0000450
	ppcXXLXOR  = 0xF00004D0
)

var (
	vAnd = &simdOp{name: "andix", sse: sseOp{op: 0x54}, ppc: vsx3(ppcXXLAND)}
	vAnn = &simdOp{name: "annix", sse: sseOp{op: 0x55}, ppc: vsx3r(ppcXXLANDC)}
	vOrr = &simdOp{name: "orrix", sse: sseOp{op: 0x56}, ppc: vsx3(ppcXXLOR)}
	vXor = &simdOp{name: "xorix", sse: sseOp{op: 0x57}, ppc: vsx3(ppcXXLXOR)}
)

func (o *Out) AndixRR(xg, xs XReg) { o.simdRR(vAnd, xg, xs) }
func (o *Out) AndixLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vAnd, xg, ms, ds) }
func (o *Out) AnnixRR(xg, xs XReg) { o.simdRR(vAnn, xg, xs) }
func (o *Out) AnnixLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vAnn, xg, ms, ds) }
func (o *Out) OrrixRR(xg, xs XReg) { o.simdRR(vOrr, xg, xs) }
func (o *Out) OrrixLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vOrr, xg, ms, ds) }
func (o *Out) XorixRR(xg, xs XReg) { o.simdRR(vXor, xg, xs) }
func (o *Out) XorixLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vXor, xg, ms, ds) }
