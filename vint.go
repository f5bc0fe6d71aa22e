package rtasm

// Packed 32-bit integer arithmetic, wrapping modulo 2^32 per element.
//
// Architecture details:
//   x86-64: paddd/psubd (66 0F FE/FA), pslld/psrld/psrad xmm, imm8 (66 0F 72 /6 /2 /4)
//   POWER:  vadduwm/vsubuwm, vslw/vsrw/vsraw by a count splatted into TmmM

const (
	ppcVADDUWM  = 0x10000080
	ppcVSUBUWM  = 0x10000480
	ppcVSLW     = 0x10000184
	ppcVSRW     = 0x10000284
	ppcVSRAW    = 0x10000384
	ppcVSPLTISW = 0x1000038C
)

var (
	vAddInt = &simdOp{name: "addix", sse: sseOp{pfx: 0x66, op: 0xFE}, ppc: vmx(ppcVADDUWM)}
	vSubInt = &simdOp{name: "subix", sse: sseOp{pfx: 0x66, op: 0xFA}, ppc: vmx(ppcVSUBUWM)}
)

func (o *Out) AddixRR(xg, xs XReg) { o.simdRR(vAddInt, xg, xs) }
func (o *Out) AddixLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vAddInt, xg, ms, ds) }
func (o *Out) SubixRR(xg, xs XReg) { o.simdRR(vSubInt, xg, xs) }
func (o *Out) SubixLD(xg XReg, ms Mem, ds Disp) { o.simdLD(vSubInt, xg, ms, ds) }

type vShift struct {
	name  string
	digit uint32
	ppc   uint32
}

var (
	vShl = vShift{"shlix", 6, ppcVSLW}
	vShr = vShift{"shrix", 2, ppcVSRW}
	vShn = vShift{"shrin", 4, ppcVSRAW}
)

// ShlixRI shifts every element of XG left by IS.
func (o *Out) ShlixRI(xg XReg, is Imm) { o.vshift(vShl, xg, is) }

// ShrixRI shifts every element of XG right by IS, filling with zeros.
func (o *Out) ShrixRI(xg XReg, is Imm) { o.vshift(vShr, xg, is) }

// ShrinRI shifts every element of XG right by IS, replicating the sign bit.
func (o *Out) ShrinRI(xg XReg, is Imm) { o.vshift(vShn, xg, is) }

func (o *Out) vshift(k vShift, xg XReg, is Imm) {
	if !o.begin(k.name+"_ri", o.checkXReg(xg), o.checkImm(is),
		o.pre(is.Val() < 32, "shift count %v out of 0..31", is)) {
		return
	}
	defer o.end()
	n := is.Val() & 0x1F
	g := uint32(xg)
	if o.power() {
		tmm := o.scr.TmmM
		o.pw(ppcVSPLTISW | tmm<<21 | n<<16)
		o.pw(vx(k.ppc, g, g, tmm))
		return
	}
	if o.vex() {
		o.x86VexRR(1, 0x72, k.digit, g, g)
	} else {
		o.x86RR(0x66, false, k.digit, g, 0x0F, 0x72)
	}
	o.w.Write(byte(n))
}
