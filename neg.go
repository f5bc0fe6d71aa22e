package rtasm

var opNeg = &unaryOp{family: "neg", digit: 3, flags: true, ppc: func(g uint32) uint32 { return ppcNEG | mrm(g, g, 0) }}

// NegRX negates a register: RG = -RG.
func (o *Out) NegRX(s Sub, rg Reg) { o.unaryRX(opNeg, s, rg) }

// NegMX negates memory: [MG + DG] = -[MG + DG].
func (o *Out) NegMX(s Sub, mg Mem, dg Disp) { o.unaryMX(opNeg, s, mg, dg) }
