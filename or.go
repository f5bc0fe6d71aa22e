package rtasm

// OR family (orrxx, ornxx): G = G | S and G = ~G | S.

var (
	opOrr = &aluOp{family: "orr", digit: aluOr, ppc: func(g, s uint32) uint32 { return ppcOR | msm(g, g, s) }, ppcImm: ppcORI}
	opOrn = &aluOp{family: "orn", digit: aluOr, invert: true, ppc: func(g, s uint32) uint32 { return ppcORC | msm(g, s, g) }}
)

// OrrRI: RG = RG | IS
func (o *Out) OrrRI(s Sub, rg Reg, is Imm) { o.aluRI(opOrr, s, rg, is) }

// OrrMI: [MG + DG] = [MG + DG] | IS
func (o *Out) OrrMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opOrr, s, mg, dg, is) }

// OrrRR: RG = RG | RS
func (o *Out) OrrRR(s Sub, rg, rs Reg) { o.aluRR(opOrr, s, rg, rs) }

// OrrLD: RG = RG | [MS + DS]
func (o *Out) OrrLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opOrr, s, rg, ms, ds) }

// OrrST: [MG + DG] = [MG + DG] | RS
func (o *Out) OrrST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opOrr, s, rs, mg, dg) }

// OrnRI: RG = ~RG | IS
func (o *Out) OrnRI(s Sub, rg Reg, is Imm) { o.aluRI(opOrn, s, rg, is) }

// OrnMI: [MG + DG] = ~[MG + DG] | IS
func (o *Out) OrnMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opOrn, s, mg, dg, is) }

// OrnRR: RG = ~RG | RS
func (o *Out) OrnRR(s Sub, rg, rs Reg) { o.aluRR(opOrn, s, rg, rs) }

// OrnLD: RG = ~RG | [MS + DS]
func (o *Out) OrnLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opOrn, s, rg, ms, ds) }

// OrnST: [MG + DG] = ~[MG + DG] | RS
func (o *Out) OrnST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opOrn, s, rs, mg, dg) }
