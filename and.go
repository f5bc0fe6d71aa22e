package rtasm

// AND family (andxx, annxx). ann is the and-not of the destination: G = ~G & S.
// On POWER it is a single andc with the operands swapped.

var (
	opAnd = &aluOp{family: "and", digit: aluAnd, ppc: func(g, s uint32) uint32 { return ppcAND | msm(g, g, s) }, ppcImm: ppcANDI}
	opAnn = &aluOp{family: "ann", digit: aluAnd, invert: true, ppc: func(g, s uint32) uint32 { return ppcANDC | msm(g, s, g) }}
)

// AndRI: RG = RG & IS
func (o *Out) AndRI(s Sub, rg Reg, is Imm) { o.aluRI(opAnd, s, rg, is) }

// AndMI: [MG + DG] = [MG + DG] & IS
func (o *Out) AndMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opAnd, s, mg, dg, is) }

// AndRR: RG = RG & RS
func (o *Out) AndRR(s Sub, rg, rs Reg) { o.aluRR(opAnd, s, rg, rs) }

// AndLD: RG = RG & [MS + DS]
func (o *Out) AndLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opAnd, s, rg, ms, ds) }

// AndST: [MG + DG] = [MG + DG] & RS
func (o *Out) AndST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opAnd, s, rs, mg, dg) }

// AnnRI: RG = ~RG & IS
func (o *Out) AnnRI(s Sub, rg Reg, is Imm) { o.aluRI(opAnn, s, rg, is) }

// AnnMI: [MG + DG] = ~[MG + DG] & IS
func (o *Out) AnnMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opAnn, s, mg, dg, is) }

// AnnRR: RG = ~RG & RS
func (o *Out) AnnRR(s Sub, rg, rs Reg) { o.aluRR(opAnn, s, rg, rs) }

// AnnLD: RG = ~RG & [MS + DS]
func (o *Out) AnnLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opAnn, s, rg, ms, ds) }

// AnnST: [MG + DG] = ~[MG + DG] & RS
func (o *Out) AnnST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opAnn, s, rs, mg, dg) }
