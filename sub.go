package rtasm

// SUB family: G = G - S. POWER subf takes its operands reversed.

var (
	opSub = &aluOp{family: "sub", digit: aluSub, ppc: func(g, s uint32) uint32 { return ppcSUBF | mrm(g, s, g) }}
)

// SubRI: RG = RG - IS
func (o *Out) SubRI(s Sub, rg Reg, is Imm) { o.aluRI(opSub, s, rg, is) }

// SubMI: [MG + DG] = [MG + DG] - IS
func (o *Out) SubMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opSub, s, mg, dg, is) }

// SubRR: RG = RG - RS
func (o *Out) SubRR(s Sub, rg, rs Reg) { o.aluRR(opSub, s, rg, rs) }

// SubLD: RG = RG - [MS + DS]
func (o *Out) SubLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opSub, s, rg, ms, ds) }

// SubST: [MG + DG] = [MG + DG] - RS
func (o *Out) SubST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opSub, s, rs, mg, dg) }
