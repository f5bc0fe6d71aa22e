package rtasm

var (
	opXor = &aluOp{family: "xor", digit: aluXor, ppc: func(g, s uint32) uint32 { return ppcXOR | msm(g, g, s) }, ppcImm: ppcXORI}
)

// XorRI: RG = RG ^ IS
func (o *Out) XorRI(s Sub, rg Reg, is Imm) { o.aluRI(opXor, s, rg, is) }

// XorMI: [MG + DG] = [MG + DG] ^ IS
func (o *Out) XorMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opXor, s, mg, dg, is) }

// XorRR: RG = RG ^ RS
func (o *Out) XorRR(s Sub, rg, rs Reg) { o.aluRR(opXor, s, rg, rs) }

// XorLD: RG = RG ^ [MS + DS]
func (o *Out) XorLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opXor, s, rg, ms, ds) }

// XorST: [MG + DG] = [MG + DG] ^ RS
func (o *Out) XorST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opXor, s, rs, mg, dg) }
