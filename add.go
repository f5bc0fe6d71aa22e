package rtasm

// ADD family. On POWER the immediate always goes through TIxx and the
// X-form add, so addwx_ri(Reax, IB(5)) is li r26,5; add r4,r4,r26.

var (
	opAdd = &aluOp{family: "add", digit: aluAdd, ppc: func(g, s uint32) uint32 { return ppcADD | mrm(g, g, s) }}
)

// AddRI: RG = RG + IS
func (o *Out) AddRI(s Sub, rg Reg, is Imm) { o.aluRI(opAdd, s, rg, is) }

// AddMI: [MG + DG] = [MG + DG] + IS
func (o *Out) AddMI(s Sub, mg Mem, dg Disp, is Imm) { o.aluMI(opAdd, s, mg, dg, is) }

// AddRR: RG = RG + RS
func (o *Out) AddRR(s Sub, rg, rs Reg) { o.aluRR(opAdd, s, rg, rs) }

// AddLD: RG = RG + [MS + DS]
func (o *Out) AddLD(s Sub, rg Reg, ms Mem, ds Disp) { o.aluLD(opAdd, s, rg, ms, ds) }

// AddST: [MG + DG] = [MG + DG] + RS
func (o *Out) AddST(s Sub, rs Reg, mg Mem, dg Disp) { o.aluST(opAdd, s, rs, mg, dg) }
