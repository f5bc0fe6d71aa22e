// Package rtasm encodes a portable instruction vocabulary into machine code
// for x86_64 (SSE and AVX) and POWER (VSX), with 32-bit and 64-bit pointer
// profiles.
//
// Every instruction family is a method on Out, named after its mnemonic:
// addwx_ri becomes AddRI(WX, ...), cmjxx_rr becomes CmjRR(XX, ...). The
// same program can also be given as text through Out.Emit and Out.EmitAll.
//
//	o := rtasm.NewOut(rtasm.P32(engine.BigEndian))
//	o.AddRI(rtasm.WX, rtasm.Reax, rtasm.IB(5))
//	if err := o.Finish(); err != nil {
//		...
//	}
//	code := o.Bytes()
//
// Operations that the target cannot do in one instruction expand into a
// short sequence through a fixed set of scratch registers (TIxx, TMxx, ...).
// The scratch registers are per Out, so separate code streams need separate
// Out values. Errors are sticky: after the first failure an Out emits nothing
// and Err reports the failure.
package rtasm
