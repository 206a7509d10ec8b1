package interpreter

import "github.com/0xtrace/evmtrace/trace"

// haltWithData pops offset then length (top = offset), charges memory
// expansion for [offset, offset+length), copies that region into
// ReturnData, and halts with reason. Shared by RETURN and REVERT, which
// are identical in structure (spec §4.7).
func (ip *Interpreter) haltWithData(reason trace.HaltReason, reasonLabel string) {
	offset, ok := ip.pop()
	if !ok {
		return
	}
	length, ok := ip.pop()
	if !ok {
		return
	}
	off := offset.Uint64()
	ln := length.Uint64()
	if !ip.chargeMemoryExpansion(off, ln, reasonLabel+" expansion") {
		return
	}
	data := ip.state.Memory.Read(off, ln)
	if ln > 0 {
		ip.trace.RecordMemoryRead(ip.state.PC, ip.state.GasRemaining, off, ln)
	}
	ip.state.ReturnData = data
	ip.state.Halted = true
	ip.state.HaltReason = reason
}

func opReturn(ip *Interpreter) {
	ip.haltWithData(trace.Return, "RETURN")
}

func opRevert(ip *Interpreter) {
	ip.haltWithData(trace.Revert, "REVERT")
}
