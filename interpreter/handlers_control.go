package interpreter

import (
	"github.com/0xtrace/evmtrace/trace"
	"github.com/0xtrace/evmtrace/word256"
)

// opStop halts immediately with no gas charge, matching the golden
// trace shape in spec §8 scenario 1 (OpcodeStart, then Halt, with no
// gas.charge event in between).
func opStop(ip *Interpreter) {
	ip.state.Halted = true
	ip.state.HaltReason = trace.Stop
}

// opJumpdest is a pure marker: it costs gas but has no operand effect.
func opJumpdest(ip *Interpreter) {
	if !ip.chargeGas(1, "JUMPDEST") {
		return
	}
	ip.advance(1)
}

// opPC pushes the PC value of the PC instruction itself, i.e. its value
// before the post-increment that advances past it.
func opPC(ip *Interpreter) {
	if !ip.chargeGas(2, "PC") {
		return
	}
	if !ip.push(word256.FromUint64(ip.state.PC)) {
		return
	}
	ip.advance(1)
}

// jumpTarget validates dest against the bytecode length and the
// precomputed set of valid JUMPDEST positions (spec §4.6).
func (ip *Interpreter) jumpTarget(dest uint64) bool {
	if dest >= uint64(len(ip.bytecode)) {
		return false
	}
	_, ok := ip.validDests[dest]
	return ok
}

// opJump pops dest and records the Jump event before validating it, per
// spec §9: the Jump event is recorded even when the jump turns out to
// be invalid, with taken=true; the terminal Halt{InvalidJump} follows.
func opJump(ip *Interpreter) {
	if !ip.chargeGas(8, "JUMP") {
		return
	}
	dest, ok := ip.pop()
	if !ok {
		return
	}
	destU := dest.Uint64()
	ip.trace.RecordJump(ip.state.PC, ip.state.GasRemaining, ip.state.PC, destU, false, true)
	if !ip.jumpTarget(destU) {
		ip.state.Halted = true
		ip.state.HaltReason = trace.InvalidJump
		return
	}
	ip.state.PC = destU
}

// opJumpi pops condition (top) then dest, records the Jump event, and
// either falls through (condition=0) or validates/takes the jump.
func opJumpi(ip *Interpreter) {
	if !ip.chargeGas(10, "JUMPI") {
		return
	}
	cond, ok := ip.pop()
	if !ok {
		return
	}
	dest, ok := ip.pop()
	if !ok {
		return
	}
	destU := dest.Uint64()
	taken := !cond.IsZero()
	ip.trace.RecordJump(ip.state.PC, ip.state.GasRemaining, ip.state.PC, destU, true, taken)
	if !taken {
		ip.advance(1)
		return
	}
	if !ip.jumpTarget(destU) {
		ip.state.Halted = true
		ip.state.HaltReason = trace.InvalidJump
		return
	}
	ip.state.PC = destU
}
