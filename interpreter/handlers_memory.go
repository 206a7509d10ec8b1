package interpreter

import (
	"github.com/0xtrace/evmtrace/memory"
	"github.com/0xtrace/evmtrace/word256"
)

// chargeMemoryExpansion charges whatever gas growing memory to cover
// [offset, offset+length) requires, recording it under reason, then
// performs the growth. Returns false (having already halted) if the
// charge fails; memory is left ungrown in that case.
func (ip *Interpreter) chargeMemoryExpansion(offset, length uint64, reason string) bool {
	fromWords := ip.state.Memory.WordCount()
	toWords := memory.WordsNeeded(offset, length)
	if !ip.chargeGas(memory.ExpansionDelta(fromWords, toWords), reason) {
		return false
	}
	ip.state.Memory.Grow(offset, length)
	return true
}

// opMLoad peeks offset, so an empty stack halts before any gas is
// charged, then charges the 3-gas baseline and only pops for real once
// that charge succeeds — gas charge must precede the pop, per spec
// §4.7/§5. The expansion charge, which depends on the popped offset,
// follows the pop.
func opMLoad(ip *Interpreter) {
	if _, ok := ip.peekAt(0); !ok {
		return
	}
	if !ip.chargeGas(3, "MLOAD") {
		return
	}
	offset, ok := ip.pop()
	if !ok {
		return
	}
	off := offset.Uint64()
	if !ip.chargeMemoryExpansion(off, 32, "MLOAD expansion") {
		return
	}
	v := ip.state.Memory.ReadWord(off)
	ip.trace.RecordMemoryRead(ip.state.PC, ip.state.GasRemaining, off, 32)
	if !ip.push(v) {
		return
	}
	ip.advance(1)
}

// opMStore peeks offset and value before charging, then pops offset
// then value (per spec §4.7's MSTORE contract) only once the charge
// succeeds.
func opMStore(ip *Interpreter) {
	if _, ok := ip.peekAt(0); !ok {
		return
	}
	if _, ok := ip.peekAt(1); !ok {
		return
	}
	if !ip.chargeGas(3, "MSTORE") {
		return
	}
	offset, ok := ip.pop()
	if !ok {
		return
	}
	value, ok := ip.pop()
	if !ok {
		return
	}
	off := offset.Uint64()
	if !ip.chargeMemoryExpansion(off, 32, "MSTORE expansion") {
		return
	}
	ip.state.Memory.WriteWord(off, value)
	b := value.Bytes()
	ip.trace.RecordMemoryWrite(ip.state.PC, ip.state.GasRemaining, off, b[:])
	ip.advance(1)
}

// opMStore8 mirrors opMStore: peek both operands, charge, then pop.
func opMStore8(ip *Interpreter) {
	if _, ok := ip.peekAt(0); !ok {
		return
	}
	if _, ok := ip.peekAt(1); !ok {
		return
	}
	if !ip.chargeGas(3, "MSTORE8") {
		return
	}
	offset, ok := ip.pop()
	if !ok {
		return
	}
	value, ok := ip.pop()
	if !ok {
		return
	}
	off := offset.Uint64()
	if !ip.chargeMemoryExpansion(off, 1, "MSTORE8 expansion") {
		return
	}
	b := value.ByteAt(31)
	ip.state.Memory.WriteByte(off, b)
	ip.trace.RecordMemoryWrite(ip.state.PC, ip.state.GasRemaining, off, []byte{b})
	ip.advance(1)
}

func opMSize(ip *Interpreter) {
	if !ip.chargeGas(2, "MSIZE") {
		return
	}
	if !ip.push(word256.FromUint64(ip.state.Memory.Size())) {
		return
	}
	ip.advance(1)
}
