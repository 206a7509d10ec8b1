package interpreter

import (
	"github.com/0xtrace/evmtrace/opcode"
	"github.com/0xtrace/evmtrace/stack"
	"github.com/0xtrace/evmtrace/trace"
	"github.com/0xtrace/evmtrace/word256"
)

func opPop(ip *Interpreter) {
	if !ip.chargeGas(2, "POP") {
		return
	}
	if _, ok := ip.pop(); !ok {
		return
	}
	ip.advance(1)
}

// makePush returns the handler for PUSHn, n = opcode.PushBytes(op).
func makePush(op byte) func(ip *Interpreter) {
	n := opcode.PushBytes(op)
	return func(ip *Interpreter) {
		if !ip.chargeGas(3, opcode.Mnemonic(op)) {
			return
		}
		start := ip.state.PC + 1
		buf := make([]byte, n)
		for i := 0; i < n; i++ {
			idx := start + uint64(i)
			if idx < uint64(len(ip.bytecode)) {
				buf[i] = ip.bytecode[idx]
			}
		}
		if !ip.push(word256.FromByteSlice(buf)) {
			return
		}
		ip.advance(uint64(1 + n))
	}
}

// makeDup returns the handler for DUPn. Only one StackPush is recorded,
// since nothing is removed from the stack (spec §4.7's "pops inputs,
// pushes results" framing does not apply to pure repositioning ops).
func makeDup(op byte) func(ip *Interpreter) {
	n := opcode.DupN(op)
	return func(ip *Interpreter) {
		if !ip.chargeGas(3, opcode.Mnemonic(op)) {
			return
		}
		if err := ip.state.Stack.Dup(n); err != nil {
			ip.state.Halted = true
			ip.state.HaltReason = dupSwapHaltReason(err)
			return
		}
		top, err := ip.state.Stack.Peek()
		if err != nil {
			ip.state.Halted = true
			ip.state.HaltReason = trace.StackUnderflow
			return
		}
		ip.trace.RecordStackPush(ip.state.PC, ip.state.GasRemaining, top)
		ip.advance(1)
	}
}

// makeSwap returns the handler for SWAPn. No stack trace event is
// recorded, since a swap neither adds nor removes a value.
func makeSwap(op byte) func(ip *Interpreter) {
	n := opcode.SwapN(op)
	return func(ip *Interpreter) {
		if !ip.chargeGas(3, opcode.Mnemonic(op)) {
			return
		}
		if err := ip.state.Stack.Swap(n); err != nil {
			ip.state.Halted = true
			ip.state.HaltReason = dupSwapHaltReason(err)
			return
		}
		ip.advance(1)
	}
}

func dupSwapHaltReason(err error) trace.HaltReason {
	if err == stack.ErrOverflow {
		return trace.StackOverflow
	}
	return trace.StackUnderflow
}
