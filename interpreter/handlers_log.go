package interpreter

import (
	"github.com/0xtrace/evmtrace/host"
	"github.com/0xtrace/evmtrace/opcode"
	"github.com/0xtrace/evmtrace/word256"
)

// makeLog returns the handler for LOGt, t = opcode.LogTopicCount(op).
// Gas is 375 + t*375 + 8*length plus memory expansion (spec §4.7). The
// handler pops offset, length, then the t topics in declaration order.
func makeLog(op byte) func(ip *Interpreter) {
	t := opcode.LogTopicCount(op)
	mnemonic := opcode.Mnemonic(op)
	return func(ip *Interpreter) {
		// Peek offset, length, and the t topics (gas depends on length
		// and t) before charging; pop for real only once the charge
		// succeeds, so GasCharge precedes every StackPop (spec §4.7/§5).
		if _, ok := ip.peekAt(0); !ok {
			return
		}
		length, ok := ip.peekAt(1)
		if !ok {
			return
		}
		for i := 0; i < t; i++ {
			if _, ok := ip.peekAt(2 + i); !ok {
				return
			}
		}

		ln := length.Uint64()
		gas := uint64(375) + uint64(t)*375 + 8*ln
		if !ip.chargeGas(gas, mnemonic) {
			return
		}

		offset, ok := ip.pop()
		if !ok {
			return
		}
		if _, ok := ip.pop(); !ok { // length, already read above
			return
		}
		topics := make([]word256.Word256, t)
		for i := 0; i < t; i++ {
			topic, ok := ip.pop()
			if !ok {
				return
			}
			topics[i] = topic
		}

		off := offset.Uint64()
		if !ip.chargeMemoryExpansion(off, ln, mnemonic+" expansion") {
			return
		}

		data := ip.state.Memory.Read(off, ln)
		addr := ip.host.Address()
		ip.trace.RecordLog(ip.state.PC, ip.state.GasRemaining, addr, topics, data)
		ip.host.Log(host.LogEntry{Address: addr, Topics: topics, Data: data})
		ip.advance(1)
	}
}
