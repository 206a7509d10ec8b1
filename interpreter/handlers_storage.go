package interpreter

import "github.com/0xtrace/evmtrace/trace"

func opSLoad(ip *Interpreter) {
	if !ip.chargeGas(200, "SLOAD") {
		return
	}
	key, ok := ip.pop()
	if !ok {
		return
	}
	addr := ip.host.Address()
	value := ip.host.SLoad(addr, key)
	ip.trace.RecordStorageRead(ip.state.PC, ip.state.GasRemaining, addr, key, value)
	if !ip.push(value) {
		return
	}
	ip.advance(1)
}

// opSStore charges 20,000 gas when the slot transitions from zero to
// non-zero, 5,000 otherwise (spec §4.7's simplified two-case rule, no
// refunds). The current value must be known to pick the charge, so key
// and value are peeked before charging and popped only once the charge
// succeeds — the same pattern opExp uses for its dynamic gas.
func opSStore(ip *Interpreter) {
	key, err := ip.state.Stack.PeekAt(0)
	if err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackUnderflow
		return
	}
	value, err := ip.state.Stack.PeekAt(1)
	if err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackUnderflow
		return
	}

	addr := ip.host.Address()
	current := ip.host.SLoad(addr, key)
	gas := uint64(5000)
	if current.IsZero() && !value.IsZero() {
		gas = 20000
	}
	if !ip.chargeGas(gas, "SSTORE") {
		return
	}

	// Pop key then value, mirroring the teacher's opSstore.
	key, ok := ip.pop()
	if !ok {
		return
	}
	value, ok = ip.pop()
	if !ok {
		return
	}
	// The write event is recorded before the host mutation commits
	// (spec §9: this ordering is deliberate and observable).
	ip.trace.RecordStorageWrite(ip.state.PC, ip.state.GasRemaining, addr, key, value)
	ip.host.SStore(addr, key, value)
	ip.advance(1)
}
