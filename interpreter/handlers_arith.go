package interpreter

import (
	"github.com/0xtrace/evmtrace/trace"
	"github.com/0xtrace/evmtrace/word256"
)

// popBA pops the top of stack (b) then the new top (a), matching the
// "pop b then a" ordering spec §4.7 states for ADD/SUB/MUL/DIV and
// which this module extends to MOD/ADDMOD/MULMOD: the result is always
// expressed as "a op b", a being the deeper (earlier-pushed) operand.
func (ip *Interpreter) popBA() (a, b word256.Word256, ok bool) {
	b, ok = ip.pop()
	if !ok {
		return
	}
	a, ok = ip.pop()
	return
}

func opAdd(ip *Interpreter) {
	if !ip.chargeGas(3, "ADD") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Add(b)) {
		return
	}
	ip.advance(1)
}

func opSub(ip *Interpreter) {
	if !ip.chargeGas(3, "SUB") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Sub(b)) {
		return
	}
	ip.advance(1)
}

func opMul(ip *Interpreter) {
	if !ip.chargeGas(5, "MUL") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Mul(b)) {
		return
	}
	ip.advance(1)
}

func opDiv(ip *Interpreter) {
	if !ip.chargeGas(5, "DIV") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Div(b)) { // b=0 => Div returns 0, per word256.Div
		return
	}
	ip.advance(1)
}

func opMod(ip *Interpreter) {
	if !ip.chargeGas(5, "MOD") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Mod(b)) {
		return
	}
	ip.advance(1)
}

func opAddMod(ip *Interpreter) {
	if !ip.chargeGas(8, "ADDMOD") {
		return
	}
	b, ok := ip.pop()
	if !ok {
		return
	}
	a, ok := ip.pop()
	if !ok {
		return
	}
	n, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(a.AddMod(b, n)) {
		return
	}
	ip.advance(1)
}

func opMulMod(ip *Interpreter) {
	if !ip.chargeGas(8, "MULMOD") {
		return
	}
	b, ok := ip.pop()
	if !ok {
		return
	}
	a, ok := ip.pop()
	if !ok {
		return
	}
	n, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(a.MulMod(b, n)) {
		return
	}
	ip.advance(1)
}

// gasExp mirrors the teacher's gasExp (gas.go): 10 plus
// params.ExpByteEIP158 (50) per byte of the exponent's bit length.
func gasExp(exponent word256.Word256) uint64 {
	const expByteEIP158 = 50
	expByteLen := uint64((exponent.BitLen() + 7) / 8)
	return 10 + expByteLen*expByteEIP158
}

func opExp(ip *Interpreter) {
	// Dynamic gas depends on the exponent, so it must be peeked before
	// charging; popping happens only after the charge succeeds so a
	// failed charge leaves the stack untouched, per spec §7.2.
	if _, err := ip.state.Stack.Peek(); err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackUnderflow
		return
	}
	exponent, err := ip.state.Stack.PeekAt(1)
	if err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackUnderflow
		return
	}
	if !ip.chargeGas(gasExp(exponent), "EXP") {
		return
	}
	base, ok := ip.pop()
	if !ok {
		return
	}
	exponent, ok = ip.pop()
	if !ok {
		return
	}
	if !ip.push(base.Exp(exponent)) {
		return
	}
	ip.advance(1)
}
