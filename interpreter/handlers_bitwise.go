package interpreter

import "github.com/0xtrace/evmtrace/word256"

func opAnd(ip *Interpreter) {
	if !ip.chargeGas(3, "AND") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.And(b)) {
		return
	}
	ip.advance(1)
}

func opOr(ip *Interpreter) {
	if !ip.chargeGas(3, "OR") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Or(b)) {
		return
	}
	ip.advance(1)
}

func opXor(ip *Interpreter) {
	if !ip.chargeGas(3, "XOR") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(a.Xor(b)) {
		return
	}
	ip.advance(1)
}

func opNot(ip *Interpreter) {
	if !ip.chargeGas(3, "NOT") {
		return
	}
	a, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(a.Not()) {
		return
	}
	ip.advance(1)
}

// byteIndex clamps a Word256 index to a sentinel out-of-range value when
// it cannot possibly address a byte in [0,31], avoiding Uint64 truncation
// of an oversized index wrapping back into range.
func byteIndex(w word256.Word256) int {
	if w.BitLen() > 8 {
		return 32
	}
	return int(w.Uint64())
}

func opByte(ip *Interpreter) {
	if !ip.chargeGas(3, "BYTE") {
		return
	}
	// Pop index (top) then value (second), per the teacher's opSHL/opBYTE
	// family: the shallower operand is always popped first.
	index, ok := ip.pop()
	if !ok {
		return
	}
	value, ok := ip.pop()
	if !ok {
		return
	}
	result := word256.FromUint64(uint64(value.ByteAt(byteIndex(index))))
	if !ip.push(result) {
		return
	}
	ip.advance(1)
}

// shiftAmount clamps a Word256 shift count to 256 once it cannot fit in a
// byte, which is already past every shift width this module supports.
func shiftAmount(w word256.Word256) uint {
	if w.BitLen() > 8 {
		return 256
	}
	return uint(w.Uint64())
}

func opShl(ip *Interpreter) {
	if !ip.chargeGas(3, "SHL") {
		return
	}
	shift, ok := ip.pop()
	if !ok {
		return
	}
	value, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(value.Lsh(shiftAmount(shift))) {
		return
	}
	ip.advance(1)
}

func opShr(ip *Interpreter) {
	if !ip.chargeGas(3, "SHR") {
		return
	}
	shift, ok := ip.pop()
	if !ok {
		return
	}
	value, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(value.Rsh(shiftAmount(shift))) {
		return
	}
	ip.advance(1)
}

func opSar(ip *Interpreter) {
	if !ip.chargeGas(3, "SAR") {
		return
	}
	shift, ok := ip.pop()
	if !ok {
		return
	}
	value, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(value.Sar(shiftAmount(shift))) {
		return
	}
	ip.advance(1)
}
