package interpreter

import "github.com/0xtrace/evmtrace/word256"

func opLt(ip *Interpreter) {
	if !ip.chargeGas(3, "LT") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(boolWord(a.Lt(b))) {
		return
	}
	ip.advance(1)
}

func opGt(ip *Interpreter) {
	if !ip.chargeGas(3, "GT") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(boolWord(a.Gt(b))) {
		return
	}
	ip.advance(1)
}

func opEq(ip *Interpreter) {
	if !ip.chargeGas(3, "EQ") {
		return
	}
	a, b, ok := ip.popBA()
	if !ok {
		return
	}
	if !ip.push(boolWord(a.Eq(b))) {
		return
	}
	ip.advance(1)
}

func opIsZero(ip *Interpreter) {
	if !ip.chargeGas(3, "ISZERO") {
		return
	}
	a, ok := ip.pop()
	if !ok {
		return
	}
	if !ip.push(boolWord(a.IsZero())) {
		return
	}
	ip.advance(1)
}

func boolWord(b bool) word256.Word256 {
	if b {
		return word256.One()
	}
	return word256.Zero
}
