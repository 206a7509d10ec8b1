package interpreter

import "github.com/0xtrace/evmtrace/word256"

func opCalldataLoad(ip *Interpreter) {
	if !ip.chargeGas(3, "CALLDATALOAD") {
		return
	}
	offset, ok := ip.pop()
	if !ok {
		return
	}
	data := readCalldata(ip.calldata, offset.Uint64(), 32)
	var b [32]byte
	copy(b[:], data)
	if !ip.push(word256.FromBytes(b)) {
		return
	}
	ip.advance(1)
}

func opCalldataSize(ip *Interpreter) {
	if !ip.chargeGas(2, "CALLDATASIZE") {
		return
	}
	if !ip.push(word256.FromUint64(uint64(len(ip.calldata)))) {
		return
	}
	ip.advance(1)
}

// opCalldataCopy pops destOffset, srcOffset, length (top = destOffset),
// charges the per-word copy surcharge plus memory expansion, then
// copies length bytes from calldata (zero past the end) into memory.
func opCalldataCopy(ip *Interpreter) {
	if !ip.chargeGas(3, "CALLDATACOPY") {
		return
	}
	destOffset, ok := ip.pop()
	if !ok {
		return
	}
	srcOffset, ok := ip.pop()
	if !ok {
		return
	}
	length, ok := ip.pop()
	if !ok {
		return
	}
	dest := destOffset.Uint64()
	src := srcOffset.Uint64()
	length64 := length.Uint64()

	copyWords := (length64 + 31) / 32
	if !ip.chargeGas(3*copyWords, "CALLDATACOPY copy") {
		return
	}
	if !ip.chargeMemoryExpansion(dest, length64, "CALLDATACOPY expansion") {
		return
	}
	if length64 == 0 {
		ip.advance(1)
		return
	}
	data := readCalldata(ip.calldata, src, length64)
	ip.state.Memory.Write(dest, data)
	ip.trace.RecordMemoryWrite(ip.state.PC, ip.state.GasRemaining, dest, data)
	ip.advance(1)
}
