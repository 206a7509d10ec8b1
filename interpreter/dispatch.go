package interpreter

import "github.com/0xtrace/evmtrace/opcode"

// dispatchTable maps every opcode byte this interpreter knows how to
// execute to its handler. A byte absent from the table (and not equal
// to opcode.INVALID, handled separately in Step) triggers an
// InvalidOpcode halt, per spec §4.5/§9.
var dispatchTable = buildDispatchTable()

func buildDispatchTable() map[byte]func(ip *Interpreter) {
	t := map[byte]func(ip *Interpreter){
		opcode.STOP:   opStop,
		opcode.ADD:    opAdd,
		opcode.MUL:    opMul,
		opcode.SUB:    opSub,
		opcode.DIV:    opDiv,
		opcode.MOD:    opMod,
		opcode.ADDMOD: opAddMod,
		opcode.MULMOD: opMulMod,
		opcode.EXP:    opExp,

		opcode.LT:     opLt,
		opcode.GT:     opGt,
		opcode.EQ:     opEq,
		opcode.ISZERO: opIsZero,
		opcode.AND:    opAnd,
		opcode.OR:     opOr,
		opcode.XOR:    opXor,
		opcode.NOT:    opNot,
		opcode.BYTE:   opByte,
		opcode.SHL:    opShl,
		opcode.SHR:    opShr,
		opcode.SAR:    opSar,

		opcode.CALLDATALOAD: opCalldataLoad,
		opcode.CALLDATASIZE: opCalldataSize,
		opcode.CALLDATACOPY: opCalldataCopy,

		opcode.POP:     opPop,
		opcode.MLOAD:   opMLoad,
		opcode.MSTORE:  opMStore,
		opcode.MSTORE8: opMStore8,
		opcode.MSIZE:   opMSize,

		opcode.SLOAD:  opSLoad,
		opcode.SSTORE: opSStore,

		opcode.JUMP:     opJump,
		opcode.JUMPI:    opJumpi,
		opcode.PC:       opPC,
		opcode.JUMPDEST: opJumpdest,

		opcode.RETURN: opReturn,
		opcode.REVERT: opRevert,
	}

	for op := opcode.PUSH1; op <= opcode.PUSH32; op++ {
		t[op] = makePush(op)
	}
	for op := opcode.DUP1; op <= opcode.DUP16; op++ {
		t[op] = makeDup(op)
	}
	for op := opcode.SWAP1; op <= opcode.SWAP16; op++ {
		t[op] = makeSwap(op)
	}
	for op := opcode.LOG0; op <= opcode.LOG4; op++ {
		t[op] = makeLog(op)
	}

	return t
}
