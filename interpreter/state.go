// Package interpreter implements the fetch/dispatch loop, opcode
// handlers, and MachineState that together execute EVM bytecode while
// mirroring every mutation into a trace.Collector. Grounded on the
// teacher's Context/Call (context.go) and Operation/executionFunc
// (opcode.go), generalized from a multi-call debugger session into a
// single-call, single-threaded MachineState per spec §3/§5.
package interpreter

import (
	"github.com/0xtrace/evmtrace/memory"
	"github.com/0xtrace/evmtrace/stack"
	"github.com/0xtrace/evmtrace/trace"
)

// MachineState is the PC/gas/memory/stack/halt tuple spec §3 defines.
type MachineState struct {
	PC           uint64
	GasRemaining uint64
	Stack        *stack.Stack
	Memory       *memory.Memory
	ReturnData   []byte
	Halted       bool
	HaltReason   trace.HaltReason
}

func newState(initialGas uint64) *MachineState {
	return &MachineState{
		GasRemaining: initialGas,
		Stack:        stack.New(),
		Memory:       memory.New(),
	}
}

// Clone produces an independent deep copy suitable for snapshotting.
func (s *MachineState) Clone() *MachineState {
	cp := *s
	cp.Stack = s.Stack.Clone()
	cp.Memory = s.Memory.Clone()
	cp.ReturnData = append([]byte(nil), s.ReturnData...)
	return &cp
}
