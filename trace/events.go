// Package trace implements the append-only structured event log that
// mirrors every semantically meaningful action the interpreter takes.
// The event shapes and their JSON encoding follow spec §6 exactly;
// the "central event builder" the teacher's design notes reference is
// realized here as the Collector's Record* methods (§9: any mechanism
// producing conforming events satisfies the spec).
package trace

import (
	"github.com/0xtrace/evmtrace/address"
	"github.com/0xtrace/evmtrace/word256"
)

// HaltReason is the sum of terminal states a MachineState can halt in.
type HaltReason string

const (
	Stop                HaltReason = "STOP"
	Return              HaltReason = "RETURN"
	Revert              HaltReason = "REVERT"
	OutOfGas            HaltReason = "OUT_OF_GAS"
	InvalidOpcode       HaltReason = "INVALID_OPCODE"
	StackUnderflow      HaltReason = "STACK_UNDERFLOW"
	StackOverflow       HaltReason = "STACK_OVERFLOW"
	InvalidJump         HaltReason = "INVALID_JUMP"
	InvalidInstruction  HaltReason = "INVALID_INSTRUCTION"
)

// Kind discriminates the Event variants in their JSON "type" field.
type Kind string

const (
	KindOpcodeStart  Kind = "opcode.start"
	KindStackPush    Kind = "stack.push"
	KindStackPop     Kind = "stack.pop"
	KindMemoryWrite  Kind = "memory.write"
	KindMemoryRead   Kind = "memory.read"
	KindStorageRead  Kind = "storage.read"
	KindStorageWrite Kind = "storage.write"
	KindGasCharge    Kind = "gas.charge"
	KindJump         Kind = "jump"
	KindHalt         Kind = "halt"
	KindLog          Kind = "log"
)

// Meta carries the three fields every event variant shares: its
// sequence index, the PC it was generated at, and the gas remaining at
// the moment it was recorded.
type Meta struct {
	Index        uint64
	PC           uint64
	GasRemaining uint64
}

// Event is satisfied by every concrete trace event variant.
type Event interface {
	Kind() Kind
	meta() Meta
}

// OpcodeStart is recorded when the interpreter dispatches to a handler.
type OpcodeStart struct {
	Meta
	Opcode byte
	Name   string
}

func (e OpcodeStart) Kind() Kind  { return KindOpcodeStart }
func (e OpcodeStart) meta() Meta  { return e.Meta }

// StackPush is recorded for every value a handler pushes.
type StackPush struct {
	Meta
	Value word256.Word256
}

func (e StackPush) Kind() Kind { return KindStackPush }
func (e StackPush) meta() Meta { return e.Meta }

// StackPop is recorded for every value a handler pops.
type StackPop struct {
	Meta
	Value word256.Word256
}

func (e StackPop) Kind() Kind { return KindStackPop }
func (e StackPop) meta() Meta { return e.Meta }

// MemoryWrite is recorded for every memory mutation.
type MemoryWrite struct {
	Meta
	Offset uint64
	Data   []byte
}

func (e MemoryWrite) Kind() Kind { return KindMemoryWrite }
func (e MemoryWrite) meta() Meta { return e.Meta }

// MemoryRead is recorded for every memory read.
type MemoryRead struct {
	Meta
	Offset uint64
	Length uint64
}

func (e MemoryRead) Kind() Kind { return KindMemoryRead }
func (e MemoryRead) meta() Meta { return e.Meta }

// StorageRead is recorded before the value read via SLOAD is pushed.
type StorageRead struct {
	Meta
	Address address.Address
	Key     word256.Word256
	Value   word256.Word256
}

func (e StorageRead) Kind() Kind { return KindStorageRead }
func (e StorageRead) meta() Meta { return e.Meta }

// StorageWrite is recorded before the host mutation SSTORE triggers is
// committed (spec §4.7/§9: this ordering is observable and preserved).
type StorageWrite struct {
	Meta
	Address address.Address
	Key     word256.Word256
	Value   word256.Word256
}

func (e StorageWrite) Kind() Kind { return KindStorageWrite }
func (e StorageWrite) meta() Meta { return e.Meta }

// GasCharge is recorded for every gas deduction, baseline or dynamic.
type GasCharge struct {
	Meta
	Amount uint64
	Reason string
}

func (e GasCharge) Kind() Kind { return KindGasCharge }
func (e GasCharge) meta() Meta { return e.Meta }

// Jump is recorded by JUMP/JUMPI before the target is validated; it is
// recorded even when the jump turns out to be invalid (taken=true,
// followed by a terminal Halt{InvalidJump}), per spec §9.
type Jump struct {
	Meta
	From        uint64
	To          uint64
	Conditional bool
	Taken       bool
}

func (e Jump) Kind() Kind { return KindJump }
func (e Jump) meta() Meta { return e.Meta }

// Halt is the terminal event recorded exactly once per execution.
type Halt struct {
	Meta
	Reason HaltReason
}

func (e Halt) Kind() Kind { return KindHalt }
func (e Halt) meta() Meta { return e.Meta }

// Log is recorded by LOG0..LOG4.
type Log struct {
	Meta
	Address address.Address
	Topics  []word256.Word256
	Data    []byte
}

func (e Log) Kind() Kind { return KindLog }
func (e Log) meta() Meta { return e.Meta }
