package interpreter

import (
	"github.com/0xtrace/evmtrace/host"
	"github.com/0xtrace/evmtrace/opcode"
	"github.com/0xtrace/evmtrace/stack"
	"github.com/0xtrace/evmtrace/trace"
	"github.com/0xtrace/evmtrace/word256"
)

// Config is the recognized interpreter construction shape (spec §6):
// bytecode and initialGas and host are required, calldata defaults to
// empty.
type Config struct {
	Bytecode   []byte
	InitialGas uint64
	Calldata   []byte
	Host       host.Host
}

// Interpreter executes one piece of bytecode start to halt, recording
// every semantically meaningful action into a trace.Collector. An
// Interpreter is single-threaded and synchronous: distinct instances
// may run concurrently as long as they do not share a mutable Host
// (spec §5).
type Interpreter struct {
	bytecode   []byte
	calldata   []byte
	host       host.Host
	validDests map[uint64]struct{}

	state *MachineState
	trace *trace.Collector
}

// New constructs an Interpreter from cfg. Jump-destination analysis
// runs once, up front, and is immutable for the interpreter's lifetime
// (spec §4.6).
func New(cfg Config) *Interpreter {
	return &Interpreter{
		bytecode:   cfg.Bytecode,
		calldata:   cfg.Calldata,
		host:       cfg.Host,
		validDests: opcode.ValidJumpDests(cfg.Bytecode),
		state:      newState(cfg.InitialGas),
		trace:      trace.New(),
	}
}

// GetState returns the interpreter's MachineState.
func (ip *Interpreter) GetState() *MachineState {
	return ip.state
}

// GetStack returns the interpreter's Stack.
func (ip *Interpreter) GetStack() *stack.Stack {
	return ip.state.Stack
}

// GetTrace returns the interpreter's trace Collector.
func (ip *Interpreter) GetTrace() *trace.Collector {
	return ip.trace
}

// IsHalted reports whether execution has reached a terminal state.
func (ip *Interpreter) IsHalted() bool {
	return ip.state.Halted
}

// GetHaltReason returns the halt reason and true once halted, or the
// zero reason and false while still running.
func (ip *Interpreter) GetHaltReason() (trace.HaltReason, bool) {
	if !ip.state.Halted {
		return "", false
	}
	return ip.state.HaltReason, true
}

// Step executes at most one opcode. It returns false (making no
// progress) once the interpreter is halted, including the call that
// causes the halt.
func (ip *Interpreter) Step() bool {
	if ip.state.Halted {
		return false
	}

	if ip.state.PC >= uint64(len(ip.bytecode)) {
		ip.haltAt(trace.Stop)
		return false
	}

	op := ip.bytecode[ip.state.PC]
	ip.trace.RecordOpcodeStart(ip.state.PC, ip.state.GasRemaining, op, opcode.Mnemonic(op))

	if op == opcode.INVALID {
		ip.haltAt(trace.InvalidInstruction)
		return false
	}

	handler, ok := dispatchTable[op]
	if !ok {
		ip.haltAt(trace.InvalidOpcode)
		return false
	}

	handler(ip)

	if ip.state.Halted {
		ip.haltAt(ip.state.HaltReason)
		return false
	}
	return true
}

// Run steps until the interpreter halts.
func (ip *Interpreter) Run() {
	for ip.Step() {
	}
}

// haltAt marks the state halted with reason (idempotent if a handler
// already set it) and records the terminal Halt event.
func (ip *Interpreter) haltAt(reason trace.HaltReason) {
	ip.state.Halted = true
	ip.state.HaltReason = reason
	ip.trace.RecordHalt(ip.state.PC, ip.state.GasRemaining, reason)
}

// ---- shared handler helpers: charge/pop/push wrap the Stack/gas
// primitives with the trace recording §4.7 requires. ----

func (ip *Interpreter) chargeGas(amount uint64, reason string) bool {
	if amount > ip.state.GasRemaining {
		ip.state.Halted = true
		ip.state.HaltReason = trace.OutOfGas
		return false
	}
	ip.state.GasRemaining -= amount
	ip.trace.RecordGasCharge(ip.state.PC, ip.state.GasRemaining, amount, reason)
	return true
}

func (ip *Interpreter) pop() (word256.Word256, bool) {
	v, err := ip.state.Stack.Pop()
	if err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackUnderflow
		return word256.Zero, false
	}
	ip.trace.RecordStackPop(ip.state.PC, ip.state.GasRemaining, v)
	return v, true
}

func (ip *Interpreter) push(v word256.Word256) bool {
	if err := ip.state.Stack.Push(v); err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackOverflow
		return false
	}
	ip.trace.RecordStackPush(ip.state.PC, ip.state.GasRemaining, v)
	return true
}

// advance moves PC forward by n, the caller's opcode width.
func (ip *Interpreter) advance(n uint64) {
	ip.state.PC += n
}

// peekAt returns the stack value at depth without removing it, halting
// StackUnderflow if the stack is too shallow. The memory and log handlers
// use this to inspect the stack before charging, so their first gas
// charge precedes the pops (spec §4.7/§5: "gas charge precedes pops");
// opExp and opSStore call Stack.PeekAt directly for the same purpose.
func (ip *Interpreter) peekAt(depth int) (word256.Word256, bool) {
	v, err := ip.state.Stack.PeekAt(depth)
	if err != nil {
		ip.state.Halted = true
		ip.state.HaltReason = trace.StackUnderflow
		return word256.Zero, false
	}
	return v, true
}
