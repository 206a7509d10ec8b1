package host

import (
	"github.com/0xtrace/evmtrace/address"
	"github.com/0xtrace/evmtrace/word256"
	"github.com/fatih/color"
)

type storageKey struct {
	addr [20]byte
	key  [32]byte
}

// MemoryHost is the reference Host implementation: sparse storage over
// a plain map, generalized from the teacher's
// Contract.Storage map[common.Hash]*uint256.Int (context.go) into a
// standalone collaborator keyed by (address, key) instead of being
// scoped to one contract. Not internally synchronized — concurrent
// interpreters sharing one MemoryHost must serialize their own access
// (spec §5).
type MemoryHost struct {
	contractAddr address.Address
	storage      map[storageKey]word256.Word256
	logs         []LogEntry
	debug        bool
}

// Option configures a MemoryHost at construction.
type Option func(*MemoryHost)

// WithDebugNarration enables colored stdout narration of SLOAD/SSTORE/
// Log calls, mirroring the teacher's hooks/low_level_tracer.go. Purely
// diagnostic: it never affects storage contents, log contents, or trace
// determinism.
func WithDebugNarration() Option {
	return func(h *MemoryHost) { h.debug = true }
}

// NewMemoryHost returns an empty in-memory host that reports addr as
// its own address.
func NewMemoryHost(addr address.Address, opts ...Option) *MemoryHost {
	h := &MemoryHost{
		contractAddr: addr,
		storage:      make(map[storageKey]word256.Word256),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func toKey(addr address.Address, key word256.Word256) storageKey {
	return storageKey{addr: addr.Bytes(), key: key.Bytes()}
}

// SLoad returns the value at (addr, key), or Zero if the slot was never
// set or was deleted by a zero-value SStore.
func (h *MemoryHost) SLoad(addr address.Address, key word256.Word256) word256.Word256 {
	v, ok := h.storage[toKey(addr, key)]
	if !ok {
		v = word256.Zero
	}
	if h.debug {
		color.White("    sload storage[%s][%s] = %s", addr.Hex(), key.Hex(), v.Hex())
	}
	return v
}

// SStore stores value at (addr, key); storing Zero deletes the slot so
// storage stays sparse.
func (h *MemoryHost) SStore(addr address.Address, key, value word256.Word256) {
	k := toKey(addr, key)
	if value.IsZero() {
		delete(h.storage, k)
	} else {
		h.storage[k] = value
	}
	if h.debug {
		color.White("    sstore storage[%s][%s] = %s", addr.Hex(), key.Hex(), value.Hex())
	}
}

// Log appends entry to the log list.
func (h *MemoryHost) Log(entry LogEntry) {
	h.logs = append(h.logs, entry)
	if h.debug {
		color.Magenta("    log %s topics=%d data=%d bytes", entry.Address.Hex(), len(entry.Topics), len(entry.Data))
	}
}

// Logs returns all entries appended so far, in emission order.
func (h *MemoryHost) Logs() []LogEntry {
	return h.logs
}

// Address returns the contract address this host was constructed for.
func (h *MemoryHost) Address() address.Address {
	return h.contractAddr
}
