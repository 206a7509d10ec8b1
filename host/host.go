// Package host defines the capability an interpreter borrows for
// persistent storage and log emission. It deliberately exposes nothing
// about how an implementation stores its data — see spec §9 "Do not
// leak the host's internal data structures into the interpreter's
// contract" — generalized from the teacher's Contract.Storage map
// collaborator (context.go, eth_client.go's ensure_storage).
package host

import (
	"github.com/0xtrace/evmtrace/address"
	"github.com/0xtrace/evmtrace/word256"
)

// LogEntry is one emitted event: an address, its indexed topics in
// declaration order, and its raw data.
type LogEntry struct {
	Address address.Address
	Topics  []word256.Word256
	Data    []byte
}

// Host is the capability a MachineState needs from its surrounding
// world: persistent storage keyed by (address, key), log emission, and
// the address code is currently executing as. Implementations must be
// deterministic relative to the sequence of calls made against them
// (spec §3).
type Host interface {
	// SLoad returns the value stored at (addr, key), or Zero if unset.
	SLoad(addr address.Address, key word256.Word256) word256.Word256
	// SStore stores value at (addr, key). Storing the zero value
	// deletes the slot; storage is sparse.
	SStore(addr address.Address, key word256.Word256, value word256.Word256)
	// Log appends an entry.
	Log(entry LogEntry)
	// Logs returns all entries appended so far, in emission order.
	Logs() []LogEntry
	// Address returns the address the interpreter borrowing this host
	// is executing as.
	Address() address.Address
}
