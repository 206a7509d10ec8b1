// Package memory implements the expandable byte-addressable memory used
// by MLOAD/MSTORE/MSTORE8/CALLDATACOPY/RETURN/REVERT/LOG*. Grounded on
// the teacher's Memory type (memory.go: Set/Set32/Resize/GetPtr), with
// growth constrained to whole 32-byte words as the spec requires.
package memory

import (
	"github.com/0xtrace/evmtrace/word256"
)

// WordSize is the granularity memory always grows by.
const WordSize = 32

// Memory is a byte sequence whose logical size is always a multiple of
// 32 bytes. It grows but never shrinks within a single execution.
type Memory struct {
	store []byte
}

// New returns an empty memory.
func New() *Memory {
	return &Memory{}
}

// Size returns the current logical size in bytes; always a multiple of 32.
func (m *Memory) Size() uint64 {
	return uint64(len(m.store))
}

// WordCount returns the current size in 32-byte words.
func (m *Memory) WordCount() uint64 {
	return m.Size() / WordSize
}

// WordsNeeded returns the number of 32-byte words required to cover
// [offset, offset+length), i.e. ceil((offset+length)/32). Returns 0 if
// length is 0 (a zero-length access never forces growth).
func WordsNeeded(offset, length uint64) uint64 {
	if length == 0 {
		return 0
	}
	total := offset + length
	return (total + WordSize - 1) / WordSize
}

// Grow expands the memory, if necessary, to cover at least
// WordsNeeded(offset, length) words. Growth is in whole words and is
// idempotent: calling Grow with a region already covered is a no-op.
func (m *Memory) Grow(offset, length uint64) {
	if length == 0 {
		return
	}
	needWords := WordsNeeded(offset, length)
	needBytes := needWords * WordSize
	if needBytes > m.Size() {
		m.store = append(m.store, make([]byte, needBytes-m.Size())...)
	}
}

// Read returns a copy of length bytes starting at offset, auto-expanding
// the memory first. A length-0 read returns an empty slice and never
// expands memory.
func (m *Memory) Read(offset, length uint64) []byte {
	if length == 0 {
		return []byte{}
	}
	m.Grow(offset, length)
	out := make([]byte, length)
	copy(out, m.store[offset:offset+length])
	return out
}

// Write copies data into memory starting at offset, auto-expanding
// first. The written region is exactly len(data) bytes.
func (m *Memory) Write(offset uint64, data []byte) {
	if len(data) == 0 {
		return
	}
	m.Grow(offset, uint64(len(data)))
	copy(m.store[offset:offset+uint64(len(data))], data)
}

// WriteWord writes a full 32-byte big-endian word at offset.
func (m *Memory) WriteWord(offset uint64, w word256.Word256) {
	b := w.Bytes()
	m.Write(offset, b[:])
}

// WriteByte writes a single byte at offset, auto-expanding first.
func (m *Memory) WriteByte(offset uint64, b byte) {
	m.Write(offset, []byte{b})
}

// ReadWord returns the 32-byte big-endian word at offset as a Word256,
// auto-expanding first.
func (m *Memory) ReadWord(offset uint64) word256.Word256 {
	var b [32]byte
	copy(b[:], m.Read(offset, 32))
	return word256.FromBytes(b)
}

// Clone returns an independent deep copy.
func (m *Memory) Clone() *Memory {
	cp := make([]byte, len(m.store))
	copy(cp, m.store)
	return &Memory{store: cp}
}

// Data returns the backing slice directly, for callers that need a
// read-only view without a copy.
func (m *Memory) Data() []byte {
	return m.store
}
