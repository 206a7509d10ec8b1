package host

import (
	"testing"

	"github.com/0xtrace/evmtrace/address"
	"github.com/0xtrace/evmtrace/word256"
	"github.com/stretchr/testify/assert"
)

func TestSLoadUnsetIsZero(t *testing.T) {
	h := NewMemoryHost(address.Zero)
	got := h.SLoad(address.Zero, word256.FromUint64(1))
	assert.True(t, got.IsZero())
}

func TestSStoreThenSLoad(t *testing.T) {
	h := NewMemoryHost(address.Zero)
	h.SStore(address.Zero, word256.FromUint64(1), word256.FromUint64(42))
	got := h.SLoad(address.Zero, word256.FromUint64(1))
	assert.True(t, got.Eq(word256.FromUint64(42)))
}

func TestSStoreZeroDeletesSlot(t *testing.T) {
	h := NewMemoryHost(address.Zero)
	h.SStore(address.Zero, word256.FromUint64(1), word256.FromUint64(42))
	h.SStore(address.Zero, word256.FromUint64(1), word256.Zero)
	got := h.SLoad(address.Zero, word256.FromUint64(1))
	assert.True(t, got.IsZero())
}

func TestStorageIsScopedByAddress(t *testing.T) {
	h := NewMemoryHost(address.Zero)
	a, _ := address.FromHex("0x1")
	b, _ := address.FromHex("0x2")
	h.SStore(a, word256.FromUint64(1), word256.FromUint64(100))
	assert.True(t, h.SLoad(b, word256.FromUint64(1)).IsZero())
}

func TestLogsAccumulateInOrder(t *testing.T) {
	h := NewMemoryHost(address.Zero)
	h.Log(LogEntry{Address: address.Zero, Data: []byte{1}})
	h.Log(LogEntry{Address: address.Zero, Data: []byte{2}})
	logs := h.Logs()
	assert.Len(t, logs, 2)
	assert.Equal(t, []byte{1}, logs[0].Data)
	assert.Equal(t, []byte{2}, logs[1].Data)
}

func TestAddressReturnsConstructedAddress(t *testing.T) {
	a, _ := address.FromHex("0xc0ffee")
	h := NewMemoryHost(a)
	assert.True(t, h.Address().Eq(a))
}
