package trace

import (
	"encoding/json"
	"testing"

	"github.com/0xtrace/evmtrace/address"
	"github.com/0xtrace/evmtrace/word256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicesAreContiguous(t *testing.T) {
	c := New()
	c.RecordOpcodeStart(0, 1000, 0x60, "PUSH1")
	c.RecordGasCharge(0, 1000, 3, "PUSH1")
	c.RecordStackPush(0, 997, word256.FromUint64(5))

	for i, e := range c.Events() {
		assert.Equal(t, uint64(i), e.meta().Index)
	}
	assert.Equal(t, uint64(3), c.NextIndex())
}

func TestJSONRoundTrip(t *testing.T) {
	c := New()
	c.RecordOpcodeStart(0, 1000, 0x60, "PUSH1")
	c.RecordGasCharge(0, 1000, 3, "PUSH1")
	c.RecordStackPush(0, 997, word256.FromUint64(5))
	addr, _ := address.FromHex("0x1")
	c.RecordStorageWrite(5, 900, addr, word256.FromUint64(0), word256.FromUint64(42))
	c.RecordLog(10, 500, addr, []word256.Word256{word256.FromUint64(1)}, []byte{0xde, 0xad})
	c.RecordHalt(11, 500, Stop)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	got := New()
	require.NoError(t, json.Unmarshal(data, got))

	assert.Equal(t, c.Len(), got.Len())
	assert.Equal(t, c.NextIndex(), got.NextIndex())
	assert.Equal(t, c.Events(), got.Events())
}

func TestStackPushValueIsZeroPadded64HexWithPrefix(t *testing.T) {
	c := New()
	c.RecordStackPush(0, 1000, word256.FromUint64(5))
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	v := raw[0]["value"].(string)
	assert.Len(t, v, 66) // "0x" + 64 hex chars
}

func TestGasChargeAmountIsDecimalString(t *testing.T) {
	c := New()
	c.RecordGasCharge(0, 1000, 3, "ADD")
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "3", raw[0]["amount"])
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.RecordHalt(0, 1000, Stop)
	clone := c.Clone()
	clone.RecordHalt(1, 999, Return)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, clone.Len())
}
