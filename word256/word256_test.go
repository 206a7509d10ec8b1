package word256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWraps(t *testing.T) {
	got := MaxUint256().Add(One())
	assert.True(t, got.IsZero())
}

func TestSubUnderflowWraps(t *testing.T) {
	got := Zero.Sub(One())
	assert.True(t, got.Eq(MaxUint256()))
}

func TestMulWrapsToMaxMinusOne(t *testing.T) {
	got := MaxUint256().Mul(FromUint64(2))
	want := MaxUint256().Sub(One())
	assert.True(t, got.Eq(want))
}

func TestDivByZeroIsZero(t *testing.T) {
	assert.True(t, FromUint64(42).Div(Zero).IsZero())
	assert.True(t, Zero.Div(Zero).IsZero())
}

func TestModByZeroIsZero(t *testing.T) {
	assert.True(t, FromUint64(42).Mod(Zero).IsZero())
}

func TestShiftByAtLeast256IsZero(t *testing.T) {
	v := FromUint64(1)
	assert.True(t, v.Lsh(256).IsZero())
	assert.True(t, v.Lsh(257).IsZero())
	assert.True(t, v.Rsh(256).IsZero())
}

func TestBytesRoundTrip(t *testing.T) {
	w := FromUint64(0xdeadbeef)
	assert.True(t, FromBytes(w.Bytes()).Eq(w))
}

func TestHexRoundTrip(t *testing.T) {
	w := FromUint64(0x2a)
	got, err := FromHex(w.Hex())
	require.NoError(t, err)
	assert.True(t, got.Eq(w))
}

func TestHexIsZeroPaddedTo64Chars(t *testing.T) {
	w := FromUint64(0x2a)
	assert.Len(t, w.HexNoPrefix(), 64)
	assert.Equal(t, "000000000000000000000000000000000000000000000000000000000000002a", w.HexNoPrefix())
}

func TestFromHexAcceptsWithAndWithoutPrefix(t *testing.T) {
	a, err := FromHex("0x2a")
	require.NoError(t, err)
	b, err := FromHex("2a")
	require.NoError(t, err)
	assert.True(t, a.Eq(b))
}

func TestFromHexRejectsNonHex(t *testing.T) {
	_, err := FromHex("0xzz")
	assert.Error(t, err)
}

func TestByteAtMostSignificantFirst(t *testing.T) {
	w := FromUint64(0x0102)
	assert.Equal(t, byte(0x01), w.ByteAt(30))
	assert.Equal(t, byte(0x02), w.ByteAt(31))
	assert.Equal(t, byte(0), w.ByteAt(0))
	assert.Equal(t, byte(0), w.ByteAt(32))
	assert.Equal(t, byte(0), w.ByteAt(-1))
}

func TestBitwiseOps(t *testing.T) {
	a, b := FromUint64(0b1100), FromUint64(0b1010)
	assert.Equal(t, uint64(0b1000), a.And(b).Uint64())
	assert.Equal(t, uint64(0b1110), a.Or(b).Uint64())
	assert.Equal(t, uint64(0b0110), a.Xor(b).Uint64())
}

func TestSarPreservesSignOnFullShift(t *testing.T) {
	neg := MaxUint256() // -1 in two's complement
	assert.True(t, neg.Sar(300).Eq(MaxUint256()))
	assert.True(t, Zero.Sar(300).IsZero())
}

func TestDecimalAndBinary(t *testing.T) {
	w := FromUint64(5)
	assert.Equal(t, "5", w.Decimal())
	assert.Equal(t, 256, len(w.Binary()))
	assert.Equal(t, "101", w.Binary()[253:])
}
