package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	var b [20]byte
	b[19] = 0x2a
	a := FromBytes(b)
	assert.Equal(t, b, a.Bytes())
}

func TestHexRoundTrip(t *testing.T) {
	a, err := FromHex("0x000000000000000000000000000000000000002a")
	require.NoError(t, err)
	got, err := FromHex(a.Hex())
	require.NoError(t, err)
	assert.True(t, a.Eq(got))
}

func TestHexIsZeroPaddedTo40Chars(t *testing.T) {
	a, err := FromHex("2a")
	require.NoError(t, err)
	assert.Len(t, a.HexNoPrefix(), 40)
}

func TestFromHexRejectsOverLongInput(t *testing.T) {
	_, err := FromHex("00000000000000000000000000000000000000002a")
	assert.Error(t, err)
}

func TestFromHexRejectsNonHex(t *testing.T) {
	_, err := FromHex("zz")
	assert.Error(t, err)
}
