package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMnemonicFixed(t *testing.T) {
	assert.Equal(t, "ADD", Mnemonic(ADD))
	assert.Equal(t, "JUMPDEST", Mnemonic(JUMPDEST))
}

func TestMnemonicPushDupSwapLog(t *testing.T) {
	assert.Equal(t, "PUSH1", Mnemonic(PUSH1))
	assert.Equal(t, "PUSH32", Mnemonic(PUSH32))
	assert.Equal(t, "DUP16", Mnemonic(DUP16))
	assert.Equal(t, "SWAP1", Mnemonic(SWAP1))
	assert.Equal(t, "LOG4", Mnemonic(LOG4))
}

func TestMnemonicUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN(0x0C)", Mnemonic(0x0C))
}

func TestPushBytes(t *testing.T) {
	assert.Equal(t, 1, PushBytes(PUSH1))
	assert.Equal(t, 32, PushBytes(PUSH32))
}

func TestJumpdestScanSkipsPushImmediateData(t *testing.T) {
	// PUSH1 0x5B, then a real JUMPDEST at index 2.
	code := []byte{PUSH1, JUMPDEST, JUMPDEST}
	dests := ValidJumpDests(code)

	_, atOne := dests[1]
	_, atTwo := dests[2]
	assert.False(t, atOne, "0x5B inside PUSH1's immediate data must not be a valid target")
	assert.True(t, atTwo)
}

func TestJumpdestScanEmptyCode(t *testing.T) {
	assert.Empty(t, ValidJumpDests(nil))
}
