package stack

import (
	"testing"

	"github.com/0xtrace/evmtrace/word256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	s := New()
	require.NoError(t, s.Push(word256.FromUint64(1)))
	require.NoError(t, s.Push(word256.FromUint64(2)))
	assert.Equal(t, 2, s.Depth())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.True(t, v.Eq(word256.FromUint64(2)))
}

func TestPopEmptyIsUnderflow(t *testing.T) {
	s := New()
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestPushFullIsOverflow(t *testing.T) {
	s := New()
	for i := 0; i < Capacity; i++ {
		require.NoError(t, s.Push(word256.FromUint64(uint64(i))))
	}
	err := s.Push(word256.FromUint64(0))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDupCopiesDepthNMinus1ToTop(t *testing.T) {
	s := New()
	require.NoError(t, s.Push(word256.FromUint64(10)))
	require.NoError(t, s.Push(word256.FromUint64(20)))
	require.NoError(t, s.Dup(2)) // copy depth 1 (value 10) to top

	top, err := s.Peek()
	require.NoError(t, err)
	assert.True(t, top.Eq(word256.FromUint64(10)))
	assert.Equal(t, 3, s.Depth())
}

func TestDupUnderflow(t *testing.T) {
	s := New()
	require.NoError(t, s.Push(word256.FromUint64(1)))
	err := s.Dup(2)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestDupOverflowWhenFull(t *testing.T) {
	s := New()
	for i := 0; i < Capacity; i++ {
		require.NoError(t, s.Push(word256.FromUint64(uint64(i))))
	}
	err := s.Dup(1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSwapExchangesTopWithDepthN(t *testing.T) {
	s := New()
	require.NoError(t, s.Push(word256.FromUint64(1)))
	require.NoError(t, s.Push(word256.FromUint64(2)))
	require.NoError(t, s.Push(word256.FromUint64(3)))
	require.NoError(t, s.Swap(2)) // swap top (3) with depth 2 (1)

	top, _ := s.PeekAt(0)
	bottom, _ := s.PeekAt(2)
	assert.True(t, top.Eq(word256.FromUint64(1)))
	assert.True(t, bottom.Eq(word256.FromUint64(3)))
}

func TestSwapUnderflow(t *testing.T) {
	s := New()
	require.NoError(t, s.Push(word256.FromUint64(1)))
	err := s.Swap(1)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	require.NoError(t, s.Push(word256.FromUint64(1)))
	clone := s.Clone()
	require.NoError(t, clone.Push(word256.FromUint64(2)))

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, 2, clone.Depth())
}
