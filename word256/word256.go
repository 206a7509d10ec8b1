// Package word256 implements the 256-bit unsigned integer type that is
// the universal EVM value type: every stack slot, memory word, and
// storage slot is a Word256.
package word256

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Word256 is an unsigned integer in [0, 2**256). Every constructor
// normalizes its input by masking to 256 bits, so every operation below
// is modulo 2**256 by construction.
type Word256 struct {
	inner uint256.Int
}

// Zero is the additive identity.
var Zero = Word256{}

// One is the multiplicative identity.
func One() Word256 {
	var w Word256
	w.inner.SetOne()
	return w
}

// MaxUint256 is 2**256 - 1.
func MaxUint256() Word256 {
	return FromBytes([32]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	})
}

// FromUint64 builds a Word256 from a native unsigned integer.
func FromUint64(n uint64) Word256 {
	var w Word256
	w.inner.SetUint64(n)
	return w
}

// FromBytes interprets a 32-byte big-endian array as a Word256. Lossless:
// FromBytes(w.Bytes()) == w for every w.
func FromBytes(b [32]byte) Word256 {
	var w Word256
	w.inner.SetBytes32(b[:])
	return w
}

// FromByteSlice big-endian decodes an arbitrary-length slice, left-padding
// with zero and masking to 256 bits; longer-than-32-byte inputs keep only
// the low 32 bytes, matching uint256.Int.SetBytes.
func FromByteSlice(b []byte) Word256 {
	var w Word256
	w.inner.SetBytes(b)
	return w
}

// FromHex parses a hex string, with or without a "0x" prefix. It rejects
// non-hex characters. This is a caller/construction error, never a halt
// reason (spec §7.5).
func FromHex(s string) (Word256, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return Zero, nil
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Word256{}, errors.Wrap(err, "invalid word256 hex")
	}
	return FromByteSlice(b), nil
}

// Bytes returns the big-endian, zero-padded 32-byte representation.
func (w Word256) Bytes() [32]byte {
	return w.inner.Bytes32()
}

// Hex returns "0x" followed by exactly 64 lowercase hex characters.
func (w Word256) Hex() string {
	return "0x" + w.HexNoPrefix()
}

// HexNoPrefix returns exactly 64 lowercase hex characters, zero-padded.
func (w Word256) HexNoPrefix() string {
	b := w.Bytes()
	return hex.EncodeToString(b[:])
}

// Decimal renders the value in base 10.
func (w Word256) Decimal() string {
	return w.inner.Dec()
}

// Binary renders the value as a 256-character string of '0'/'1', MSB first.
func (w Word256) Binary() string {
	b := w.Bytes()
	var sb strings.Builder
	sb.Grow(256)
	for _, by := range b {
		for bit := 7; bit >= 0; bit-- {
			if by&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// ByteAt returns the byte at the given index, index 0 being the most
// significant byte. Indices outside [0,31] yield 0.
func (w Word256) ByteAt(index int) byte {
	if index < 0 || index > 31 {
		return 0
	}
	b := w.Bytes()
	return b[index]
}

// Uint64 truncates to the low 64 bits, useful for offsets/lengths/PCs
// that are bounded well within a uint64 in practice.
func (w Word256) Uint64() uint64 {
	return w.inner.Uint64()
}

// IsZero reports whether the value is 0.
func (w Word256) IsZero() bool {
	return w.inner.IsZero()
}

// BitLen returns the number of bits required to represent the value,
//0 for the zero value.
func (w Word256) BitLen() int {
	return w.inner.BitLen()
}

// Add returns w+x mod 2**256.
func (w Word256) Add(x Word256) Word256 {
	var z Word256
	z.inner.Add(&w.inner, &x.inner)
	return z
}

// Sub returns w-x mod 2**256.
func (w Word256) Sub(x Word256) Word256 {
	var z Word256
	z.inner.Sub(&w.inner, &x.inner)
	return z
}

// Mul returns w*x mod 2**256.
func (w Word256) Mul(x Word256) Word256 {
	var z Word256
	z.inner.Mul(&w.inner, &x.inner)
	return z
}

// Div returns floor(w/x), or 0 if x is zero.
func (w Word256) Div(x Word256) Word256 {
	var z Word256
	z.inner.Div(&w.inner, &x.inner)
	return z
}

// Mod returns w mod x, or 0 if x is zero.
func (w Word256) Mod(x Word256) Word256 {
	var z Word256
	z.inner.Mod(&w.inner, &x.inner)
	return z
}

// AddMod returns (w+x) mod m, or 0 if m is zero.
func (w Word256) AddMod(x, m Word256) Word256 {
	var z Word256
	z.inner.AddMod(&w.inner, &x.inner, &m.inner)
	return z
}

// MulMod returns (w*x) mod m, or 0 if m is zero.
func (w Word256) MulMod(x, m Word256) Word256 {
	var z Word256
	z.inner.MulMod(&w.inner, &x.inner, &m.inner)
	return z
}

// Exp returns w**x mod 2**256, computed by square-and-multiply.
func (w Word256) Exp(x Word256) Word256 {
	var z Word256
	z.inner.Exp(&w.inner, &x.inner)
	return z
}

// Eq reports structural equality.
func (w Word256) Eq(x Word256) bool {
	return w.inner.Eq(&x.inner)
}

// Lt reports whether w < x, unsigned.
func (w Word256) Lt(x Word256) bool {
	return w.inner.Lt(&x.inner)
}

// Gt reports whether w > x, unsigned.
func (w Word256) Gt(x Word256) bool {
	return w.inner.Gt(&x.inner)
}

// And returns the bitwise AND of w and x.
func (w Word256) And(x Word256) Word256 {
	var z Word256
	z.inner.And(&w.inner, &x.inner)
	return z
}

// Or returns the bitwise OR of w and x.
func (w Word256) Or(x Word256) Word256 {
	var z Word256
	z.inner.Or(&w.inner, &x.inner)
	return z
}

// Xor returns the bitwise XOR of w and x.
func (w Word256) Xor(x Word256) Word256 {
	var z Word256
	z.inner.Xor(&w.inner, &x.inner)
	return z
}

// Not returns the bitwise complement of w.
func (w Word256) Not() Word256 {
	var z Word256
	z.inner.Not(&w.inner)
	return z
}

// Lsh returns w shifted left by n bits. Shifting by 256 or more yields 0.
func (w Word256) Lsh(n uint) Word256 {
	if n >= 256 {
		return Zero
	}
	var z Word256
	z.inner.Lsh(&w.inner, n)
	return z
}

// Rsh returns w shifted right by n bits (logical). Shifting by 256 or
// more yields 0.
func (w Word256) Rsh(n uint) Word256 {
	if n >= 256 {
		return Zero
	}
	var z Word256
	z.inner.Rsh(&w.inner, n)
	return z
}

// Sar returns w arithmetic-shifted right by n bits: the sign bit (the
// MSB, treating w as two's-complement) is replicated into vacated high
// bits. A shift strictly greater than 256 yields 0 for a non-negative
// value and all-ones (MaxUint256) for a negative one, matching the
// teacher's opSAR handling of the EVM SAR opcode.
func (w Word256) Sar(n uint) Word256 {
	if n > 256 {
		if w.inner.Sign() >= 0 {
			return Zero
		}
		return MaxUint256()
	}
	var z Word256
	z.inner.SRsh(&w.inner, n)
	return z
}
