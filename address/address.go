// Package address implements the 160-bit contract/account identifier.
package address

import (
	"encoding/hex"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Address is an unsigned integer in [0, 2**160), the same 20-byte
// identifier go-ethereum uses as common.Address.
type Address struct {
	inner ethcommon.Address
}

// Zero is the all-zero address.
var Zero = Address{}

// FromBytes interprets a 20-byte big-endian array as an Address.
func FromBytes(b [20]byte) Address {
	return Address{inner: ethcommon.Address(b)}
}

// FromHex parses a hex string, with or without a "0x" prefix. Rejects
// non-hex characters and inputs longer than 40 hex characters.
func FromHex(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s) > 40 {
		return Address{}, errors.Errorf("address hex too long: %d hex chars", len(s))
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, errors.Wrap(err, "invalid address hex")
	}
	var out [20]byte
	copy(out[20-len(b):], b)
	return FromBytes(out), nil
}

// Bytes returns the big-endian 20-byte representation.
func (a Address) Bytes() [20]byte {
	return a.inner
}

// Hex returns "0x" followed by exactly 40 lowercase hex characters.
func (a Address) Hex() string {
	return "0x" + a.HexNoPrefix()
}

// HexNoPrefix returns exactly 40 lowercase hex characters, zero-padded.
func (a Address) HexNoPrefix() string {
	b := a.Bytes()
	return hex.EncodeToString(b[:])
}

// Eq reports structural equality.
func (a Address) Eq(o Address) bool {
	return a.inner == o.inner
}

// Common adapts an Address to go-ethereum's common.Address.
func (a Address) Common() ethcommon.Address {
	return a.inner
}

// FromCommon wraps a go-ethereum common.Address.
func FromCommon(c ethcommon.Address) Address {
	return Address{inner: c}
}
