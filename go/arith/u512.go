// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arith

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
	"pgregory.net/rand"
)

// numWords is the number of 64-bit words of a U512.
const numWords = 8

// U512 is a 512-bit unsigned integer type. The API operates on values rather
// than pointers. Words are stored least significant first.
type U512 struct {
	words [numWords]uint64
}

// NewU512 creates a new U512 instance from up to 8 uint64 arguments. The
// arguments are given in the order from most significant to least significant
// by padding leading zeros as needed. No argument results in a value of zero.
func NewU512(args ...uint64) (result U512) {
	if len(args) > numWords {
		panic("Too many arguments")
	}
	offset := numWords - len(args)
	for i := 0; i < len(args); i++ {
		result.words[numWords-1-i-offset] = args[i]
	}
	return
}

// NewU512FromBytes creates a new U512 instance from up to 64 byte arguments.
// The arguments are given in the order from most significant to least
// significant by padding leading zeros as needed. No argument results in a
// value of zero.
func NewU512FromBytes(bytes ...byte) (result U512) {
	if len(bytes) > 8*numWords {
		panic("Too many arguments")
	}
	var buffer [8 * numWords]byte
	copy(buffer[len(buffer)-len(bytes):], bytes)
	for i := 0; i < numWords; i++ {
		result.words[i] = binary.BigEndian.Uint64(buffer[len(buffer)-8*(i+1):])
	}
	return
}

// NewU512FromUint256 zero-extends a holiman/uint256 value to 512 bits.
func NewU512FromUint256(value *uint256.Int) (result U512) {
	copy(result.words[:4], value[:])
	return
}

// NewU512FromUint128 zero-extends a 128-bit value to 512 bits.
func NewU512FromUint128(value uint128.Uint128) (result U512) {
	result.words[0] = value.Lo
	result.words[1] = value.Hi
	return
}

func RandU512(rnd *rand.Rand) U512 {
	var value U512
	for i := range value.words {
		value.words[i] = rnd.Uint64()
	}
	return value
}

func MaxU512() (result U512) {
	for i := range result.words {
		result.words[i] = ^uint64(0)
	}
	return
}

func (a U512) IsZero() bool {
	return a.words == [numWords]uint64{}
}

func (a U512) IsUint64() bool {
	return a.bitLen() <= 64
}

func (a U512) Uint64() uint64 {
	return a.words[0]
}

// Uint256 returns the least significant 256 bits of a.
func (a U512) Uint256() (result uint256.Int) {
	copy(result[:], a.words[:4])
	return
}

// Uint128 returns the least significant 128 bits of a.
func (a U512) Uint128() uint128.Uint128 {
	return uint128.New(a.words[0], a.words[1])
}

// IsNegative reports whether the most significant bit is set, i.e. whether a
// is negative when interpreted as a 512-bit two's complement number.
func (a U512) IsNegative() bool {
	return a.words[numWords-1]>>63 == 1
}

// BitLen returns the number of bits required to represent a.
func (a U512) BitLen() int {
	return a.bitLen()
}

func (a U512) bitLen() int {
	for i := numWords - 1; i >= 0; i-- {
		if a.words[i] != 0 {
			return 64*i + bits.Len64(a.words[i])
		}
	}
	return 0
}

func (a U512) Bytes64be() (result [8 * numWords]byte) {
	for i := 0; i < numWords; i++ {
		binary.BigEndian.PutUint64(result[len(result)-8*(i+1):], a.words[i])
	}
	return
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a U512) Cmp(b U512) int {
	for i := numWords - 1; i >= 0; i-- {
		if a.words[i] < b.words[i] {
			return -1
		}
		if a.words[i] > b.words[i] {
			return 1
		}
	}
	return 0
}

func (a U512) Eq(b U512) bool {
	return a.words == b.words
}

func (a U512) Ne(b U512) bool {
	return a.words != b.words
}

func (a U512) Lt(b U512) bool {
	return a.Cmp(b) < 0
}

func (a U512) Gt(b U512) bool {
	return a.Cmp(b) > 0
}

func (a U512) Add(b U512) (z U512) {
	var carry uint64
	for i := 0; i < numWords; i++ {
		z.words[i], carry = bits.Add64(a.words[i], b.words[i], carry)
	}
	return
}

func (a U512) Sub(b U512) (z U512) {
	var borrow uint64
	for i := 0; i < numWords; i++ {
		z.words[i], borrow = bits.Sub64(a.words[i], b.words[i], borrow)
	}
	return
}

// Mul returns the product of a and b modulo 2^512.
func (a U512) Mul(b U512) (z U512) {
	for i := 0; i < numWords; i++ {
		if a.words[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < numWords; j++ {
			hi, lo := bits.Mul64(a.words[i], b.words[j])
			var c uint64
			lo, c = bits.Add64(lo, z.words[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z.words[i+j] = lo
			carry = hi
		}
	}
	return
}

// Neg returns the two's complement negation of a, i.e. (-a) mod 2^512.
func (a U512) Neg() U512 {
	return U512{}.Sub(a)
}

func (a U512) Not() (z U512) {
	for i := range a.words {
		z.words[i] = ^a.words[i]
	}
	return
}

func (a U512) And(b U512) (z U512) {
	for i := range a.words {
		z.words[i] = a.words[i] & b.words[i]
	}
	return
}

// Shl shifts a to the left by n bits. Shifts of 512 bits or more produce zero.
func (a U512) Shl(n uint) (z U512) {
	if n >= 64*numWords {
		return
	}
	wordShift := int(n / 64)
	bitShift := n % 64
	for i := numWords - 1; i >= wordShift; i-- {
		src := i - wordShift
		z.words[i] = a.words[src] << bitShift
		if bitShift > 0 && src > 0 {
			z.words[i] |= a.words[src-1] >> (64 - bitShift)
		}
	}
	return
}

// Shr shifts a to the right by n bits. Shifts of 512 bits or more produce zero.
func (a U512) Shr(n uint) (z U512) {
	if n >= 64*numWords {
		return
	}
	wordShift := int(n / 64)
	bitShift := n % 64
	for i := 0; i+wordShift < numWords; i++ {
		src := i + wordShift
		z.words[i] = a.words[src] >> bitShift
		if bitShift > 0 && src+1 < numWords {
			z.words[i] |= a.words[src+1] << (64 - bitShift)
		}
	}
	return
}

// Truncate keeps the lowest numBits bits of a and clears all others.
func (a U512) Truncate(numBits uint) U512 {
	if numBits >= 64*numWords {
		return a
	}
	mask := NewU512(1).Shl(numBits).Sub(NewU512(1))
	return a.And(mask)
}

// Div returns the truncated quotient a/b. It panics if b is zero.
func (a U512) Div(b U512) U512 {
	q, _ := a.DivMod(b)
	return q
}

// Mod returns the remainder of a/b. It panics if b is zero.
func (a U512) Mod(b U512) U512 {
	_, r := a.DivMod(b)
	return r
}

// DivMod returns the unsigned quotient and remainder of a/b. It panics if b
// is zero.
func (a U512) DivMod(b U512) (quotient, remainder U512) {
	quotient.words, remainder.words = udivrem(a.words, b.words)
	return
}

// SDivMod interprets a and b as 512-bit two's complement numbers and returns
// the quotient truncated towards zero and a remainder carrying the sign of the
// dividend. It panics if b is zero.
func (a U512) SDivMod(b U512) (quotient, remainder U512) {
	negA, negB := a.IsNegative(), b.IsNegative()
	if negA {
		a = a.Neg()
	}
	if negB {
		b = b.Neg()
	}
	quotient, remainder = a.DivMod(b)
	if negA != negB {
		quotient = quotient.Neg()
	}
	if negA {
		remainder = remainder.Neg()
	}
	return
}

// Dec returns the decimal representation of a.
func (a U512) Dec() string {
	if a.IsZero() {
		return "0"
	}
	// Largest power of ten fitting into a single word.
	const chunk = 10_000_000_000_000_000_000
	var parts []uint64
	rest := a.words
	for rest != [numWords]uint64{} {
		var part uint64
		rest, part = divremWord(rest, wordLen(rest), chunk)
		parts = append(parts, part)
	}
	builder := strings.Builder{}
	builder.WriteString(strconv.FormatUint(parts[len(parts)-1], 10))
	for i := len(parts) - 2; i >= 0; i-- {
		builder.WriteString(fmt.Sprintf("%019d", parts[i]))
	}
	return builder.String()
}

func (a U512) String() string {
	builder := strings.Builder{}
	for i := numWords - 1; i >= 0; i-- {
		builder.WriteString(fmt.Sprintf("%016x", a.words[i]))
		if i > 0 {
			builder.WriteByte(' ')
		}
	}
	return builder.String()
}

// ToBig returns a bigInt version of a.
func (a U512) ToBig() *big.Int {
	bytes := a.Bytes64be()
	return new(big.Int).SetBytes(bytes[:])
}

// U512FromBig returns a U512 version of b. Negative numbers result in zero.
// This conversion panics if b does not fit into 512 bits.
func U512FromBig(b *big.Int) U512 {
	if b.Sign() < 0 {
		return U512{}
	}
	if b.BitLen() > 64*numWords {
		panic("big.Int has more than 512-bits.")
	}
	return NewU512FromBytes(b.Bytes()...)
}
