// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package reference

import (
	"fmt"

	"github.com/Fantom-foundation/corpus-decoder/go/arith"
	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Result is the outcome the library under test is expected to produce for a
// record when evaluated at the record's own width.
type Result struct {
	Value        arith.U512
	Remainder    arith.U512
	HasRemainder bool
}

// Compute evaluates the operation of the record in the record's width. Sums,
// differences and products wrap around, shifts by the width or more produce
// zero and signed divisions interpret the operands as two's complement numbers
// of the record's width.
func Compute(record *corpus.Record) (Result, error) {
	if !record.Op.IsValid() {
		return Result{}, fmt.Errorf("unsupported operator %v", record.Op)
	}
	if record.Op.IsDivision() && record.Y.IsZero() {
		return Result{}, ErrDivisionByZero
	}
	switch record.Width {
	case corpus.Width128:
		return compute128(record.Op, record.X.Uint128(), record.Y.Uint128()), nil
	case corpus.Width256:
		x, y := record.X.Uint256(), record.Y.Uint256()
		return compute256(record.Op, &x, &y), nil
	case corpus.Width512:
		return compute512(record.Op, record.X, record.Y), nil
	}
	return Result{}, fmt.Errorf("unsupported width %v", record.Width)
}

func compute128(op corpus.Operator, x, y uint128.Uint128) Result {
	value := func(v uint128.Uint128) Result {
		return Result{Value: arith.NewU512FromUint128(v)}
	}
	switch op {
	case corpus.OpAdd:
		return value(x.AddWrap(y))
	case corpus.OpSub:
		return value(x.SubWrap(y))
	case corpus.OpMul:
		return value(x.MulWrap(y))
	case corpus.OpShl:
		if y.Hi != 0 || y.Lo >= 128 {
			return value(uint128.Zero)
		}
		return value(x.Lsh(uint(y.Lo)))
	case corpus.OpShr:
		if y.Hi != 0 || y.Lo >= 128 {
			return value(uint128.Zero)
		}
		return value(x.Rsh(uint(y.Lo)))
	case corpus.OpDiv:
		quotient, remainder := x.QuoRem(y)
		return divResult(arith.NewU512FromUint128(quotient), arith.NewU512FromUint128(remainder))
	case corpus.OpSDiv:
		quotient, remainder := sdivrem128(x, y)
		return divResult(arith.NewU512FromUint128(quotient), arith.NewU512FromUint128(remainder))
	}
	return Result{}
}

func sdivrem128(x, y uint128.Uint128) (quotient, remainder uint128.Uint128) {
	negX, negY := x.Hi>>63 == 1, y.Hi>>63 == 1
	if negX {
		x = uint128.Zero.SubWrap(x)
	}
	if negY {
		y = uint128.Zero.SubWrap(y)
	}
	quotient, remainder = x.QuoRem(y)
	if negX != negY {
		quotient = uint128.Zero.SubWrap(quotient)
	}
	if negX {
		remainder = uint128.Zero.SubWrap(remainder)
	}
	return
}

func compute256(op corpus.Operator, x, y *uint256.Int) Result {
	z := new(uint256.Int)
	switch op {
	case corpus.OpAdd:
		z.Add(x, y)
	case corpus.OpSub:
		z.Sub(x, y)
	case corpus.OpMul:
		z.Mul(x, y)
	case corpus.OpShl:
		if y.LtUint64(256) {
			z.Lsh(x, uint(y.Uint64()))
		}
	case corpus.OpShr:
		if y.LtUint64(256) {
			z.Rsh(x, uint(y.Uint64()))
		}
	case corpus.OpDiv:
		remainder := new(uint256.Int).Mod(x, y)
		z.Div(x, y)
		return divResult(arith.NewU512FromUint256(z), arith.NewU512FromUint256(remainder))
	case corpus.OpSDiv:
		remainder := new(uint256.Int).SMod(x, y)
		z.SDiv(x, y)
		return divResult(arith.NewU512FromUint256(z), arith.NewU512FromUint256(remainder))
	}
	return Result{Value: arith.NewU512FromUint256(z)}
}

func compute512(op corpus.Operator, x, y arith.U512) Result {
	switch op {
	case corpus.OpAdd:
		return Result{Value: x.Add(y)}
	case corpus.OpSub:
		return Result{Value: x.Sub(y)}
	case corpus.OpMul:
		return Result{Value: x.Mul(y)}
	case corpus.OpShl:
		if !y.IsUint64() || y.Uint64() >= 512 {
			return Result{}
		}
		return Result{Value: x.Shl(uint(y.Uint64()))}
	case corpus.OpShr:
		if !y.IsUint64() || y.Uint64() >= 512 {
			return Result{}
		}
		return Result{Value: x.Shr(uint(y.Uint64()))}
	case corpus.OpDiv:
		return divResult(x.DivMod(y))
	case corpus.OpSDiv:
		return divResult(x.SDivMod(y))
	}
	return Result{}
}

func divResult(quotient, remainder arith.U512) Result {
	return Result{Value: quotient, Remainder: remainder, HasRemainder: true}
}
