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
	"github.com/Fantom-foundation/corpus-decoder/go/arith"
	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
)

// ErrDivisionByZero is reported for division records with a zero divisor.
// No reference result exists for those.
const ErrDivisionByZero = arith.ConstErr("division by zero")

// Vector is a division test case as consumed by the regression tests of the
// library under test.
type Vector struct {
	X         arith.U512
	Y         arith.U512
	Quotient  arith.U512
	Remainder arith.U512
}

// Divide computes the unsigned quotient and remainder of x/y.
func Divide(x, y arith.U512) (Vector, error) {
	if y.IsZero() {
		return Vector{}, ErrDivisionByZero
	}
	quotient, remainder := x.DivMod(y)
	return Vector{X: x, Y: y, Quotient: quotient, Remainder: remainder}, nil
}

// Vectors derives the reference test vectors of a record. Unsigned divisions
// produce a single vector. Signed divisions additionally produce a vector for
// the negated operands, where negation is always performed on 512 bits,
// independent of the width of the record. Other operators produce no vectors.
func Vectors(record *corpus.Record) ([]Vector, error) {
	switch record.Op {
	case corpus.OpDiv:
		vector, err := Divide(record.X, record.Y)
		if err != nil {
			return nil, err
		}
		return []Vector{vector}, nil

	case corpus.OpSDiv:
		// A zero divisor stays zero when negated, so both vectors are dropped.
		plain, err := Divide(record.X, record.Y)
		if err != nil {
			return nil, err
		}
		negated, err := Divide(record.X.Neg(), record.Y.Neg())
		if err != nil {
			return nil, err
		}
		return []Vector{plain, negated}, nil
	}
	return nil, nil
}
