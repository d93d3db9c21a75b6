// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package corpus

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Operator identifies the operation a corpus record exercises. The numeric
// values are the first byte of a record and must stay in sync with the fuzz
// harness producing the corpus.
type Operator byte

const (
	OpDiv  Operator = 0x00
	OpMul  Operator = 0x01
	OpShl  Operator = 0x02
	OpShr  Operator = 0x03
	OpAdd  Operator = 0x04
	OpSub  Operator = 0x05
	OpSDiv Operator = 0x06
)

// NumOperators is the size of the operator table. Record bytes at or above
// this value do not name an operator.
const NumOperators = 7

type operatorInfo struct {
	symbol string
	name   string
}

var operators = [NumOperators]operatorInfo{
	OpDiv:  {"/", "div"},
	OpMul:  {"*", "mul"},
	OpShl:  {"<<", "shl"},
	OpShr:  {">>", "shr"},
	OpAdd:  {"+", "add"},
	OpSub:  {"-", "sub"},
	OpSDiv: {"s/", "sdiv"},
}

// AllOperators returns all valid operators in table order.
func AllOperators() []Operator {
	res := make([]Operator, 0, NumOperators)
	for i := 0; i < NumOperators; i++ {
		res = append(res, Operator(i))
	}
	return res
}

func (op Operator) IsValid() bool {
	return op < NumOperators
}

// IsDivision reports whether reference test vectors are produced for op.
func (op Operator) IsDivision() bool {
	return op == OpDiv || op == OpSDiv
}

// Symbol returns the infix symbol used when printing records, e.g. "s/".
func (op Operator) Symbol() string {
	if !op.IsValid() {
		return op.String()
	}
	return operators[op].symbol
}

func (op Operator) Name() string {
	if !op.IsValid() {
		return op.String()
	}
	return operators[op].name
}

func (op Operator) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("op(%d)", byte(op))
	}
	return operators[op].symbol
}

// ParseOperator resolves an operator by its symbol or by its name.
func ParseOperator(s string) (Operator, error) {
	known := map[string]Operator{}
	for _, op := range AllOperators() {
		known[op.Symbol()] = op
		known[op.Name()] = op
	}
	if op, found := known[strings.TrimSpace(s)]; found {
		return op, nil
	}
	names := maps.Keys(known)
	slices.Sort(names)
	return 0, fmt.Errorf("unknown operator %q, use one of: %v", s, names)
}
