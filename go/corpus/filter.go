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

// Filter is an allow-list of operators. The zero value allows every operator.
type Filter struct {
	allowed uint8
}

// NewFilter creates a filter admitting only the given operators. Without
// arguments all operators are admitted.
func NewFilter(ops ...Operator) Filter {
	res := Filter{}
	for _, op := range ops {
		if op.IsValid() {
			res.allowed |= 1 << op
		}
	}
	return res
}

// ParseFilter builds a filter from operator symbols or names.
func ParseFilter(names []string) (Filter, error) {
	ops := make([]Operator, 0, len(names))
	for _, name := range names {
		op, err := ParseOperator(name)
		if err != nil {
			return Filter{}, err
		}
		ops = append(ops, op)
	}
	return NewFilter(ops...), nil
}

func (f Filter) Allows(op Operator) bool {
	if !op.IsValid() {
		return false
	}
	return f.allowed == 0 || f.allowed&(1<<op) != 0
}

// Operators lists the admitted operators in table order.
func (f Filter) Operators() []Operator {
	res := []Operator{}
	for _, op := range AllOperators() {
		if f.Allows(op) {
			res = append(res, op)
		}
	}
	return res
}
