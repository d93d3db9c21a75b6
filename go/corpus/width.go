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

import "fmt"

// Width is the size of a single operand of a record in bytes.
type Width int

const (
	Width128 Width = 16
	Width256 Width = 32
	Width512 Width = 64
)

func (w Width) IsValid() bool {
	switch w {
	case Width128, Width256, Width512:
		return true
	}
	return false
}

// Bytes returns the number of bytes of an operand.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the number of bits of an operand.
func (w Width) Bits() uint {
	return 8 * uint(w)
}

// RecordSize is the length of an encoded record with operands of this width.
func (w Width) RecordSize() int {
	return 1 + 2*int(w)
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", w.Bits())
}
