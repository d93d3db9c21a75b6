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

	"github.com/Fantom-foundation/corpus-decoder/go/arith"
)

// Record is a single decoded fuzz corpus entry: an operator applied to two
// operands of the given width.
type Record struct {
	Width Width
	Op    Operator
	X     arith.U512
	Y     arith.U512
}

// SizeError is reported for inputs whose length does not correspond to any of
// the supported operand widths.
type SizeError struct {
	Size int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("Incorrect argument size: %d", e.Size)
}

// Decode parses a corpus record. The encoding is
//
//	[1 byte operator][N bytes X, big endian][N bytes Y, big endian]
//
// with N being 16, 32 or 64. Inputs of any other size are rejected with a
// *SizeError. Records naming no operator are skipped: Decode then returns
// neither a record nor an error.
func Decode(data []byte) (*Record, error) {
	size := 0
	if len(data) > 0 {
		size = (len(data) - 1) / 2
	}
	width := Width(size)
	if !width.IsValid() {
		return nil, &SizeError{Size: size}
	}

	op := Operator(data[0])
	if !op.IsValid() {
		return nil, nil
	}

	return &Record{
		Width: width,
		Op:    op,
		X:     arith.NewU512FromBytes(data[1 : 1+size]...),
		Y:     arith.NewU512FromBytes(data[1+size : 1+2*size]...),
	}, nil
}

// Encode produces the corpus representation of the record. Operands are
// truncated to the record's width.
func Encode(record Record) []byte {
	size := record.Width.Bytes()
	res := make([]byte, 0, record.Width.RecordSize())
	res = append(res, byte(record.Op))
	x := record.X.Bytes64be()
	y := record.Y.Bytes64be()
	res = append(res, x[len(x)-size:]...)
	res = append(res, y[len(y)-size:]...)
	return res
}
