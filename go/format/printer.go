// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/Fantom-foundation/corpus-decoder/go/arith"
	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
	"github.com/Fantom-foundation/corpus-decoder/go/reference"
	fasthex "github.com/tmthrgd/go-hex"
)

// literalSuffix tags every value of a test vector as a 512-bit literal. The
// regression tests of the library under test store all division cases as
// 512-bit values, so the tag does not depend on the width of the record.
const literalSuffix = "_u512"

// Printer renders decoded records and their reference results as text. Regular
// output is written to out, warnings to warn.
type Printer struct {
	out  io.Writer
	warn io.Writer
}

func NewPrinter(out, warn io.Writer) *Printer {
	return &Printer{out: out, warn: warn}
}

// Begin announces the input the following output belongs to.
func (p *Printer) Begin(path string) {
	fmt.Fprintf(p.out, "Decoding %s\n", path)
}

// Record prints the operand size and the operation in decimal and in
// hexadecimal notation.
func (p *Printer) Record(record *corpus.Record) {
	symbol := record.Op.Symbol()
	fmt.Fprintf(p.out, "argument size: %d\n", record.Width.Bytes())
	fmt.Fprintf(p.out, "%s %s %s\n", record.X.Dec(), symbol, record.Y.Dec())
	fmt.Fprintf(p.out, "%s %s %s\n", Hex(record.X), symbol, Hex(record.Y))
}

// Result prints the value computed for a record at the record's width.
func (p *Printer) Result(result reference.Result) {
	fmt.Fprintf(p.out, "result: %s\n", Hex(result.Value))
	if result.HasRemainder {
		fmt.Fprintf(p.out, "remainder: %s\n", Hex(result.Remainder))
	}
}

// Vector prints a test vector as a literal ready to be pasted into the
// division test cases of the library under test.
func (p *Printer) Vector(vector reference.Vector) {
	builder := strings.Builder{}
	builder.WriteString("Test:\n{\n")
	for _, value := range []arith.U512{vector.X, vector.Y, vector.Quotient, vector.Remainder} {
		builder.WriteString(fmt.Sprintf("    %s%s,\n", Hex(value), literalSuffix))
	}
	builder.WriteString("},\n")
	io.WriteString(p.out, builder.String())
}

func (p *Printer) Warn(err error) {
	fmt.Fprintln(p.warn, err)
}

// Hex renders value as a lower-case, 0x-prefixed hexadecimal number without
// leading zeros.
func Hex(value arith.U512) string {
	bytes := value.Bytes64be()
	digits := strings.TrimLeft(fasthex.EncodeToString(bytes[:]), "0")
	if digits == "" {
		digits = "0"
	}
	return "0x" + digits
}
