// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package decoder

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/corpus-decoder/go/arith"
	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
	"github.com/Fantom-foundation/corpus-decoder/go/reference"
)

// ErrUsage is reported for invalid invocations, before any input is touched.
const ErrUsage = arith.ConstErr("usage error")

// Config controls which records are reported and how.
type Config struct {
	// Filter restricts the reported records to the admitted operators.
	Filter corpus.Filter
	// ComputeResults enables the report of the width-native result of every
	// record, not only of division test vectors.
	ComputeResults bool
	// SkipDuplicates suppresses inputs with the same content as an earlier one.
	SkipDuplicates bool
}

// Decoder turns corpus inputs into reports. Inputs are processed one at a
// time in the order they are given.
type Decoder struct {
	config     Config
	reporter   Reporter
	duplicates *duplicateFilter
	stats      Stats
}

func New(config Config, reporter Reporter) *Decoder {
	res := &Decoder{config: config, reporter: reporter}
	if config.SkipDuplicates {
		res.duplicates = newDuplicateFilter()
	}
	return res
}

// Run reads and decodes all files in the given order. Files which can not be
// read are reported as warnings and do not stop the run; the number of such
// files is summarized by the returned error.
func (d *Decoder) Run(inputs []string) error {
	failed := 0
	for _, input := range inputs {
		d.stats.Inputs++
		data, err := os.ReadFile(input)
		if err != nil {
			failed++
			d.stats.Failed++
			d.reporter.Warn(fmt.Errorf("failed to read %v: %w", input, err))
			continue
		}
		d.Decode(input, data)
	}
	if failed > 0 {
		return fmt.Errorf("failed to read %d of %d inputs", failed, len(inputs))
	}
	return nil
}

// Decode processes a single corpus record originating from the given path.
func (d *Decoder) Decode(path string, data []byte) {
	if d.duplicates != nil && d.duplicates.IsDuplicate(data) {
		d.stats.Duplicates++
		return
	}

	record, err := corpus.Decode(data)
	if err != nil {
		d.stats.SizeErrors++
		d.reporter.Begin(path)
		d.reporter.Warn(err)
		return
	}

	// Unknown and filtered operators are skipped silently.
	if record == nil || !d.config.Filter.Allows(record.Op) {
		d.stats.Skipped++
		return
	}

	d.stats.Decoded++
	d.reporter.Begin(path)
	d.reporter.Record(record)

	if d.config.ComputeResults {
		// A zero divisor is reported once, together with the vectors below.
		if result, err := reference.Compute(record); err == nil {
			d.reporter.Result(result)
		}
	}

	vectors, err := reference.Vectors(record)
	if err != nil {
		d.stats.DivisionsByZero++
		d.reporter.Warn(fmt.Errorf("no test vector for %v: %w", path, err))
		return
	}
	for _, vector := range vectors {
		d.stats.Vectors++
		d.reporter.Vector(vector)
	}
}

func (d *Decoder) Stats() Stats {
	return d.stats
}
