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

import "fmt"

// Stats counts the outcomes of a decoder run.
type Stats struct {
	Inputs          int // < files handed to Run
	Failed          int // < files which could not be read
	Decoded         int // < records reported
	Skipped         int // < records with unknown or filtered operators
	Duplicates      int // < inputs equal to an earlier one
	SizeErrors      int // < inputs of unsupported size
	DivisionsByZero int // < decoded division records without test vectors
	Vectors         int // < test vectors produced
}

// Records returns the number of examined records, regardless of the outcome.
func (s Stats) Records() int {
	return s.Decoded + s.Skipped + s.SizeErrors + s.Duplicates
}

// Warnings returns the number of warnings issued for records.
func (s Stats) Warnings() int {
	return s.SizeErrors + s.DivisionsByZero
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"inputs %d, failed %d, decoded %d, skipped %d, duplicates %d, warnings %d, vectors %d",
		s.Inputs, s.Failed, s.Decoded, s.Skipped, s.Duplicates, s.Warnings(), s.Vectors,
	)
}
