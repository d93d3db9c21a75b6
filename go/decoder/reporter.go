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
	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
	"github.com/Fantom-foundation/corpus-decoder/go/reference"
)

//go:generate mockgen -source reporter.go -destination reporter_mock.go -package decoder

// Reporter receives the outcome of decoding corpus inputs. For every input
// that could be read and produces output, Begin is called once before all
// other calls concerning that input.
type Reporter interface {
	Begin(path string)
	Record(record *corpus.Record)
	Result(result reference.Result)
	Vector(vector reference.Vector)
	Warn(err error)
}
