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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/corpus-decoder/go/arith"
	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
	"github.com/Fantom-foundation/corpus-decoder/go/reference"
	"go.uber.org/mock/gomock"
)

func encode(width corpus.Width, op corpus.Operator, x, y uint64) []byte {
	return corpus.Encode(corpus.Record{Width: width, Op: op, X: arith.NewU512(x), Y: arith.NewU512(y)})
}

func TestDecoder_DivisionReportsRecordAndVector(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	record := &corpus.Record{Width: corpus.Width128, Op: corpus.OpDiv, X: arith.NewU512(10), Y: arith.NewU512(3)}
	vector := reference.Vector{X: arith.NewU512(10), Y: arith.NewU512(3), Quotient: arith.NewU512(3), Remainder: arith.NewU512(1)}
	gomock.InOrder(
		reporter.EXPECT().Begin("input"),
		reporter.EXPECT().Record(record),
		reporter.EXPECT().Vector(vector),
	)

	decoder := New(Config{}, reporter)
	decoder.Decode("input", encode(corpus.Width128, corpus.OpDiv, 10, 3))

	if want, got := (Stats{Decoded: 1, Vectors: 1}), decoder.Stats(); want != got {
		t.Errorf("unexpected stats, wanted %v, got %v", want, got)
	}
}

func TestDecoder_SignedDivisionReportsTwoVectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	gomock.InOrder(
		reporter.EXPECT().Begin("input"),
		reporter.EXPECT().Record(gomock.Any()),
		reporter.EXPECT().Vector(reference.Vector{
			X: arith.NewU512(5), Y: arith.NewU512(2), Quotient: arith.NewU512(2), Remainder: arith.NewU512(1),
		}),
		reporter.EXPECT().Vector(gomock.Any()).Do(func(vector reference.Vector) {
			if want, got := arith.NewU512(5).Neg(), vector.X; want != got {
				t.Errorf("unexpected negated dividend, wanted %v, got %v", want, got)
			}
			if want, got := arith.NewU512(2).Neg(), vector.Y; want != got {
				t.Errorf("unexpected negated divisor, wanted %v, got %v", want, got)
			}
		}),
	)

	New(Config{}, reporter).Decode("input", encode(corpus.Width256, corpus.OpSDiv, 5, 2))
}

func TestDecoder_OtherOperatorsReportOnlyTheRecord(t *testing.T) {
	for _, op := range []corpus.Operator{corpus.OpMul, corpus.OpShl, corpus.OpShr, corpus.OpAdd, corpus.OpSub} {
		t.Run(op.Name(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := NewMockReporter(ctrl)
			gomock.InOrder(
				reporter.EXPECT().Begin("input"),
				reporter.EXPECT().Record(gomock.Any()),
			)
			New(Config{}, reporter).Decode("input", encode(corpus.Width512, op, 7, 0))
		})
	}
}

func TestDecoder_UnknownOperatorProducesNoOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	data := encode(corpus.Width128, corpus.OpDiv, 10, 3)
	data[0] = 9

	decoder := New(Config{}, reporter)
	decoder.Decode("input", data)

	if want, got := (Stats{Skipped: 1}), decoder.Stats(); want != got {
		t.Errorf("unexpected stats, wanted %v, got %v", want, got)
	}
}

func TestDecoder_FilteredOperatorProducesNoOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	decoder := New(Config{Filter: corpus.NewFilter(corpus.OpSDiv)}, reporter)
	decoder.Decode("input", encode(corpus.Width128, corpus.OpDiv, 10, 3))

	if want, got := 1, decoder.Stats().Skipped; want != got {
		t.Errorf("unexpected number of skipped records, wanted %d, got %d", want, got)
	}
}

func TestDecoder_SizeErrorProducesSingleWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	gomock.InOrder(
		reporter.EXPECT().Begin("input"),
		reporter.EXPECT().Warn(gomock.Any()).Do(func(err error) {
			var sizeErr *corpus.SizeError
			if !errors.As(err, &sizeErr) || sizeErr.Size != 20 {
				t.Errorf("unexpected warning: %v", err)
			}
		}),
	)

	decoder := New(Config{}, reporter)
	decoder.Decode("input", make([]byte, 41))

	if want, got := (Stats{SizeErrors: 1}), decoder.Stats(); want != got {
		t.Errorf("unexpected stats, wanted %v, got %v", want, got)
	}
}

func TestDecoder_DivisionByZeroIsWarned(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	gomock.InOrder(
		reporter.EXPECT().Begin("input"),
		reporter.EXPECT().Record(gomock.Any()),
		reporter.EXPECT().Warn(gomock.Any()).Do(func(err error) {
			if !errors.Is(err, reference.ErrDivisionByZero) {
				t.Errorf("unexpected warning: %v", err)
			}
		}),
	)

	decoder := New(Config{ComputeResults: true}, reporter)
	decoder.Decode("input", encode(corpus.Width128, corpus.OpSDiv, 10, 0))

	if want, got := (Stats{Decoded: 1, DivisionsByZero: 1}), decoder.Stats(); want != got {
		t.Errorf("unexpected stats, wanted %v, got %v", want, got)
	}
}

func TestDecoder_ComputeResultsReportsWidthNativeResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)

	gomock.InOrder(
		reporter.EXPECT().Begin("input"),
		reporter.EXPECT().Record(gomock.Any()),
		reporter.EXPECT().Result(reference.Result{Value: arith.NewU512(1).Shl(127)}),
	)

	New(Config{ComputeResults: true}, reporter).Decode("input", encode(corpus.Width128, corpus.OpShl, 1, 127))
}

func TestDecoder_RunProcessesEachFileIndependently(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"a": encode(corpus.Width128, corpus.OpDiv, 10, 3),
		"b": make([]byte, 41),
		"c": encode(corpus.Width512, corpus.OpAdd, 1, 2),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0600); err != nil {
			t.Fatalf("failed to create input: %v", err)
		}
	}
	inputs, err := EnumerateInputs([]string{dir})
	if err != nil {
		t.Fatalf("failed to enumerate inputs: %v", err)
	}

	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	gomock.InOrder(
		reporter.EXPECT().Begin(filepath.Join(dir, "a")),
		reporter.EXPECT().Record(gomock.Any()),
		reporter.EXPECT().Vector(gomock.Any()),
		reporter.EXPECT().Begin(filepath.Join(dir, "b")),
		reporter.EXPECT().Warn(gomock.Any()),
		reporter.EXPECT().Begin(filepath.Join(dir, "c")),
		reporter.EXPECT().Record(gomock.Any()),
	)

	decoder := New(Config{}, reporter)
	if err := decoder.Run(inputs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Stats{Inputs: 3, Decoded: 2, SizeErrors: 1, Vectors: 1}
	if got := decoder.Stats(); want != got {
		t.Errorf("unexpected stats, wanted %v, got %v", want, got)
	}
}

func TestDecoder_RunReportsUnreadableInputsAndContinues(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid")
	if err := os.WriteFile(valid, encode(corpus.Width256, corpus.OpSub, 3, 1), 0600); err != nil {
		t.Fatalf("failed to create input: %v", err)
	}

	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	gomock.InOrder(
		reporter.EXPECT().Warn(gomock.Any()),
		reporter.EXPECT().Begin(valid),
		reporter.EXPECT().Record(gomock.Any()),
	)

	decoder := New(Config{}, reporter)
	if err := decoder.Run([]string{filepath.Join(dir, "missing"), valid}); err == nil {
		t.Errorf("unreadable inputs should be reported in the result")
	}
	if want, got := 1, decoder.Stats().Failed; want != got {
		t.Errorf("unexpected number of failed inputs, wanted %d, got %d", want, got)
	}
}

func TestDecoder_DuplicatesAreSkippedIfEnabled(t *testing.T) {
	data := encode(corpus.Width128, corpus.OpDiv, 10, 3)
	other := encode(corpus.Width128, corpus.OpDiv, 10, 4)

	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	gomock.InOrder(
		reporter.EXPECT().Begin("first"),
		reporter.EXPECT().Record(gomock.Any()),
		reporter.EXPECT().Vector(gomock.Any()),
		reporter.EXPECT().Begin("third"),
		reporter.EXPECT().Record(gomock.Any()),
		reporter.EXPECT().Vector(gomock.Any()),
	)

	decoder := New(Config{SkipDuplicates: true}, reporter)
	decoder.Decode("first", data)
	decoder.Decode("second", data)
	decoder.Decode("third", other)

	if want, got := (Stats{Decoded: 2, Duplicates: 1, Vectors: 2}), decoder.Stats(); want != got {
		t.Errorf("unexpected stats, wanted %v, got %v", want, got)
	}
}

func TestDecoder_DuplicatesAreReportedByDefault(t *testing.T) {
	data := encode(corpus.Width128, corpus.OpMul, 10, 3)

	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	reporter.EXPECT().Begin(gomock.Any()).Times(2)
	reporter.EXPECT().Record(gomock.Any()).Times(2)

	decoder := New(Config{}, reporter)
	decoder.Decode("first", data)
	decoder.Decode("second", data)
}
