// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Fantom-foundation/corpus-decoder/go/decoder"
	cliUtils "github.com/Fantom-foundation/corpus-decoder/go/driver/cli"
	"github.com/Fantom-foundation/corpus-decoder/go/format"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

const decodeArgsUsage = "<path>..."

// DecodeCmd holds the action and flags of the driver application.
var DecodeCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doDecode,
	Name:      "decode",
	Usage:     "Print the records of the given corpus files and the test vectors of divisions",
	ArgsUsage: decodeArgsUsage,
	Flags: []cli.Flag{
		cliUtils.OpsFlag,
		cliUtils.ResultsFlag,
		cliUtils.SkipDuplicatesFlag,
		cliUtils.SummaryFlag,
	},
})

func doDecode(context *cli.Context) error {
	if context.NArg() == 0 {
		return fmt.Errorf("%w: missing input, expected %s", decoder.ErrUsage, decodeArgsUsage)
	}

	filter, err := cliUtils.OpsFlag.Fetch(context)
	if err != nil {
		return fmt.Errorf("%w: %w", decoder.ErrUsage, err)
	}

	inputs, err := decoder.EnumerateInputs(context.Args().Slice())
	if err != nil {
		return err
	}

	config := decoder.Config{
		Filter:         filter,
		ComputeResults: cliUtils.ResultsFlag.Fetch(context),
		SkipDuplicates: cliUtils.SkipDuplicatesFlag.Fetch(context),
	}
	return decode(inputs, config, os.Stdout, os.Stderr, cliUtils.SummaryFlag.Fetch(context))
}

func decode(inputs []string, config decoder.Config, out, warn io.Writer, summary bool) error {
	d := decoder.New(config, format.NewPrinter(out, warn))
	start := time.Now()
	err := d.Run(inputs)
	if summary {
		printSummary(warn, d.Stats(), time.Since(start))
	}
	return err
}

func printSummary(out io.Writer, stats decoder.Stats, duration time.Duration) {
	rate := 0.0
	if duration > 0 {
		rate = float64(stats.Records()) / duration.Seconds()
	}
	fmt.Fprintf(out, "%v, %s records/s\n", stats, unitconv.FormatPrefix(rate, unitconv.SI, 0))
}
