// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"strings"

	"github.com/Fantom-foundation/corpus-decoder/go/corpus"
	"github.com/urfave/cli/v2"
)

type opsFlagType struct {
	cli.StringSliceFlag
}

var OpsFlag = &opsFlagType{
	cli.StringSliceFlag{
		Name:    "ops",
		Aliases: []string{"o"},
		Usage:   "decode only records of the given operators, by symbol or name (" + operatorNames() + ")",
	},
}

func (f *opsFlagType) Fetch(context *cli.Context) (corpus.Filter, error) {
	return corpus.ParseFilter(context.StringSlice(f.Name))
}

func operatorNames() string {
	names := []string{}
	for _, op := range corpus.AllOperators() {
		names = append(names, fmt.Sprintf("%s|%s", op.Name(), op.Symbol()))
	}
	return strings.Join(names, ", ")
}

type resultsFlagType struct {
	cli.BoolFlag
}

var ResultsFlag = &resultsFlagType{
	cli.BoolFlag{
		Name:    "results",
		Aliases: []string{"r"},
		Usage:   "print the result expected at the record's width for every operator",
	},
}

func (f *resultsFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type summaryFlagType struct {
	cli.BoolFlag
}

var SummaryFlag = &summaryFlagType{
	cli.BoolFlag{
		Name:  "summary",
		Usage: "print statistics of the run to stderr",
	},
}

func (f *summaryFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type skipDuplicatesFlagType struct {
	cli.BoolFlag
}

var SkipDuplicatesFlag = &skipDuplicatesFlagType{
	cli.BoolFlag{
		Name:    "skip-duplicates",
		Aliases: []string{"d"},
		Usage:   "ignore inputs with the same content as an earlier input",
	},
}

func (f *skipDuplicatesFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type cpuProfileType struct {
	cli.StringFlag
}

var CpuProfileFlag = &cpuProfileType{
	cli.StringFlag{
		Name:      "cpuprofile",
		Usage:     "store CPU profile in the provided filename",
		TakesFile: true,
	},
}

func (f *cpuProfileType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}
