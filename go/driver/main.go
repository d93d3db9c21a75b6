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
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "driver",
		Usage:     "Decodes fuzzer corpus records of fixed-width integer operations",
		Copyright: "(c) 2024 Fantom Foundation",
		ArgsUsage: DecodeCmd.ArgsUsage,
		Flags:     DecodeCmd.Flags,
		Action:    DecodeCmd.Action,
	}
}
