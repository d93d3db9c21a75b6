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
	"os"
	"path/filepath"
)

// EnumerateInputs resolves the given paths into a list of files. Files are
// taken as they are, directories are walked recursively with entries visited
// in lexical order.
func EnumerateInputs(inputs []string) ([]string, error) {
	var inputFiles []string

	for _, input := range inputs {
		path, err := filepath.Abs(input)
		if err != nil {
			return nil, err
		}

		stat, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			inputFiles = append(inputFiles, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			filePath := filepath.Join(path, entry.Name())
			if entry.IsDir() {
				recInputs, err := EnumerateInputs([]string{filePath})
				if err != nil {
					return nil, err
				}
				inputFiles = append(inputFiles, recInputs...)
			} else {
				inputFiles = append(inputFiles, filePath)
			}
		}
	}

	return inputFiles, nil
}
