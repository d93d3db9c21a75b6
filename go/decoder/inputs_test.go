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
	"testing"

	"golang.org/x/exp/slices"
)

func TestEnumerateInputs_FileIsTakenAsIs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "record")
	if err := os.WriteFile(file, []byte{0}, 0600); err != nil {
		t.Fatalf("failed to create input: %v", err)
	}

	inputs, err := EnumerateInputs([]string{file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := []string{file}, inputs; !slices.Equal(want, got) {
		t.Errorf("unexpected inputs, wanted %v, got %v", want, got)
	}
}

func TestEnumerateInputs_DirectoriesAreWalkedRecursively(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a/c", "a/d/e"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte{0}, 0600); err != nil {
			t.Fatalf("failed to create input: %v", err)
		}
	}

	inputs, err := EnumerateInputs([]string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a", "c"),
		filepath.Join(dir, "a", "d", "e"),
		filepath.Join(dir, "b"),
	}
	if !slices.Equal(want, inputs) {
		t.Errorf("unexpected inputs, wanted %v, got %v", want, inputs)
	}
}

func TestEnumerateInputs_MissingPathIsAnError(t *testing.T) {
	if _, err := EnumerateInputs([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Errorf("missing inputs should be reported")
	}
}

func TestStats_Summaries(t *testing.T) {
	stats := Stats{Inputs: 6, Failed: 1, Decoded: 2, Skipped: 1, Duplicates: 1, SizeErrors: 1, DivisionsByZero: 1, Vectors: 1}
	if want, got := 5, stats.Records(); want != got {
		t.Errorf("unexpected number of records, wanted %d, got %d", want, got)
	}
	if want, got := 2, stats.Warnings(); want != got {
		t.Errorf("unexpected number of warnings, wanted %d, got %d", want, got)
	}
	if want, got := "inputs 6, failed 1, decoded 2, skipped 1, duplicates 1, warnings 2, vectors 1", stats.String(); want != got {
		t.Errorf("unexpected print, wanted %s, got %s", want, got)
	}
}
