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
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// duplicateCacheSize bounds the number of distinct inputs remembered.
const duplicateCacheSize = 1 << 16

// duplicateFilter recognizes inputs whose content has been seen before. Fuzzer
// corpora and crash directories frequently hold several copies of the same
// record under different names.
type duplicateFilter struct {
	seen *lru.Cache[[32]byte, struct{}]
}

func newDuplicateFilter() *duplicateFilter {
	cache, _ := lru.New[[32]byte, struct{}](duplicateCacheSize) // can only fail for non-positive size
	return &duplicateFilter{seen: cache}
}

// IsDuplicate reports whether data has been seen before and records it.
func (f *duplicateFilter) IsDuplicate(data []byte) bool {
	var key [32]byte
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(key[:0])
	found, _ := f.seen.ContainsOrAdd(key, struct{}{})
	return found
}
