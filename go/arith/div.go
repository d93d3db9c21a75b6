// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arith

import (
	"math"
	"math/bits"
)

// wordLen returns the number of significant words of x.
func wordLen(x [numWords]uint64) int {
	for i := numWords - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// divremWord divides the lowest n words of u by a single word d.
func divremWord(u [numWords]uint64, n int, d uint64) (quotient [numWords]uint64, remainder uint64) {
	for i := n - 1; i >= 0; i-- {
		quotient[i], remainder = bits.Div64(remainder, u[i], d)
	}
	return
}

// udivrem computes the unsigned quotient and remainder of u/v using Knuth's
// algorithm D (TAOCP Vol. 2, 4.3.1) on 64-bit digits.
func udivrem(u, v [numWords]uint64) (quotient, remainder [numWords]uint64) {
	n := wordLen(v)
	if n == 0 {
		panic("division by zero")
	}
	m := wordLen(u)
	if m < n || (U512{u}).Lt(U512{v}) {
		return quotient, u
	}

	if n == 1 {
		quotient, remainder[0] = divremWord(u, m, v[0])
		return
	}

	// Normalize such that the top bit of the divisor is set. The dividend
	// gets one extra word to hold the bits shifted out at the top.
	shift := uint(bits.LeadingZeros64(v[n-1]))
	var vn [numWords]uint64
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<shift | v[i-1]>>(64-shift)
	}
	vn[0] = v[0] << shift

	var un [numWords + 1]uint64
	un[m] = u[m-1] >> (64 - shift)
	for i := m - 1; i > 0; i-- {
		un[i] = u[i]<<shift | u[i-1]>>(64-shift)
	}
	un[0] = u[0] << shift

	for j := m - n; j >= 0; j-- {
		qhat, rhat := uint64(math.MaxUint64), uint64(0)
		refine := true
		if un[j+n] >= vn[n-1] {
			// The estimate is capped at the largest digit, rhat may exceed a
			// single word in which case no refinement is needed.
			var carry uint64
			rhat, carry = bits.Add64(un[j+n-1], vn[n-1], 0)
			refine = carry == 0
		} else {
			qhat, rhat = bits.Div64(un[j+n], un[j+n-1], vn[n-1])
		}

		for refine {
			hi, lo := bits.Mul64(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
				break
			}
			qhat--
			var carry uint64
			rhat, carry = bits.Add64(rhat, vn[n-1], 0)
			refine = carry == 0
		}

		// Multiply and subtract qhat*vn from the current window of un.
		var borrow, carry uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			un[j+i], borrow = bits.Sub64(un[j+i], lo, borrow)
			carry = hi
		}
		un[j+n], borrow = bits.Sub64(un[j+n], carry, borrow)

		// The estimate was one too large, add the divisor back.
		if borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				un[j+i], c = bits.Add64(un[j+i], vn[i], c)
			}
			un[j+n] += c
		}
		quotient[j] = qhat
	}

	for i := 0; i < n-1; i++ {
		remainder[i] = un[i]>>shift | un[i+1]<<(64-shift)
	}
	remainder[n-1] = un[n-1] >> shift
	return
}
