/*
 * transform.go, part of gommtf.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package codec

import "fmt"

// DefaultRecursiveBits is the chunk width used by codec 10.
const DefaultRecursiveBits = 16

// MaxDecodedLen is the largest number of elements a run-length expansion may
// produce. Longer expansions are rejected with ErrMalformedHeader before any
// allocation. It can be raised for unusually large structures.
var MaxDecodedLen = 1 << 25

// RunLengthDecode expands a flat sequence of (value, repeat) pairs, so
// [1,10,2,1] becomes ten 1s followed by one 2. It returns an error if
// the input has an odd length, a repeat count is negative, or the expansion
// would be longer than MaxDecodedLen.
func RunLengthDecode(in []int) ([]int, error) {
	if len(in)%2 != 0 {
		return nil, newError(ErrMalformedHeader, fmt.Sprintf("run-length input has odd length %d", len(in)), "RunLengthDecode")
	}
	total := 0
	for i := 1; i < len(in); i += 2 {
		if in[i] < 0 {
			return nil, newError(ErrMalformedHeader, fmt.Sprintf("negative repeat count %d at pair %d", in[i], i/2), "RunLengthDecode")
		}
		total += in[i]
		if total > MaxDecodedLen {
			return nil, newError(ErrMalformedHeader, fmt.Sprintf("run-length expansion exceeds %d elements", MaxDecodedLen), "RunLengthDecode")
		}
	}
	out := make([]int, 0, total)
	for i := 0; i < len(in); i += 2 {
		for j := 0; j < in[i+1]; j++ {
			out = append(out, in[i])
		}
	}
	return out, nil
}

// RunLengthEncode is the inverse of RunLengthDecode.
func RunLengthEncode(in []int) []int {
	out := make([]int, 0, 8)
	for i := 0; i < len(in); {
		j := i + 1
		for j < len(in) && in[j] == in[i] {
			j++
		}
		out = append(out, in[i], j-i)
		i = j
	}
	return out
}

// DeltaDecode returns the running sum of in. The input is not modified.
func DeltaDecode(in []int) []int {
	out := make([]int, len(in))
	acc := 0
	for i, v := range in {
		acc += v
		out[i] = acc
	}
	return out
}

// DeltaEncode is the inverse of DeltaDecode.
func DeltaEncode(in []int) []int {
	out := make([]int, len(in))
	prev := 0
	for i, v := range in {
		out[i] = v - prev
		prev = v
	}
	return out
}

// bounds returns the smallest and largest signed integers that fit in bits bits.
// A non-positive bits means DefaultRecursiveBits.
func bounds(bits int) (int, int) {
	if bits <= 0 {
		bits = DefaultRecursiveBits
	}
	max := 1<<(bits-1) - 1
	return -max - 1, max
}

// RecursiveDecode undoes recursive indexing. Values equal to the
// extremes of a bits-wide signed integer are sentinels: they are added
// to an accumulator and nothing is emitted. Any other value is added,
// the accumulator is emitted and reset. A trailing run of sentinels
// without a terminating value is dropped.
// bits <= 0 means DefaultRecursiveBits.
func RecursiveDecode(in []int, bits int) []int {
	min, max := bounds(bits)
	out := make([]int, 0, len(in))
	acc := 0
	for _, v := range in {
		acc += v
		if v == max || v == min {
			continue
		}
		out = append(out, acc)
		acc = 0
	}
	return out
}

// RecursiveEncode splits each value into a run of sentinels plus a residual
// so that every emitted element fits in bits bits. It is the inverse of
// RecursiveDecode.
func RecursiveEncode(in []int, bits int) []int {
	min, max := bounds(bits)
	out := make([]int, 0, len(in))
	for _, v := range in {
		if v >= 0 {
			for v >= max {
				out = append(out, max)
				v -= max
			}
		} else {
			for v <= min {
				out = append(out, min)
				v -= min
			}
		}
		out = append(out, v)
	}
	return out
}
