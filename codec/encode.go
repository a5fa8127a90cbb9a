/*
 * encode.go, part of gommtf.
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

import (
	"fmt"
	"math"
)

// Encode produces a binary field for A with the given codec and parameter.
// The element count in the header is always the length of A.
// It is mostly useful to build test files and to check round trips.
func Encode(codecID, param int32, A *Array) ([]byte, error) {
	if !IsCodec(codecID) {
		return nil, newError(ErrUnsupportedCodec, fmt.Sprintf("codec id %d", codecID), "Encode")
	}
	want := IntArray
	switch codecID {
	case Float32, RunLengthFloat, RecursiveDeltaFloat:
		want = FloatArray
	case FourByteString, RunLengthChars:
		want = StringArray
	}
	if A == nil || A.Kind != want {
		return nil, newError(ErrMalformedHeader, fmt.Sprintf("codec %d needs a %s array", codecID, want), "Encode")
	}
	out := make([]byte, HeaderLen, HeaderLen+4*A.Len())
	be.PutUint32(out[0:4], uint32(codecID))
	be.PutUint32(out[4:8], uint32(A.Len()))
	be.PutUint32(out[8:12], uint32(param))
	switch codecID {
	case Float32:
		for _, v := range A.Floats {
			out = be.AppendUint32(out, math.Float32bits(float32(v)))
		}
	case Int8:
		for _, v := range A.Ints {
			out = append(out, byte(int8(v)))
		}
	case Int16:
		out = appendInt16s(out, A.Ints)
	case Int32:
		out = appendInt32s(out, A.Ints)
	case FourByteString:
		for _, s := range A.Strings {
			if len(s) > 4 {
				return nil, newError(ErrMalformedHeader, fmt.Sprintf("string %q longer than 4 bytes", s), "Encode")
			}
			var chunk [4]byte
			copy(chunk[:], s)
			out = append(out, chunk[:]...)
		}
	case RunLengthChars:
		codes := make([]int, len(A.Strings))
		for i, s := range A.Strings {
			for _, r := range s {
				codes[i] = int(r)
				break
			}
		}
		out = appendInt32s(out, RunLengthEncode(codes))
	case RunLengthInt32:
		out = appendInt32s(out, RunLengthEncode(A.Ints))
	case RunLengthDeltaInt32:
		out = appendInt32s(out, RunLengthEncode(DeltaEncode(A.Ints)))
	case RunLengthFloat:
		out = appendInt32s(out, RunLengthEncode(fixedPoint(A.Floats, param)))
	case RecursiveDeltaFloat:
		out = appendInt16s(out, RecursiveEncode(DeltaEncode(fixedPoint(A.Floats, param)), DefaultRecursiveBits))
	}
	return out, nil
}

func fixedPoint(f []float64, param int32) []int {
	out := make([]int, len(f))
	for i, v := range f {
		out[i] = int(math.Round(v * float64(param)))
	}
	return out
}

func appendInt32s(out []byte, ints []int) []byte {
	for _, v := range ints {
		out = be.AppendUint32(out, uint32(int32(v)))
	}
	return out
}

func appendInt16s(out []byte, ints []int) []byte {
	for _, v := range ints {
		out = be.AppendUint16(out, uint16(int16(v)))
	}
	return out
}
