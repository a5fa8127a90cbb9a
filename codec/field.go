/*
 * field.go, part of gommtf.
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
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// HeaderLen is the size in bytes of a binary field header.
const HeaderLen = 12

// The codec ids.
const (
	Float32 int32 = iota + 1
	Int8
	Int16
	Int32
	FourByteString
	RunLengthChars
	RunLengthInt32
	RunLengthDeltaInt32
	RunLengthFloat
	RecursiveDeltaFloat
)

var be = binary.BigEndian

// Header is the 12-byte prefix of a binary field.
type Header struct {
	Codec int32
	Count int32
	Param int32
}

// Kind tells which slice of an Array holds the data.
type Kind int

const (
	IntArray Kind = iota
	FloatArray
	StringArray
)

func (k Kind) String() string {
	switch k {
	case IntArray:
		return "int"
	case FloatArray:
		return "float"
	case StringArray:
		return "string"
	}
	return "unknown"
}

// Array is a decoded binary field. Only the slice matching Kind is set.
type Array struct {
	Kind    Kind
	Ints    []int
	Floats  []float64
	Strings []string
}

// Len returns the number of elements in the array.
func (A *Array) Len() int {
	switch A.Kind {
	case IntArray:
		return len(A.Ints)
	case FloatArray:
		return len(A.Floats)
	}
	return len(A.Strings)
}

// ParseHeader reads the header at the beginning of b and returns it,
// together with the payload that follows it. It only checks that the
// header is there and that the count is not negative.
func ParseHeader(b []byte) (Header, []byte, error) {
	var h Header
	if len(b) < HeaderLen {
		return h, nil, newError(ErrMalformedHeader, fmt.Sprintf("%d bytes is shorter than a header", len(b)), "ParseHeader")
	}
	h.Codec = int32(be.Uint32(b[0:4]))
	h.Count = int32(be.Uint32(b[4:8]))
	h.Param = int32(be.Uint32(b[8:12]))
	if h.Count < 0 {
		return h, nil, newError(ErrMalformedHeader, fmt.Sprintf("negative element count %d", h.Count), "ParseHeader")
	}
	return h, b[HeaderLen:], nil
}

// checkLen verifies that the payload has exactly count elements of width bytes.
func checkLen(h Header, payload []byte, width int) error {
	if len(payload) != int(h.Count)*width {
		return newError(ErrMalformedHeader, fmt.Sprintf("codec %d: %d elements need %d bytes, payload has %d", h.Codec, h.Count, int(h.Count)*width, len(payload)), "checkLen")
	}
	return nil
}

// checkChunks verifies that the payload is a whole number of width-byte chunks.
func checkChunks(h Header, payload []byte, width int) error {
	if len(payload)%width != 0 {
		return newError(ErrMalformedHeader, fmt.Sprintf("codec %d: payload of %d bytes is not a multiple of %d", h.Codec, len(payload), width), "checkChunks")
	}
	return nil
}

func readInt32s(payload []byte) []int {
	out := make([]int, len(payload)/4)
	for i := range out {
		out[i] = int(int32(be.Uint32(payload[4*i:])))
	}
	return out
}

func readInt16s(payload []byte) []int {
	out := make([]int, len(payload)/2)
	for i := range out {
		out[i] = int(int16(be.Uint16(payload[2*i:])))
	}
	return out
}

func divide(in []int, p int32) ([]float64, error) {
	if p == 0 {
		return nil, newError(ErrMalformedHeader, "zero divisor parameter", "divide")
	}
	out := make([]float64, len(in))
	d := float64(p)
	for i, v := range in {
		out[i] = float64(v) / d
	}
	return out, nil
}

// IsCodec returns true if c is one of the ten known codec ids.
func IsCodec(c int32) bool {
	return c >= Float32 && c <= RecursiveDeltaFloat
}

// Decode decodes a complete binary field (header and payload).
func Decode(b []byte) (*Array, error) {
	h, payload, err := ParseHeader(b)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	a, err := DecodePayload(h, payload)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return a, nil
}

// DecodePayload decodes payload according to the already parsed header h.
func DecodePayload(h Header, payload []byte) (*Array, error) {
	if !IsCodec(h.Codec) {
		return nil, newError(ErrUnsupportedCodec, fmt.Sprintf("codec id %d", h.Codec), "DecodePayload")
	}
	n := int(h.Count)
	var err error
	switch h.Codec {
	case Float32:
		if err = checkLen(h, payload, 4); err != nil {
			break
		}
		f := make([]float64, n)
		for i := range f {
			f[i] = float64(math.Float32frombits(be.Uint32(payload[4*i:])))
		}
		return &Array{Kind: FloatArray, Floats: f}, nil
	case Int8:
		if err = checkLen(h, payload, 1); err != nil {
			break
		}
		ints := make([]int, n)
		for i := range ints {
			ints[i] = int(int8(payload[i]))
		}
		return &Array{Kind: IntArray, Ints: ints}, nil
	case Int16:
		if err = checkLen(h, payload, 2); err != nil {
			break
		}
		return &Array{Kind: IntArray, Ints: readInt16s(payload)}, nil
	case Int32:
		if err = checkLen(h, payload, 4); err != nil {
			break
		}
		return &Array{Kind: IntArray, Ints: readInt32s(payload)}, nil
	case FourByteString:
		if err = checkLen(h, payload, 4); err != nil {
			break
		}
		s := make([]string, n)
		for i := range s {
			s[i] = string(bytes.TrimRight(payload[4*i:4*i+4], "\x00"))
		}
		return &Array{Kind: StringArray, Strings: s}, nil
	case RunLengthChars, RunLengthInt32, RunLengthDeltaInt32, RunLengthFloat:
		if err = checkChunks(h, payload, 8); err != nil {
			break
		}
		var ints []int
		ints, err = RunLengthDecode(readInt32s(payload))
		if err != nil {
			break
		}
		return runLengthResult(h, ints)
	case RecursiveDeltaFloat:
		if err = checkChunks(h, payload, 2); err != nil {
			break
		}
		ints := DeltaDecode(RecursiveDecode(readInt16s(payload), DefaultRecursiveBits))
		var f []float64
		if f, err = divide(ints, h.Param); err != nil {
			break
		}
		return &Array{Kind: FloatArray, Floats: f}, nil
	}
	return nil, errDecorate(err, "DecodePayload")
}

// runLengthResult finishes codecs 6 to 9 once the run-length step is done.
func runLengthResult(h Header, ints []int) (*Array, error) {
	switch h.Codec {
	case RunLengthChars:
		s := make([]string, len(ints))
		for i, v := range ints {
			if v != 0 {
				s[i] = string(rune(v))
			}
		}
		return &Array{Kind: StringArray, Strings: s}, nil
	case RunLengthDeltaInt32:
		return &Array{Kind: IntArray, Ints: DeltaDecode(ints)}, nil
	case RunLengthFloat:
		f, err := divide(ints, h.Param)
		if err != nil {
			return nil, errDecorate(err, "runLengthResult")
		}
		return &Array{Kind: FloatArray, Floats: f}, nil
	}
	return &Array{Kind: IntArray, Ints: ints}, nil
}
