/*
 * codec_test.go, part of gommtf.
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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// field builds a header followed by the given payload.
func field(c, n, p int32, payload []byte) []byte {
	b := make([]byte, 0, HeaderLen+len(payload))
	b = be.AppendUint32(b, uint32(c))
	b = be.AppendUint32(b, uint32(n))
	b = be.AppendUint32(b, uint32(p))
	return append(b, payload...)
}

func i32s(v ...int) []byte { return appendInt32s(nil, v) }
func i16s(v ...int) []byte { return appendInt16s(nil, v) }

func TestRunLengthDecode(Te *testing.T) {
	out, err := RunLengthDecode([]int{1, 10, 2, 1, 1, 4})
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1}, out)
	assert.Len(Te, out, 15)

	_, err = RunLengthDecode([]int{1, -1})
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
	_, err = RunLengthDecode([]int{1, 2, 3})
	assert.True(Te, errors.Is(err, ErrMalformedHeader))

	out, err = RunLengthDecode(nil)
	require.NoError(Te, err)
	assert.Empty(Te, out)
}

func TestRunLengthLimit(Te *testing.T) {
	_, err := Decode(field(7, 1, 0, i32s(1, 0x7fffffff)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader), "got %v", err)
	_, err = Decode(field(7, 1, 0, i32s(1, 100000000)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader), "got %v", err)
	//each run fits, their sum does not
	_, err = RunLengthDecode([]int{1, 1 << 24, 2, 1 << 24, 3, 1 << 24})
	assert.True(Te, errors.Is(err, ErrMalformedHeader))

	old := MaxDecodedLen
	defer func() { MaxDecodedLen = old }()
	MaxDecodedLen = 10
	out, err := RunLengthDecode([]int{1, 4, 2, 6})
	require.NoError(Te, err)
	assert.Len(Te, out, 10)
	_, err = RunLengthDecode([]int{1, 4, 2, 7})
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
}

func TestDeltaDecode(Te *testing.T) {
	in := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1}
	assert.Equal(Te, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 13, 14, 15, 16}, DeltaDecode(in))
	assert.Equal(Te, 1, in[1], "input must not be modified")
}

func TestRecursiveDecode(Te *testing.T) {
	assert.Equal(Te, []int{105200, 0, 2, -1, 100, -3, 5},
		RecursiveDecode([]int{32767, 32767, 32767, 6899, 0, 2, -1, 100, -3, 5}, 16))
	assert.Equal(Te, []int{168, 34, 1, 0, -50, -128, 7, 127, 268},
		RecursiveDecode([]int{127, 41, 34, 1, 0, -50, -128, 0, 7, 127, 0, 127, 127, 14}, 8))
	//0 bits means the default, 16.
	assert.Equal(Te, []int{-32769}, RecursiveDecode([]int{-32768, -1}, 0))
	//unterminated sentinels are not emitted
	assert.Equal(Te, []int{3}, RecursiveDecode([]int{3, 32767}, 16))
}

func TestTransformRoundTrip(Te *testing.T) {
	data := []int{105200, 0, 2, -1, 100, -3, 5, -70000, 32767, -32768, 4, 4, 4}
	assert.Equal(Te, data, DeltaDecode(DeltaEncode(data)))
	rl, err := RunLengthDecode(RunLengthEncode(data))
	require.NoError(Te, err)
	assert.Equal(Te, data, rl)
	for _, bits := range []int{8, 16, 32} {
		enc := RecursiveEncode(data, bits)
		min, max := bounds(bits)
		for _, v := range enc {
			assert.True(Te, v >= min && v <= max, "%d does not fit in %d bits", v, bits)
		}
		assert.Equal(Te, data, RecursiveDecode(enc, bits))
	}
}

func TestDecodeCodecs(Te *testing.T) {
	f32 := make([]byte, 0, 12)
	for _, v := range []float32{4.5, 5.5, 6.5} {
		f32 = be.AppendUint32(f32, math.Float32bits(v))
	}
	cases := []struct {
		name  string
		field []byte
		want  *Array
	}{
		{"float32", field(1, 3, 0, f32), &Array{Kind: FloatArray, Floats: []float64{4.5, 5.5, 6.5}}},
		{"int8", field(2, 3, 0, []byte{4, 5, 0xff}), &Array{Kind: IntArray, Ints: []int{4, 5, -1}}},
		{"int16", field(3, 3, 0, i16s(4, 5, -6)), &Array{Kind: IntArray, Ints: []int{4, 5, -6}}},
		{"int32", field(4, 3, 0, i32s(4, 5, 6)), &Array{Kind: IntArray, Ints: []int{4, 5, 6}}},
		{"strings", field(5, 3, 0, []byte{65, 0, 0, 0, 66, 0, 0, 0, 67, 0, 0, 0}), &Array{Kind: StringArray, Strings: []string{"A", "B", "C"}}},
		{"strings2", field(5, 2, 0, []byte{65, 0, 0, 0, 68, 65, 0, 0}), &Array{Kind: StringArray, Strings: []string{"A", "DA"}}},
		{"rlchars", field(6, 6, 0, i32s(100, 1, 0, 2, 105, 1, 0, 2)), &Array{Kind: StringArray, Strings: []string{"d", "", "", "i", "", ""}}},
		{"rlint", field(7, 6, 0, i32s(100, 1, 0, 2, 105, 1, 0, 2)), &Array{Kind: IntArray, Ints: []int{100, 0, 0, 105, 0, 0}}},
		{"rldelta", field(8, 5, 0, i32s(1, 3, 5, 1, -2, 1)), &Array{Kind: IntArray, Ints: []int{1, 2, 3, 8, 6}}},
		{"rlfloat short count", field(9, 3, 100, i32s(1000, 1, 0, 2, 1050, 1, 0, 2)), &Array{Kind: FloatArray, Floats: []float64{10, 0, 0, 10.5, 0, 0}}},
		{"rlfloat", field(9, 6, 100, i32s(1000, 1, 0, 2, 1050, 1, 0, 2)), &Array{Kind: FloatArray, Floats: []float64{10, 0, 0, 10.5, 0, 0}}},
		{"recursive", field(10, 3, 1000, i16s(1000, 1000, 1000)), &Array{Kind: FloatArray, Floats: []float64{1, 2, 3}}},
	}
	for _, c := range cases {
		Te.Run(c.name, func(t *testing.T) {
			got, err := Decode(c.field)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecodeRecursiveLargeValues(Te *testing.T) {
	got, err := Decode(field(10, 4, 1000, i16s(1000, 1000, 32767, 1, -500)))
	require.NoError(Te, err)
	require.Equal(Te, FloatArray, got.Kind)
	want := []float64{1, 2, 34.768, 34.268}
	require.Len(Te, got.Floats, len(want))
	for i := range want {
		assert.InDelta(Te, want[i], got.Floats[i], 1e-9)
	}
}

func TestDecodeErrors(Te *testing.T) {
	_, err := Decode(field(20, 0, 0, nil))
	assert.True(Te, errors.Is(err, ErrUnsupportedCodec), "got %v", err)
	_, err = Decode(field(0, 0, 0, nil))
	assert.True(Te, errors.Is(err, ErrUnsupportedCodec))

	_, err = Decode([]byte{0, 0, 0, 4})
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
	_, err = Decode(field(4, 3, 0, i32s(1, 2)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
	_, err = Decode(field(4, 1, 0, i32s(1, 2)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
	_, err = Decode(field(7, 2, 0, i32s(1, 2, 3)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
	_, err = Decode(field(10, 1, 0, i16s(1)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader), "zero divisor")
	_, err = Decode(field(7, 1, 0, i32s(1, -3)))
	assert.True(Te, errors.Is(err, ErrMalformedHeader), "negative repeat")

	var cerr *Error
	require.True(Te, errors.As(err, &cerr))
	assert.True(Te, cerr.Critical())
	assert.Contains(Te, cerr.Decorate(""), "Decode")
}

func TestEncodeRoundTrip(Te *testing.T) {
	arrays := []struct {
		codec int32
		param int32
		a     *Array
	}{
		{Float32, 0, &Array{Kind: FloatArray, Floats: []float64{1.5, -2.25, 0}}},
		{Int8, 0, &Array{Kind: IntArray, Ints: []int{1, -128, 127}}},
		{Int16, 0, &Array{Kind: IntArray, Ints: []int{1, -32768, 300}}},
		{Int32, 0, &Array{Kind: IntArray, Ints: []int{1, -70000, 1 << 30}}},
		{FourByteString, 0, &Array{Kind: StringArray, Strings: []string{"A", "HOH", "ABCD", ""}}},
		{RunLengthChars, 0, &Array{Kind: StringArray, Strings: []string{"", "", "A", "A", "B"}}},
		{RunLengthInt32, 0, &Array{Kind: IntArray, Ints: []int{0, 0, 0, 7, 7, 1}}},
		{RunLengthDeltaInt32, 0, &Array{Kind: IntArray, Ints: []int{1, 2, 3, 4, 10, 11, 12}}},
		{RunLengthFloat, 100, &Array{Kind: FloatArray, Floats: []float64{1, 1, 0.5, 0.5, 0.25}}},
		{RecursiveDeltaFloat, 1000, &Array{Kind: FloatArray, Floats: []float64{10.5, -20.125, 400.001, 0}}},
	}
	for _, v := range arrays {
		b, err := Encode(v.codec, v.param, v.a)
		require.NoError(Te, err, "codec %d", v.codec)
		h, _, err := ParseHeader(b)
		require.NoError(Te, err)
		assert.Equal(Te, Header{Codec: v.codec, Count: int32(v.a.Len()), Param: v.param}, h)
		got, err := Decode(b)
		require.NoError(Te, err, "codec %d", v.codec)
		require.Equal(Te, v.a.Kind, got.Kind)
		if got.Kind == FloatArray {
			require.Len(Te, got.Floats, len(v.a.Floats))
			for i := range got.Floats {
				assert.InDelta(Te, v.a.Floats[i], got.Floats[i], 1e-6, "codec %d", v.codec)
			}
			continue
		}
		assert.Equal(Te, v.a, got, "codec %d", v.codec)
	}
	_, err := Encode(11, 0, &Array{})
	assert.True(Te, errors.Is(err, ErrUnsupportedCodec))
	_, err = Encode(Int32, 0, &Array{Kind: FloatArray})
	assert.True(Te, errors.Is(err, ErrMalformedHeader))
}
