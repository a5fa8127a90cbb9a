/*
 * unpack.go, part of gommtf.
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

package envelope

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rmera/gommtf/codec"
)

// ErrUnsupportedType is returned when the tree holds a Go type that
// a msgpack decoder would not produce.
var ErrUnsupportedType = errors.New("envelope: unsupported value type")

// Option configures Unpack and Unmarshal.
type Option func(*unpacker)

// WithBinaryKeys names map keys whose values must be binary fields.
// They are decoded even if they don't look binary, and a failure to
// decode them is an error instead of a fallback to text.
func WithBinaryKeys(keys ...string) Option {
	return func(u *unpacker) {
		for _, k := range keys {
			u.forced[k] = true
		}
	}
}

// WithoutSniffing disables the detection of binary fields. Only the keys
// given with WithBinaryKeys are decoded.
func WithoutSniffing() Option {
	return func(u *unpacker) { u.sniff = false }
}

type unpacker struct {
	forced map[string]bool
	sniff  bool
}

/*Unpack converts v, a tree as produced by a msgpack decoder, into a Value.
Raw (byte-string) map keys arrive as strings and stay text, integer keys
are formatted as text. A byte-string scalar, or a string starting
with a NUL byte (a binary field read as text), is tried as a binary field: if
it decodes, it is replaced by the decoded array, otherwise it is kept as text
(or as Bytes, if it is not valid UTF-8).
Values that are already decoded (Value, *codec.Array, []int, []float64,
[]string) are accepted as they are, so unpacking is idempotent.*/
func Unpack(v interface{}, opts ...Option) (Value, error) {
	u := &unpacker{forced: map[string]bool{}, sniff: true}
	for _, o := range opts {
		o(u)
	}
	return u.unpack(v, "")
}

func (u *unpacker) unpack(v interface{}, key string) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case bool:
		return NewBool(t), nil
	case int:
		return NewInt(t), nil
	case int8:
		return NewInt(int(t)), nil
	case int16:
		return NewInt(int(t)), nil
	case int32:
		return NewInt(int(t)), nil
	case int64:
		return NewInt(int(t)), nil
	case uint:
		return unsignedInt(uint64(t), key)
	case uint8:
		return NewInt(int(t)), nil
	case uint16:
		return NewInt(int(t)), nil
	case uint32:
		return NewInt(int(t)), nil
	case uint64:
		return unsignedInt(t, key)
	case float32:
		return NewFloat(float64(t)), nil
	case float64:
		return NewFloat(t), nil
	case string:
		if u.forced[key] || (u.sniff && len(t) > 0 && t[0] == 0) {
			return u.binary([]byte(t), key)
		}
		return NewText(t), nil
	case []byte:
		if u.forced[key] || u.sniff {
			return u.binary(t, key)
		}
		return plain(t), nil
	case *codec.Array:
		return NewArray(t), nil
	case []int:
		return Value{kind: List, arr: &codec.Array{Kind: codec.IntArray, Ints: append([]int{}, t...)}}, nil
	case []float64:
		return Value{kind: List, arr: &codec.Array{Kind: codec.FloatArray, Floats: append([]float64{}, t...)}}, nil
	case []string:
		return Value{kind: List, arr: &codec.Array{Kind: codec.StringArray, Strings: append([]string{}, t...)}}, nil
	case []interface{}:
		l := make([]Value, len(t))
		for i, e := range t {
			val, err := u.unpack(e, "")
			if err != nil {
				return Value{}, err
			}
			l[i] = val
		}
		return Value{kind: List, list: l}, nil
	case map[string]interface{}:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			val, err := u.unpack(e, k)
			if err != nil {
				return Value{}, err
			}
			m[k] = val
		}
		return Value{kind: Map, entry: m}, nil
	case map[interface{}]interface{}:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			sk, err := textKey(k)
			if err != nil {
				return Value{}, err
			}
			val, err := u.unpack(e, sk)
			if err != nil {
				return Value{}, err
			}
			m[sk] = val
		}
		return Value{kind: Map, entry: m}, nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// binary tries b as a binary field.
func (u *unpacker) binary(b []byte, key string) (Value, error) {
	a, err := codec.Decode(b)
	if err == nil {
		return Value{kind: List, arr: a}, nil
	}
	if u.forced[key] {
		return Value{}, fmt.Errorf("envelope: field %q: %w", key, err)
	}
	return plain(b), nil
}

func plain(b []byte) Value {
	if utf8.Valid(b) {
		return NewText(string(b))
	}
	return NewBytes(b)
}

func textKey(k interface{}) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t), nil
	}
	return "", fmt.Errorf("%w: map key of type %T", ErrUnsupportedType, k)
}

// unsignedInt rejects integers that do not fit in an int.
func unsignedInt(v uint64, key string) (Value, error) {
	if v > math.MaxInt {
		return Value{}, fmt.Errorf("%w: integer %d under key %q overflows int", ErrUnsupportedType, v, key)
	}
	return NewInt(int(v)), nil
}
