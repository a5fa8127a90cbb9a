/*
 * value.go, part of gommtf.
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

//Package envelope turns the generic value tree of a msgpack-encoded MMTF
//file into Values, replacing the binary fields by their decoded arrays.
package envelope

import (
	"math"
	"sort"

	"github.com/rmera/gommtf/codec"
)

// Kind is the type of the data held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	Text
	Bytes
	List
	Map
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	case Bytes:
		return "bytes"
	case List:
		return "list"
	case Map:
		return "map"
	}
	return "unknown"
}

// Value is an immutable tagged union. Lists coming from binary fields keep
// the decoded array packed instead of holding one Value per element.
// The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     int
	f     float64
	s     string
	raw   []byte
	list  []Value
	arr   *codec.Array
	entry map[string]Value
}

func NewNull() Value { return Value{} }
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }
func NewInt(i int) Value { return Value{kind: Int, i: i} }
func NewFloat(f float64) Value { return Value{kind: Float, f: f} }
func NewText(s string) Value { return Value{kind: Text, s: s} }
func NewBytes(b []byte) Value { return Value{kind: Bytes, raw: append([]byte(nil), b...)} }
func NewList(vals ...Value) Value { return Value{kind: List, list: append([]Value(nil), vals...)} }

// NewMap returns a Map value holding a copy of m.
func NewMap(m map[string]Value) Value {
	c := make(map[string]Value, len(m))
	for k, v := range m {
		c[k] = v
	}
	return Value{kind: Map, entry: c}
}

// NewArray returns a List value backed by a decoded binary field.
// The array is copied.
func NewArray(a *codec.Array) Value {
	c := &codec.Array{Kind: a.Kind}
	switch a.Kind {
	case codec.IntArray:
		c.Ints = append([]int{}, a.Ints...)
	case codec.FloatArray:
		c.Floats = append([]float64{}, a.Floats...)
	default:
		c.Strings = append([]string{}, a.Strings...)
	}
	return Value{kind: List, arr: c}
}

// Kind returns the kind of the value.
func (V Value) Kind() Kind { return V.kind }

// IsNull returns true for Null values.
func (V Value) IsNull() bool { return V.kind == Null }

// Packed returns true if V is a list that came from a binary field.
func (V Value) Packed() bool { return V.arr != nil }

// Len returns the number of elements of a List or Map, the length of
// a Text or Bytes, and 0 for everything else.
func (V Value) Len() int {
	switch V.kind {
	case List:
		if V.arr != nil {
			return V.arr.Len()
		}
		return len(V.list)
	case Map:
		return len(V.entry)
	case Text:
		return len(V.s)
	case Bytes:
		return len(V.raw)
	}
	return 0
}

// Index returns the ith element of a List. It returns Null if V is not
// a list or i is out of range.
func (V Value) Index(i int) Value {
	if V.kind != List || i < 0 || i >= V.Len() {
		return Value{}
	}
	if V.arr == nil {
		return V.list[i]
	}
	switch V.arr.Kind {
	case codec.IntArray:
		return NewInt(V.arr.Ints[i])
	case codec.FloatArray:
		return NewFloat(V.arr.Floats[i])
	}
	return NewText(V.arr.Strings[i])
}

// Key returns the value stored under k in a Map, and whether it was there.
func (V Value) Key(k string) (Value, bool) {
	if V.kind != Map {
		return Value{}, false
	}
	v, ok := V.entry[k]
	return v, ok
}

// Keys returns the sorted keys of a Map, or nil.
func (V Value) Keys() []string {
	if V.kind != Map {
		return nil
	}
	keys := make([]string, 0, len(V.entry))
	for k := range V.entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsBool returns the boolean held by V.
func (V Value) AsBool() (bool, bool) { return V.b, V.kind == Bool }

// AsInt returns V as an int. Floats with an integral value are accepted.
func (V Value) AsInt() (int, bool) {
	switch V.kind {
	case Int:
		return V.i, true
	case Float:
		if V.f == math.Trunc(V.f) && !math.IsInf(V.f, 0) {
			return int(V.f), true
		}
	}
	return 0, false
}

// AsFloat returns V as a float64. Ints are converted.
func (V Value) AsFloat() (float64, bool) {
	switch V.kind {
	case Float:
		return V.f, true
	case Int:
		return float64(V.i), true
	}
	return 0, false
}

// AsText returns the string held by a Text value.
func (V Value) AsText() (string, bool) { return V.s, V.kind == Text }

// AsBytes returns a copy of the bytes held by a Bytes value.
func (V Value) AsBytes() ([]byte, bool) {
	if V.kind != Bytes {
		return nil, false
	}
	return append([]byte(nil), V.raw...), true
}

// Ints returns a copy of a List whose elements are all convertible to int.
func (V Value) Ints() ([]int, bool) {
	if V.kind != List {
		return nil, false
	}
	if V.arr != nil && V.arr.Kind == codec.IntArray {
		return append([]int{}, V.arr.Ints...), true
	}
	out := make([]int, V.Len())
	for i := range out {
		v, ok := V.Index(i).AsInt()
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Floats returns a copy of a List whose elements are all numbers.
func (V Value) Floats() ([]float64, bool) {
	if V.kind != List {
		return nil, false
	}
	if V.arr != nil && V.arr.Kind == codec.FloatArray {
		return append([]float64{}, V.arr.Floats...), true
	}
	out := make([]float64, V.Len())
	for i := range out {
		v, ok := V.Index(i).AsFloat()
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Texts returns a copy of a List whose elements are all Text.
func (V Value) Texts() ([]string, bool) {
	if V.kind != List {
		return nil, false
	}
	if V.arr != nil && V.arr.Kind == codec.StringArray {
		return append([]string{}, V.arr.Strings...), true
	}
	out := make([]string, V.Len())
	for i := range out {
		v, ok := V.Index(i).AsText()
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Interface converts V into plain Go values (nil, bool, int, float64, string,
// []byte, []interface{}, map[string]interface{}), suitable for encoding/json
// or for Marshal. Packed lists become []int, []float64 or []string.
func (V Value) Interface() interface{} {
	switch V.kind {
	case Bool:
		return V.b
	case Int:
		return V.i
	case Float:
		return V.f
	case Text:
		return V.s
	case Bytes:
		return append([]byte(nil), V.raw...)
	case List:
		if V.arr != nil {
			switch V.arr.Kind {
			case codec.IntArray:
				return append([]int{}, V.arr.Ints...)
			case codec.FloatArray:
				return append([]float64{}, V.arr.Floats...)
			}
			return append([]string{}, V.arr.Strings...)
		}
		l := make([]interface{}, len(V.list))
		for i, v := range V.list {
			l[i] = v.Interface()
		}
		return l
	case Map:
		m := make(map[string]interface{}, len(V.entry))
		for k, v := range V.entry {
			m[k] = v.Interface()
		}
		return m
	}
	return nil
}
