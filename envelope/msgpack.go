/*
 * msgpack.go, part of gommtf.
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
	"fmt"

	msgpack "github.com/ugorji/go/codec"
)

// handle returns a msgpack handle for the current msgpack format: str is
// decoded as string and bin as []byte, and []byte is written as bin.
func handle() *msgpack.MsgpackHandle {
	h := new(msgpack.MsgpackHandle)
	h.WriteExt = true
	return h
}

// Unmarshal decodes the msgpack document in b and unpacks it.
func Unmarshal(b []byte, opts ...Option) (Value, error) {
	var tree interface{}
	dec := msgpack.NewDecoderBytes(b, handle())
	if err := dec.Decode(&tree); err != nil {
		return Value{}, fmt.Errorf("envelope: msgpack: %w", err)
	}
	return Unpack(tree, opts...)
}

// Marshal encodes v as msgpack. Values are converted with their
// Interface method first.
func Marshal(v interface{}) ([]byte, error) {
	if val, ok := v.(Value); ok {
		v = val.Interface()
	}
	var out []byte
	enc := msgpack.NewEncoderBytes(&out, handle())
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("envelope: msgpack: %w", err)
	}
	return out, nil
}
