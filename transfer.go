/*
 * transfer.go, part of gommtf.
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

package mmtf

import (
	"math"
	"time"

	"github.com/rmera/gommtf/envelope"
)

//DateLayout is the layout of the dates in MMTF files.
const DateLayout = "2006-01-02"

type transferConf struct {
	date  bool
	first bool
	trim  int
	round bool
}

//TransferOption modifies how Transfer converts a value.
type TransferOption func(*transferConf)

//AsDate parses the value as a date in DateLayout.
func AsDate() TransferOption { return func(c *transferConf) { c.date = true } }

//First takes the first element of a list value.
func First() TransferOption { return func(c *transferConf) { c.first = true } }

//Trim rounds a float value to n decimal places, half away from zero.
func Trim(n int) TransferOption {
	return func(c *transferConf) {
		c.trim = n
		c.round = true
	}
}

/*Transfer copies src[key] into dst, which must be a **string, **float64, **int,
**time.Time or *[]string. It returns true if dst was set.
An absent or null key leaves dst unchanged and is not an error, nor is an
empty list with First. A value that can't be converted to the type of dst
gives an error wrapping ErrInvalidField, and dst is not modified.*/
func Transfer(src envelope.Value, key string, dst interface{}, opts ...TransferOption) (bool, error) {
	c := new(transferConf)
	for _, o := range opts {
		o(c)
	}
	v, ok := src.Key(key)
	if !ok || v.IsNull() {
		return false, nil
	}
	if c.first {
		if v.Kind() != envelope.List {
			return false, newError(ErrInvalidField, "Transfer", "%s: a list is needed, got %s", key, v.Kind())
		}
		if v.Len() == 0 {
			return false, nil
		}
		v = v.Index(0)
	}
	bad := func(want string) (bool, error) {
		return false, newError(ErrInvalidField, "Transfer", "%s: can't convert %s to %s", key, v.Kind(), want)
	}
	if _, ok := dst.(**time.Time); c.date && !ok {
		return false, newError(ErrInvalidField, "Transfer", "%s: dates can only go to a **time.Time, not %T", key, dst)
	}
	switch d := dst.(type) {
	case **string:
		s, ok := v.AsText()
		if !ok {
			return bad("text")
		}
		*d = &s
	case **float64:
		f, ok := v.AsFloat()
		if !ok {
			return bad("float")
		}
		if c.round {
			f = trim(f, c.trim)
		}
		*d = &f
	case **int:
		i, ok := v.AsInt()
		if !ok {
			return bad("int")
		}
		*d = &i
	case **time.Time:
		s, ok := v.AsText()
		if !ok {
			return bad("date")
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return bad("date")
		}
		*d = &t
	case *[]string:
		l, ok := v.Texts()
		if !ok {
			return bad("text list")
		}
		*d = l
	default:
		return false, newError(ErrInvalidField, "Transfer", "%s: unsupported destination %T", key, dst)
	}
	return true, nil
}

func trim(f float64, n int) float64 {
	p := math.Pow10(n)
	return math.Round(f*p) / p
}
