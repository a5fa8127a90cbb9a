/*
 * transfer_test.go, part of gommtf.
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
	"errors"
	"testing"
	"time"

	"github.com/rmera/gommtf/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transferSource(Te *testing.T) envelope.Value {
	v, err := envelope.Unpack(map[string]interface{}{
		"M": 10.127, "C": 100, "D": "2018-09-17", "L": []interface{}{8, 9},
		"S": []interface{}{"X-RAY", "NMR"}, "E": []interface{}{}, "N": nil, "T": "text",
	})
	require.NoError(Te, err)
	return v
}

func TestTransferTrim(Te *testing.T) {
	src := transferSource(Te)
	var f *float64
	ok, err := Transfer(src, "M", &f, Trim(1))
	require.NoError(Te, err)
	assert.True(Te, ok)
	assert.Equal(Te, 10.1, *f)
	_, err = Transfer(src, "M", &f, Trim(2))
	require.NoError(Te, err)
	assert.Equal(Te, 10.13, *f)
	_, err = Transfer(src, "M", &f)
	require.NoError(Te, err)
	assert.Equal(Te, 10.127, *f)
	//ints are accepted as floats
	_, err = Transfer(src, "C", &f, Trim(3))
	require.NoError(Te, err)
	assert.Equal(Te, 100.0, *f)
}

func TestTransferAbsent(Te *testing.T) {
	src := transferSource(Te)
	def := 3.5
	f := &def
	for _, key := range []string{"X", "N"} {
		ok, err := Transfer(src, key, &f, Trim(1))
		require.NoError(Te, err)
		assert.False(Te, ok)
		assert.Equal(Te, &def, f, "key %s", key)
	}
	var s *string
	ok, err := Transfer(src, "E", &s, First())
	require.NoError(Te, err)
	assert.False(Te, ok)
	assert.Nil(Te, s)
	ok, err = Transfer(envelope.NewInt(3), "M", &f)
	require.NoError(Te, err)
	assert.False(Te, ok)
}

func TestTransferKinds(Te *testing.T) {
	src := transferSource(Te)
	var d *time.Time
	_, err := Transfer(src, "D", &d, AsDate())
	require.NoError(Te, err)
	assert.Equal(Te, time.Date(2018, 9, 17, 0, 0, 0, 0, time.UTC), *d)

	var i *int
	_, err = Transfer(src, "L", &i, First())
	require.NoError(Te, err)
	assert.Equal(Te, 8, *i)

	var s *string
	_, err = Transfer(src, "S", &s, First())
	require.NoError(Te, err)
	assert.Equal(Te, "X-RAY", *s)

	var l []string
	_, err = Transfer(src, "S", &l)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"X-RAY", "NMR"}, l)
}

func TestTransferInvalid(Te *testing.T) {
	src := transferSource(Te)
	var d *time.Time
	var s *string
	var f *float64
	var i *int
	cases := []struct {
		key  string
		dst  interface{}
		opts []TransferOption
	}{
		{"M", &d, []TransferOption{AsDate()}},
		{"T", &d, []TransferOption{AsDate()}},
		{"D", &s, []TransferOption{AsDate()}},
		{"M", &s, nil},
		{"T", &f, nil},
		{"M", &i, nil},
		{"T", &f, []TransferOption{First()}},
		{"T", s, nil},
	}
	for _, c := range cases {
		ok, err := Transfer(src, c.key, c.dst, c.opts...)
		assert.False(Te, ok)
		assert.True(Te, errors.Is(err, ErrInvalidField), "%s into %T: %v", c.key, c.dst, err)
	}
	assert.Nil(Te, d)
	assert.Nil(Te, s)
	assert.Nil(Te, f)
	assert.Nil(Te, i)
}
