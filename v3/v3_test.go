/*
 * v3_test.go, part of gommtf.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestGeo(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	ar, _ := A.Dims()
	T := Zeros(ar)
	T.Mul(A, gnEye(3))
	assert.True(Te, mat.Equal(A, T))
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0), "views must share data")

	_, err = NewMatrix([]float64{1, 2})
	require.Error(Te, err)
	var e *Error
	require.ErrorAs(Te, err, &e)
	assert.True(Te, e.Critical())
	e.Decorate("Caller")
	assert.Equal(Te, []string{"NewMatrix", "Caller"}, e.Decorate(""))
	var d interface{ Decorate(string) []string }
	assert.True(Te, errors.As(err, &d), "the returned error must carry its decorations")
}

func TestMulAliased(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	rot := mat.NewDense(3, 3, []float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
	A.Mul(A, rot.T())
	assert.Equal(Te, []float64{0, 1, 0}, A.RawRowView(0))
	assert.Equal(Te, []float64{-1, 0, 0}, A.RawRowView(1))
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	B.SomeVecs(A, []int{1, 3, 5})
	assert.Equal(Te, []float64{4, 5, 6}, B.RawRowView(0))
	assert.Equal(Te, []float64{16, 17, 18}, B.RawRowView(2))
	assert.Panics(Te, func() { B.SomeVecs(A, []int{1, 2}) })
	assert.Panics(Te, func() { B.SomeVecs(A, []int{1, 2, 6}) })
}

func TestAddSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v, _ := NewMatrix([]float64{1, 1, -1})
	A.AddVec(A, v)
	assert.Equal(Te, []float64{2, 3, 2}, A.RawRowView(0))
	assert.Equal(Te, []float64{5, 6, 5}, A.RawRowView(1))
	B := Zeros(2)
	B.SubVec(A, v)
	assert.Equal(Te, []float64{4, 5, 6}, B.RawRowView(1))
	assert.Equal(Te, []float64{1, 1, -1}, v.RawRowView(0), "vec must not change")
	assert.Panics(Te, func() { Zeros(3).AddVec(A, v) })
}

func TestCentroid(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 2, 4, 6})
	assert.Equal(Te, []float64{1, 2, 3}, A.Centroid().RawRowView(0))
	assert.Equal(Te, 2, A.NVecs())
	assert.Contains(Te, A.String(), "4.00")
}
