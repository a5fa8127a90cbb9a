/*
 * assembly.go, part of gommtf.
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

	"github.com/rmera/gommtf/envelope"
)

//buildAssemblies reads bioAssemblyList. The chains of each transformation
//are given by their author names.
func buildAssemblies(m envelope.Value, chainNames []string) ([]*Assembly, error) {
	list, ok := m.Key("bioAssemblyList")
	if !ok || list.IsNull() {
		return []*Assembly{}, nil
	}
	if list.Kind() != envelope.List {
		return nil, newError(ErrMissingField, "buildAssemblies", "bioAssemblyList: list needed")
	}
	ret := make([]*Assembly, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		entry := list.Index(i)
		if entry.Kind() != envelope.Map {
			return nil, newError(ErrMissingField, "buildAssemblies", "bioAssemblyList: assembly %d is not a map", i)
		}
		a := &Assembly{ID: i + 1, Transformations: []Transformation{}}
		if n, ok := entry.Key("name"); ok {
			if s, ok := n.AsText(); ok {
				a.Name = &s
			}
		}
		transforms, _ := entry.Key("transformList")
		for j := 0; j < transforms.Len(); j++ {
			tr, err := transformation(transforms.Index(j), chainNames)
			if err != nil {
				return nil, newError(ErrInconsistentCount, "buildAssemblies", "assembly %d, transformation %d: %s", i+1, j, err)
			}
			a.Transformations = append(a.Transformations, tr)
		}
		ret = append(ret, a)
	}
	return ret, nil
}

//transformation splits the flat 4x4 matrix of a transformList entry into
//a rotation (elements 0-2, 4-6 and 8-10) and a translation (3, 7 and 11).
func transformation(v envelope.Value, chainNames []string) (Transformation, error) {
	var T Transformation
	idx, ok := intsAt(v, "chainIndexList")
	if !ok {
		return T, errors.New("chainIndexList missing")
	}
	T.Chains = make([]string, len(idx))
	for k, c := range idx {
		if c < 0 || c >= len(chainNames) {
			return T, errors.New("chain index out of range")
		}
		T.Chains[k] = chainNames[c]
	}
	mv, _ := v.Key("matrix")
	mat, ok := mv.Floats()
	if !ok || len(mat) != 16 {
		return T, errors.New("a 16-element matrix is needed")
	}
	for r := 0; r < 3; r++ {
		copy(T.Matrix[r][:], mat[4*r:4*r+3])
		T.Vector[r] = mat[4*r+3]
	}
	return T, nil
}

func intsAt(v envelope.Value, key string) ([]int, bool) {
	l, ok := v.Key(key)
	if !ok {
		return nil, false
	}
	return l.Ints()
}
