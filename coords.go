/*
 * coords.go, part of gommtf.
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
	"sort"

	v3 "github.com/rmera/gommtf/v3"
	"gonum.org/v1/gonum/mat"
)

//Atoms returns all the atoms of the model, sorted by id.
func (M *Model) Atoms() []*Atom {
	atoms := make([]*Atom, 0, M.NAtoms())
	for _, c := range M.Polymer {
		for _, r := range c.Residues {
			for _, a := range r.Atoms {
				atoms = append(atoms, a)
			}
		}
	}
	for _, mols := range []map[string]*Molecule{M.NonPolymer, M.Water} {
		for _, m := range mols {
			for _, a := range m.Atoms {
				atoms = append(atoms, a)
			}
		}
	}
	sort.Slice(atoms, func(i, j int) bool { return atoms[i].ID < atoms[j].ID })
	return atoms
}

//Coords returns the coordinates of the atoms of the model as a Nx3 matrix, and the
//atoms, both sorted by atom id. It returns nil, nil for a model without atoms.
func (M *Model) Coords() (*v3.Matrix, []*Atom) {
	atoms := M.Atoms()
	if len(atoms) == 0 {
		return nil, nil
	}
	data := make([]float64, 0, 3*len(atoms))
	for _, a := range atoms {
		data = append(data, a.X, a.Y, a.Z)
	}
	coords, _ := v3.NewMatrix(data) //can't fail, the length is a non-zero multiple of 3.
	return coords, atoms
}

//ChainIndexes returns the indexes in atoms of the atoms that belong to the chains
//with the given author names: polymer residues of those chains and the molecules
//and waters they own.
func (M *Model) ChainIndexes(atoms []*Atom, chains []string) []int {
	want := make(map[int]bool)
	add := func(m *Molecule) {
		for id := range m.Atoms {
			want[id] = true
		}
	}
	for _, name := range chains {
		if c, ok := M.Polymer[name]; ok {
			for _, r := range c.Residues {
				add(r)
			}
		}
		for _, mols := range []map[string]*Molecule{M.NonPolymer, M.Water} {
			for _, m := range mols {
				if m.Polymer == name {
					add(m)
				}
			}
		}
	}
	ret := make([]int, 0, len(want))
	for i, a := range atoms {
		if want[a.ID] {
			ret = append(ret, i)
		}
	}
	return ret
}

//Apply returns a new matrix with the transformation applied to each vector
//in coords: the rotation, then the translation.
func (T Transformation) Apply(coords *v3.Matrix) *v3.Matrix {
	rot := mat.NewDense(3, 3, []float64{
		T.Matrix[0][0], T.Matrix[0][1], T.Matrix[0][2],
		T.Matrix[1][0], T.Matrix[1][1], T.Matrix[1][2],
		T.Matrix[2][0], T.Matrix[2][1], T.Matrix[2][2],
	})
	out := v3.Zeros(coords.NVecs())
	out.Mul(coords, rot.T())
	vec, _ := v3.NewMatrix([]float64{T.Vector[0], T.Vector[1], T.Vector[2]})
	out.AddVec(out, vec)
	return out
}

//Generate builds the assembly from model M: every transformation is applied to
//the atoms of its chains, and the resulting copies are stacked in order.
//It returns the coordinates and the atom each row comes from (an atom
//appears once per transformation that includes it). It returns nil, nil
//if no atoms are selected.
func (A *Assembly) Generate(M *Model) (*v3.Matrix, []*Atom) {
	coords, atoms := M.Coords()
	if coords == nil {
		return nil, nil
	}
	var data []float64
	var retatoms []*Atom
	for _, T := range A.Transformations {
		idx := M.ChainIndexes(atoms, T.Chains)
		if len(idx) == 0 {
			continue
		}
		sel := v3.Zeros(len(idx))
		sel.SomeVecs(coords, idx)
		moved := T.Apply(sel)
		for i, j := range idx {
			data = append(data, moved.RawRowView(i)...)
			retatoms = append(retatoms, atoms[j])
		}
	}
	if len(data) == 0 {
		return nil, nil
	}
	ret, _ := v3.NewMatrix(data)
	return ret, retatoms
}
