/*
 * models.go, part of gommtf.
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

//cursor is the position of the builder in the chain, group and atom tables.
//All three only move forward.
type cursor struct {
	chain int
	group int
	atom  int
}

//buildModels builds every model in the tables in a single pass.
func (t *tables) buildModels() ([]*Model, error) {
	models := make([]*Model, 0, len(t.chainsPerModel))
	var c cursor
	var err error
	for i := range t.chainsPerModel {
		var m *Model
		m, c, err = t.buildModel(i, c)
		if err != nil {
			return nil, errDecorate(err, "buildModels")
		}
		models = append(models, m)
	}
	return models, nil
}

func (t *tables) buildModel(model int, c cursor) (*Model, cursor, error) {
	m := newModel()
	seen := make(map[string]bool)
	var err error
	for i := 0; i < t.chainsPerModel[model]; i++ {
		c, err = t.buildChain(m, seen, c)
		if err != nil {
			return nil, c, errDecorate(err, "buildModel")
		}
	}
	return m, c, nil
}

//buildChain adds the groups of the chain under the cursor to m, and returns
//the cursor at the next chain. seen holds the group ids already in the model.
func (t *tables) buildChain(m *Model, seen map[string]bool, c cursor) (cursor, error) {
	idx := c.chain
	kind := t.chainType(idx)
	name := t.chainNames[idx]
	var chain *Chain
	if kind == PolymerType {
		chain = m.Polymer[name]
		if chain == nil {
			chain = &Chain{
				InternalID: t.chainID(idx),
				Sequence:   t.sequence(idx),
				Residues:   make(map[string]*Molecule),
			}
			m.Polymer[name] = chain
		}
	}
	for i := 0; i < t.groupsPerChain[idx]; i++ {
		id := t.groupID(idx, c.group)
		if seen[id] {
			return c, newError(ErrDuplicateGroup, "buildChain", "group id %s repeated within a model", id)
		}
		seen[id] = true
		var mol *Molecule
		mol, c = t.buildGroup(c)
		switch kind {
		case PolymerType:
			chain.Residues[id] = mol
		case WaterType:
			mol.InternalID, mol.Polymer = t.chainID(idx), name
			m.Water[id] = mol
		default:
			mol.InternalID, mol.Polymer = t.chainID(idx), name
			m.NonPolymer[id] = mol
		}
	}
	c.chain++
	return c, nil
}

//buildGroup builds the group under the cursor and returns the cursor at the
//next group. The atom names, elements and charges come from the group template,
//everything else from the per-atom arrays.
func (t *tables) buildGroup(c cursor) (*Molecule, cursor) {
	tmpl := &t.templates[t.groupTypes[c.group]]
	mol := &Molecule{Name: tmpl.name, Atoms: make(map[int]*Atom, len(tmpl.atoms))}
	for i := range tmpl.atoms {
		a := t.atom(c.atom)
		a.Name = tmpl.atoms[i]
		a.Element = tmpl.elements[i]
		a.Charge = tmpl.charges[i]
		mol.Atoms[a.ID] = a
		c.atom++
	}
	c.group++
	return mol, c
}

//atom returns the atom with index i in the per-atom arrays. Absent arrays
//give an id of i+1, a B-factor of 0, an occupancy of 1 and no alternate location.
func (t *tables) atom(i int) *Atom {
	a := &Atom{ID: i + 1, X: t.x[i], Y: t.y[i], Z: t.z[i], Occupancy: 1}
	if t.atomIDs != nil {
		a.ID = t.atomIDs[i]
	}
	if t.bfactors != nil {
		a.BValue = t.bfactors[i]
	}
	if t.occupancies != nil {
		a.Occupancy = t.occupancies[i]
	}
	if t.altLocs != nil && t.altLocs[i] != "" {
		alt := t.altLocs[i]
		a.AltLoc = &alt
	}
	return a
}
