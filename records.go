/*
 * records.go, part of gommtf.
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

import "time"

//DataDict is the decoded content of an MMTF file. Optional scalars are pointers,
//nil when the file does not carry them.
type DataDict struct {
	Description Description `json:"description"`
	Experiment  Experiment  `json:"experiment"`
	Quality     Quality     `json:"quality"`
	Geometry    Geometry    `json:"geometry"`
	Models      []*Model    `json:"models"`
}

//Description identifies the entry.
type Description struct {
	Code           *string    `json:"code"`
	Title          *string    `json:"title"`
	DepositionDate *time.Time `json:"deposition_date"`
	Classification *string    `json:"classification"`
	Keywords       []string   `json:"keywords"`
	Authors        []string   `json:"authors"`
}

//Experiment describes how the structure was determined.
type Experiment struct {
	Technique        *string `json:"technique"`
	SourceOrganism   *string `json:"source_organism"`
	ExpressionSystem *string `json:"expression_system"`
}

//Quality holds the resolution and R-factors, rounded to 3 decimals.
type Quality struct {
	Resolution *float64 `json:"resolution"`
	RValue     *float64 `json:"rvalue"`
	RFree      *float64 `json:"rfree"`
}

type Geometry struct {
	Assemblies []*Assembly `json:"assemblies"`
}

//Assembly is a biological assembly: the set of rigid transformations that
//build the biologically relevant multimer from the deposited chains.
type Assembly struct {
	ID                int              `json:"id"` //1-based
	Name              *string          `json:"name,omitempty"`
	Software          *string          `json:"software"`
	DeltaEnergy       *float64         `json:"delta_energy"`
	BuriedSurfaceArea *float64         `json:"buried_surface_area"`
	SurfaceArea       *float64         `json:"surface_area"`
	Transformations   []Transformation `json:"transformations"`
}

//Transformation is a rotation followed by a translation, applied
//to the chains with the given author names.
type Transformation struct {
	Chains []string      `json:"chains"`
	Matrix [3][3]float64 `json:"matrix"`
	Vector [3]float64    `json:"vector"`
}

//Model is one model of the structure. Polymer chains are keyed by their
//author chain name, molecules and waters by their group id.
type Model struct {
	Polymer    map[string]*Chain    `json:"polymer"`
	NonPolymer map[string]*Molecule `json:"non-polymer"`
	Water      map[string]*Molecule `json:"water"`
}

func newModel() *Model {
	return &Model{
		Polymer:    make(map[string]*Chain),
		NonPolymer: make(map[string]*Molecule),
		Water:      make(map[string]*Molecule),
	}
}

//Chain is a polymer chain, with its residues keyed by group id.
type Chain struct {
	InternalID string               `json:"internal_id"`
	Sequence   string               `json:"sequence"`
	Residues   map[string]*Molecule `json:"residues"`
}

//Molecule is a group: a residue of a polymer chain, a ligand or a water.
//InternalID and Polymer, the internal id and author name of the owning chain,
//are only set for ligands and waters.
type Molecule struct {
	Name       string        `json:"name"`
	Atoms      map[int]*Atom `json:"atoms"`
	InternalID string        `json:"internal_id,omitempty"`
	Polymer    string        `json:"polymer,omitempty"`
}

type Atom struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Element    string     `json:"element"`
	Charge     int        `json:"charge"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Z          float64    `json:"z"`
	BValue     float64    `json:"bvalue"`
	Occupancy  float64    `json:"occupancy"`
	AltLoc     *string    `json:"alt_loc"`
	Anisotropy [6]float64 `json:"anisotropy"`
}

//NAtoms returns the number of atoms in the model.
func (M *Model) NAtoms() int {
	n := 0
	for _, c := range M.Polymer {
		for _, r := range c.Residues {
			n += len(r.Atoms)
		}
	}
	for _, m := range M.NonPolymer {
		n += len(m.Atoms)
	}
	for _, m := range M.Water {
		n += len(m.Atoms)
	}
	return n
}
