/*
 * summary.go, part of gommtf.
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
	"fmt"
	"strings"
)

//ModelSummary counts the contents of a model.
type ModelSummary struct {
	Chains      int        `json:"chains"`
	Residues    int        `json:"residues"`
	NonPolymers int        `json:"non_polymers"`
	Waters      int        `json:"waters"`
	Atoms       int        `json:"atoms"`
	Centroid    [3]float64 `json:"centroid"`
}

//Summary is a short overview of a DataDict.
type Summary struct {
	Code       string         `json:"code"`
	Title      string         `json:"title"`
	Technique  string         `json:"technique"`
	Resolution *float64       `json:"resolution"`
	Assemblies int            `json:"assemblies"`
	Models     []ModelSummary `json:"models"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

//Summary returns the counts of chains, residues, molecules, waters and atoms of
//each model, and the geometric center of the model.
func (D *DataDict) Summary() *Summary {
	S := &Summary{
		Code:       deref(D.Description.Code),
		Title:      deref(D.Description.Title),
		Technique:  deref(D.Experiment.Technique),
		Resolution: D.Quality.Resolution,
		Assemblies: len(D.Geometry.Assemblies),
		Models:     make([]ModelSummary, 0, len(D.Models)),
	}
	for _, m := range D.Models {
		ms := ModelSummary{
			Chains:      len(m.Polymer),
			NonPolymers: len(m.NonPolymer),
			Waters:      len(m.Water),
		}
		for _, c := range m.Polymer {
			ms.Residues += len(c.Residues)
		}
		coords, atoms := m.Coords()
		ms.Atoms = len(atoms)
		if coords != nil {
			copy(ms.Centroid[:], coords.Centroid().RawRowView(0))
		}
		S.Models = append(S.Models, ms)
	}
	return S
}

//String returns a human-readable version of the summary.
func (S *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Code: %s\nTitle: %s\nTechnique: %s\n", S.Code, S.Title, S.Technique)
	if S.Resolution != nil {
		fmt.Fprintf(&b, "Resolution: %.3f\n", *S.Resolution)
	}
	fmt.Fprintf(&b, "Assemblies: %d\n", S.Assemblies)
	for i, m := range S.Models {
		fmt.Fprintf(&b, "Model %d: %d chains, %d residues, %d non-polymers, %d waters, %d atoms, center %.3f %.3f %.3f\n",
			i+1, m.Chains, m.Residues, m.NonPolymers, m.Waters, m.Atoms, m.Centroid[0], m.Centroid[1], m.Centroid[2])
	}
	return b.String()
}
