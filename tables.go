/*
 * tables.go, part of gommtf.
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
	"strconv"

	"github.com/rmera/gommtf/envelope"
)

//Chain types, as declared in entityList.
const (
	PolymerType    = "polymer"
	NonPolymerType = "non-polymer"
	WaterType      = "water"
)

//template is one entry of groupList. All slices have the same length.
type template struct {
	name     string
	atoms    []string
	elements []string
	charges  []int
}

type entity struct {
	kind     string
	chains   []int
	sequence string
}

//tables holds the flat arrays of an MMTF file, checked against each other.
//Optional per-atom arrays are nil when absent.
type tables struct {
	chainsPerModel []int
	groupsPerChain []int
	chainNames     []string
	chainIDs       []string
	groupTypes     []int
	groupIDs       []int
	insCodes       []string
	templates      []template
	x, y, z        []float64
	bfactors       []float64
	occupancies    []float64
	altLocs        []string
	atomIDs        []int
	entities       []entity
	chainEntity    []int //entity index for each chain, -1 if none.
}

func missing(key string, want string) error {
	return newError(ErrMissingField, "newTables", "%s: %s needed", key, want)
}

func intList(m envelope.Value, key string, required bool) ([]int, error) {
	v, ok := m.Key(key)
	if !ok || v.IsNull() {
		if required {
			return nil, missing(key, "integer list")
		}
		return nil, nil
	}
	l, ok := v.Ints()
	if !ok {
		return nil, missing(key, "integer list")
	}
	return l, nil
}

func floatList(m envelope.Value, key string, required bool) ([]float64, error) {
	v, ok := m.Key(key)
	if !ok || v.IsNull() {
		if required {
			return nil, missing(key, "number list")
		}
		return nil, nil
	}
	l, ok := v.Floats()
	if !ok {
		return nil, missing(key, "number list")
	}
	return l, nil
}

func textList(m envelope.Value, key string, required bool) ([]string, error) {
	v, ok := m.Key(key)
	if !ok || v.IsNull() {
		if required {
			return nil, missing(key, "text list")
		}
		return nil, nil
	}
	l, ok := v.Texts()
	if !ok {
		return nil, missing(key, "text list")
	}
	return l, nil
}

func sum(l []int) int {
	s := 0
	for _, v := range l {
		s += v
	}
	return s
}

func inconsistent(format string, a ...interface{}) error {
	return newError(ErrInconsistentCount, "newTables", format, a...)
}

//checkLen returns an error if l is not nil and its length is not n.
func checkLen(key string, l int, present bool, n int) error {
	if present && l != n {
		return inconsistent("%s has %d elements, %d expected", key, l, n)
	}
	return nil
}

//checkCount compares the optional scalar key with n.
func checkCount(m envelope.Value, key string, n int) error {
	v, ok := m.Key(key)
	if !ok || v.IsNull() {
		return nil
	}
	i, ok := v.AsInt()
	if !ok {
		return missing(key, "integer")
	}
	if i != n {
		return inconsistent("%s is %d, but the tables imply %d", key, i, n)
	}
	return nil
}

//newTables reads and cross-checks the arrays that build the models.
func newTables(m envelope.Value) (*tables, error) {
	var err error
	t := new(tables)
	ints := []struct {
		key      string
		dst      *[]int
		required bool
	}{
		{"chainsPerModel", &t.chainsPerModel, true},
		{"groupsPerChain", &t.groupsPerChain, true},
		{"groupTypeList", &t.groupTypes, true},
		{"groupIdList", &t.groupIDs, true},
		{"atomIdList", &t.atomIDs, false},
	}
	for _, v := range ints {
		if *v.dst, err = intList(m, v.key, v.required); err != nil {
			return nil, err
		}
	}
	floats := []struct {
		key      string
		dst      *[]float64
		required bool
	}{
		{"xCoordList", &t.x, true},
		{"yCoordList", &t.y, true},
		{"zCoordList", &t.z, true},
		{"bFactorList", &t.bfactors, false},
		{"occupancyList", &t.occupancies, false},
	}
	for _, v := range floats {
		if *v.dst, err = floatList(m, v.key, v.required); err != nil {
			return nil, err
		}
	}
	texts := []struct {
		key      string
		dst      *[]string
		required bool
	}{
		{"chainNameList", &t.chainNames, true},
		{"chainIdList", &t.chainIDs, false},
		{"insCodeList", &t.insCodes, false},
		{"altLocList", &t.altLocs, false},
	}
	for _, v := range texts {
		if *v.dst, err = textList(m, v.key, v.required); err != nil {
			return nil, err
		}
	}
	if t.templates, err = templates(m); err != nil {
		return nil, err
	}
	if t.entities, err = entities(m); err != nil {
		return nil, err
	}
	for _, l := range [][]int{t.chainsPerModel, t.groupsPerChain} {
		for _, v := range l {
			if v < 0 {
				return nil, inconsistent("negative count %d", v)
			}
		}
	}
	nmodels := len(t.chainsPerModel)
	nchains := len(t.chainNames)
	ngroups := len(t.groupTypes)
	if err = checkCount(m, "numModels", nmodels); err != nil {
		return nil, err
	}
	if s := sum(t.chainsPerModel); s != nchains {
		return nil, inconsistent("chainsPerModel adds up to %d, but there are %d chains", s, nchains)
	}
	if err = checkCount(m, "numChains", nchains); err != nil {
		return nil, err
	}
	if err = checkLen("groupsPerChain", len(t.groupsPerChain), true, nchains); err != nil {
		return nil, err
	}
	if err = checkLen("chainIdList", len(t.chainIDs), t.chainIDs != nil, nchains); err != nil {
		return nil, err
	}
	if s := sum(t.groupsPerChain); s != ngroups {
		return nil, inconsistent("groupsPerChain adds up to %d, but there are %d groups", s, ngroups)
	}
	if err = checkCount(m, "numGroups", ngroups); err != nil {
		return nil, err
	}
	if err = checkLen("groupIdList", len(t.groupIDs), true, ngroups); err != nil {
		return nil, err
	}
	if err = checkLen("insCodeList", len(t.insCodes), t.insCodes != nil, ngroups); err != nil {
		return nil, err
	}
	natoms := 0
	for i, g := range t.groupTypes {
		if g < 0 || g >= len(t.templates) {
			return nil, newError(ErrMissingTemplate, "newTables", "group %d has type %d, but there are %d templates", i, g, len(t.templates))
		}
		natoms += len(t.templates[g].atoms)
	}
	if err = checkCount(m, "numAtoms", natoms); err != nil {
		return nil, err
	}
	atomLists := []struct {
		key     string
		l       int
		present bool
	}{
		{"xCoordList", len(t.x), true},
		{"yCoordList", len(t.y), true},
		{"zCoordList", len(t.z), true},
		{"bFactorList", len(t.bfactors), t.bfactors != nil},
		{"occupancyList", len(t.occupancies), t.occupancies != nil},
		{"altLocList", len(t.altLocs), t.altLocs != nil},
		{"atomIdList", len(t.atomIDs), t.atomIDs != nil},
	}
	for _, a := range atomLists {
		if err = checkLen(a.key, a.l, a.present, natoms); err != nil {
			return nil, err
		}
	}
	t.chainEntity = make([]int, nchains)
	for i := range t.chainEntity {
		t.chainEntity[i] = -1
	}
	for i, e := range t.entities {
		for _, c := range e.chains {
			if c < 0 || c >= nchains {
				return nil, inconsistent("entity %d refers to chain %d, but there are %d chains", i, c, nchains)
			}
			if t.chainEntity[c] < 0 {
				t.chainEntity[c] = i
			}
		}
	}
	return t, nil
}

func templates(m envelope.Value) ([]template, error) {
	v, ok := m.Key("groupList")
	if !ok || v.Kind() != envelope.List {
		return nil, missing("groupList", "list of group templates")
	}
	ret := make([]template, v.Len())
	for i := range ret {
		g := v.Index(i)
		if g.Kind() != envelope.Map {
			return nil, missing("groupList", "list of group templates")
		}
		t := &ret[i]
		if n, ok := g.Key("groupName"); ok {
			t.name, _ = n.AsText()
		}
		var err error
		if t.atoms, err = textList(g, "atomNameList", true); err != nil {
			return nil, errDecorate(err, "templates")
		}
		n := len(t.atoms)
		if t.elements, err = textList(g, "elementList", false); err != nil {
			return nil, errDecorate(err, "templates")
		}
		if t.charges, err = intList(g, "formalChargeList", false); err != nil {
			return nil, errDecorate(err, "templates")
		}
		if t.elements == nil {
			t.elements = make([]string, n)
		}
		if t.charges == nil {
			t.charges = make([]int, n)
		}
		if len(t.elements) != n || len(t.charges) != n {
			return nil, inconsistent("template %d (%s) has %d atoms, %d elements and %d charges", i, t.name, n, len(t.elements), len(t.charges))
		}
	}
	return ret, nil
}

//entities reads entityList, which may be absent.
func entities(m envelope.Value) ([]entity, error) {
	v, ok := m.Key("entityList")
	if !ok || v.IsNull() {
		return nil, nil
	}
	if v.Kind() != envelope.List {
		return nil, missing("entityList", "list of entities")
	}
	ret := make([]entity, v.Len())
	for i := range ret {
		e := v.Index(i)
		if e.Kind() != envelope.Map {
			return nil, missing("entityList", "list of entities")
		}
		if k, ok := e.Key("type"); ok {
			ret[i].kind, _ = k.AsText()
		}
		if s, ok := e.Key("sequence"); ok {
			ret[i].sequence, _ = s.AsText()
		}
		var err error
		if ret[i].chains, err = intList(e, "chainIndexList", false); err != nil {
			return nil, errDecorate(err, "entities")
		}
	}
	return ret, nil
}

//chainType classifies the chain with index c. Chains not covered by any
//entity are water, and entity types other than polymer and water are
//treated as non-polymer.
func (t *tables) chainType(c int) string {
	e := t.chainEntity[c]
	if e < 0 {
		return WaterType
	}
	switch t.entities[e].kind {
	case PolymerType:
		return PolymerType
	case WaterType:
		return WaterType
	}
	return NonPolymerType
}

//sequence returns the sequence of the entity covering chain c, or "".
func (t *tables) sequence(c int) string {
	if e := t.chainEntity[c]; e >= 0 {
		return t.entities[e].sequence
	}
	return ""
}

//chainID returns the internal id of chain c, which defaults to the author name.
func (t *tables) chainID(c int) string {
	if t.chainIDs == nil {
		return t.chainNames[c]
	}
	return t.chainIDs[c]
}

//groupID returns the id "{author chain name}.{group number}{insertion code}"
//of group g in chain c.
func (t *tables) groupID(c, g int) string {
	ins := ""
	if t.insCodes != nil {
		ins = t.insCodes[g]
	}
	return t.chainNames[c] + "." + strconv.Itoa(t.groupIDs[g]) + ins
}
