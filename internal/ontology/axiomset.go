// Copyright 2024 The swrlapi-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ontology

import (
	"github.com/sesuncedu/swrlapi-go/internal/entity"
)

// AxiomSet is the set of asserted axioms derived from the ontology. Its
// closure invariant (§3): for every entity referenced by any contained
// axiom, a declaration axiom for that entity is also present.
//
// Membership is deduplicated by a hashstructure-backed key (DOMAIN STACK);
// order of insertion is preserved for deterministic iteration in tests.
type AxiomSet struct {
	order []Axiom
	seen  map[uint64]bool

	// declIndex[kind] records, per entity kind, which identifiers already
	// have a declaration axiom in this set — the per-kind "declaration
	// index" of §4.4, used to make synthesis idempotent.
	declIndex map[entity.Kind]map[entity.Identifier]bool
}

// NewAxiomSet returns an empty AxiomSet.
func NewAxiomSet() *AxiomSet {
	s := &AxiomSet{}
	s.reset()
	return s
}

func (s *AxiomSet) reset() {
	s.order = nil
	s.seen = make(map[uint64]bool)
	s.declIndex = map[entity.Kind]map[entity.Identifier]bool{
		entity.Class:              {},
		entity.NamedIndividual:    {},
		entity.ObjectProperty:     {},
		entity.DataProperty:       {},
		entity.AnnotationProperty: {},
		entity.Datatype:           {},
	}
}

// Add inserts axiom into the set if not already present (by hash), and
// updates the declaration index if axiom is a declaration. Returns true if
// the axiom was newly added.
func (s *AxiomSet) Add(a Axiom) (bool, error) {
	key, err := a.hashKey()
	if err != nil {
		return false, err
	}
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	s.order = append(s.order, a)

	if kind, ok := declarationKinds[a.Kind]; ok && len(a.Entities) == 1 {
		s.declIndex[kind][a.Entities[0].ID] = true
	}
	return true, nil
}

// HasDeclaration reports whether a declaration axiom for (kind, id) is
// already present — the idempotency check synthesis relies on.
func (s *AxiomSet) HasDeclaration(kind entity.Kind, id entity.Identifier) bool {
	return s.declIndex[kind][id]
}

// Axioms returns every axiom in the set, in insertion order.
func (s *AxiomSet) Axioms() []Axiom {
	out := make([]Axiom, len(s.order))
	copy(out, s.order)
	return out
}

// Len reports the number of distinct axioms in the set.
func (s *AxiomSet) Len() int { return len(s.order) }
