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

// Package ontology implements the ontology processor (C4): extracting a
// canonical set of asserted axioms (with synthesized entity declarations),
// and partitioning the rule stream into rules and queries.
package ontology

import (
	"fmt"

	"github.com/mitchellh/hashstructure"

	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
)

// AxiomKind enumerates the axiom kinds of §4.4's "Supported axiom kinds".
type AxiomKind int

const (
	ClassDeclaration AxiomKind = iota
	NamedIndividualDeclaration
	ObjectPropertyDeclaration
	DataPropertyDeclaration
	AnnotationPropertyDeclaration
	DatatypeDeclaration

	ClassAssertion
	ObjectPropertyAssertion
	DataPropertyAssertion
	SameIndividual
	DifferentIndividuals

	SubClassOf
	EquivalentClasses

	SubObjectPropertyOf
	EquivalentObjectProperties
	DisjointObjectProperties
	TransitiveObjectProperty
	SymmetricObjectProperty
	FunctionalObjectProperty
	InverseFunctionalObjectProperty
	InverseObjectProperties
	IrreflexiveObjectProperty
	AsymmetricObjectProperty
	ObjectPropertyDomain
	ObjectPropertyRange

	SubDataPropertyOf
	EquivalentDataProperties
	DisjointDataProperties
	FunctionalDataProperty
	DataPropertyDomain
	DataPropertyRange

	RuleAxiom
)

// declarationKinds maps each declaration AxiomKind to the entity.Kind it
// declares; used by declaration-closure synthesis.
var declarationKinds = map[AxiomKind]entity.Kind{
	ClassDeclaration:              entity.Class,
	NamedIndividualDeclaration:    entity.NamedIndividual,
	ObjectPropertyDeclaration:     entity.ObjectProperty,
	DataPropertyDeclaration:       entity.DataProperty,
	AnnotationPropertyDeclaration: entity.AnnotationProperty,
	DatatypeDeclaration:           entity.Datatype,
}

// declarationKindFor returns the declaration AxiomKind for a given entity
// kind (the inverse of declarationKinds).
func declarationKindFor(k entity.Kind) AxiomKind {
	switch k {
	case entity.Class:
		return ClassDeclaration
	case entity.NamedIndividual:
		return NamedIndividualDeclaration
	case entity.ObjectProperty:
		return ObjectPropertyDeclaration
	case entity.DataProperty:
		return DataPropertyDeclaration
	case entity.AnnotationProperty:
		return AnnotationPropertyDeclaration
	case entity.Datatype:
		return DatatypeDeclaration
	default:
		panic(fmt.Sprintf("ontology: unknown entity kind %v", k))
	}
}

// Axiom is an asserted axiom. Most axiom kinds are represented generically
// by the entities they reference (in a kind-specific, documented order);
// RuleAxiom instead wraps a canonicalized rule.Rule.
type Axiom struct {
	Kind     AxiomKind
	Entities []entity.Entity
	Rule     *rule.Rule
}

// NewDeclaration builds a declaration axiom for e.
func NewDeclaration(e entity.Entity) Axiom {
	return Axiom{Kind: declarationKindFor(e.Kind), Entities: []entity.Entity{e}}
}

// NewRuleAxiom wraps a canonicalized rule as an axiom.
func NewRuleAxiom(r rule.Rule) Axiom {
	return Axiom{Kind: RuleAxiom, Rule: &r}
}

// hashKey returns a stable dedup key for the axiom, per SPEC_FULL's
// hashstructure-backed exported/declaration indexing.
func (a Axiom) hashKey() (uint64, error) {
	return hashstructure.Hash(a, nil)
}

func (a Axiom) String() string {
	if a.Kind == RuleAxiom {
		return fmt.Sprintf("Rule(%s)", a.Rule.Name)
	}
	return fmt.Sprintf("Axiom(kind=%d, entities=%v)", a.Kind, a.Entities)
}
