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

// Package memory provides a reference, in-process implementation of
// ontology.Source and reasoner.TargetReasoner, for use by tests. Neither is
// meant to scale beyond a toy ontology: facts and
// rules live in plain Go maps/slices, and the reasoner is a naive
// fixpoint-iterating forward chainer.
package memory

import (
	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/ontology"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
)

// Source is an in-memory ontology.Source: axioms and rules added with
// AddAxiom/AddRule are handed back verbatim by GetAxioms/GetSWRLAPIRules,
// and AssertAxiom appends axioms written back by the engine orchestrator.
type Source struct {
	byKind map[ontology.AxiomKind][]ontology.RawAxiom
	rules  []rule.Rule
	bulk   int
}

// NewSource returns an empty Source.
func NewSource() *Source {
	return &Source{byKind: make(map[ontology.AxiomKind][]ontology.RawAxiom)}
}

// AddAxiom asserts one axiom of kind over entities, in the per-kind
// argument order documented on ontology.RawAxiom.
func (s *Source) AddAxiom(kind ontology.AxiomKind, entities ...entity.Entity) {
	refs := make([]ontology.EntityRef, len(entities))
	for i, e := range entities {
		refs[i] = ontology.EntityRef{Kind: e.Kind, ID: e.ID}
	}
	s.byKind[kind] = append(s.byKind[kind], ontology.RawAxiom{Kind: kind, Entities: refs})
}

// AddRule adds a SWRL rule or SQWRL query (the ontology processor tells them
// apart with rule.IsQuery) to the rule stream the processor will see.
func (s *Source) AddRule(r rule.Rule) {
	s.rules = append(s.rules, r)
}

// GetAxioms implements ontology.Source.
func (s *Source) GetAxioms(kind ontology.AxiomKind, includeImports bool) []ontology.RawAxiom {
	out := make([]ontology.RawAxiom, len(s.byKind[kind]))
	copy(out, s.byKind[kind])
	return out
}

// GetSWRLAPIRules implements ontology.Source.
func (s *Source) GetSWRLAPIRules() []rule.Rule {
	out := make([]rule.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// StartBulkConversion implements ontology.Source. Nested calls are
// tolerated; BulkDepth reports the current nesting.
func (s *Source) StartBulkConversion() { s.bulk++ }

// CompleteBulkConversion implements ontology.Source.
func (s *Source) CompleteBulkConversion() {
	if s.bulk > 0 {
		s.bulk--
	}
}

// BulkDepth reports the current StartBulkConversion/CompleteBulkConversion
// nesting depth; zero outside a bulk conversion.
func (s *Source) BulkDepth() int { return s.bulk }

// AssertAxiom implements ontology.Source.
func (s *Source) AssertAxiom(axiom ontology.RawAxiom) {
	s.byKind[axiom.Kind] = append(s.byKind[axiom.Kind], axiom)
}

var _ ontology.Source = (*Source)(nil)
