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
	"github.com/sesuncedu/swrlapi-go/internal/rule"
)

// EntityRef is a (kind, identifier) pair as handed over by the ontology
// store; the processor resolves it into a full entity.Entity and records it
// with the resolver (C7).
type EntityRef struct {
	Kind entity.Kind
	ID   entity.Identifier
}

// RawAxiom is the shape the ontology store hands the processor for each
// asserted (non-rule) axiom: the kind plus its referenced entities, in the
// documented per-kind order (e.g. for ObjectPropertyAssertion: [property,
// subject, object]).
type RawAxiom struct {
	Kind     AxiomKind
	Entities []EntityRef
}

// Source is the ontology interface consumed by the processor (§6): it
// returns asserted axioms of a requested kind and all SWRL rule axioms, and
// supports change-batching around writeback.
type Source interface {
	// GetAxioms returns every RawAxiom of the requested kind. includeImports
	// mirrors the OWL API's notion of pulling in axioms from imported
	// ontologies; this core treats it as an opaque flag passed through to
	// the Source implementation.
	GetAxioms(kind AxiomKind, includeImports bool) []RawAxiom
	// GetSWRLAPIRules returns every rule (including SQWRL queries) found in
	// the ontology.
	GetSWRLAPIRules() []rule.Rule
	// StartBulkConversion / CompleteBulkConversion bracket a batch of
	// changes written back by the engine orchestrator (§4.6 step 5).
	StartBulkConversion()
	CompleteBulkConversion()
	// AssertAxiom writes one axiom back to the store. Only called between a
	// StartBulkConversion/CompleteBulkConversion pair.
	AssertAxiom(axiom RawAxiom)
}
