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

// Package reasoner declares the two interfaces the engine orchestrator (C6)
// sits between: the target reasoner it drives, and the built-in bridge the
// reasoner calls back into while it runs.
package reasoner

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/sesuncedu/swrlapi-go/internal/ontology"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/internal/sqwrl"
)

// ErrBuiltIn is raised by a built-in bridge when it cannot satisfy a
// callback from the target reasoner (e.g. an unresolvable injected axiom).
var ErrBuiltIn = errors.NewKind("built-in processing error: %s")

// TargetReasoner is the external reasoning engine the orchestrator drives
// (§6). Implementations are free to be synchronous-only: RunRuleEngine is
// treated by the orchestrator as a single opaque blocking call.
type TargetReasoner interface {
	// DefineOWLAxiom hands the reasoner one asserted axiom (including SWRL
	// rule axioms).
	DefineOWLAxiom(axiom ontology.Axiom) error
	// DefineSQWRLQuery hands the reasoner one query; q.Active indicates
	// whether its result table should be populated.
	DefineSQWRLQuery(q rule.Query) error
	// RunRuleEngine performs reasoning, calling back into bridge as needed
	// to write inferred axioms, inject axioms, or populate a named query's
	// result generator.
	RunRuleEngine(bridge Bridge) error
	// ResetRuleEngine discards all exported state.
	ResetRuleEngine() error
	// Name and Version identify the reasoner implementation.
	Name() string
	Version() string
}

// Bridge is the built-in bridge interface a TargetReasoner calls back into
// while running (§6). The orchestrator implements it.
type Bridge interface {
	// WriteInferredOWLAxiom records an axiom the reasoner inferred, for
	// later writeback to the source ontology.
	WriteInferredOWLAxiom(axiom ontology.Axiom) error
	// InjectOWLAxiom records an axiom synthesized by a built-in during
	// reasoning (e.g. an anonymous individual's declaration).
	InjectOWLAxiom(axiom ontology.Axiom) error
	// ResultGenerator returns the SQWRL result object a reasoner should
	// populate for the named query.
	ResultGenerator(queryName string) (*sqwrl.Result, error)
	// GetInjectedOWLAxioms returns every axiom injected so far this
	// session.
	GetInjectedOWLAxioms() []ontology.Axiom
	// ResetController clears injected-axiom bookkeeping.
	ResetController()
	// IsInjectedOWLAxiom reports whether axiom was injected by a built-in
	// (as opposed to asserted or inferred).
	IsInjectedOWLAxiom(axiom ontology.Axiom) bool
}
