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

// Package engine implements the engine orchestrator (C6): it coordinates a
// reasoning session across the ontology processor (C4), a target reasoner,
// and the SQWRL result engine (C5).
package engine

import (
	"github.com/mitchellh/hashstructure"
	"github.com/opentracing/opentracing-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"

	"github.com/sesuncedu/swrlapi-go/internal/ontology"
	"github.com/sesuncedu/swrlapi-go/internal/resolver"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/internal/similartext"
	"github.com/sesuncedu/swrlapi-go/internal/sqwrl"
	"github.com/sesuncedu/swrlapi-go/reasoner"
)

// Engine coordinates one reasoning session over an ontology.Source and a
// reasoner.TargetReasoner. It is not safe for concurrent mutation (§5).
type Engine struct {
	cfg    Config
	log    *logrus.Entry
	tracer opentracing.Tracer

	resolver  *resolver.Resolver
	processor *ontology.Processor
	source    ontology.Source
	target    reasoner.TargetReasoner

	sessionID string

	exported map[uint64]bool

	injected    []ontology.Axiom
	injectedSet map[uint64]bool

	results map[string]*sqwrl.Result
}

// New builds an Engine for source, driving target, configured by cfg. A nil
// logger gets a default logrus.Logger.
func New(cfg Config, source ontology.Source, target reasoner.TargetReasoner, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	res := resolver.New()
	processor := ontology.NewProcessor(res)
	processor.SetStrict(cfg.StrictAxiomDeclarations)
	return &Engine{
		cfg:       cfg,
		log:       logger.WithField("component", "engine"),
		tracer:    opentracing.GlobalTracer(),
		resolver:  res,
		processor: processor,
		source:    source,
		target:    target,
		exported:  make(map[uint64]bool),
		results:   make(map[string]*sqwrl.Result),
	}
}

func (e *Engine) startSpan(op string) opentracing.Span {
	span := e.tracer.StartSpan(op)
	span.SetTag("session", e.sessionID)
	return span
}

func axiomKey(a ontology.Axiom) (uint64, error) {
	return hashstructure.Hash(a, nil)
}

// Reset processes the ontology (C4), resets the target reasoner, and clears
// the exported-axiom set and the built-in bridge's injected-axiom
// bookkeeping. It is the sole point at which prior-session state is
// discarded.
func (e *Engine) Reset() error {
	span := e.startSpan("reset")
	defer span.Finish()

	e.sessionID = uuid.NewV4().String()
	e.log = e.log.WithField("session", e.sessionID)

	if err := e.processor.ProcessOntology(e.source); err != nil {
		return ErrRuleEngine.New(pkgerrors.Wrap(err, "reset: ontology processing failed").Error())
	}
	if err := e.target.ResetRuleEngine(); err != nil {
		return ErrRuleEngine.New(ErrTargetEngine.New(err.Error()).Error())
	}

	e.exported = make(map[uint64]bool)
	e.injected = nil
	e.injectedSet = make(map[uint64]bool)
	e.results = make(map[string]*sqwrl.Result)

	e.log.Debug("engine reset complete")
	return nil
}

// exportAxiom hands a to the target reasoner at most once per session.
func (e *Engine) exportAxiom(a ontology.Axiom) error {
	h, err := axiomKey(a)
	if err != nil {
		return ErrRuleEngine.New(err.Error())
	}
	if e.exported[h] {
		return nil
	}
	if err := e.target.DefineOWLAxiom(a); err != nil {
		return ErrRuleEngine.New(ErrTargetEngine.New(err.Error()).Error())
	}
	e.exported[h] = true
	e.log.WithField("kind", a.Kind).Tracef("exported axiom %s", a.String())
	return nil
}

// ImportSWRLRulesAndOWLKnowledge exports every asserted axiom not already
// exported this session. AssertedAxioms already carries a NewRuleAxiom
// wrapper for every plain (non-query) rule, so a single pass covers both
// OWL knowledge and SWRL rules.
func (e *Engine) ImportSWRLRulesAndOWLKnowledge() error {
	span := e.startSpan("importSWRLRulesAndOWLKnowledge")
	defer span.Finish()

	for _, a := range e.processor.AssertedAxioms() {
		if err := e.exportAxiom(a); err != nil {
			return err
		}
	}
	return nil
}

// ImportSQWRLQueryAndOWLKnowledge does the same as
// ImportSWRLRulesAndOWLKnowledge, then activates the named query and
// exports every query (inactive ones still exported, with their Active flag
// off). An empty name falls back to Config.ActiveQueryName.
func (e *Engine) ImportSQWRLQueryAndOWLKnowledge(name string) error {
	span := e.startSpan("importSQWRLQueryAndOWLKnowledge")
	defer span.Finish()

	if name == "" {
		name = e.cfg.ActiveQueryName
	}

	if err := e.ImportSWRLRulesAndOWLKnowledge(); err != nil {
		return err
	}

	queries := e.processor.Queries()
	if _, ok := queries[name]; !ok {
		names := make([]string, 0, len(queries))
		for n := range queries {
			names = append(names, n)
		}
		return ErrInvalidQueryName.New(name + similartext.Find(names, name))
	}

	for qname, q := range queries {
		q.Active = qname == name
		e.results[qname] = sqwrl.New(qname)
		if err := e.target.DefineSQWRLQuery(q); err != nil {
			return ErrRuleEngine.New(ErrTargetEngine.New(err.Error()).Error())
		}
	}
	return nil
}

// Run invokes the target reasoner, giving it this Engine as its built-in
// bridge.
func (e *Engine) Run() error {
	span := e.startSpan("run")
	defer span.Finish()

	if err := e.target.RunRuleEngine(e); err != nil {
		return ErrRuleEngine.New(ErrTargetEngine.New(err.Error()).Error())
	}
	return nil
}

// WriteInferredKnowledge writes every built-in-injected axiom and every
// reasoner-inferred axiom back to the source ontology, bracketed by
// StartBulkConversion/CompleteBulkConversion.
func (e *Engine) WriteInferredKnowledge() error {
	span := e.startSpan("writeInferredKnowledge")
	defer span.Finish()

	e.source.StartBulkConversion()
	defer e.source.CompleteBulkConversion()

	written := 0
	for _, a := range e.injected {
		if e.cfg.MaxInferredAxioms > 0 && written >= e.cfg.MaxInferredAxioms {
			break
		}
		if a.Kind == ontology.RuleAxiom {
			continue
		}
		e.source.AssertAxiom(toRawAxiom(a))
		written++
	}
	e.log.WithField("count", written).Debug("wrote inferred knowledge")
	return nil
}

func toRawAxiom(a ontology.Axiom) ontology.RawAxiom {
	refs := make([]ontology.EntityRef, len(a.Entities))
	for i, ent := range a.Entities {
		refs[i] = ontology.EntityRef{Kind: ent.Kind, ID: ent.ID}
	}
	return ontology.RawAxiom{Kind: a.Kind, Entities: refs}
}

// Infer is a convenience wrapper: reset, import, run, writeback.
func (e *Engine) Infer() error {
	if err := e.Reset(); err != nil {
		return err
	}
	if err := e.ImportSWRLRulesAndOWLKnowledge(); err != nil {
		return err
	}
	if err := e.Run(); err != nil {
		return err
	}
	return e.WriteInferredKnowledge()
}

// Rules returns the non-query rules found by the last Reset's ontology
// processing pass.
func (e *Engine) Rules() map[string]rule.Rule { return e.processor.Rules() }

// Result returns the SQWRL result object for the named query, populated by
// the target reasoner during Run.
func (e *Engine) Result(name string) (*sqwrl.Result, error) {
	r, ok := e.results[name]
	if !ok {
		names := make([]string, 0, len(e.results))
		for n := range e.results {
			names = append(names, n)
		}
		return nil, ErrInvalidQueryName.New(name + similartext.Find(names, name))
	}
	return r, nil
}

// --- reasoner.Bridge implementation ---

// WriteInferredOWLAxiom records an axiom the reasoner inferred, for
// writeback in WriteInferredKnowledge.
func (e *Engine) WriteInferredOWLAxiom(a ontology.Axiom) error {
	e.injected = append(e.injected, a)
	return nil
}

// InjectOWLAxiom records an axiom synthesized by a built-in during
// reasoning.
func (e *Engine) InjectOWLAxiom(a ontology.Axiom) error {
	h, err := axiomKey(a)
	if err != nil {
		return ErrBuiltIn.New(err.Error())
	}
	e.injected = append(e.injected, a)
	e.injectedSet[h] = true
	return nil
}

// ResultGenerator returns the SQWRL result object a reasoner should
// populate for the named query, per reasoner.Bridge.
func (e *Engine) ResultGenerator(queryName string) (*sqwrl.Result, error) {
	return e.Result(queryName)
}

// GetInjectedOWLAxioms returns every axiom injected so far this session.
func (e *Engine) GetInjectedOWLAxioms() []ontology.Axiom {
	out := make([]ontology.Axiom, len(e.injected))
	copy(out, e.injected)
	return out
}

// ResetController clears injected-axiom bookkeeping (Reset clears the same
// state; exposed separately for a reasoner that wants to clear mid-session).
func (e *Engine) ResetController() {
	e.injected = nil
	e.injectedSet = make(map[uint64]bool)
}

// IsInjectedOWLAxiom reports whether a was injected by a built-in.
func (e *Engine) IsInjectedOWLAxiom(a ontology.Axiom) bool {
	h, err := axiomKey(a)
	if err != nil {
		return false
	}
	return e.injectedSet[h]
}

var _ reasoner.Bridge = (*Engine)(nil)

// ErrBuiltIn re-exports reasoner.ErrBuiltIn under the engine package for
// callers that only import engine.
var ErrBuiltIn = reasoner.ErrBuiltIn
