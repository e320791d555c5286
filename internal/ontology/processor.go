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
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/resolver"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/internal/similartext"
)

// ErrProcessing wraps any failure encountered while walking the ontology;
// the engine orchestrator (C6) re-wraps it as ErrRuleEngine.
var ErrProcessing = errors.NewKind("ontology processing failed: %s")

// ErrUndeclaredEntity is raised in strict mode (see Processor.SetStrict)
// when an axiom references an entity with no prior declaration axiom,
// instead of the default behavior of silently synthesizing one.
var ErrUndeclaredEntity = errors.NewKind("undeclared entity used: %s %s")

// allRawAxiomKinds lists every non-rule axiom kind the processor asks the
// Source for.
var allRawAxiomKinds = []AxiomKind{
	// Explicit declaration kinds are walked first, so that an entity
	// declared anywhere in the store counts as declared before any other
	// axiom references it (this matters in strict mode).
	ClassDeclaration, NamedIndividualDeclaration, ObjectPropertyDeclaration,
	DataPropertyDeclaration, AnnotationPropertyDeclaration, DatatypeDeclaration,
	ClassAssertion, ObjectPropertyAssertion, DataPropertyAssertion,
	SameIndividual, DifferentIndividuals,
	SubClassOf, EquivalentClasses,
	SubObjectPropertyOf, EquivalentObjectProperties, DisjointObjectProperties,
	TransitiveObjectProperty, SymmetricObjectProperty, FunctionalObjectProperty,
	InverseFunctionalObjectProperty, InverseObjectProperties,
	IrreflexiveObjectProperty, AsymmetricObjectProperty,
	ObjectPropertyDomain, ObjectPropertyRange,
	SubDataPropertyOf, EquivalentDataProperties, DisjointDataProperties,
	FunctionalDataProperty, DataPropertyDomain, DataPropertyRange,
}

// Processor implements C4: it extracts assertedAxioms (with synthesized
// declaration closure) and partitions the rule stream into rules and
// queries. processOntology() is its only mutator; all other accessors are
// read-only.
type Processor struct {
	resolver *resolver.Resolver
	strict   bool

	assertedAxioms *AxiomSet
	rules          map[string]rule.Rule
	queries        map[string]rule.Query
}

// NewProcessor returns an empty Processor backed by res (C7's resolver).
func NewProcessor(res *resolver.Resolver) *Processor {
	p := &Processor{resolver: res}
	p.clear()
	return p
}

// SetStrict toggles strict declaration checking: when true,
// ProcessOntology fails with ErrUndeclaredEntity the first time it would
// otherwise have synthesized a missing declaration axiom. Default is false
// (silent synthesis).
func (p *Processor) SetStrict(strict bool) { p.strict = strict }

func (p *Processor) clear() {
	p.assertedAxioms = NewAxiomSet()
	p.rules = make(map[string]rule.Rule)
	p.queries = make(map[string]rule.Query)
	if p.resolver != nil {
		p.resolver.Reset()
	}
}

// ProcessOntology is total: it first clears all indexes and the resolver,
// then re-walks src. On error, all state is cleared (equivalent to
// post-reset) and the error is re-raised — no partial state is ever
// observable.
func (p *Processor) ProcessOntology(src Source) (err error) {
	p.clear()
	defer func() {
		if err != nil {
			p.clear()
		}
	}()

	for _, kind := range allRawAxiomKinds {
		for _, raw := range src.GetAxioms(kind, true) {
			if err = p.addRawAxiom(raw); err != nil {
				return ErrProcessing.New(err.Error())
			}
		}
	}

	for _, r := range src.GetSWRLAPIRules() {
		canonical := rule.Canonicalize(r)
		if err = p.recordRuleVariables(canonical); err != nil {
			return ErrProcessing.New(err.Error())
		}
		if rule.IsQuery(canonical) {
			p.queries[canonical.Name] = rule.Query{Rule: canonical, Active: false}
			continue
		}
		p.rules[canonical.Name] = canonical
		if _, err = p.assertedAxioms.Add(NewRuleAxiom(canonical)); err != nil {
			return ErrProcessing.New(err.Error())
		}
	}

	src.StartBulkConversion()
	src.CompleteBulkConversion()

	return nil
}

func (p *Processor) addRawAxiom(raw RawAxiom) error {
	_, isDeclaration := declarationKinds[raw.Kind]
	entities := make([]entity.Entity, len(raw.Entities))
	for i, ref := range raw.Entities {
		e := entity.New(ref.Kind, ref.ID)
		entities[i] = e
		p.resolver.Record(e)
		if isDeclaration {
			// The axiom is itself the declaration of e.
			continue
		}
		if err := p.ensureDeclaration(e); err != nil {
			return err
		}
	}
	_, err := p.assertedAxioms.Add(Axiom{Kind: raw.Kind, Entities: entities})
	return err
}

// ensureDeclaration synthesizes and adds a declaration axiom for e if one
// is not already present, keeping synthesis idempotent via the AxiomSet's
// declaration index. In strict mode (see SetStrict) it errors instead of
// synthesizing.
func (p *Processor) ensureDeclaration(e entity.Entity) error {
	if p.assertedAxioms.HasDeclaration(e.Kind, e.ID) {
		return nil
	}
	if p.strict {
		return ErrUndeclaredEntity.New(e.Kind.String(), e.ID.String())
	}
	// Add ignores the error path deliberately: hashing a declaration axiom
	// of primitive fields cannot fail.
	_, _ = p.assertedAxioms.Add(NewDeclaration(e))
	return nil
}

// recordRuleVariables has no entities to declare for variables, but the
// class or property each atom is built on, and any individual/class/property
// argument referenced by a rule's atoms, is still recorded with the resolver
// (so C7 lookups succeed for rule-local references too) and given a
// declaration axiom.
func (p *Processor) recordRuleVariables(r rule.Rule) error {
	atoms := make([]atom.Atom, 0, len(r.Body)+len(r.Head))
	atoms = append(atoms, r.Body...)
	atoms = append(atoms, r.Head...)
	for _, a := range atoms {
		for _, e := range referencedEntities(a) {
			p.resolver.Record(e)
			if err := p.ensureDeclaration(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// referencedEntities extracts the class or property a class/property atom
// is built on, plus every non-Variable entity argument directly referenced
// by a's arguments (recursing into MultiValue built-in arguments), resolving
// each to an entity.Entity.
func referencedEntities(a atom.Atom) []entity.Entity {
	var out []entity.Entity
	var args []argument.BuiltInArgument
	switch v := a.(type) {
	case atom.ClassAtom:
		out = append(out, entity.New(entity.Class, v.ClassID))
		args = []argument.BuiltInArgument{v.Arg}
	case atom.ObjectPropertyAtom:
		out = append(out, entity.New(entity.ObjectProperty, v.PropertyID))
		args = []argument.BuiltInArgument{v.Arg1, v.Arg2}
	case atom.DataPropertyAtom:
		out = append(out, entity.New(entity.DataProperty, v.PropertyID))
		args = []argument.BuiltInArgument{v.Arg1, v.Arg2}
	case atom.SameIndividualAtom:
		args = []argument.BuiltInArgument{v.Arg1, v.Arg2}
	case atom.DifferentIndividualsAtom:
		args = []argument.BuiltInArgument{v.Arg1, v.Arg2}
	case atom.BuiltInAtom:
		args = v.Arguments
	}

	for _, arg := range args {
		out = append(out, entitiesFromArgument(arg)...)
	}
	return out
}

func entitiesFromArgument(a argument.BuiltInArgument) []entity.Entity {
	switch a.Kind() {
	case argument.Class:
		return []entity.Entity{entity.New(entity.Class, a.EntityID())}
	case argument.Individual:
		return []entity.Entity{entity.New(entity.NamedIndividual, a.EntityID())}
	case argument.ObjectProperty:
		return []entity.Entity{entity.New(entity.ObjectProperty, a.EntityID())}
	case argument.DataProperty:
		return []entity.Entity{entity.New(entity.DataProperty, a.EntityID())}
	case argument.AnnotationProperty:
		return []entity.Entity{entity.New(entity.AnnotationProperty, a.EntityID())}
	case argument.Datatype:
		return []entity.Entity{entity.New(entity.Datatype, a.EntityID())}
	case argument.MultiValue:
		var out []entity.Entity
		for _, m := range a.MultiValue() {
			out = append(out, entitiesFromArgument(m)...)
		}
		return out
	default:
		return nil
	}
}

// AssertedAxioms returns the canonical set of asserted axioms, satisfying
// the declaration-closure invariant of §3.
func (p *Processor) AssertedAxioms() []Axiom { return p.assertedAxioms.Axioms() }

// Rules returns the non-query rules found by the last ProcessOntology call,
// keyed by name.
func (p *Processor) Rules() map[string]rule.Rule {
	out := make(map[string]rule.Rule, len(p.rules))
	for k, v := range p.rules {
		out[k] = v
	}
	return out
}

// Queries returns the SQWRL queries found by the last ProcessOntology call,
// keyed by name.
func (p *Processor) Queries() map[string]rule.Query {
	out := make(map[string]rule.Query, len(p.queries))
	for k, v := range p.queries {
		out[k] = v
	}
	return out
}

// Query looks up a single query by name.
func (p *Processor) Query(name string) (rule.Query, error) {
	q, ok := p.queries[name]
	if !ok {
		names := make([]string, 0, len(p.queries))
		for n := range p.queries {
			names = append(names, n)
		}
		return rule.Query{}, fmt.Errorf("ontology: unknown query %q%s", name, similartext.Find(names, name))
	}
	return q, nil
}

// Resolver exposes the underlying C7 resolver for callers that need direct
// entity lookups.
func (p *Processor) Resolver() *resolver.Resolver { return p.resolver }
