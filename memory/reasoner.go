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

package memory

import (
	"github.com/sirupsen/logrus"

	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/ontology"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/internal/value"
	"github.com/sesuncedu/swrlapi-go/reasoner"
)

// MaxIterations bounds the forward-chaining fixpoint loop, guarding against
// a non-terminating rule set.
const MaxIterations = 50

// pair is an ordered (subject, object) individual pair, used as a set
// element key for object-property facts.
type pair struct{ subj, obj entity.Identifier }

// Reasoner is a naive, in-process reference reasoner.TargetReasoner: a
// fixpoint forward chainer over class and object-property assertions, plus
// a SQWRL query evaluator covering select/selectDistinct, order-by, the
// aggregate functions, and the eleven selection operators. It does not
// reason over data properties, same/different-individual axioms, or
// built-ins other than the sqwrl: projection/aggregation/selection set —
// those atoms are treated as unconstrained during join matching.
type Reasoner struct {
	log *logrus.Entry

	classMembers map[entity.Identifier]map[entity.Identifier]bool
	objectProps  map[entity.Identifier]map[pair]bool

	rules   []rule.Rule
	queries map[string]rule.Query
}

// NewReasoner returns an empty Reasoner. A nil logger gets a default
// logrus.Logger.
func NewReasoner(logger *logrus.Logger) *Reasoner {
	if logger == nil {
		logger = logrus.New()
	}
	r := &Reasoner{log: logger.WithField("component", "memory.Reasoner")}
	r.clear()
	return r
}

func (r *Reasoner) clear() {
	r.classMembers = make(map[entity.Identifier]map[entity.Identifier]bool)
	r.objectProps = make(map[entity.Identifier]map[pair]bool)
	r.rules = nil
	r.queries = make(map[string]rule.Query)
}

func (r *Reasoner) addClassFact(class, ind entity.Identifier) bool {
	if r.classMembers[class] == nil {
		r.classMembers[class] = make(map[entity.Identifier]bool)
	}
	if r.classMembers[class][ind] {
		return false
	}
	r.classMembers[class][ind] = true
	return true
}

func (r *Reasoner) addObjectPropertyFact(prop, subj, obj entity.Identifier) bool {
	if r.objectProps[prop] == nil {
		r.objectProps[prop] = make(map[pair]bool)
	}
	p := pair{subj, obj}
	if r.objectProps[prop][p] {
		return false
	}
	r.objectProps[prop][p] = true
	return true
}

// DefineOWLAxiom implements reasoner.TargetReasoner: it absorbs
// ClassAssertion and ObjectPropertyAssertion axioms as initial facts, and
// RuleAxiom axioms as rules to fire during RunRuleEngine. Every other axiom
// kind is accepted but not reasoned over.
func (r *Reasoner) DefineOWLAxiom(axiom ontology.Axiom) error {
	switch axiom.Kind {
	case ontology.ClassAssertion:
		if len(axiom.Entities) == 2 {
			r.addClassFact(axiom.Entities[0].ID, axiom.Entities[1].ID)
		}
	case ontology.ObjectPropertyAssertion:
		if len(axiom.Entities) == 3 {
			r.addObjectPropertyFact(axiom.Entities[0].ID, axiom.Entities[1].ID, axiom.Entities[2].ID)
		}
	case ontology.RuleAxiom:
		if axiom.Rule != nil {
			r.rules = append(r.rules, *axiom.Rule)
		}
	}
	return nil
}

// DefineSQWRLQuery implements reasoner.TargetReasoner.
func (r *Reasoner) DefineSQWRLQuery(q rule.Query) error {
	r.queries[q.Name] = q
	return nil
}

// ResetRuleEngine implements reasoner.TargetReasoner.
func (r *Reasoner) ResetRuleEngine() error {
	r.clear()
	return nil
}

// Name implements reasoner.TargetReasoner.
func (r *Reasoner) Name() string { return "memory.Reasoner" }

// Version implements reasoner.TargetReasoner.
func (r *Reasoner) Version() string { return "0" }

// RunRuleEngine implements reasoner.TargetReasoner: it runs the
// forward-chaining fixpoint over the defined rules, then evaluates every
// active query against the resulting facts.
func (r *Reasoner) RunRuleEngine(bridge reasoner.Bridge) error {
	if err := r.fireRules(bridge); err != nil {
		return err
	}
	for _, q := range r.queries {
		if !q.Active {
			continue
		}
		if err := r.evaluateQuery(bridge, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reasoner) fireRules(bridge reasoner.Bridge) error {
	for i := 0; i < MaxIterations; i++ {
		changed := false
		for _, rl := range r.rules {
			solutions := r.solve(rl.Body, nil)
			for _, b := range solutions {
				for _, h := range rl.Head {
					axiom, fresh, ok := r.instantiateHeadAtom(h, b)
					if !ok || !fresh {
						continue
					}
					changed = true
					if err := bridge.WriteInferredOWLAxiom(axiom); err != nil {
						return err
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return nil
}

// instantiateHeadAtom grounds a rule head atom under binding b, adds the
// resulting fact to the local store (so later iterations can chain off it),
// and reports whether the fact was newly added.
func (r *Reasoner) instantiateHeadAtom(a atom.Atom, b binding) (ontology.Axiom, bool, bool) {
	switch v := a.(type) {
	case atom.ClassAtom:
		ind, ok := resolveIndividual(b, v.Arg)
		if !ok {
			return ontology.Axiom{}, false, false
		}
		fresh := r.addClassFact(v.ClassID, ind)
		axiom := ontology.Axiom{
			Kind: ontology.ClassAssertion,
			Entities: []entity.Entity{
				entity.New(entity.Class, v.ClassID),
				entity.New(entity.NamedIndividual, ind),
			},
		}
		return axiom, fresh, true
	case atom.ObjectPropertyAtom:
		subj, ok1 := resolveIndividual(b, v.Arg1)
		obj, ok2 := resolveIndividual(b, v.Arg2)
		if !ok1 || !ok2 {
			return ontology.Axiom{}, false, false
		}
		fresh := r.addObjectPropertyFact(v.PropertyID, subj, obj)
		axiom := ontology.Axiom{
			Kind: ontology.ObjectPropertyAssertion,
			Entities: []entity.Entity{
				entity.New(entity.ObjectProperty, v.PropertyID),
				entity.New(entity.NamedIndividual, subj),
				entity.New(entity.NamedIndividual, obj),
			},
		}
		return axiom, fresh, true
	default:
		return ontology.Axiom{}, false, false
	}
}

func resolveIndividual(b binding, a argument.BuiltInArgument) (entity.Identifier, bool) {
	switch a.Kind() {
	case argument.Variable:
		id, ok := b[a.VariableName()]
		return id, ok
	case argument.Individual:
		return a.EntityID(), true
	default:
		return entity.Identifier{}, false
	}
}

// evaluateQuery projects every solution of q's non-sqwrl body/head atoms
// through its sqwrl:select(Distinct) variable list, applies order-by,
// aggregate and selection built-ins, and prepares the query's result
// object.
func (r *Reasoner) evaluateQuery(bridge reasoner.Bridge, q rule.Query) error {
	result, err := bridge.ResultGenerator(q.Name)
	if err != nil {
		return err
	}

	spec := parseSQWRLBuiltIns(q.Rule)
	if len(spec.selectVars) == 0 {
		r.log.WithField("query", q.Name).Warn("no sqwrl:select found, producing empty result")
	}

	if spec.distinct {
		if err := result.SetIsDistinct(); err != nil {
			return err
		}
	}
	for _, v := range spec.selectVars {
		if fn, ok := spec.aggregates[v]; ok {
			if err := result.AddAggregateColumn(v, fn); err != nil {
				return err
			}
		} else if err := result.AddColumn(v); err != nil {
			return err
		}
	}
	for _, ob := range spec.orderBy {
		idx := indexOf(spec.selectVars, ob.variable)
		if idx < 0 {
			continue
		}
		if err := result.AddOrderByColumn(idx, ob.ascending); err != nil {
			return err
		}
	}
	if err := applySelectionOps(result, spec); err != nil {
		return err
	}

	if err := result.Configured(); err != nil {
		return err
	}

	joinAtoms := nonSQWRLAtoms(q.Rule)
	for _, b := range r.solve(joinAtoms, nil) {
		row := make([]value.Value, 0, len(spec.selectVars))
		complete := true
		for _, v := range spec.selectVars {
			id, ok := b[v]
			if !ok {
				complete = false
				break
			}
			row = append(row, value.NewAnyURI(id.String()))
		}
		if !complete {
			continue
		}
		if err := result.AddRow(row); err != nil {
			return err
		}
	}

	return result.Prepared()
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

var _ reasoner.TargetReasoner = (*Reasoner)(nil)
