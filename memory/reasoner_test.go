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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/ontology"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/internal/sqwrl"
)

// fakeBridge is a minimal reasoner.Bridge used only by this test: it
// records every inferred/injected axiom and hands out a fresh sqwrl.Result
// per query name on first request.
type fakeBridge struct {
	inferred []ontology.Axiom
	injected []ontology.Axiom
	results  map[string]*sqwrl.Result
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{results: make(map[string]*sqwrl.Result)}
}

func (b *fakeBridge) WriteInferredOWLAxiom(a ontology.Axiom) error {
	b.inferred = append(b.inferred, a)
	return nil
}
func (b *fakeBridge) InjectOWLAxiom(a ontology.Axiom) error {
	b.injected = append(b.injected, a)
	return nil
}
func (b *fakeBridge) ResultGenerator(name string) (*sqwrl.Result, error) {
	if r, ok := b.results[name]; ok {
		return r, nil
	}
	r := sqwrl.New(name)
	b.results[name] = r
	return r, nil
}
func (b *fakeBridge) GetInjectedOWLAxioms() []ontology.Axiom { return b.injected }
func (b *fakeBridge) ResetController()                       { b.injected = nil }
func (b *fakeBridge) IsInjectedOWLAxiom(a ontology.Axiom) bool {
	for _, i := range b.injected {
		if i.Kind == a.Kind {
			return true
		}
	}
	return false
}

func TestReasonerForwardChainsObjectProperty(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	hasChild := entity.NewIdentifier("hasChild")
	hasParent := entity.NewIdentifier("hasParent")
	fred := entity.NewIdentifier("Fred")
	mary := entity.NewIdentifier("Mary")

	r := NewReasoner(nil)
	require.NoError(r.DefineOWLAxiom(ontology.Axiom{
		Kind: ontology.ObjectPropertyAssertion,
		Entities: []entity.Entity{
			entity.New(entity.ObjectProperty, hasChild),
			entity.New(entity.NamedIndividual, fred),
			entity.New(entity.NamedIndividual, mary),
		},
	}))

	rl := rule.Rule{
		Name: "parentOf",
		Body: []atom.Atom{
			atom.ObjectPropertyAtom{PropertyID: hasChild, Arg1: f.NewVariable("x"), Arg2: f.NewVariable("y")},
		},
		Head: []atom.Atom{
			atom.ObjectPropertyAtom{PropertyID: hasParent, Arg1: f.NewVariable("y"), Arg2: f.NewVariable("x")},
		},
	}
	require.NoError(r.DefineOWLAxiom(ontology.NewRuleAxiom(rl)))

	bridge := newFakeBridge()
	require.NoError(r.RunRuleEngine(bridge))

	require.Len(bridge.inferred, 1)
	got := bridge.inferred[0]
	require.Equal(ontology.ObjectPropertyAssertion, got.Kind)
	require.Equal(hasParent, got.Entities[0].ID)
	require.Equal(mary, got.Entities[1].ID)
	require.Equal(fred, got.Entities[2].ID)
}

func TestReasonerEvaluatesSelectQuery(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	person := entity.NewIdentifier("Person")
	fred := entity.NewIdentifier("Fred")
	mary := entity.NewIdentifier("Mary")

	r := NewReasoner(nil)
	require.NoError(r.DefineOWLAxiom(ontology.Axiom{
		Kind:     ontology.ClassAssertion,
		Entities: []entity.Entity{entity.New(entity.Class, person), entity.New(entity.NamedIndividual, fred)},
	}))
	require.NoError(r.DefineOWLAxiom(ontology.Axiom{
		Kind:     ontology.ClassAssertion,
		Entities: []entity.Entity{entity.New(entity.Class, person), entity.New(entity.NamedIndividual, mary)},
	}))

	q := rule.Query{
		Rule: rule.Rule{
			Name: "q1",
			Body: []atom.Atom{
				atom.ClassAtom{ClassID: person, Arg: f.NewVariable("p")},
				atom.BuiltInAtom{Name: "sqwrl:select", Arguments: []argument.BuiltInArgument{f.NewVariable("p")}},
			},
		},
		Active: true,
	}
	require.NoError(r.DefineSQWRLQuery(q))

	bridge := newFakeBridge()
	require.NoError(r.RunRuleEngine(bridge))

	result := bridge.results["q1"]
	require.NotNil(result)
	n, err := result.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)
}
