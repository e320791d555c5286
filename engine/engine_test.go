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

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/ontology"
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/memory"
)

func TestEngineRunsQueryAgainstMemoryReasoner(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	person := entity.NewIdentifier("Person")
	fred := entity.NewIdentifier("Fred")
	mary := entity.NewIdentifier("Mary")

	src := memory.NewSource()
	src.AddAxiom(ontology.ClassAssertion,
		entity.New(entity.Class, person), entity.New(entity.NamedIndividual, fred))
	src.AddAxiom(ontology.ClassAssertion,
		entity.New(entity.Class, person), entity.New(entity.NamedIndividual, mary))
	src.AddRule(rule.Rule{
		Name: "q1",
		Body: []atom.Atom{
			atom.ClassAtom{ClassID: person, Arg: f.NewVariable("p")},
			atom.BuiltInAtom{Name: "sqwrl:select", Arguments: []argument.BuiltInArgument{f.NewVariable("p")}},
		},
	})

	target := memory.NewReasoner(nil)
	e := New(DefaultConfig(), src, target, nil)

	require.NoError(e.Reset())
	require.NoError(e.ImportSQWRLQueryAndOWLKnowledge("q1"))
	require.NoError(e.Run())

	result, err := e.Result("q1")
	require.NoError(err)
	n, err := result.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)
}

func TestEngineImportIsIdempotentAcrossCalls(t *testing.T) {
	require := require.New(t)

	person := entity.NewIdentifier("Person")
	fred := entity.NewIdentifier("Fred")

	src := memory.NewSource()
	src.AddAxiom(ontology.ClassAssertion,
		entity.New(entity.Class, person), entity.New(entity.NamedIndividual, fred))

	target := memory.NewReasoner(nil)
	e := New(DefaultConfig(), src, target, nil)

	require.NoError(e.Reset())
	require.NoError(e.ImportSWRLRulesAndOWLKnowledge())
	exportedAfterFirst := len(e.exported)
	require.NoError(e.ImportSWRLRulesAndOWLKnowledge())
	require.Len(e.exported, exportedAfterFirst, "re-importing must not export anything twice")
}

func TestEngineImportUnknownQueryNameFails(t *testing.T) {
	require := require.New(t)

	src := memory.NewSource()
	target := memory.NewReasoner(nil)
	e := New(DefaultConfig(), src, target, nil)

	require.NoError(e.Reset())
	err := e.ImportSQWRLQueryAndOWLKnowledge("nope")
	require.Error(err)
	require.True(ErrInvalidQueryName.Is(err))
}

func TestEngineWriteInferredKnowledgeWritesBackToSource(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	hasChild := entity.NewIdentifier("hasChild")
	hasParent := entity.NewIdentifier("hasParent")
	fred := entity.NewIdentifier("Fred")
	mary := entity.NewIdentifier("Mary")

	src := memory.NewSource()
	src.AddAxiom(ontology.ObjectPropertyAssertion,
		entity.New(entity.ObjectProperty, hasChild),
		entity.New(entity.NamedIndividual, fred),
		entity.New(entity.NamedIndividual, mary))
	src.AddRule(rule.Rule{
		Name: "parentOf",
		Body: []atom.Atom{
			atom.ObjectPropertyAtom{PropertyID: hasChild, Arg1: f.NewVariable("x"), Arg2: f.NewVariable("y")},
		},
		Head: []atom.Atom{
			atom.ObjectPropertyAtom{PropertyID: hasParent, Arg1: f.NewVariable("y"), Arg2: f.NewVariable("x")},
		},
	})

	target := memory.NewReasoner(nil)
	e := New(DefaultConfig(), src, target, nil)

	require.NoError(e.Infer())

	got := src.GetAxioms(ontology.ObjectPropertyAssertion, true)
	require.Len(got, 2, "original hasChild fact plus the inferred hasParent fact")
}
