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

	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/ontology"
)

func TestSourceRoundTripsAxioms(t *testing.T) {
	require := require.New(t)

	s := NewSource()
	person := entity.New(entity.Class, entity.NewIdentifier("Person"))
	fred := entity.New(entity.NamedIndividual, entity.NewIdentifier("Fred"))
	s.AddAxiom(ontology.ClassAssertion, person, fred)

	got := s.GetAxioms(ontology.ClassAssertion, true)
	require.Len(got, 1)
	require.Equal(ontology.ClassAssertion, got[0].Kind)
	require.Equal(person.ID, got[0].Entities[0].ID)
	require.Equal(fred.ID, got[0].Entities[1].ID)
}

func TestSourceBulkConversionNests(t *testing.T) {
	require := require.New(t)

	s := NewSource()
	s.StartBulkConversion()
	s.StartBulkConversion()
	require.Equal(2, s.BulkDepth())
	s.CompleteBulkConversion()
	require.Equal(1, s.BulkDepth())
	s.CompleteBulkConversion()
	require.Equal(0, s.BulkDepth())
	s.CompleteBulkConversion()
	require.Equal(0, s.BulkDepth(), "completing beyond zero does not go negative")
}

func TestSourceAssertAxiomAppends(t *testing.T) {
	require := require.New(t)

	s := NewSource()
	require.Empty(s.GetAxioms(ontology.ClassAssertion, true))

	person := entity.New(entity.Class, entity.NewIdentifier("Person"))
	fred := entity.New(entity.NamedIndividual, entity.NewIdentifier("Fred"))
	s.AssertAxiom(ontology.RawAxiom{
		Kind: ontology.ClassAssertion,
		Entities: []ontology.EntityRef{
			{Kind: person.Kind, ID: person.ID},
			{Kind: fred.Kind, ID: fred.ID},
		},
	})
	require.Len(s.GetAxioms(ontology.ClassAssertion, true), 1)
}
