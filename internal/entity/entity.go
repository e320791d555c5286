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

// Package entity defines the identifiers and typed entity references shared
// by the argument, ontology, and resolver layers.
package entity

import "fmt"

// Identifier is a globally unique resource identifier, optionally carrying a
// prefix abbreviation (e.g. "swrlb" for "http://www.w3.org/...swrlb#").
type Identifier struct {
	Prefix string
	URI    string
}

// NewIdentifier builds an Identifier with no prefix abbreviation.
func NewIdentifier(uri string) Identifier {
	return Identifier{URI: uri}
}

// NewPrefixedIdentifier builds an Identifier carrying a prefix abbreviation.
func NewPrefixedIdentifier(prefix, uri string) Identifier {
	return Identifier{Prefix: prefix, URI: uri}
}

// String renders the prefixed form when available, else the bare URI.
func (id Identifier) String() string {
	if id.Prefix != "" {
		return fmt.Sprintf("%s:%s", id.Prefix, id.URI)
	}
	return id.URI
}

// Kind identifies which of the six supported entity categories an Entity
// belongs to.
type Kind int

const (
	Class Kind = iota
	NamedIndividual
	ObjectProperty
	DataProperty
	AnnotationProperty
	Datatype
)

func (k Kind) String() string {
	switch k {
	case Class:
		return "Class"
	case NamedIndividual:
		return "NamedIndividual"
	case ObjectProperty:
		return "ObjectProperty"
	case DataProperty:
		return "DataProperty"
	case AnnotationProperty:
		return "AnnotationProperty"
	case Datatype:
		return "Datatype"
	default:
		return "Unknown"
	}
}

// Entity is one of {Class, NamedIndividual, ObjectProperty, DataProperty,
// AnnotationProperty, Datatype}, carrying an Identifier. Equality is by
// Identifier and Kind.
type Entity struct {
	Kind Kind
	ID   Identifier
}

// New builds an Entity of the given kind.
func New(kind Kind, id Identifier) Entity {
	return Entity{Kind: kind, ID: id}
}

// Equals implements the Identifier+Kind equality invariant.
func (e Entity) Equals(other Entity) bool {
	return e.Kind == other.Kind && e.ID == other.ID
}

func (e Entity) String() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.ID)
}
