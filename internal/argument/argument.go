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

// Package argument implements the built-in argument model (C2): a tagged
// variant covering variables, literals, the six entity kinds, multi-value
// lists, and SQWRL collection references.
package argument

import (
	"fmt"

	"github.com/sesuncedu/swrlapi-go/internal/entity"
	"github.com/sesuncedu/swrlapi-go/internal/value"
)

// Kind discriminates the tagged variants of a BuiltInArgument.
type Kind int

const (
	Variable Kind = iota
	Literal
	Class
	Individual
	ObjectProperty
	DataProperty
	AnnotationProperty
	Datatype
	MultiValue
	SQWRLCollection
)

// CollectionRef identifies a SQWRL collection argument: the query that
// produced it, the collection's name within that query, and its group id
// (SQWRL collections are grouped when used with groupBy).
type CollectionRef struct {
	QueryName      string
	CollectionName string
	GroupID        string
}

// BuiltInArgument is the tagged-variant argument type of §3/§4.2. It is
// immutable after construction except for the bound/unbound flag on
// Variable arguments, which is only ever set through WithUnbound (an
// idempotent, value-returning operation — see Design Note on pure
// canonicalization).
type BuiltInArgument struct {
	kind         Kind
	variableName string
	isUnbound    bool
	literal      value.Value
	entityID     entity.Identifier
	multiValue   []BuiltInArgument
	collection   CollectionRef
}

// Factory constructs BuiltInArgument values. It holds no state; it exists so
// call sites read like `factory.NewClass(id)` in the manner of the ontology
// processor's other constructors, and so a future version could thread
// shared interning through it without changing call sites.
type Factory struct{}

// NewFactory returns a new argument Factory.
func NewFactory() *Factory { return &Factory{} }

// NewVariable builds a (bound) Variable argument.
func (f *Factory) NewVariable(name string) BuiltInArgument {
	return BuiltInArgument{kind: Variable, variableName: name}
}

// NewUnboundVariable builds a Variable argument with isUnbound already set.
func (f *Factory) NewUnboundVariable(name string) BuiltInArgument {
	return BuiltInArgument{kind: Variable, variableName: name, isUnbound: true}
}

// NewLiteral builds a Literal argument.
func (f *Factory) NewLiteral(v value.Value) BuiltInArgument {
	return BuiltInArgument{kind: Literal, literal: v}
}

// NewEntity builds the appropriate tagged variant for the given entity
// kind, accepting either a prepared entity.Entity or a bare Identifier (via
// the kind-specific constructors below). This is the "factory that accepts
// either an entity identifier or a prepared entity" from §4.2.
func (f *Factory) NewEntity(e entity.Entity) (BuiltInArgument, error) {
	switch e.Kind {
	case entity.Class:
		return f.NewClass(e.ID), nil
	case entity.NamedIndividual:
		return f.NewIndividual(e.ID), nil
	case entity.ObjectProperty:
		return f.NewObjectProperty(e.ID), nil
	case entity.DataProperty:
		return f.NewDataProperty(e.ID), nil
	case entity.AnnotationProperty:
		return f.NewAnnotationProperty(e.ID), nil
	case entity.Datatype:
		return f.NewDatatype(e.ID), nil
	default:
		return BuiltInArgument{}, fmt.Errorf("argument: unknown entity kind %v", e.Kind)
	}
}

func (f *Factory) NewClass(id entity.Identifier) BuiltInArgument {
	return BuiltInArgument{kind: Class, entityID: id}
}

func (f *Factory) NewIndividual(id entity.Identifier) BuiltInArgument {
	return BuiltInArgument{kind: Individual, entityID: id}
}

func (f *Factory) NewObjectProperty(id entity.Identifier) BuiltInArgument {
	return BuiltInArgument{kind: ObjectProperty, entityID: id}
}

func (f *Factory) NewDataProperty(id entity.Identifier) BuiltInArgument {
	return BuiltInArgument{kind: DataProperty, entityID: id}
}

func (f *Factory) NewAnnotationProperty(id entity.Identifier) BuiltInArgument {
	return BuiltInArgument{kind: AnnotationProperty, entityID: id}
}

func (f *Factory) NewDatatype(id entity.Identifier) BuiltInArgument {
	return BuiltInArgument{kind: Datatype, entityID: id}
}

func (f *Factory) NewMultiValue(args ...BuiltInArgument) BuiltInArgument {
	cp := make([]BuiltInArgument, len(args))
	copy(cp, args)
	return BuiltInArgument{kind: MultiValue, multiValue: cp}
}

func (f *Factory) NewSQWRLCollection(queryName, collectionName, groupID string) BuiltInArgument {
	return BuiltInArgument{kind: SQWRLCollection, collection: CollectionRef{
		QueryName:      queryName,
		CollectionName: collectionName,
		GroupID:        groupID,
	}}
}

// Kind reports the tagged variant.
func (a BuiltInArgument) Kind() Kind { return a.kind }

// VariableName is only meaningful when Kind() == Variable.
func (a BuiltInArgument) VariableName() string { return a.variableName }

// IsUnbound is only meaningful when Kind() == Variable; it is false for all
// other variants.
func (a BuiltInArgument) IsUnbound() bool { return a.kind == Variable && a.isUnbound }

// WithUnbound returns a copy of a with its unbound flag set to unbound. It
// is a no-op (returns a unchanged) for non-Variable arguments, and is
// idempotent: calling it twice with the same value produces the same
// result as calling it once.
func (a BuiltInArgument) WithUnbound(unbound bool) BuiltInArgument {
	if a.kind != Variable {
		return a
	}
	a.isUnbound = unbound
	return a
}

func (a BuiltInArgument) Literal() value.Value      { return a.literal }
func (a BuiltInArgument) EntityID() entity.Identifier { return a.entityID }
func (a BuiltInArgument) MultiValue() []BuiltInArgument {
	cp := make([]BuiltInArgument, len(a.multiValue))
	copy(cp, a.multiValue)
	return cp
}
func (a BuiltInArgument) Collection() CollectionRef { return a.collection }

// ReferencedVariableNames returns every variable name reachable from this
// argument, recursing into MultiValue members (a MultiValue built-in
// argument may itself contain Variable arguments).
func (a BuiltInArgument) ReferencedVariableNames() []string {
	switch a.kind {
	case Variable:
		return []string{a.variableName}
	case MultiValue:
		var names []string
		for _, m := range a.multiValue {
			names = append(names, m.ReferencedVariableNames()...)
		}
		return names
	default:
		return nil
	}
}

func (a BuiltInArgument) String() string {
	switch a.kind {
	case Variable:
		if a.isUnbound {
			return fmt.Sprintf("?%s(unbound)", a.variableName)
		}
		return fmt.Sprintf("?%s", a.variableName)
	case Literal:
		return a.literal.Quoted()
	case Class, Individual, ObjectProperty, DataProperty, AnnotationProperty, Datatype:
		return a.entityID.String()
	case MultiValue:
		return fmt.Sprintf("%v", a.multiValue)
	case SQWRLCollection:
		return fmt.Sprintf("collection(%s.%s)", a.collection.QueryName, a.collection.CollectionName)
	default:
		return "?"
	}
}
