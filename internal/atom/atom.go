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

// Package atom implements the rule body/head atom model (C2): the tagged
// variants ClassAtom, ObjectPropertyAtom, DataPropertyAtom,
// SameIndividualAtom, DifferentIndividualsAtom and BuiltInAtom, replacing
// the source inheritance hierarchy with one tagged struct per kind and a
// small shared helper for variable-name extraction.
package atom

import (
	"fmt"

	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
)

// Kind discriminates the atom variants.
type Kind int

const (
	ClassKind Kind = iota
	ObjectPropertyKind
	DataPropertyKind
	SameIndividualKind
	DifferentIndividualsKind
	BuiltInKind
)

// Atom is implemented by every atom variant. VariableNames returns the
// distinct variable names referenced by the atom's arguments, in argument
// order, used by the canonicalizer's definedVars computation (§4.3 step 3).
type Atom interface {
	Kind() Kind
	IsBuiltIn() bool
	IsClassAtom() bool
	VariableNames() []string
	String() string
}

func dedupVariableNames(args ...argument.BuiltInArgument) []string {
	seen := make(map[string]bool)
	var names []string
	for _, a := range args {
		for _, n := range a.ReferencedVariableNames() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// ClassAtom asserts that an individual (variable or individual argument)
// belongs to a class.
type ClassAtom struct {
	ClassID entity.Identifier
	Arg     argument.BuiltInArgument
}

func (a ClassAtom) Kind() Kind                { return ClassKind }
func (a ClassAtom) IsBuiltIn() bool           { return false }
func (a ClassAtom) IsClassAtom() bool         { return true }
func (a ClassAtom) VariableNames() []string   { return dedupVariableNames(a.Arg) }
func (a ClassAtom) String() string {
	return fmt.Sprintf("%s(%s)", a.ClassID, a.Arg)
}

// ObjectPropertyAtom asserts an object-property relation between two
// individual arguments.
type ObjectPropertyAtom struct {
	PropertyID entity.Identifier
	Arg1, Arg2 argument.BuiltInArgument
}

func (a ObjectPropertyAtom) Kind() Kind              { return ObjectPropertyKind }
func (a ObjectPropertyAtom) IsBuiltIn() bool         { return false }
func (a ObjectPropertyAtom) IsClassAtom() bool       { return false }
func (a ObjectPropertyAtom) VariableNames() []string { return dedupVariableNames(a.Arg1, a.Arg2) }
func (a ObjectPropertyAtom) String() string {
	return fmt.Sprintf("%s(%s, %s)", a.PropertyID, a.Arg1, a.Arg2)
}

// DataPropertyAtom asserts a data-property relation between an individual
// argument and a literal-or-variable argument.
type DataPropertyAtom struct {
	PropertyID entity.Identifier
	Arg1, Arg2 argument.BuiltInArgument
}

func (a DataPropertyAtom) Kind() Kind              { return DataPropertyKind }
func (a DataPropertyAtom) IsBuiltIn() bool         { return false }
func (a DataPropertyAtom) IsClassAtom() bool       { return false }
func (a DataPropertyAtom) VariableNames() []string { return dedupVariableNames(a.Arg1, a.Arg2) }
func (a DataPropertyAtom) String() string {
	return fmt.Sprintf("%s(%s, %s)", a.PropertyID, a.Arg1, a.Arg2)
}

// SameIndividualAtom asserts that two individual arguments denote the same
// individual.
type SameIndividualAtom struct {
	Arg1, Arg2 argument.BuiltInArgument
}

func (a SameIndividualAtom) Kind() Kind              { return SameIndividualKind }
func (a SameIndividualAtom) IsBuiltIn() bool         { return false }
func (a SameIndividualAtom) IsClassAtom() bool       { return false }
func (a SameIndividualAtom) VariableNames() []string { return dedupVariableNames(a.Arg1, a.Arg2) }
func (a SameIndividualAtom) String() string {
	return fmt.Sprintf("sameAs(%s, %s)", a.Arg1, a.Arg2)
}

// DifferentIndividualsAtom asserts that two individual arguments denote
// different individuals.
type DifferentIndividualsAtom struct {
	Arg1, Arg2 argument.BuiltInArgument
}

func (a DifferentIndividualsAtom) Kind() Kind              { return DifferentIndividualsKind }
func (a DifferentIndividualsAtom) IsBuiltIn() bool         { return false }
func (a DifferentIndividualsAtom) IsClassAtom() bool       { return false }
func (a DifferentIndividualsAtom) VariableNames() []string { return dedupVariableNames(a.Arg1, a.Arg2) }
func (a DifferentIndividualsAtom) String() string {
	return fmt.Sprintf("differentFrom(%s, %s)", a.Arg1, a.Arg2)
}

// BuiltInAtom carries a prefixed built-in name and an ordered list of
// built-in arguments.
type BuiltInAtom struct {
	Name      string
	Arguments []argument.BuiltInArgument
}

func (a BuiltInAtom) Kind() Kind      { return BuiltInKind }
func (a BuiltInAtom) IsBuiltIn() bool { return true }
func (a BuiltInAtom) IsClassAtom() bool { return false }
func (a BuiltInAtom) VariableNames() []string {
	return dedupVariableNames(a.Arguments...)
}
func (a BuiltInAtom) String() string {
	return fmt.Sprintf("%s%v", a.Name, a.Arguments)
}

// WithArguments returns a copy of a with its Arguments slice replaced,
// preserving the atom's Name. Used by the canonicalizer to emit a new
// BuiltInAtom with bound/unbound flags baked into each argument, without
// mutating the original.
func (a BuiltInAtom) WithArguments(args []argument.BuiltInArgument) BuiltInAtom {
	return BuiltInAtom{Name: a.Name, Arguments: args}
}
