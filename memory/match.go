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
	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
)

// binding maps a rule variable name to the individual it is currently
// bound to, within one partial or complete join solution.
type binding map[string]entity.Identifier

func (b binding) clone() binding {
	out := make(binding, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	return out
}

// bindArg extends b so that arg denotes id, failing (ok=false) if arg is
// already bound to a different individual. Non-variable, non-individual
// arguments (literals, multi-values, SQWRL collections) are treated as
// unconstrained and always succeed, since this reference reasoner does not
// model data-valued facts.
func bindArg(b binding, arg argument.BuiltInArgument, id entity.Identifier) (binding, bool) {
	switch arg.Kind() {
	case argument.Variable:
		name := arg.VariableName()
		if existing, ok := b[name]; ok {
			return b, existing == id
		}
		b2 := b.clone()
		b2[name] = id
		return b2, true
	case argument.Individual, argument.Class, argument.ObjectProperty, argument.DataProperty,
		argument.AnnotationProperty, argument.Datatype:
		return b, arg.EntityID() == id
	default:
		return b, true
	}
}

// solve returns every binding that satisfies every ClassAtom and
// ObjectPropertyAtom in atoms, extending start. Every other atom kind
// (DataPropertyAtom, SameIndividualAtom, DifferentIndividualsAtom,
// BuiltInAtom) is treated as an unconstrained pass-through: this reference
// reasoner only joins over class membership and object-property facts.
func (r *Reasoner) solve(atoms []atom.Atom, start binding) []binding {
	if start == nil {
		start = binding{}
	}
	solutions := []binding{start}
	for _, a := range atoms {
		var next []binding
		for _, b := range solutions {
			next = append(next, r.extend(a, b)...)
		}
		solutions = next
		if len(solutions) == 0 {
			break
		}
	}
	return solutions
}

func (r *Reasoner) extend(a atom.Atom, b binding) []binding {
	switch v := a.(type) {
	case atom.ClassAtom:
		var out []binding
		for ind := range r.classMembers[v.ClassID] {
			if b2, ok := bindArg(b, v.Arg, ind); ok {
				out = append(out, b2)
			}
		}
		return out
	case atom.ObjectPropertyAtom:
		var out []binding
		for p := range r.objectProps[v.PropertyID] {
			b2, ok := bindArg(b, v.Arg1, p.subj)
			if !ok {
				continue
			}
			b3, ok := bindArg(b2, v.Arg2, p.obj)
			if !ok {
				continue
			}
			out = append(out, b3)
		}
		return out
	default:
		return []binding{b}
	}
}
