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

package rule

import (
	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
)

// Canonicalize implements §4.3: it classifies r's body atoms, reorders them
// to [class atoms] ++ [other non-built-in atoms] ++ [built-in atoms]
// (preserving each sub-list's original order), and returns a new Rule whose
// built-in arguments have bound/unbound baked in. Canonicalize is a pure
// function: r is never mutated, per the Design Note preferring a rebuilt
// value over in-place mutation.
func Canonicalize(r Rule) Rule {
	var classAtoms, otherAtoms, builtIns []atom.Atom
	for _, a := range r.Body {
		switch {
		case a.IsBuiltIn():
			builtIns = append(builtIns, a)
		case a.IsClassAtom():
			classAtoms = append(classAtoms, a)
		default:
			otherAtoms = append(otherAtoms, a)
		}
	}

	definedVars := make(map[string]bool)
	for _, a := range classAtoms {
		markDefined(definedVars, a)
	}
	for _, a := range otherAtoms {
		markDefined(definedVars, a)
	}

	boundByEarlierBuiltin := make(map[string]bool)
	canonicalBuiltIns := make([]atom.Atom, len(builtIns))
	for i, a := range builtIns {
		b := a.(atom.BuiltInAtom)
		canonicalBuiltIns[i] = canonicalizeBuiltIn(b, definedVars, boundByEarlierBuiltin)
	}

	body := make([]atom.Atom, 0, len(r.Body))
	body = append(body, classAtoms...)
	body = append(body, otherAtoms...)
	body = append(body, canonicalBuiltIns...)

	return Rule{Name: r.Name, Body: body, Head: r.Head}
}

func markDefined(defined map[string]bool, a atom.Atom) {
	for _, name := range a.VariableNames() {
		defined[name] = true
	}
}

// canonicalizeBuiltIn walks b's arguments in order, marking as unbound the
// first occurrence of any Variable argument whose name is neither in
// definedVars nor already marked bound by an earlier built-in in this rule.
// boundByEarlierBuiltin is updated in place so that a later built-in atom
// does not re-flag the same variable (the "at most once per rule, leftmost
// wins" invariant of §4.3/§8).
func canonicalizeBuiltIn(b atom.BuiltInAtom, definedVars, boundByEarlierBuiltin map[string]bool) atom.BuiltInAtom {
	newArgs := make([]argument.BuiltInArgument, len(b.Arguments))
	for i, a := range b.Arguments {
		newArgs[i] = a
		if a.Kind() != argument.Variable {
			continue
		}
		name := a.VariableName()
		if definedVars[name] || boundByEarlierBuiltin[name] {
			continue
		}
		newArgs[i] = a.WithUnbound(true)
		boundByEarlierBuiltin[name] = true
	}
	return b.WithArguments(newArgs)
}
