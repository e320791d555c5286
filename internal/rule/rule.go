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

// Package rule implements the Rule/Query data model and the rule
// canonicalizer (C3): reordering body atoms to satisfy the left-to-right
// variable-binding discipline required by procedural rule engines, and
// flagging which built-in arguments are unbound.
package rule

import (
	"github.com/sesuncedu/swrlapi-go/internal/atom"
)

// Rule is (name, bodyAtoms, headAtoms). Identity is by Name.
type Rule struct {
	Name string
	Body []atom.Atom
	Head []atom.Atom
}

// sqwrlNames is the SQWRL built-in name set: a rule is a query iff its body
// or head contains a built-in whose prefixed name appears here.
var sqwrlNames = map[string]bool{
	"sqwrl:select":           true,
	"sqwrl:selectDistinct":   true,
	"sqwrl:orderBy":          true,
	"sqwrl:orderByDescending": true,
	"sqwrl:columnNames":      true,
	"sqwrl:min":              true,
	"sqwrl:max":              true,
	"sqwrl:sum":              true,
	"sqwrl:avg":              true,
	"sqwrl:count":            true,
	"sqwrl:countDistinct":    true,
	"sqwrl:limit":            true,
	"sqwrl:nth":              true,
	"sqwrl:notNth":           true,
	"sqwrl:first":            true,
	"sqwrl:last":             true,
	"sqwrl:notFirst":         true,
	"sqwrl:notLast":          true,
	"sqwrl:nthSlice":         true,
	"sqwrl:notNthSlice":      true,
	"sqwrl:nthLastSlice":     true,
	"sqwrl:notNthLastSlice":  true,
	"sqwrl:makeSet":          true,
	"sqwrl:makeBag":          true,
	"sqwrl:groupBy":          true,
}

// IsSQWRLBuiltInName reports whether name (a prefixed built-in identifier,
// e.g. "sqwrl:select") is one of the SQWRL collection/aggregation built-ins.
func IsSQWRLBuiltInName(name string) bool {
	return sqwrlNames[name]
}

// IsQuery reports whether r is a SQWRL query: its body or head contains at
// least one built-in atom whose name is in the SQWRL name set.
func IsQuery(r Rule) bool {
	return atomsContainSQWRLBuiltIn(r.Body) || atomsContainSQWRLBuiltIn(r.Head)
}

func atomsContainSQWRLBuiltIn(atoms []atom.Atom) bool {
	for _, a := range atoms {
		if b, ok := a.(atom.BuiltInAtom); ok && IsSQWRLBuiltInName(b.Name) {
			return true
		}
	}
	return false
}

// Query is a Rule whose body or head invokes a SQWRL built-in, plus the
// active flag that governs whether the target reasoner is asked to
// populate its result table (§6, defineSQWRLQuery).
type Query struct {
	Rule
	Active bool
}
