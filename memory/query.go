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
	"github.com/sesuncedu/swrlapi-go/internal/rule"
	"github.com/sesuncedu/swrlapi-go/internal/sqwrl"
)

type orderByEntry struct {
	variable  string
	ascending bool
}

// querySpec is the sqwrl: built-in content of a query's body/head, parsed
// out of its canonicalized atom lists.
type querySpec struct {
	selectVars []string
	distinct   bool
	aggregates map[string]string // variable -> AggregateFunction string
	orderBy    []orderByEntry
	simpleOps  map[string]int
	sliceOps   map[string][2]int
}

var aggregateFnNames = map[string]string{
	"sqwrl:min":           "min",
	"sqwrl:max":           "max",
	"sqwrl:sum":           "sum",
	"sqwrl:avg":           "avg",
	"sqwrl:count":         "count",
	"sqwrl:countDistinct": "count-distinct",
}

var simpleSelectionNames = map[string]bool{
	"sqwrl:limit": true, "sqwrl:nth": true, "sqwrl:notNth": true,
	"sqwrl:first": true, "sqwrl:last": true,
	"sqwrl:notFirst": true, "sqwrl:notLast": true,
}

var sliceSelectionNames = map[string]bool{
	"sqwrl:nthSlice": true, "sqwrl:notNthSlice": true,
	"sqwrl:nthLastSlice": true, "sqwrl:notNthLastSlice": true,
}

func intArg(args []argument.BuiltInArgument, i int) int {
	if i >= len(args) || args[i].Kind() != argument.Literal {
		return 0
	}
	n, _ := args[i].Literal().AsInt()
	return int(n)
}

// parseSQWRLBuiltIns scans r's body and head for sqwrl: built-in atoms and
// extracts the query's projection, ordering, aggregation and selection
// configuration. Unrecognized sqwrl: built-ins (columnNames, makeSet,
// makeBag, groupBy) are accepted but have no effect: this reference
// reasoner does not model SQWRL collections.
func parseSQWRLBuiltIns(r rule.Rule) querySpec {
	spec := querySpec{
		aggregates: make(map[string]string),
		simpleOps:  make(map[string]int),
		sliceOps:   make(map[string][2]int),
	}
	for _, a := range append(append([]atom.Atom{}, r.Body...), r.Head...) {
		b, ok := a.(atom.BuiltInAtom)
		if !ok || !rule.IsSQWRLBuiltInName(b.Name) {
			continue
		}
		switch b.Name {
		case "sqwrl:select", "sqwrl:selectDistinct":
			if b.Name == "sqwrl:selectDistinct" {
				spec.distinct = true
			}
			for _, arg := range b.Arguments {
				if arg.Kind() == argument.Variable {
					spec.selectVars = append(spec.selectVars, arg.VariableName())
				}
			}
		case "sqwrl:min", "sqwrl:max", "sqwrl:sum", "sqwrl:avg", "sqwrl:count", "sqwrl:countDistinct":
			fn := aggregateFnNames[b.Name]
			for _, arg := range b.Arguments {
				if arg.Kind() == argument.Variable {
					spec.aggregates[arg.VariableName()] = fn
				}
			}
		case "sqwrl:orderBy", "sqwrl:orderByDescending":
			ascending := b.Name == "sqwrl:orderBy"
			for _, arg := range b.Arguments {
				if arg.Kind() == argument.Variable {
					spec.orderBy = append(spec.orderBy, orderByEntry{arg.VariableName(), ascending})
				}
			}
		default:
			if simpleSelectionNames[b.Name] {
				spec.simpleOps[b.Name] = intArg(b.Arguments, 0)
			} else if sliceSelectionNames[b.Name] {
				spec.sliceOps[b.Name] = [2]int{intArg(b.Arguments, 0), intArg(b.Arguments, 1)}
			}
		}
	}
	return spec
}

// nonSQWRLAtoms returns every body/head atom of r that is not a sqwrl:
// built-in, for use as join-matching patterns.
func nonSQWRLAtoms(r rule.Rule) []atom.Atom {
	var out []atom.Atom
	for _, a := range append(append([]atom.Atom{}, r.Body...), r.Head...) {
		if b, ok := a.(atom.BuiltInAtom); ok && rule.IsSQWRLBuiltInName(b.Name) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func applySelectionOps(result *sqwrl.Result, spec querySpec) error {
	type simpleSetter struct {
		name string
		set  func(int) error
	}
	for _, s := range []simpleSetter{
		{"sqwrl:limit", result.SetLimit},
		{"sqwrl:nth", result.SetNth},
		{"sqwrl:notNth", result.SetNotNth},
		{"sqwrl:first", result.SetFirst},
		{"sqwrl:last", result.SetLast},
		{"sqwrl:notFirst", result.SetNotFirst},
		{"sqwrl:notLast", result.SetNotLast},
	} {
		if n, ok := spec.simpleOps[s.name]; ok {
			if err := s.set(n); err != nil {
				return err
			}
		}
	}
	type sliceSetter struct {
		name string
		set  func(int, int) error
	}
	for _, s := range []sliceSetter{
		{"sqwrl:nthSlice", result.SetNthSlice},
		{"sqwrl:notNthSlice", result.SetNotNthSlice},
		{"sqwrl:nthLastSlice", result.SetNthLastSlice},
		{"sqwrl:notNthLastSlice", result.SetNotNthLastSlice},
	} {
		if nk, ok := spec.sliceOps[s.name]; ok {
			if err := s.set(nk[0], nk[1]); err != nil {
				return err
			}
		}
	}
	return nil
}
