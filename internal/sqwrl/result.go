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

package sqwrl

import (
	"strings"

	"github.com/sesuncedu/swrlapi-go/internal/value"
)

// Phase is the three (plus one auxiliary) states of §4.5.1.
type Phase int

const (
	Configuring Phase = iota
	Preparing
	Processing
)

func (p Phase) String() string {
	switch p {
	case Configuring:
		return "Configuring"
	case Preparing:
		return "Preparing"
	case Processing:
		return "Processing"
	default:
		return "Unknown"
	}
}

// AggregateFunction is one of the six supported aggregate reductions.
type AggregateFunction string

const (
	Min            AggregateFunction = "min"
	Max            AggregateFunction = "max"
	Sum            AggregateFunction = "sum"
	Avg            AggregateFunction = "avg"
	Count          AggregateFunction = "count"
	CountDistinct  AggregateFunction = "count-distinct"
)

var validAggregateFunctions = map[AggregateFunction]bool{
	Min: true, Max: true, Sum: true, Avg: true, Count: true, CountDistinct: true,
}

type columnMeta struct {
	name          string
	displayName   string
	isAggregate   bool
	aggregateFunc AggregateFunction
}

type orderBySpec struct {
	columnIndex int
	ascending   bool
}

type sliceSpec struct {
	enabled bool
	n, k    int
}

type nSpec struct {
	enabled bool
	n       int
}

// Result is the three-phase SQWRL tabular result object of §4.5. It is not
// safe for concurrent mutation; concurrent reads of an already-prepared
// Result are permitted iff no mutator runs concurrently (§5).
type Result struct {
	name  string
	phase Phase

	columns []columnMeta
	orderBy []orderBySpec

	orderDirectionSet bool
	orderAscending    bool

	isDistinct bool

	limit           nSpec
	nth             nSpec
	notNth          nSpec
	first           nSpec
	last            nSpec
	notFirst        nSpec
	notLast         nSpec
	nthSlice        sliceSpec
	notNthSlice     sliceSpec
	nthLastSlice    sliceSpec
	notNthLastSlice sliceSpec

	rawRows [][]value.Value
	rowOpen bool
	current []value.Value

	preparedRows  [][]value.Value
	columnVectors map[string][]value.Value

	cursor int
}

// New returns a fresh Result named name, in the Configuring phase.
func New(name string) *Result {
	return &Result{name: name, phase: Configuring, cursor: -1}
}

// Name returns the query name this result was built for.
func (r *Result) Name() string { return r.name }

// Phase returns the current phase, mostly for diagnostics and tests.
func (r *Result) Phase() Phase { return r.phase }

func (r *Result) requirePhase(want Phase) error {
	if r.phase != want {
		return ErrResultState.New("expected phase " + want.String() + ", got " + r.phase.String())
	}
	return nil
}

// Configuring-phase configuration methods.

// AddColumn appends a plain (non-aggregate) selected column named name.
func (r *Result) AddColumn(name string) error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	r.columns = append(r.columns, columnMeta{name: name, displayName: name})
	return nil
}

// AddAggregateColumn appends a column aggregated by fn (case-insensitively
// matched against {min, max, sum, avg, count, count-distinct}).
func (r *Result) AddAggregateColumn(name string, fn string) error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	normalized := AggregateFunction(strings.ToLower(strings.TrimSpace(fn)))
	if !validAggregateFunctions[normalized] {
		return ErrInvalidAggregateFunction.New(fn)
	}
	r.columns = append(r.columns, columnMeta{
		name: name, displayName: name, isAggregate: true, aggregateFunc: normalized,
	})
	return nil
}

// AddOrderByColumn declares that column idx participates in ordering. The
// direction of the first call fixes the direction for the whole query;
// later calls must agree (§4.5.2 forbids mixing ascending and descending).
func (r *Result) AddOrderByColumn(idx int, ascending bool) error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	if !r.orderDirectionSet {
		r.orderDirectionSet = true
		r.orderAscending = ascending
	} else if r.orderAscending != ascending {
		return ErrInvalidQuery.New("order-by direction must be consistent across columns")
	}
	r.orderBy = append(r.orderBy, orderBySpec{columnIndex: idx, ascending: ascending})
	return nil
}

// AddColumnDisplayName overrides the display name of column idx.
func (r *Result) AddColumnDisplayName(idx int, displayName string) error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	if idx < 0 || idx >= len(r.columns) {
		return ErrInvalidColumnIndex.New(idx)
	}
	if displayName == "" || strings.Contains(displayName, ",") {
		return ErrInvalidQuery.New("display name must be non-empty and comma-free: " + displayName)
	}
	r.columns[idx].displayName = displayName
	return nil
}

// SetIsDistinct enables row deduplication in the prepare pipeline.
func (r *Result) SetIsDistinct() error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	r.isDistinct = true
	return nil
}

func clampN(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (r *Result) setSimpleOp(target *nSpec, n int) error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	target.enabled = true
	target.n = clampN(n)
	return nil
}

func (r *Result) setSliceOp(target *sliceSpec, n, k int) error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	target.enabled = true
	target.n = clampN(n)
	target.k = k
	return nil
}

func (r *Result) SetLimit(n int) error           { return r.setSimpleOp(&r.limit, n) }
func (r *Result) SetNth(n int) error              { return r.setSimpleOp(&r.nth, n) }
func (r *Result) SetNotNth(n int) error           { return r.setSimpleOp(&r.notNth, n) }
func (r *Result) SetFirst(n int) error            { return r.setSimpleOp(&r.first, n) }
func (r *Result) SetLast(n int) error             { return r.setSimpleOp(&r.last, n) }
func (r *Result) SetNotFirst(n int) error         { return r.setSimpleOp(&r.notFirst, n) }
func (r *Result) SetNotLast(n int) error          { return r.setSimpleOp(&r.notLast, n) }
func (r *Result) SetNthSlice(n, k int) error      { return r.setSliceOp(&r.nthSlice, n, k) }
func (r *Result) SetNotNthSlice(n, k int) error   { return r.setSliceOp(&r.notNthSlice, n, k) }
func (r *Result) SetNthLastSlice(n, k int) error  { return r.setSliceOp(&r.nthLastSlice, n, k) }
func (r *Result) SetNotNthLastSlice(n, k int) error {
	return r.setSliceOp(&r.notNthLastSlice, n, k)
}

// numberOfColumns returns the number of declared columns.
func (r *Result) numberOfColumns() int { return len(r.columns) }
