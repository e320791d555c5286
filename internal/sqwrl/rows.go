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

import "github.com/sesuncedu/swrlapi-go/internal/value"

// numericAggregateFuncs is the set of aggregate functions requiring a
// numeric input value at row-addition time (§4.5.3); count/count-distinct
// accept any value.
var numericAggregateFuncs = map[AggregateFunction]bool{
	Min: true, Max: true, Sum: true, Avg: true,
}

// checkRowValue enforces §4.5.3: a value destined for a numeric-aggregate
// column must itself be numeric, checked eagerly at add time.
func (r *Result) checkRowValue(columnIndex int, v value.Value) error {
	if columnIndex < 0 || columnIndex >= len(r.columns) {
		return nil
	}
	c := r.columns[columnIndex]
	if c.isAggregate && numericAggregateFuncs[c.aggregateFunc] && !v.IsNumeric() {
		return value.ErrLiteralType.New("aggregate column " + c.name + " requires a numeric value")
	}
	return nil
}

// OpenRow begins a new raw row during the Preparing phase. A row must be
// closed (explicitly, or implicitly by filling every column) before another
// is opened.
func (r *Result) OpenRow() error {
	if err := r.requirePhase(Preparing); err != nil {
		return err
	}
	if r.rowOpen {
		return ErrResultState.New("a row is already open")
	}
	r.rowOpen = true
	r.current = make([]value.Value, 0, r.numberOfColumns())
	return nil
}

// AddRowData appends v to the currently open row, auto-closing the row once
// it holds numberOfColumns() values.
func (r *Result) AddRowData(v value.Value) error {
	if err := r.requirePhase(Preparing); err != nil {
		return err
	}
	if !r.rowOpen {
		return ErrResultState.New("no row is open")
	}
	if err := r.checkRowValue(len(r.current), v); err != nil {
		return err
	}
	r.current = append(r.current, v)
	if len(r.current) == r.numberOfColumns() {
		return r.CloseRow()
	}
	return nil
}

// CloseRow commits the currently open row to the raw row set.
func (r *Result) CloseRow() error {
	if err := r.requirePhase(Preparing); err != nil {
		return err
	}
	if !r.rowOpen {
		return ErrResultState.New("no row is open")
	}
	r.rawRows = append(r.rawRows, r.current)
	r.current = nil
	r.rowOpen = false
	return nil
}

// AddRow appends a fully-formed row in a single call; it must not be mixed
// with an in-progress OpenRow/AddRowData sequence.
func (r *Result) AddRow(row []value.Value) error {
	if err := r.requirePhase(Preparing); err != nil {
		return err
	}
	if r.rowOpen {
		return ErrResultState.New("a row is already open")
	}
	if len(row) != r.numberOfColumns() {
		return ErrInvalidQuery.New("row has wrong arity")
	}
	for i, v := range row {
		if err := r.checkRowValue(i, v); err != nil {
			return err
		}
	}
	cp := make([]value.Value, len(row))
	copy(cp, row)
	r.rawRows = append(r.rawRows, cp)
	return nil
}
