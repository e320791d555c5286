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
	"sort"

	"github.com/mitchellh/hashstructure"

	"github.com/sesuncedu/swrlapi-go/internal/value"
)

// Configured validates the Configuring-phase state per §4.5.2 (order-by
// indices in range; a column index cannot be both selected and aggregate,
// which this representation already guarantees structurally) and, on
// success, transitions Configuring -> Preparing, after which rows may be
// added.
func (r *Result) Configured() error {
	if err := r.requirePhase(Configuring); err != nil {
		return err
	}
	if len(r.columns) == 0 {
		return ErrInvalidQuery.New("no columns selected")
	}
	for _, ob := range r.orderBy {
		if ob.columnIndex < 0 || ob.columnIndex >= len(r.columns) {
			return ErrInvalidQuery.New("order-by column index out of range")
		}
	}
	r.phase = Preparing
	return nil
}

// Prepared runs the fixed five-step pipeline of §4.5.4 over the rows
// accumulated during Preparing: aggregate, distinct, order-by, selection
// operators, column vectors. It transitions Preparing -> Processing. A
// partially-filled open row fails; a freshly-opened-but-empty row is
// silently discarded.
func (r *Result) Prepared() error {
	if err := r.requirePhase(Preparing); err != nil {
		return err
	}
	if r.rowOpen {
		if len(r.current) > 0 {
			return ErrResultState.New("a partially filled row is still open")
		}
		r.rowOpen = false
		r.current = nil
	}

	rows, err := r.aggregate(r.rawRows)
	if err != nil {
		return err
	}

	if r.isDistinct && !r.hasAggregateColumn() {
		rows = r.dedupe(rows)
	}

	rows = r.orderRows(rows)

	rows = r.applySelectionOperators(rows)

	r.preparedRows = rows
	r.buildColumnVectors()
	if len(rows) > 0 {
		r.cursor = 0
	} else {
		r.cursor = -1
	}
	r.phase = Processing
	return nil
}

func (r *Result) hasAggregateColumn() bool {
	for _, c := range r.columns {
		if c.isAggregate {
			return true
		}
	}
	return false
}

// groupKey hashes the non-aggregate column values of a row as a fast-path
// dedup pre-check ahead of authoritative value.Value.Equals comparison.
func groupKey(row []value.Value, columns []columnMeta) (uint64, error) {
	parts := make([]string, 0, len(row))
	for i, v := range row {
		if i < len(columns) && columns[i].isAggregate {
			continue
		}
		parts = append(parts, v.Datatype().String()+":"+v.LexicalForm())
	}
	return hashstructure.Hash(parts, nil)
}

func rowsEqualIgnoringAggregates(a, b []value.Value, columns []columnMeta) bool {
	for i := range a {
		if i < len(columns) && columns[i].isAggregate {
			continue
		}
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// aggregate groups rows on their non-aggregate columns and reduces each
// aggregate column according to its function. If no column is an aggregate,
// rows pass through unchanged.
func (r *Result) aggregate(rows [][]value.Value) ([][]value.Value, error) {
	if !r.hasAggregateColumn() {
		return rows, nil
	}

	type bucket struct {
		key  []value.Value
		rows [][]value.Value
	}
	buckets := make(map[uint64][]*bucket)
	var order []uint64

	for _, row := range rows {
		h, err := groupKey(row, r.columns)
		if err != nil {
			return nil, ErrInvalidQuery.New(err.Error())
		}
		var target *bucket
		for _, b := range buckets[h] {
			if rowsEqualIgnoringAggregates(b.rows[0], row, r.columns) {
				target = b
				break
			}
		}
		if target == nil {
			target = &bucket{rows: nil}
			buckets[h] = append(buckets[h], target)
			order = append(order, h)
		}
		target.rows = append(target.rows, row)
	}

	seen := make(map[uint64]bool)
	var out [][]value.Value
	for _, h := range order {
		if seen[h] {
			continue
		}
		seen[h] = true
		for _, b := range buckets[h] {
			reduced, err := r.reduceBucket(b.rows)
			if err != nil {
				return nil, err
			}
			out = append(out, reduced)
		}
	}
	return out, nil
}

func (r *Result) reduceBucket(rows [][]value.Value) ([]value.Value, error) {
	out := make([]value.Value, len(r.columns))
	copy(out, rows[0])
	for i, c := range r.columns {
		if !c.isAggregate {
			continue
		}
		col := make([]value.Value, len(rows))
		for j, row := range rows {
			col[j] = row[i]
		}
		v, err := reduceColumn(c.aggregateFunc, col)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func reduceColumn(fn AggregateFunction, col []value.Value) (value.Value, error) {
	switch fn {
	case Count:
		return value.NewLong(int64(len(col))), nil
	case CountDistinct:
		seen := make(map[string]bool)
		for _, v := range col {
			seen[v.Datatype().String()+":"+v.LexicalForm()] = true
		}
		return value.NewLong(int64(len(seen))), nil
	case Min, Max:
		best := col[0]
		for _, v := range col[1:] {
			c, err := v.CompareTo(best)
			if err != nil {
				return value.Value{}, ErrInvalidColumnType.New(err.Error())
			}
			if (fn == Min && c < 0) || (fn == Max && c > 0) {
				best = v
			}
		}
		return best, nil
	case Sum, Avg:
		var sum float64
		for _, v := range col {
			d, err := v.AsDouble()
			if err != nil {
				return value.Value{}, ErrInvalidColumnType.New(err.Error())
			}
			sum += d
		}
		if fn == Avg {
			return value.NewDouble(sum / float64(len(col))), nil
		}
		return value.NewDouble(sum), nil
	default:
		return value.Value{}, ErrInvalidAggregateFunction.New(string(fn))
	}
}

func (r *Result) dedupe(rows [][]value.Value) [][]value.Value {
	type bucket struct {
		row []value.Value
	}
	buckets := make(map[uint64][]bucket)
	var out [][]value.Value
	for _, row := range rows {
		h, err := groupKey(row, nil)
		if err != nil {
			out = append(out, row)
			continue
		}
		dup := false
		for _, b := range buckets[h] {
			if rowsEqualIgnoringAggregates(b.row, row, nil) {
				dup = true
				break
			}
		}
		if !dup {
			buckets[h] = append(buckets[h], bucket{row: row})
			out = append(out, row)
		}
	}
	return out
}

// orderRows performs a stable sort over r.orderBy, in declaration order
// (the first spec is the primary key).
func (r *Result) orderRows(rows [][]value.Value) [][]value.Value {
	if len(r.orderBy) == 0 {
		return rows
	}
	sorted := make([][]value.Value, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		for _, ob := range r.orderBy {
			c, err := sorted[i][ob.columnIndex].CompareTo(sorted[j][ob.columnIndex])
			if err != nil || c == 0 {
				continue
			}
			if ob.ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
	return sorted
}
