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

// applySelectionOperators implements §4.5.5's fixed operator table. limit,
// when enabled, short-circuits every other operator. Otherwise every
// enabled operator's output is concatenated, in the table's fixed order.
// n is clamped up to 1 by the configuration setters; an n beyond len(rows)
// yields the full (or empty) slice rather than an error.
func (r *Result) applySelectionOperators(rows [][]value.Value) [][]value.Value {
	if r.limit.enabled {
		return firstN(rows, r.limit.n)
	}

	var out [][]value.Value
	any := false

	if r.nth.enabled {
		any = true
		out = append(out, nth(rows, r.nth.n)...)
	}
	if r.notNth.enabled {
		any = true
		out = append(out, notNth(rows, r.notNth.n)...)
	}
	if r.first.enabled {
		any = true
		out = append(out, firstN(rows, r.first.n)...)
	}
	if r.last.enabled {
		any = true
		out = append(out, lastN(rows, r.last.n)...)
	}
	if r.notFirst.enabled {
		any = true
		out = append(out, notFirstN(rows, r.notFirst.n)...)
	}
	if r.notLast.enabled {
		any = true
		out = append(out, notLastN(rows, r.notLast.n)...)
	}
	if r.nthSlice.enabled {
		any = true
		out = append(out, nthSlice(rows, r.nthSlice.n, r.nthSlice.k)...)
	}
	if r.notNthSlice.enabled {
		any = true
		out = append(out, notNthSlice(rows, r.notNthSlice.n, r.notNthSlice.k)...)
	}
	if r.nthLastSlice.enabled {
		any = true
		out = append(out, nthLastSlice(rows, r.nthLastSlice.n, r.nthLastSlice.k)...)
	}
	if r.notNthLastSlice.enabled {
		any = true
		out = append(out, notNthLastSlice(rows, r.notNthLastSlice.n, r.notNthLastSlice.k)...)
	}

	if !any {
		return rows
	}
	return out
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func firstN(rows [][]value.Value, n int) [][]value.Value {
	return rows[:clampIndex(n, len(rows))]
}

func lastN(rows [][]value.Value, n int) [][]value.Value {
	start := len(rows) - n
	if start < 0 {
		start = 0
	}
	return rows[start:]
}

func notFirstN(rows [][]value.Value, n int) [][]value.Value {
	if n > len(rows) {
		out := make([][]value.Value, len(rows))
		copy(out, rows)
		return out
	}
	return rows[clampIndex(n, len(rows)):]
}

func notLastN(rows [][]value.Value, n int) [][]value.Value {
	if n > len(rows) {
		out := make([][]value.Value, len(rows))
		copy(out, rows)
		return out
	}
	end := len(rows) - n
	if end < 0 {
		end = 0
	}
	return rows[:end]
}

// nth returns the single n-th row (1-based), or nothing if n is out of
// range.
func nth(rows [][]value.Value, n int) [][]value.Value {
	if n < 1 || n > len(rows) {
		return nil
	}
	return rows[n-1 : n]
}

// notNth returns every row except the n-th.
func notNth(rows [][]value.Value, n int) [][]value.Value {
	if n < 1 || n > len(rows) {
		out := make([][]value.Value, len(rows))
		copy(out, rows)
		return out
	}
	out := make([][]value.Value, 0, len(rows)-1)
	out = append(out, rows[:n-1]...)
	out = append(out, rows[n:]...)
	return out
}

// nthSlice returns the k rows starting at the n-th (1-based, inclusive).
func nthSlice(rows [][]value.Value, n, k int) [][]value.Value {
	if n < 1 || n > len(rows) || k <= 0 {
		return nil
	}
	end := clampIndex(n-1+k, len(rows))
	return rows[n-1 : end]
}

// notNthSlice returns every row outside the [n, n+k) window.
func notNthSlice(rows [][]value.Value, n, k int) [][]value.Value {
	if n < 1 || n > len(rows) || k <= 0 {
		out := make([][]value.Value, len(rows))
		copy(out, rows)
		return out
	}
	end := clampIndex(n-1+k, len(rows))
	out := make([][]value.Value, 0, len(rows))
	out = append(out, rows[:n-1]...)
	out = append(out, rows[end:]...)
	return out
}

// nthLastSlice returns the k rows ending at the n-th-from-last (1-based).
func nthLastSlice(rows [][]value.Value, n, k int) [][]value.Value {
	if n < 1 || n > len(rows) || k <= 0 {
		return nil
	}
	end := len(rows) - n + 1
	start := clampIndex(end-k, len(rows))
	return rows[start:end]
}

// notNthLastSlice returns every row outside the from-the-end window defined
// by n and k.
func notNthLastSlice(rows [][]value.Value, n, k int) [][]value.Value {
	if n < 1 || n > len(rows) || k <= 0 {
		out := make([][]value.Value, len(rows))
		copy(out, rows)
		return out
	}
	end := len(rows) - n + 1
	start := clampIndex(end-k, len(rows))
	out := make([][]value.Value, 0, len(rows))
	out = append(out, rows[:start]...)
	out = append(out, rows[end:]...)
	return out
}

func (r *Result) buildColumnVectors() {
	r.columnVectors = make(map[string][]value.Value, len(r.columns))
	for i, c := range r.columns {
		col := make([]value.Value, len(r.preparedRows))
		for j, row := range r.preparedRows {
			col[j] = row[i]
		}
		r.columnVectors[c.name] = col
	}
}
