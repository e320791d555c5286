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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sesuncedu/swrlapi-go/internal/value"
)

func fillRows(t *testing.T, r *Result, rows [][]value.Value) {
	t.Helper()
	require.NoError(t, r.Configured())
	for _, row := range rows {
		require.NoError(t, r.AddRow(row))
	}
}

func TestAggregationGroupsAndPreservesSum(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("dept"))
	require.NoError(r.AddAggregateColumn("salary", "sum"))

	rows := [][]value.Value{
		{value.NewString("eng"), value.NewDouble(100)},
		{value.NewString("eng"), value.NewDouble(50)},
		{value.NewString("sales"), value.NewDouble(10)},
	}
	fillRows(t, r, rows)
	require.NoError(r.Prepared())

	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)

	var total float64
	for ok, _ := r.HasNext(); ok; ok, _ = r.HasNext() {
		v, err := r.GetValue("salary")
		require.NoError(err)
		d, err := v.AsDouble()
		require.NoError(err)
		total += d
		_, err = r.Next()
		require.NoError(err)
	}
	require.Equal(160.0, total)
}

func TestAggregationAverageScenario(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("name"))
	require.NoError(r.AddAggregateColumn("age", "avg"))

	fillRows(t, r, [][]value.Value{
		{value.NewString("Fred"), value.NewDouble(27)},
		{value.NewString("Joe"), value.NewDouble(34)},
		{value.NewString("Joe"), value.NewDouble(21)},
	})
	require.NoError(r.Prepared())

	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)

	got := map[string]float64{}
	for ok, _ := r.HasNext(); ok; ok, _ = r.HasNext() {
		name, err := r.GetValue("name")
		require.NoError(err)
		ns, _ := name.AsString()
		age, err := r.GetValue("age")
		require.NoError(err)
		ad, _ := age.AsDouble()
		got[ns] = ad
		_, err = r.Next()
		require.NoError(err)
	}
	require.Equal(27.0, got["Fred"])
	require.Equal(27.5, got["Joe"])
}

func TestLimitShortCircuitsOtherOperators(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.SetLimit(2))
	require.NoError(r.SetFirst(1))

	fillRows(t, r, [][]value.Value{
		{value.NewInt(1)}, {value.NewInt(2)}, {value.NewInt(3)}, {value.NewInt(4)},
	})
	require.NoError(r.Prepared())

	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)
}

func TestNthSelectsSingleRow(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.AddOrderByColumn(0, true))
	require.NoError(r.SetNth(2))

	fillRows(t, r, [][]value.Value{
		{value.NewInt(30)}, {value.NewInt(10)}, {value.NewInt(20)},
	})
	require.NoError(r.Prepared())

	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(1, n)

	v, err := r.GetValue("x")
	require.NoError(err)
	i, err := v.AsInt()
	require.NoError(err)
	require.Equal(int64(20), i)
}

func TestDistinctDeduplicatesRows(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.SetIsDistinct())

	fillRows(t, r, [][]value.Value{
		{value.NewInt(1)}, {value.NewInt(1)}, {value.NewInt(2)},
	})
	require.NoError(r.Prepared())

	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)
}

func TestPhaseViolationAddRowDataBeforeConfigured(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))

	err := r.AddRowData(value.NewInt(1))
	require.Error(err)
	require.True(ErrResultState.Is(err))
}

func TestPhaseViolationAddColumnAfterConfigured(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.Configured())

	err := r.AddColumn("y")
	require.Error(err)
	require.True(ErrResultState.Is(err))
}

func TestPhaseViolationGetValueBeforePrepared(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.Configured())
	require.NoError(r.AddRow([]value.Value{value.NewInt(1)}))

	_, err := r.GetValue("x")
	require.Error(err)
	require.True(ErrResultState.Is(err))
}

func TestAggregateTypeViolationRaisedAtAddTime(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("dept"))
	require.NoError(r.AddAggregateColumn("name", "avg"))
	require.NoError(r.Configured())

	err := r.AddRow([]value.Value{value.NewString("eng"), value.NewString("not-a-number")})
	require.Error(err)
	require.True(value.ErrLiteralType.Is(err))

	// The row is rejected before prepared(); the result is still usable.
	require.NoError(r.AddRow([]value.Value{value.NewString("eng"), value.NewDouble(10)}))
	require.NoError(r.Prepared())
}

func TestOrderByIsStable(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("k"))
	require.NoError(r.AddColumn("v"))
	require.NoError(r.AddOrderByColumn(0, true))

	fillRows(t, r, [][]value.Value{
		{value.NewInt(1), value.NewString("a")},
		{value.NewInt(1), value.NewString("b")},
		{value.NewInt(0), value.NewString("c")},
	})
	require.NoError(r.Prepared())

	col, err := r.GetColumn("v")
	require.NoError(err)
	require.Len(col, 3)
	s0, _ := col[0].AsString()
	s1, _ := col[1].AsString()
	s2, _ := col[2].AsString()
	require.Equal("c", s0)
	require.Equal("a", s1)
	require.Equal("b", s2)
}

func TestOrderByDirectionMustBeConsistent(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("a"))
	require.NoError(r.AddColumn("b"))
	require.NoError(r.AddOrderByColumn(0, true))

	err := r.AddOrderByColumn(1, false)
	require.Error(err)
	require.True(ErrInvalidQuery.Is(err))
}

func TestSelectionOperatorClampsBeyondRowCount(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.SetFirst(100))

	fillRows(t, r, [][]value.Value{{value.NewInt(1)}, {value.NewInt(2)}})
	require.NoError(r.Prepared())

	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n)
}

func TestNotFirstAndNotLastReturnFullSetBeyondRowCount(t *testing.T) {
	require := require.New(t)

	r := New("q")
	require.NoError(r.AddColumn("x"))
	require.NoError(r.SetNotFirst(100))
	fillRows(t, r, [][]value.Value{{value.NewInt(1)}, {value.NewInt(2)}})
	require.NoError(r.Prepared())
	n, err := r.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n, "notFirst(n) beyond the row count must return S, not the empty set")

	r2 := New("q")
	require.NoError(r2.AddColumn("x"))
	require.NoError(r2.SetNotLast(100))
	fillRows(t, r2, [][]value.Value{{value.NewInt(1)}, {value.NewInt(2)}})
	require.NoError(r2.Prepared())
	n2, err := r2.GetNumberOfRows()
	require.NoError(err)
	require.Equal(2, n2, "notLast(n) beyond the row count must return S, not the empty set")
}

func TestInvalidAggregateFunctionRejected(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("x"))
	err := r.AddAggregateColumn("y", "median")
	require.Error(err)
	require.True(ErrInvalidAggregateFunction.Is(err))
}

func TestInvalidColumnNameSuggestsClosestMatch(t *testing.T) {
	require := require.New(t)
	r := New("q")
	require.NoError(r.AddColumn("salary"))
	fillRows(t, r, [][]value.Value{{value.NewInt(1)}})
	require.NoError(r.Prepared())

	_, err := r.GetValue("salarry")
	require.Error(err)
	require.True(ErrInvalidColumnName.Is(err))
	require.Contains(err.Error(), "salary")
}
