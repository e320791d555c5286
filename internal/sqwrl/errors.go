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

// Package sqwrl implements the SQWRL result engine (C5): a three-phase
// tabular aggregator (Configure -> Prepare -> Process) supporting
// projection, aggregation, ordering, distinctness, and the eleven selection
// operators of §4.5.5.
package sqwrl

import errors "gopkg.in/src-d/go-errors.v1"

// ErrResultState is raised when an operation is attempted in the wrong
// phase (or row sub-state).
var ErrResultState = errors.NewKind("result state error: %s")

// ErrInvalidColumnName is raised by name-based column lookups for an
// unknown column.
var ErrInvalidColumnName = errors.NewKind("invalid column name: %s")

// ErrInvalidColumnIndex is raised by index-based column lookups out of
// range.
var ErrInvalidColumnIndex = errors.NewKind("invalid column index: %d")

// ErrInvalidRowIndex is raised by row lookups out of range.
var ErrInvalidRowIndex = errors.NewKind("invalid row index: %d")

// ErrInvalidColumnType is raised by typed accessors when the stored cell's
// kind does not match.
var ErrInvalidColumnType = errors.NewKind("invalid column type: %s")

// ErrInvalidAggregateFunction is raised for an aggregate function name
// outside {min, max, sum, avg, count, count-distinct}.
var ErrInvalidAggregateFunction = errors.NewKind("invalid aggregate function: %s")

// ErrInvalidQuery is raised for structural problems in a query's
// configuration: no selected columns or an out-of-range order-by index
// (Configured), inconsistent ordering direction (AddOrderByColumn), empty or
// comma-containing display names (AddColumnDisplayName), and a row of the
// wrong arity (AddRow).
var ErrInvalidQuery = errors.NewKind("invalid query: %s")
