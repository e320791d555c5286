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
	"github.com/sesuncedu/swrlapi-go/internal/similartext"
	"github.com/sesuncedu/swrlapi-go/internal/value"
)

// GetNumberOfRows returns the number of prepared rows.
func (r *Result) GetNumberOfRows() (int, error) {
	if err := r.requirePhase(Processing); err != nil {
		return 0, err
	}
	return len(r.preparedRows), nil
}

// GetNumberOfColumns returns the number of selected columns.
func (r *Result) GetNumberOfColumns() (int, error) {
	if err := r.requirePhase(Processing); err != nil {
		return 0, err
	}
	return len(r.columns), nil
}

// GetColumnName returns the raw (non-display) name of column idx.
func (r *Result) GetColumnName(idx int) (string, error) {
	if err := r.requirePhase(Processing); err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(r.columns) {
		return "", ErrInvalidColumnIndex.New(idx)
	}
	return r.columns[idx].name, nil
}

// GetColumnNames returns the display names of every column, in order.
func (r *Result) GetColumnNames() ([]string, error) {
	if err := r.requirePhase(Processing); err != nil {
		return nil, err
	}
	out := make([]string, len(r.columns))
	for i, c := range r.columns {
		out[i] = c.displayName
	}
	return out, nil
}

func (r *Result) columnIndex(name string) (int, error) {
	for i, c := range r.columns {
		if c.name == name || c.displayName == name {
			return i, nil
		}
	}
	names := make([]string, len(r.columns))
	for i, c := range r.columns {
		names[i] = c.displayName
	}
	return 0, ErrInvalidColumnName.New(name + similartext.Find(names, name))
}

// HasNext reports whether the cursor currently sits on a valid row. The
// cursor starts on row 0 (or -1 if there are no rows) once Prepared
// completes, so the first row is readable without calling Next.
func (r *Result) HasNext() (bool, error) {
	if err := r.requirePhase(Processing); err != nil {
		return false, err
	}
	return r.cursor >= 0 && r.cursor < len(r.preparedRows), nil
}

// Next advances the read cursor by one row, returning whether the new
// position is valid.
func (r *Result) Next() (bool, error) {
	if err := r.requirePhase(Processing); err != nil {
		return false, err
	}
	r.cursor++
	return r.cursor < len(r.preparedRows), nil
}

// Reset rewinds the read cursor to row 0.
func (r *Result) Reset() error {
	if err := r.requirePhase(Processing); err != nil {
		return err
	}
	if len(r.preparedRows) > 0 {
		r.cursor = 0
	} else {
		r.cursor = -1
	}
	return nil
}

func (r *Result) currentRow() ([]value.Value, error) {
	if r.cursor < 0 || r.cursor >= len(r.preparedRows) {
		return nil, ErrInvalidRowIndex.New(r.cursor)
	}
	return r.preparedRows[r.cursor], nil
}

// GetRow returns a copy of the row at the current cursor position.
func (r *Result) GetRow() ([]value.Value, error) {
	if err := r.requirePhase(Processing); err != nil {
		return nil, err
	}
	row, err := r.currentRow()
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(row))
	copy(out, row)
	return out, nil
}

// GetValue returns the value of the named column at the current row.
func (r *Result) GetValue(name string) (value.Value, error) {
	if err := r.requirePhase(Processing); err != nil {
		return value.Value{}, err
	}
	idx, err := r.columnIndex(name)
	if err != nil {
		return value.Value{}, err
	}
	return r.GetValueAt(idx)
}

// GetValueAt returns the value of column idx at the current row.
func (r *Result) GetValueAt(idx int) (value.Value, error) {
	if err := r.requirePhase(Processing); err != nil {
		return value.Value{}, err
	}
	row, err := r.currentRow()
	if err != nil {
		return value.Value{}, err
	}
	if idx < 0 || idx >= len(row) {
		return value.Value{}, ErrInvalidColumnIndex.New(idx)
	}
	return row[idx], nil
}

// GetValueAtRow is the random-access form of getValue(columnIndex,
// rowIndex): it reads column idx of row rowIdx without touching the cursor.
func (r *Result) GetValueAtRow(idx, rowIdx int) (value.Value, error) {
	if err := r.requirePhase(Processing); err != nil {
		return value.Value{}, err
	}
	if rowIdx < 0 || rowIdx >= len(r.preparedRows) {
		return value.Value{}, ErrInvalidRowIndex.New(rowIdx)
	}
	row := r.preparedRows[rowIdx]
	if idx < 0 || idx >= len(row) {
		return value.Value{}, ErrInvalidColumnIndex.New(idx)
	}
	return row[idx], nil
}

// GetColumn returns every value of the named column across all prepared
// rows, in their final (post-prepare) order.
func (r *Result) GetColumn(name string) ([]value.Value, error) {
	if err := r.requirePhase(Processing); err != nil {
		return nil, err
	}
	col, ok := r.columnVectors[name]
	if !ok {
		names := make([]string, 0, len(r.columnVectors))
		for n := range r.columnVectors {
			names = append(names, n)
		}
		return nil, ErrInvalidColumnName.New(name + similartext.Find(names, name))
	}
	out := make([]value.Value, len(col))
	copy(out, col)
	return out, nil
}

func typedValue(name string, v value.Value, want value.Datatype, cond bool) (value.Value, error) {
	if !cond {
		return value.Value{}, ErrInvalidColumnType.New(name)
	}
	return v, nil
}

// GetLiteralValue returns the value at the named column. This core stores
// all columns as value.Value, so no datatype check is made: any datatype,
// including an AnyURI entity reference, is accepted as a literal.
func (r *Result) GetLiteralValue(name string) (value.Value, error) {
	return r.GetValue(name)
}

// GetClassValue returns the named column's value, requiring an AnyURI (the
// representation used for class and other entity references in result
// rows).
func (r *Result) GetClassValue(name string) (value.Value, error) {
	v, err := r.GetValue(name)
	if err != nil {
		return value.Value{}, err
	}
	return typedValue(name, v, value.AnyURI, v.IsAnyURI())
}

// GetPropertyValue returns the named column's value, requiring an AnyURI.
func (r *Result) GetPropertyValue(name string) (value.Value, error) {
	return r.GetClassValue(name)
}

// GetObjectValue returns the named column's value, requiring an AnyURI (an
// individual reference).
func (r *Result) GetObjectValue(name string) (value.Value, error) {
	return r.GetClassValue(name)
}
