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
	"fmt"
	"io"
	"strings"

	"github.com/sesuncedu/swrlapi-go/internal/value"
)

// GetColumnType reports the inferred datatype of column idx, derived from
// its first prepared row. ok is false when there are no prepared rows to
// infer from.
func (r *Result) GetColumnType(idx int) (value.Datatype, bool, error) {
	if err := r.requirePhase(Processing); err != nil {
		return 0, false, err
	}
	if idx < 0 || idx >= len(r.columns) {
		return 0, false, ErrInvalidColumnIndex.New(idx)
	}
	if len(r.preparedRows) == 0 {
		return 0, false, nil
	}
	return r.preparedRows[0][idx].Datatype(), true, nil
}

// Render writes an aligned plain-text table of the prepared rows to w; a
// debug helper, not part of the core read API.
func (r *Result) Render(w io.Writer) error {
	if err := r.requirePhase(Processing); err != nil {
		return err
	}
	widths := make([]int, len(r.columns))
	for i, c := range r.columns {
		widths[i] = len(c.displayName)
	}
	cells := make([][]string, len(r.preparedRows))
	for ri, row := range r.preparedRows {
		cells[ri] = make([]string, len(row))
		for ci, v := range row {
			s := v.LexicalForm()
			cells[ri][ci] = s
			if len(s) > widths[ci] {
				widths[ci] = len(s)
			}
		}
	}

	var header []string
	for i, c := range r.columns {
		header = append(header, pad(c.displayName, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "  ")); err != nil {
		return err
	}
	for _, row := range cells {
		var line []string
		for i, s := range row {
			line = append(line, pad(s, widths[i]))
		}
		if _, err := fmt.Fprintln(w, strings.Join(line, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
