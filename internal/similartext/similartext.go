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

// Package similartext formats a "maybe you mean ...?" suggestion clause for
// appending to an unknown-name error message.
package similartext

import (
	"sort"
	"strings"

	"github.com/sesuncedu/swrlapi-go/internal/text_distance"
)

// Find returns a ", maybe you mean X?" (or "X or Y?" on ties) clause for the
// closest matches to s among names, or "" if names or s is empty, or
// nothing is close enough to suggest.
func Find(names []string, s string) string {
	if len(names) == 0 || s == "" {
		return ""
	}

	bestDist := -1
	var matches []string
	for _, n := range names {
		d := text_distance.Distance(n, s)
		switch {
		case bestDist == -1 || d < bestDist:
			bestDist = d
			matches = []string{n}
		case d == bestDist:
			matches = append(matches, n)
		}
	}

	if text_distance.FindSimilarName(names, s) == "" {
		return ""
	}
	return format(matches)
}

// FindFromMap is Find over a map's keys, iterated in sorted order.
func FindFromMap(names map[string]int, s string) string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Find(keys, s)
}

func format(matches []string) string {
	if len(matches) == 0 {
		return ""
	}
	if len(matches) == 1 {
		return ", maybe you mean " + matches[0] + "?"
	}
	return ", maybe you mean " + strings.Join(matches[:len(matches)-1], ", ") + " or " + matches[len(matches)-1] + "?"
}
