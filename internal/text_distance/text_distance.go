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

// Package text_distance implements Levenshtein edit distance and the
// single-best-match lookup used to power "maybe you mean X?" diagnostics
// throughout the engine (column names, query names).
package text_distance

import "sort"

// Distance computes the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// threshold bounds how different a candidate may be from s and still count
// as a plausible typo correction.
func threshold(s string) int {
	t := (len(s) + 2) / 2
	if t < 1 {
		return 1
	}
	return t
}

// FindSimilarName returns the name in names closest to s. An empty s
// returns the first name (there is no typo to correct against). Returns ""
// when names is empty or nothing is within the similarity threshold.
func FindSimilarName(names []string, s string) string {
	if len(names) == 0 {
		return ""
	}
	if s == "" {
		return names[0]
	}

	best := ""
	bestDist := -1
	for _, n := range names {
		d := Distance(n, s)
		if bestDist == -1 || d < bestDist {
			best, bestDist = n, d
		}
	}
	if bestDist > threshold(s) {
		return ""
	}
	return best
}

// FindSimilarNameFromMap is FindSimilarName over a map's keys, iterated in
// sorted order for determinism.
func FindSimilarNameFromMap(names map[string]int, s string) string {
	keys := sortedKeys(names)
	return FindSimilarName(keys, s)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
