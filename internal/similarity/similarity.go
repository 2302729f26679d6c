// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package similarity scores how likely two token sequences represent the same line, possibly
// edited.
package similarity

import "znkr.io/livediff/internal/token"

// Default acceptance thresholds for line matching.
const (
	CodeThreshold  = 0.5
	ProseThreshold = 0.3
)

// Score returns a similarity in [0, 1] for the token sequences a and b. Whitespace tokens are
// ignored.
//
// Code is scored with an order sensitive longest common subsequence ratio over normalized tokens,
// prose with the Jaccard index over the sets of normalized tokens. If both sequences are empty, the
// score is 1; if only one of them is empty, it's 0.
func Score(a, b []token.Token, mode token.Mode) float64 {
	x, y := normalized(a), normalized(b)
	switch {
	case len(x) == 0 && len(y) == 0:
		return 1
	case len(x) == 0 || len(y) == 0:
		return 0
	}
	if mode == token.Code {
		return float64(LCS(x, y)) / float64(max(len(x), len(y)))
	}
	return Jaccard(x, y)
}

func normalized(toks []token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if t.Type == token.Whitespace {
			continue
		}
		out = append(out, t.Normalized)
	}
	return out
}

// Jaccard returns |X ∩ Y| / |X ∪ Y| where X and Y are the sets of elements in x and y. Two empty
// inputs are identical.
func Jaccard[T comparable](x, y []T) float64 {
	set := make(map[T]uint8, len(x)+len(y))
	for _, e := range x {
		set[e] |= 1
	}
	for _, e := range y {
		set[e] |= 2
	}
	if len(set) == 0 {
		return 1
	}
	n := 0
	for _, v := range set {
		if v == 3 {
			n++
		}
	}
	return float64(n) / float64(len(set))
}

// LCS returns the length of the longest common subsequence of x and y.
func LCS[T comparable](x, y []T) int {
	smin, smax, tmin, tmax := findChangeBounds(x, y)
	common := smin + (len(x) - smax)
	x, y = x[smin:smax], y[tmin:tmax]
	if len(x) == 0 || len(y) == 0 {
		return common
	}

	// Classic dynamic programming table, dp[i+1][j+1] = dp[i][j]+1 on a match and
	// max(dp[i+1][j], dp[i][j+1]) otherwise. Only two rows are ever needed.
	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for i := range x {
		for j := range y {
			if x[i] == y[j] {
				curr[j+1] = prev[j] + 1
			} else {
				curr[j+1] = max(curr[j], prev[j+1])
			}
		}
		prev, curr = curr, prev
	}
	return common + prev[len(y)]
}

// findChangeBounds returns the upper and lower bounds for the changed portion of the inputs.
func findChangeBounds[T comparable](x, y []T) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	return
}
