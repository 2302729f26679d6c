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

// Package match pairs source lines with target lines.
//
// Matching happens in two passes. The exact pass pairs lines whose normalized text is identical,
// the fuzzy pass pairs the remaining lines greedily by similarity score. Matching is not globally
// optimal: a source line claims its best target line without considering later source lines.
package match

import (
	"znkr.io/livediff/internal/lines"
	"znkr.io/livediff/internal/similarity"
	"znkr.io/livediff/internal/token"
)

// Unmatched marks a source line without a corresponding target line.
const Unmatched = -1

// Input is one side of a comparison.
type Input struct {
	Lines  []lines.Line
	Tokens [][]token.Token // Tokens[i] are the tokens of Lines[i], offsets relative to the line
}

// Prepare splits text into lines and tokenizes every line.
func Prepare(text string, mode token.Mode, kw token.Keywords) Input {
	ls := lines.Split(text)
	toks := make([][]token.Token, len(ls))
	for i, l := range ls {
		toks[i] = token.Tokenize(l.Text, mode, kw)
	}
	return Input{ls, toks}
}

// Match pairs lines in src with lines in tgt and returns, for every source line, the index of the
// matched target line or [Unmatched]. No target line is matched more than once. Blank lines are
// never matched.
//
// A fuzzy match is only accepted if its similarity score is at least threshold.
func Match(src, tgt Input, mode token.Mode, threshold float64) []int {
	m := make([]int, len(src.Lines))
	claimed := make([]bool, len(tgt.Lines))
	for i := range m {
		m[i] = Unmatched
	}

	// Exact pass: index target lines by their normalized text, in line order.
	candidates := make(map[string][]int, len(tgt.Lines))
	for j, l := range tgt.Lines {
		if l.Blank() {
			continue
		}
		norm := lines.Normalize(l.Text, mode)
		candidates[norm] = append(candidates[norm], j)
	}
	for i, l := range src.Lines {
		if l.Blank() {
			continue
		}
		norm := lines.Normalize(l.Text, mode)
		js := candidates[norm]
		if len(js) == 0 {
			continue
		}
		// Only the exact pass claims lines until now, the first candidate is always unclaimed.
		m[i], claimed[js[0]] = js[0], true
		candidates[norm] = js[1:]
	}

	// Fuzzy pass: pick the most similar unclaimed target line, the first maximum wins.
	for i, l := range src.Lines {
		if m[i] != Unmatched || l.Blank() {
			continue
		}
		best, bestScore := Unmatched, -1.0
		for j, t := range tgt.Lines {
			if claimed[j] || t.Blank() {
				continue
			}
			if s := similarity.Score(src.Tokens[i], tgt.Tokens[j], mode); s > bestScore {
				best, bestScore = j, s
			}
		}
		if best != Unmatched && bestScore >= threshold {
			m[i], claimed[best] = best, true
		}
	}
	return m
}
