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

// Package livediff compares two texts line by line and word by word to drive highlighting in
// interactive editors.
//
// The main function is [Compute]. It reports, for every line of a source text, whether the line
// differs from the target text, which target line it corresponds to, and which tokens of the line
// were modified. Lines are paired even if they moved or were rewritten: first by their normalized
// text and then by a similarity score.
//
// Texts are classified as code or prose. Code is tokenized into identifiers, keywords, operators,
// brackets and string literals and lines are compared by the longest common subsequence of their
// tokens. Prose is segmented into words according to Unicode rules and lines are compared by the
// overlap of their word sets, ignoring order and case.
//
// All ranges are offsets into the source text. By default, they are byte offsets; use [Units] to
// report offsets in Unicode code points or UTF-16 code units instead.
//
// Performance: Matching lines is O(N·M) similarity comparisons for N source and M target lines
// that don't match exactly, and comparing code lines is quadratic in the number of tokens. The
// computation is stateless and safe to run concurrently; callers that recompute on every keystroke
// should coalesce updates.
//
// Note: For a two-pane editor integration, please see [znkr.io/livediff/pane]. For rendering
// diffs in a terminal, please see [znkr.io/livediff/render].
package livediff
