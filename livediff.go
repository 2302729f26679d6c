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

package livediff

import (
	"fmt"

	"znkr.io/livediff/internal/classify"
	"znkr.io/livediff/internal/config"
	"znkr.io/livediff/internal/match"
	"znkr.io/livediff/internal/offsets"
	"znkr.io/livediff/internal/token"
)

// Kind describes how a part of a line differs.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Addition     Kind = iota // A line without a corresponding line on the other side, see [TargetView]
	Deletion                 // A line without a corresponding target line
	Modification             // A token that has no counterpart in the matched target line
)

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	for i := range Modification + 1 {
		if i.String() == string(text) {
			*k = i
			return nil
		}
	}
	return fmt.Errorf("unknown kind: %q", text)
}

// Mode is the classification of a text.
type Mode = token.Mode

const (
	Prose = token.Prose // Natural language, compared as a bag of words
	Code  = token.Code  // Source code, compared as a sequence of tokens
)

// Unit is the unit of offsets in a [Range].
type Unit = offsets.Unit

const (
	Bytes = offsets.Bytes // Bytes of the UTF-8 encoded text
	Runes = offsets.Runes // Unicode code points
	UTF16 = offsets.UTF16 // UTF-16 code units
)

// Unmatched is the value of [LineDiff.TargetLine] for lines without a corresponding target line.
const Unmatched = match.Unmatched

// Range is a span of text.
type Range struct {
	Location int // Start offset
	Length   int // Number of units
}

// End returns the offset after the last unit of the range.
func (r Range) End() int { return r.Location + r.Length }

// WordDiff describes a changed part of a line.
type WordDiff struct {
	Range Range // Range in the source text
	Kind  Kind
}

// LineDiff describes how a single source line differs from the target text.
type LineDiff struct {
	Range       Range      // Range of the line in the source text, without the newline
	WordDiffs   []WordDiff // Changed parts of the line, ordered by offset
	IsDifferent bool       // Same as len(WordDiffs) > 0
	LineNumber  int        // Zero based index of the line in the source text
	TargetLine  int        // Zero based index of the matched target line or Unmatched
}

// Compute compares source with target and returns a LineDiff for every line of source, in order.
//
// Both texts are split into lines at '\n'. An empty text has no lines and a text that ends with a
// newline has an empty last line. Source lines are paired with at most one target line each:
// lines whose normalized text is identical are paired first, then remaining lines are paired with
// the most similar remaining target line if the similarity reaches a threshold (see
// [CodeThreshold] and [ProseThreshold]).
//
// For a paired line, every token that doesn't appear in the target line is reported as a
// [Modification]. A line without a partner is reported as a single [Deletion] spanning the whole
// line. Blank lines are never different.
//
// Compute is a pure function of its inputs.
//
// The following options are supported: [CodeThreshold], [ProseThreshold], [Units], [Language],
// [ForceMode], [MergeAdjacent], [TargetView]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Compute(source, target string, opts ...Option) []LineDiff {
	cfg := config.FromOptions(opts, config.Engine)
	return compute(source, target, cfg)
}

// Classify returns whether text is treated as [Code] or [Prose]. Text is code if any of its lines
// starts like a declaration, an import, or a control statement.
func Classify(text string) Mode {
	return classify.Detect(text)
}

func compute(source, target string, cfg config.Config) []LineDiff {
	mode := cfg.Mode
	if !cfg.ForceMode {
		mode = classify.Detect(source)
	}
	var kw token.Keywords
	threshold := cfg.ProseThreshold
	if mode == token.Code {
		kw = token.KeywordsFor(classify.Language(source, cfg.Language))
		threshold = cfg.CodeThreshold
	}

	src := match.Prepare(source, mode, kw)
	tgt := match.Prepare(target, mode, kw)
	m := match.Match(src, tgt, mode, threshold)

	unmatchedKind := Deletion
	if cfg.TargetView {
		unmatchedKind = Addition
	}

	idx := offsets.NewIndex(source, cfg.Unit)
	out := make([]LineDiff, 0, len(src.Lines))
	for i, l := range src.Lines {
		if l.Start < 0 || l.End > len(source) || l.Start > l.End {
			continue
		}
		ld := LineDiff{
			Range:      span(idx, l.Start, l.End),
			LineNumber: i,
			TargetLine: m[i],
		}
		switch {
		case l.Blank():
			// Never different.
		case m[i] == match.Unmatched:
			ld.WordDiffs = []WordDiff{{span(idx, l.Start, l.End), unmatchedKind}}
		default:
			toks := src.Tokens[i]
			changed := changedTokens(toks, tgt.Tokens[m[i]], mode)
			for _, s := range spans(toks, changed, cfg.MergeAdjacent) {
				start, end := l.Start+s.start, l.Start+s.end
				if start < l.Start || end > l.End || start >= end {
					continue
				}
				ld.WordDiffs = append(ld.WordDiffs, WordDiff{span(idx, start, end), Modification})
			}
		}
		ld.IsDifferent = len(ld.WordDiffs) > 0
		out = append(out, ld)
	}
	return out
}

func span(idx *offsets.Index, start, end int) Range {
	loc := idx.Offset(start)
	return Range{loc, idx.Offset(end) - loc}
}

type tokenKey struct {
	typ  token.Type
	norm string
}

// changedTokens reports for every token in src whether it's missing from tgt. Whitespace is never
// changed. Code tokens need to match in type and normalized text, prose tokens only in normalized
// text.
func changedTokens(src, tgt []token.Token, mode token.Mode) []bool {
	key := func(t token.Token) tokenKey {
		if mode == token.Code {
			return tokenKey{t.Type, t.Normalized}
		}
		return tokenKey{norm: t.Normalized}
	}
	present := make(map[tokenKey]struct{}, len(tgt))
	for _, t := range tgt {
		if t.Type != token.Whitespace {
			present[key(t)] = struct{}{}
		}
	}
	changed := make([]bool, len(src))
	for i, t := range src {
		if t.Type == token.Whitespace {
			continue
		}
		_, ok := present[key(t)]
		changed[i] = !ok
	}
	return changed
}

type byteSpan struct{ start, end int }

// spans converts changed tokens to byte spans relative to the line. Without merging, every changed
// token is its own span. With merging, changed tokens that are separated by nothing but whitespace
// form a single span.
func spans(toks []token.Token, changed []bool, merge bool) []byteSpan {
	var out []byteSpan
	open := false // whether the last span can still be extended
	for i, t := range toks {
		switch {
		case changed[i] && merge && open:
			out[len(out)-1].end = t.End
		case changed[i]:
			out = append(out, byteSpan{t.Start, t.End})
			open = true
		case t.Type != token.Whitespace:
			open = false
		}
	}
	return out
}
