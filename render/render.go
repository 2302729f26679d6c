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

// Package render prints the results of [livediff.Compute] for terminals.
//
// All functions in this package expect ranges in [livediff.Bytes]. Ranges that don't fit the text
// they are rendered with are ignored, which makes it safe to render diffs that were computed for
// an older version of a text.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"znkr.io/livediff"
	"znkr.io/livediff/internal/config"
	"znkr.io/livediff/internal/hunks"
)

const tabWidth = 4

var markers = [...]byte{
	livediff.Addition:     '+',
	livediff.Deletion:     '-',
	livediff.Modification: '~',
}

// Annotated renders the differing lines of source as hunks. Every hunk starts with a header
// containing the first line number and the number of lines, followed by the lines themselves.
// Every line has a gutter with a marker for the kind of difference and the line number.
//
// Without colors, modified words are underlined with carets in the line below. With colors,
// modified words are colored instead.
//
// The following options are supported: [Context], [Colors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Annotated(source string, diffs []livediff.LineDiff, opts ...livediff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Colors)
	cc := cfg.Colors

	changed := make([]bool, len(diffs))
	for i, ld := range diffs {
		changed[i] = ld.IsDifferent
	}
	w := len(strconv.Itoa(len(diffs)))

	var b strings.Builder
	for h := range hunks.Hunks(changed, cfg.Context) {
		paint(&b, cc.HunkHeader, cc.Reset, fmt.Sprintf("@@ %d,%d @@", h.Start+1, h.End-h.Start))
		b.WriteByte('\n')
		for _, ld := range diffs[h.Start:h.End] {
			text, spans := line(source, ld)
			marker := byte(' ')
			if len(spans) > 0 {
				marker = markers[spans[0].kind]
				paint(&b, kindColor(cc, spans[0].kind), cc.Reset, string(marker))
			} else {
				b.WriteByte(marker)
			}
			paint(&b, cc.LineNumber, cc.Reset, fmt.Sprintf("%*d", w, ld.LineNumber+1))
			b.WriteString(" | ")
			pos := 0
			for _, s := range spans {
				b.WriteString(text[pos:s.start])
				paint(&b, kindColor(cc, s.kind), cc.Reset, text[s.start:s.end])
				pos = s.end
			}
			b.WriteString(text[pos:])
			b.WriteByte('\n')

			if cc.Reset == "" && marker == markers[livediff.Modification] {
				fmt.Fprintf(&b, " %*s | %s\n", w, "", underline(text, spans))
			}
		}
	}
	return b.String()
}

// span is a word diff in byte offsets relative to the start of its line.
type span struct {
	start, end int
	kind       livediff.Kind
}

// line returns the text of ld and the word diffs that are within the line. Word diffs that are
// out of bounds, empty, or overlap a previous word diff are dropped.
func line(source string, ld livediff.LineDiff) (string, []span) {
	loc, end := ld.Range.Location, ld.Range.End()
	if loc < 0 || end > len(source) || loc > end {
		return "", nil
	}
	var spans []span
	prev := loc
	for _, wd := range ld.WordDiffs {
		if wd.Range.Location < prev || wd.Range.Length <= 0 || wd.Range.End() > end || int(wd.Kind) >= len(markers) || wd.Kind < 0 {
			continue
		}
		spans = append(spans, span{wd.Range.Location - loc, wd.Range.End() - loc, wd.Kind})
		prev = wd.Range.End()
	}
	return source[loc:end], spans
}

func underline(text string, spans []span) string {
	var sb strings.Builder
	pos := 0
	for _, s := range spans {
		for _, r := range text[pos:s.start] {
			if r == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
			}
		}
		sb.WriteString(strings.Repeat("^", max(1, runewidth.StringWidth(text[s.start:s.end]))))
		pos = s.end
	}
	return sb.String()
}

func kindColor(cc config.ColorConfig, k livediff.Kind) string {
	switch k {
	case livediff.Addition:
		return cc.Addition
	case livediff.Deletion:
		return cc.Deletion
	case livediff.Modification:
		return cc.Modification
	default:
		panic("never reached")
	}
}

func paint(b *strings.Builder, code, reset, s string) {
	if code == "" {
		b.WriteString(s)
		return
	}
	b.WriteString(code)
	b.WriteString(s)
	b.WriteString(reset)
}

// columns returns the number of terminal columns r occupies when printed at column cur.
func columns(r rune, cur int) int {
	switch {
	case r == '\t':
		return tabWidth - cur%tabWidth
	case unicode.IsControl(r):
		return 0
	default:
		return runewidth.RuneWidth(r)
	}
}
