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

package render

import (
	"strings"
	"unicode"

	"znkr.io/livediff"
	"znkr.io/livediff/internal/config"
)

// SideBySide renders two texts next to each other in two columns that fit into width terminal
// columns, as they would appear in a two-pane editor. Line i of left is shown next to line i of
// right. ldiffs are the diffs for left and rdiffs the diffs for right, typically computed with
//
//	ldiffs := livediff.Compute(left, right)
//	rdiffs := livediff.Compute(right, left, livediff.TargetView())
//
// Lines that are too long are truncated with an ellipsis.
//
// The following options are supported: [Colors]
func SideBySide(left, right string, ldiffs, rdiffs []livediff.LineDiff, width int, opts ...livediff.Option) string {
	cfg := config.FromOptions(opts, config.Colors)
	col := max(4, (width-3)/2)

	var b, row strings.Builder
	for i := range max(len(ldiffs), len(rdiffs)) {
		row.Reset()
		cell(&row, left, ldiffs, i, col, cfg.Colors)
		row.WriteString(" | ")
		cell(&row, right, rdiffs, i, col, cfg.Colors)
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// cell writes line i of text with a marker into exactly width columns.
func cell(b *strings.Builder, text string, diffs []livediff.LineDiff, i, width int, cc config.ColorConfig) {
	if i >= len(diffs) {
		b.WriteString(strings.Repeat(" ", width))
		return
	}
	s, spans := line(text, diffs[i])
	if len(spans) > 0 {
		paint(b, kindColor(cc, spans[0].kind), cc.Reset, string(markers[spans[0].kind]))
	} else {
		b.WriteByte(' ')
	}
	b.WriteByte(' ')
	used := fit(b, s, spans, width-2, cc)
	b.WriteString(strings.Repeat(" ", width-2-used))
}

// fit writes text with colored spans into at most width columns and returns the number of columns
// used. Text that doesn't fit is truncated with an ellipsis.
func fit(b *strings.Builder, text string, spans []span, width int, cc config.ColorConfig) int {
	total := 0
	for _, r := range text {
		total += columns(r, total)
	}
	limit := width
	if total > width {
		limit = width - 1
	}

	cur, si := 0, 0
	open := false // whether a color sequence needs to be reset
	for i, r := range text {
		for si < len(spans) && i >= spans[si].end {
			if open {
				b.WriteString(cc.Reset)
				open = false
			}
			si++
		}
		if si < len(spans) && i >= spans[si].start && !open {
			if c := kindColor(cc, spans[si].kind); c != "" {
				b.WriteString(c)
				open = true
			}
		}
		n := columns(r, cur)
		if cur+n > limit {
			break
		}
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", n))
		case !unicode.IsControl(r):
			b.WriteRune(r)
		}
		cur += n
	}
	if open {
		b.WriteString(cc.Reset)
	}
	if total > width {
		b.WriteString("…")
		cur++
	}
	return cur
}
