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

// Package lines splits documents into lines with absolute byte ranges.
package lines

import (
	"strings"

	"znkr.io/livediff/internal/token"
)

// Line is a single line of a document without its newline character.
//
// Start and End are byte offsets into the document, Text is document[Start:End].
type Line struct {
	Text       string
	Start, End int
}

// Blank reports whether the line is empty after trimming whitespace.
func (l Line) Blank() bool { return token.IsSpace(l.Text) }

// Split splits text on '\n' and returns the lines without the newline character.
//
// The lines reconstruct text when joined with "\n": an empty text has no lines and a text ending
// with a newline has an empty last line. Line i+1 starts one byte after line i ends.
func Split(text string) []Line {
	if len(text) == 0 {
		return nil
	}
	n := strings.Count(text, "\n") + 1
	a := make([]Line, n)
	pos := 0
	for i := range n - 1 {
		m := strings.IndexByte(text[pos:], '\n')
		a[i] = Line{text[pos : pos+m], pos, pos + m}
		pos += m + 1
	}
	a[n-1] = Line{text[pos:], pos, len(text)}
	return a
}

// Normalize returns the canonical form of a line that's used to find lines that survived
// verbatim: surrounding whitespace is trimmed and internal whitespace runs are collapsed to a
// single space. In code mode, trailing line comments are removed before that, unless the line
// consists of nothing but a comment.
func Normalize(line string, mode token.Mode) string {
	s := line
	if mode == token.Code {
		if c := stripComment(line); !token.IsSpace(c) {
			s = c
		}
	}
	return collapseSpace(s)
}

func collapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, f := range strings.FieldsFunc(s, token.IsSpaceRune) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
	}
	return sb.String()
}

// stripComment removes a trailing line comment from line. Comments start with "//" or with a "#"
// that follows whitespace. Comment markers inside string literals are ignored.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch {
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		case c == '#' && i > 0 && (line[i-1] == ' ' || line[i-1] == '\t'):
			return line[:i]
		}
	}
	return line
}
