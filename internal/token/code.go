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

package token

import (
	"unicode/utf8"
)

// Operators ordered by length, longer operators must be tried first.
var (
	operators3 = []string{"===", "!==", "<<=", ">>=", "..."}
	operators2 = []string{
		"=>", "==", "!=", ">=", "<=",
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"&&", "||", "++", "--",
		":=", "->", "::", "<<", ">>",
	}
)

func tokenizeCode(line string, kw Keywords) []Token {
	toks := make([]Token, 0, len(line)/3+1)
	emit := func(start, end int, typ Type) {
		text := line[start:end]
		norm := text
		if typ == Whitespace {
			norm = " "
		}
		toks = append(toks, Token{
			Text:       text,
			Normalized: norm,
			Type:       typ,
			Start:      start,
			End:        end,
		})
	}

	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case isIdentStart(c):
			j := i + 1
			for j < len(line) && isIdentPart(line[j]) {
				j++
			}
			typ := Identifier
			if kw.Contains(line[i:j]) {
				typ = Keyword
			}
			emit(i, j, typ)
			i = j

		case isDigit(c):
			j := i + 1
			for j < len(line) && (isIdentPart(line[j]) || line[j] == '.') {
				j++
			}
			emit(i, j, Other)
			i = j

		case c == '"' || c == '\'' || c == '`':
			j := scanString(line, i)
			emit(i, j, String)
			i = j

		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			j := scanSpace(line, i+1)
			emit(i, j, Whitespace)
			i = j

		case isBracket(c):
			emit(i, i+1, Bracket)
			i++

		default:
			if n := matchOperator(line[i:]); n > 0 {
				emit(i, i+n, Operator)
				i += n
				continue
			}
			r, size := utf8.DecodeRuneInString(line[i:])
			if isSpace(r) {
				j := scanSpace(line, i+size)
				emit(i, j, Whitespace)
				i = j
				continue
			}
			emit(i, i+size, Other)
			i += size
		}
	}
	return toks
}

// scanSpace returns the end of the whitespace run that continues at line[i].
func scanSpace(line string, i int) int {
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !isSpace(r) {
			break
		}
		i += size
	}
	return i
}

// matchOperator returns the length of the longest operator at the start of s or 0.
func matchOperator(s string) int {
	for _, op := range operators3 {
		if len(s) >= 3 && s[:3] == op {
			return 3
		}
	}
	for _, op := range operators2 {
		if len(s) >= 2 && s[:2] == op {
			return 2
		}
	}
	switch s[0] {
	case '=', '+', '-', '*', '/', '%', '!', '~', '^', '.', ',', ':', ';':
		return 1
	}
	return 0
}

// scanString returns the end of the string literal starting at line[start]. The literal ends
// after the next unescaped quote character that matches the opening one, or at the end of the
// line if there is none.
func scanString(line string, start int) int {
	quote := line[start]
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(line)
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isBracket(c byte) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}
