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

// Package token splits single lines of text into typed tokens.
//
// There are two tokenizers. The code tokenizer recognizes identifiers, keywords, operators,
// brackets and string literals. The prose tokenizer segments words according to Unicode text
// segmentation rules (UAX #29) and recognizes punctuation and whitespace. Both produce tokens that
// cover the input without gaps and in order.
package token

import "unicode"

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Type,Mode

// Type is the lexical type of a token.
type Type int

const (
	Other Type = iota
	Word
	Identifier
	Keyword
	Operator
	Bracket
	String
	Punctuation
	Whitespace
)

// Mode selects the tokenization rules and similarity weighting for a document.
type Mode int

const (
	Prose Mode = iota
	Code
)

// Token is a lexical unit of a single line.
//
// Start and End are byte offsets relative to the start of the line, Text is line[Start:End].
type Token struct {
	Text       string
	Normalized string
	Type       Type
	Start, End int
}

// Tokenize splits line into tokens using the rules for mode. Keywords are only used in Code mode,
// a nil set uses [Default].
//
// The returned tokens cover line completely: the first token starts at 0, every token starts where
// the previous one ended and the last token ends at len(line).
func Tokenize(line string, mode Mode, kw Keywords) []Token {
	if len(line) == 0 {
		return nil
	}
	if mode == Code {
		if kw == nil {
			kw = Default
		}
		return tokenizeCode(line, kw)
	}
	return tokenizeProse(line)
}

// IsSpace reports whether all of s is whitespace. The empty string is considered whitespace.
func IsSpace(s string) bool {
	for _, r := range s {
		if !isSpace(r) {
			return false
		}
	}
	return true
}

// IsSpaceRune reports whether r is whitespace.
func IsSpaceRune(r rune) bool { return isSpace(r) }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f', '\n', 0x85, 0xA0:
		return true
	}
	return r > 0xff && unicode.IsSpace(r)
}
