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
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func tokenizeProse(line string) []Token {
	lower := cases.Lower(language.Und)
	toks := make([]Token, 0, len(line)/4+1)
	seg := words.FromString(line)
	for seg.Next() {
		start, end := seg.Start(), seg.End()
		typ := proseType(seg.Value())

		if n := len(toks); n > 0 {
			last := &toks[n-1]
			switch {
			case typ == Whitespace && last.Type == Whitespace:
				// Unicode segmentation splits some whitespace sequences, a run is a single token.
				last.End = end
				last.Text = line[last.Start:end]
				continue
			case typ == Word && n > 1 && last.Type == Punctuation && isJoiner(last.Text) && toks[n-2].Type == Word:
				// Join hyphenated words and words with an internal apostrophe.
				toks = toks[:n-1]
				w := &toks[n-2]
				w.End = end
				w.Text = line[w.Start:end]
				w.Normalized = lower.String(w.Text)
				continue
			}
		}

		tok := Token{
			Text:  line[start:end],
			Type:  typ,
			Start: start,
			End:   end,
		}
		switch typ {
		case Word:
			tok.Normalized = lower.String(tok.Text)
		case Whitespace:
			tok.Normalized = " "
		default:
			tok.Normalized = tok.Text
		}
		toks = append(toks, tok)
	}
	return toks
}

func proseType(seg string) Type {
	r, size := utf8.DecodeRuneInString(seg)
	switch {
	case r == utf8.RuneError && size <= 1:
		return Other
	case isSpace(r):
		return Whitespace
	case unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsMark(r):
		return Word
	case unicode.IsPunct(r):
		return Punctuation
	default:
		return Other
	}
}

func isJoiner(s string) bool {
	switch s {
	case "-", "'", "’", "‐", "‑":
		return true
	}
	return false
}
