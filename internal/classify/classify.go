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

// Package classify decides whether a text is source code or prose and, for code, which language
// it's written in.
package classify

import (
	"path/filepath"
	"regexp"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"znkr.io/livediff/internal/token"
)

// Line start patterns that indicate source code. A single matching line classifies the whole text
// as code.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*(import|export)\b`),
	regexp.MustCompile(`(?m)^\s*(async\s+)?(function|func|def|fn)\b`),
	regexp.MustCompile(`(?m)^\s*class\s+[A-Za-z_]`),
	regexp.MustCompile(`(?m)^\s*(const|let|var)\s+[A-Za-z_$][\w$]*[^=\n]*=`),
	regexp.MustCompile(`(?m)^\s*(if|for|while|switch|catch)\s*\(`),
}

// Detect returns [token.Code] if any line of text starts like source code and [token.Prose]
// otherwise.
func Detect(text string) token.Mode {
	for _, re := range codePatterns {
		if re.MatchString(text) {
			return token.Code
		}
	}
	return token.Prose
}

// Language returns the name of the programming language of text.
//
// If hint is not empty, it's interpreted as a language name (e.g. "go", "JavaScript") or a
// filename (e.g. "main.go"). If hint is empty or unknown, the language is guessed from text. The
// empty string is returned if the language can't be determined.
func Language(text, hint string) string {
	if hint != "" {
		if l := lexers.Get(hint); l != nil && l != lexers.Fallback {
			return name(l)
		}
		if l := lexers.Match(filepath.Base(hint)); l != nil {
			return name(l)
		}
	}
	if text == "" {
		return ""
	}
	if l := lexers.Analyse(text); l != nil {
		return name(l)
	}
	return ""
}

func name(l chroma.Lexer) string {
	cfg := l.Config()
	if cfg == nil {
		return ""
	}
	return cfg.Name
}
