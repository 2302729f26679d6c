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

package classify

import (
	"testing"

	"znkr.io/livediff/internal/token"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want token.Mode
	}{
		{"empty", "", token.Prose},
		{"prose", "The quick brown fox\njumps over the lazy dog.", token.Prose},
		{"let", "let total = 0;", token.Code},
		{"const-without-assignment", "const is a word\n", token.Prose},
		{"var-typed", "var x int = 5", token.Code},
		{"import", "some text\nimport foo from 'bar'\n", token.Code},
		{"export", "export default App", token.Code},
		{"function", "function add(a, b) {\n  return a + b\n}", token.Code},
		{"go-func", "package main\n\nfunc main() {}", token.Code},
		{"python-def", "def main():\n    pass", token.Code},
		{"class", "  class Foo {}", token.Code},
		{"control", "if (x) {", token.Code},
		{"control-space", "while (true)", token.Code},
		{"control-prose", "if you like it, say so", token.Prose},
		{"keyword-mid-line", "the import of goods", token.Prose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		hint string
		want string
	}{
		{"lexer-name", "", "go", "Go"},
		{"filename", "", "path/to/main.py", "Python"},
		{"filename-js", "", "app.js", "JavaScript"},
		{"no-hint-no-text", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Language(tt.text, tt.hint); got != tt.want {
				t.Errorf("Language(%q, %q) = %q, want %q", tt.text, tt.hint, got, tt.want)
			}
		})
	}
}
