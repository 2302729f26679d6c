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

// Package color provides configuration for coloring rendered diffs using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents modified words in bold yellow:
//
//	Modifications(1, 33)
//
// This is equivalent to the following raw ANSI sequence: \033[1;33m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"znkr.io/livediff/internal/config"
)

// A Option makes it possible to configure custom colors in render.Colors.
type Option func(*config.ColorConfig)

// Reset is the sequence that ends every colored part of the output.
const Reset = "\033[0m"

// Default returns the default colors.
func Default() config.ColorConfig {
	return config.ColorConfig{
		LineNumber:   format([]int{2}),
		HunkHeader:   format([]int{36}),
		Addition:     format([]int{32}),
		Deletion:     format([]int{31}),
		Modification: format([]int{1, 33}),
		Reset:        Reset,
	}
}

// LineNumbers colors the line number gutter.
func LineNumbers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.LineNumber = code
	}
}

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the annotated output.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Additions colors added lines.
func Additions(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Addition = code
	}
}

// Deletions colors deleted lines.
func Deletions(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Deletion = code
	}
}

// Modifications colors modified words.
func Modifications(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Modification = code
	}
}

// format returns the escape sequence for params. No params disable coloring.
func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
