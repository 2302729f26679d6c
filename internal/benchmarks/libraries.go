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

// Package benchmarks compares livediff with line based diff libraries.
//
// Line based diffs and livediff answer different questions, the only common measure is the number
// of source lines that are reported as changed. livediff pairs moved and edited lines with their
// counterparts and therefore usually reports fewer changed lines.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/livediff"
)

type Impl struct {
	Name string
	// Changed returns the number of lines in x that are reported as different from y.
	Changed func(x, y string) int
}

var Impls = []Impl{
	{
		Name: "livediff",
		Changed: func(x, y string) int {
			return countDifferent(livediff.Compute(x, y))
		},
	},
	{
		Name: "livediff-code",
		Changed: func(x, y string) int {
			return countDifferent(livediff.Compute(x, y, livediff.ForceMode(livediff.Code)))
		},
	},
	{
		Name: "livediff-prose",
		Changed: func(x, y string) int {
			return countDifferent(livediff.Compute(x, y, livediff.ForceMode(livediff.Prose)))
		},
	},
	{
		Name: "diffmatchpatch",
		Changed: func(x, y string) int {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)
			n := 0
			for _, diff := range diffs {
				if diff.Type == diffmatchpatch.DiffDelete {
					n += countLines(diff.Text)
				}
			}
			return n
		},
	},
	{
		Name: "go-internal",
		Changed: func(x, y string) int {
			return countDeletes(string(gointernal.Diff("x", []byte(x), "y", []byte(y))))
		},
	},
	{
		Name: "godebug",
		Changed: func(x, y string) int {
			return countDeletes(godebug.Diff(x, y))
		},
	},
	{
		Name: "mb0",
		Changed: func(x, y string) int {
			d := mb0lines{
				x: bytes.SplitAfter([]byte(x), []byte("\n")),
				y: bytes.SplitAfter([]byte(y), []byte("\n")),
			}
			n := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				n += ch.Del
			}
			return n
		},
	},
	{
		Name: "udiff",
		Changed: func(x, y string) int {
			return countDeletes(udiff.Unified("x", "y", x, y))
		},
	},
}

func countDifferent(diffs []livediff.LineDiff) int {
	n := 0
	for _, ld := range diffs {
		if ld.IsDifferent {
			n++
		}
	}
	return n
}

// countDeletes counts the deleted lines in a unified diff.
func countDeletes(unified string) int {
	n := 0
	for line := range strings.Lines(unified) {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			n++
		}
	}
	return n
}

func countLines(s string) int {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	return n
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
