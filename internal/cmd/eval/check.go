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

package main

import (
	"fmt"
	"strings"

	"znkr.io/livediff"
	"znkr.io/livediff/internal/offsets"
)

var units = []livediff.Unit{livediff.Bytes, livediff.Runes, livediff.UTF16}

// check compares old and new in both directions and in all units and returns a description of
// every violated invariant.
func check(old, new string) []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, u := range units {
		for _, dir := range []struct {
			name string
			x, y string
			opts []livediff.Option
		}{
			{"old->new", old, new, []livediff.Option{livediff.Units(u)}},
			{"new->old", new, old, []livediff.Option{livediff.Units(u), livediff.TargetView()}},
		} {
			prefix := fmt.Sprintf("%s/%v", dir.name, u)
			for _, p := range checkDiffs(dir.x, countLines(dir.y), u, livediff.Compute(dir.x, dir.y, dir.opts...)) {
				report("%s: %s", prefix, p)
			}
		}
		for _, ld := range livediff.Compute(old, old, livediff.Units(u)) {
			if ld.IsDifferent {
				report("self/%v: line %d is different", u, ld.LineNumber)
			}
		}
	}
	return problems
}

func checkDiffs(x string, targetLines int, u livediff.Unit, diffs []livediff.LineDiff) []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if got, want := len(diffs), countLines(x); got != want {
		report("got %d lines, want %d", got, want)
	}
	n := offsets.NewIndex(x, u).Len()
	claimed := make(map[int]bool)
	prevEnd := 0
	for i, ld := range diffs {
		if ld.LineNumber != i {
			report("line %d: line number is %d", i, ld.LineNumber)
		}
		if ld.Range.Location < prevEnd || ld.Range.Length < 0 || ld.Range.End() > n {
			report("line %d: range %v out of bounds", i, ld.Range)
		}
		prevEnd = ld.Range.End()
		if ld.IsDifferent != (len(ld.WordDiffs) > 0) {
			report("line %d: is different is %v with %d word diffs", i, ld.IsDifferent, len(ld.WordDiffs))
		}
		if t := ld.TargetLine; t != livediff.Unmatched {
			if t < 0 || t >= targetLines || claimed[t] {
				report("line %d: invalid target line %d", i, t)
			}
			claimed[t] = true
		}
		wdEnd := ld.Range.Location
		for _, wd := range ld.WordDiffs {
			if wd.Range.Location < wdEnd || wd.Range.Length <= 0 || wd.Range.End() > ld.Range.End() {
				report("line %d: word diff %v out of bounds", i, wd.Range)
			}
			wdEnd = wd.Range.End()
		}
	}
	return problems
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
