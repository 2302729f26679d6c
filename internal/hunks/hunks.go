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

// Package hunks groups changed lines into hunks surrounded by unchanged context lines.
package hunks

import "iter"

// Hunk describes a range of consecutive lines that contains at least one changed line.
type Hunk struct {
	Start, End int // Start and end of the hunk, End is exclusive
	Changes    int // Number of changed lines in this hunk
}

// Hunks returns the hunks of a sequence of lines where changed[i] reports whether line i is
// changed. Every hunk starts and ends with up to context unchanged lines. Hunks that would overlap
// or touch are merged.
func Hunks(changed []bool, context int) iter.Seq[Hunk] {
	context = max(0, context)
	return func(yield func(Hunk) bool) {
		n := len(changed)
		start := -1 // start of the current hunk
		last := -1  // last changed line of the current hunk
		d := 0      // number of changes in the current hunk
		for i := range n {
			if !changed[i] {
				// Active in-progress hunk and we've seen enough unchanged lines to separate it from
				// the next hunk, finish the hunk.
				if start >= 0 && i-last > 2*context {
					if !yield(Hunk{start, last + 1 + context, d}) {
						return
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start, d = max(0, i-context), 0
			}
			last = i
			d++
		}
		if start >= 0 {
			yield(Hunk{start, min(n, last+1+context), d})
		}
	}
}
