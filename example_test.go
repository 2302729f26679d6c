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

package livediff_test

import (
	"fmt"

	"znkr.io/livediff"
)

// Compare two versions of a function and print every modified token.
func ExampleCompute() {
	x := `func area(w, h int) int {
	return w * h
}`
	y := `func area(width, height int) int {
	return width * height
}`

	for _, ld := range livediff.Compute(x, y) {
		for _, wd := range ld.WordDiffs {
			fmt.Printf("line %d: %v %q\n", ld.LineNumber, wd.Kind, x[wd.Range.Location:wd.Range.End()])
		}
	}
	// Output:
	// line 0: Modification "w"
	// line 0: Modification "h"
	// line 1: Modification "w"
	// line 1: Modification "h"
}

// Highlight both panes of a two-pane editor. Each pane is compared with the other one, lines that
// only exist in the right pane are additions.
func ExampleTargetView() {
	left := "first\nsecond"
	right := "first\nsecond\nthird"

	show := func(name, text string, diffs []livediff.LineDiff) {
		for _, ld := range diffs {
			for _, wd := range ld.WordDiffs {
				fmt.Printf("%s line %d: %v %q\n", name, ld.LineNumber, wd.Kind, text[wd.Range.Location:wd.Range.End()])
			}
		}
	}
	show("left", left, livediff.Compute(left, right))
	show("right", right, livediff.Compute(right, left, livediff.TargetView()))
	// Output:
	// right line 2: Addition "third"
}

// Ranges can be reported in UTF-16 code units, e.g., for editors built on JavaScript.
func ExampleUnits() {
	diffs := livediff.Compute("😀 quick fox", "😀 slow fox", livediff.Units(livediff.UTF16))
	fmt.Println(diffs[0].WordDiffs[0].Range)
	// Output:
	// {3 5}
}

func ExampleClassify() {
	fmt.Println(livediff.Classify("import os\nprint(os.getcwd())"))
	fmt.Println(livediff.Classify("Meeting notes\nWe agreed to ship on Friday."))
	// Output:
	// Code
	// Prose
}
