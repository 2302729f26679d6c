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

// Package offsets converts byte offsets of a string into other units.
package offsets

import "unicode/utf8"

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Unit

// Unit is the unit in which offsets into a text are measured.
type Unit int

const (
	Bytes Unit = iota // Bytes of the UTF-8 encoded text, the unit of Go string indexing
	Runes             // Unicode code points
	UTF16             // UTF-16 code units, the unit of most editor text buffers
)

// Index converts byte offsets of a single text into offsets in a different unit.
type Index struct {
	unit  Unit
	text  string
	units []int32 // units[b] is the number of units in text[:b], only valid at rune boundaries
}

// NewIndex returns an index for text. For [Bytes], no index is built and conversions are free.
func NewIndex(text string, unit Unit) *Index {
	idx := &Index{unit: unit, text: text}
	if unit == Bytes {
		return idx
	}
	idx.units = make([]int32, len(text)+1)
	n := int32(0)
	for b := 0; b < len(text); {
		r, size := utf8.DecodeRuneInString(text[b:])
		idx.units[b] = n
		n += width(r, size, unit)
		b += size
	}
	idx.units[len(text)] = n
	return idx
}

func width(r rune, size int, unit Unit) int32 {
	if unit == UTF16 && size == 4 && r != utf8.RuneError {
		return 2 // surrogate pair
	}
	return 1
}

// Len returns the length of the text in the index's unit.
func (idx *Index) Len() int { return idx.Offset(len(idx.text)) }

// Offset converts the byte offset b into the index's unit. b must be at a rune boundary of the
// text or equal to its length.
func (idx *Index) Offset(b int) int {
	if idx.unit == Bytes {
		return b
	}
	return int(idx.units[b])
}
