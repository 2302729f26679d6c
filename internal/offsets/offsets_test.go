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

package offsets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndex(t *testing.T) {
	text := "aä€😀\xffz" // 1, 2, 3, 4 and 1 (invalid) bytes, then 1
	boundaries := []int{0, 1, 3, 6, 10, 11, 12}
	tests := []struct {
		unit Unit
		want []int
	}{
		{Bytes, []int{0, 1, 3, 6, 10, 11, 12}},
		{Runes, []int{0, 1, 2, 3, 4, 5, 6}},
		{UTF16, []int{0, 1, 2, 3, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			idx := NewIndex(text, tt.unit)
			got := make([]int, len(boundaries))
			for i, b := range boundaries {
				got[i] = idx.Offset(b)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Offset(...) results are different [-want,+got]:\n%s", diff)
			}
			if idx.Len() != tt.want[len(tt.want)-1] {
				t.Errorf("Len() = %d, want %d", idx.Len(), tt.want[len(tt.want)-1])
			}
		})
	}
}

func TestIndexEmpty(t *testing.T) {
	for _, unit := range []Unit{Bytes, Runes, UTF16} {
		if got := NewIndex("", unit).Len(); got != 0 {
			t.Errorf("NewIndex(\"\", %v).Len() = %d, want 0", unit, got)
		}
	}
}

func TestIndexBytesAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(10, func() {
		idx := NewIndex("some text", Bytes)
		_ = idx.Offset(4)
	})
	if allocs > 1 {
		t.Errorf("NewIndex(..., Bytes) allocated %v times, want <= 1", allocs)
	}
}
