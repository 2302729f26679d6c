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

package hunks

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHunks(t *testing.T) {
	const (
		o = false
		X = true
	)
	tests := []struct {
		name    string
		changed []bool
		context int
		want    []Hunk
	}{
		{
			name: "empty",
		},
		{
			name:    "no-changes",
			changed: []bool{o, o, o},
			context: 3,
		},
		{
			name:    "all-changed",
			changed: []bool{X, X, X},
			context: 3,
			want:    []Hunk{{0, 3, 3}},
		},
		{
			name:    "context-clipped",
			changed: []bool{o, X, o},
			context: 3,
			want:    []Hunk{{0, 3, 1}},
		},
		{
			name:    "separate",
			changed: []bool{o, X, o, o, o, X, o},
			context: 1,
			want:    []Hunk{{0, 3, 1}, {4, 7, 1}},
		},
		{
			name:    "touching-contexts-merge",
			changed: []bool{o, X, o, o, X, o},
			context: 1,
			want:    []Hunk{{0, 6, 2}},
		},
		{
			name:    "zero-context",
			changed: []bool{X, X, o, X},
			context: 0,
			want:    []Hunk{{0, 2, 2}, {3, 4, 1}},
		},
		{
			name:    "negative-context",
			changed: []bool{o, X, o},
			context: -1,
			want:    []Hunk{{1, 2, 1}},
		},
		{
			name:    "trailing-unchanged",
			changed: []bool{X, o, o, o, o, o, o, o},
			context: 2,
			want:    []Hunk{{0, 3, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Hunks(tt.changed, tt.context))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestHunksStop(t *testing.T) {
	changed := []bool{true, false, false, false, true, false, false, false, true}
	n := 0
	for range Hunks(changed, 0) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated over %d hunks, want 2", n)
	}
}
