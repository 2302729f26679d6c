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

package git

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDiffTree(t *testing.T) {
	out := ":100644 100644 1111111111111111111111111111111111111111 2222222222222222222222222222222222222222 M\tdir/a file.go\n" +
		":000000 100644 0000000000000000000000000000000000000000 3333333333333333333333333333333333333333 A\tb.txt\n"
	want := []FileDiff{
		{Name: "dir/a file.go", OldID: "1111111111111111111111111111111111111111", NewID: "2222222222222222222222222222222222222222"},
		{Name: "b.txt", OldID: zeroID, NewID: "3333333333333333333333333333333333333333"},
	}
	got, err := parseDiffTree(out)
	if err != nil {
		t.Fatalf("parseDiffTree(...) failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseDiffTree(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestParseDiffTreeErrors(t *testing.T) {
	for _, out := range []string{
		"commit 1234\n",
		":100644 100644 1111 M\tfile\n",
		":100644 100644 1111 2222 M file\n",
	} {
		if _, err := parseDiffTree(out); err == nil {
			t.Errorf("parseDiffTree(%q) succeeded, want error", out)
		}
	}
}
