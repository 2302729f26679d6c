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

package pane

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"znkr.io/livediff"
)

type call struct {
	Side  Side
	Text  string
	Diffs []livediff.LineDiff
}

type recorder struct {
	calls []call
}

func (r *recorder) Highlight(side Side, text string, diffs []livediff.LineDiff) {
	r.calls = append(r.calls, call{side, text, diffs})
}

func TestSetText(t *testing.T) {
	rec := &recorder{}
	p := NewPair(rec)
	p.SetText(Left, "same\nold line")
	p.SetText(Right, "same\nnew line\nextra")

	want := []call{
		{Left, "same\nold line", livediff.Compute("same\nold line", "")},
		{Right, "", livediff.Compute("", "same\nold line", livediff.TargetView())},
		{Right, "same\nnew line\nextra", livediff.Compute("same\nnew line\nextra", "same\nold line", livediff.TargetView())},
		{Left, "same\nold line", livediff.Compute("same\nold line", "same\nnew line\nextra")},
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("Highlight calls are different [-want,+got]:\n%s", diff)
	}

	// The last painting of the right pane reports the extra line as an addition.
	last := rec.calls[2].Diffs[2]
	if len(last.WordDiffs) != 1 || last.WordDiffs[0].Kind != livediff.Addition {
		t.Errorf("right pane line 2 = %+v, want a single addition", last)
	}
}

func TestRefresh(t *testing.T) {
	rec := &recorder{}
	p := NewPair(rec, livediff.Units(livediff.UTF16))
	p.SetText(Left, "😀 quick fox")
	p.SetText(Right, "😀 slow fox")
	rec.calls = nil

	p.Refresh()
	if len(rec.calls) != 2 || rec.calls[0].Side != Left || rec.calls[1].Side != Right {
		t.Fatalf("Refresh() painted %+v, want left then right", rec.calls)
	}
	want := livediff.Range{Location: 3, Length: 5}
	if got := rec.calls[0].Diffs[0].WordDiffs[0].Range; got != want {
		t.Errorf("left pane word diff = %v, want %v", got, want)
	}
	if got, want := p.Text(Right), "😀 slow fox"; got != want {
		t.Errorf("Text(Right) = %q, want %q", got, want)
	}
}

func TestStaleResultsAreDropped(t *testing.T) {
	rec := &recorder{}
	p := NewPair(rec)
	p.mu.Lock()
	p.text = [2]string{"a", "b"}
	p.mu.Unlock()

	older := p.request(Left)
	newer := p.request(Left)
	p.complete(newer)
	p.complete(older)
	if len(rec.calls) != 1 {
		t.Fatalf("got %d Highlight calls, want 1", len(rec.calls))
	}

	// Without a newer request, the result is painted.
	rec.calls = nil
	r := p.request(Right)
	p.complete(r)
	if len(rec.calls) != 1 || rec.calls[0].Side != Right {
		t.Errorf("Highlight calls = %+v, want one for the right pane", rec.calls)
	}
}

func TestSideOther(t *testing.T) {
	if Left.Other() != Right || Right.Other() != Left {
		t.Errorf("Other() doesn't swap sides")
	}
}

func TestClip(t *testing.T) {
	r := func(loc, n int) livediff.Range { return livediff.Range{Location: loc, Length: n} }
	diffs := []livediff.LineDiff{
		{
			Range: r(0, 5),
			WordDiffs: []livediff.WordDiff{
				{Range: r(0, 2), Kind: livediff.Modification},
				{Range: r(4, 3), Kind: livediff.Modification},
			},
			IsDifferent: true,
		},
		{
			Range:       r(6, 4),
			WordDiffs:   []livediff.WordDiff{{Range: r(6, 4), Kind: livediff.Deletion}},
			IsDifferent: true,
			LineNumber:  1,
		},
		{
			Range:       r(11, 4),
			WordDiffs:   []livediff.WordDiff{{Range: r(11, 4), Kind: livediff.Deletion}},
			IsDifferent: true,
			LineNumber:  2,
		},
	}
	want := []livediff.LineDiff{
		{
			Range:       r(0, 5),
			WordDiffs:   []livediff.WordDiff{{Range: r(0, 2), Kind: livediff.Modification}},
			IsDifferent: true,
		},
		{
			Range:       r(6, 4),
			WordDiffs:   []livediff.WordDiff{{Range: r(6, 4), Kind: livediff.Deletion}},
			IsDifferent: true,
			LineNumber:  1,
		},
	}
	got := Clip(diffs, 12)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Clip(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestDebouncer(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 10)
	d := NewDebouncer(20 * time.Millisecond)
	for range 5 {
		d.Trigger(func() {
			calls.Add(1)
			done <- struct{}{}
		})
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("debounced function wasn't called")
	}
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("debounced function was called %d times, want 1", got)
	}
	if d.Stop() {
		t.Errorf("Stop() = true after the call happened, want false")
	}
}

func TestDebouncerStop(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(time.Hour)
	if d.Stop() {
		t.Errorf("Stop() = true without a trigger, want false")
	}
	d.Trigger(func() { calls.Add(1) })
	if !d.Stop() {
		t.Errorf("Stop() = false with a pending call, want true")
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("stopped function was called %d times", got)
	}
}
