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
	"sync"
	"time"

	"znkr.io/livediff"
)

// Clip removes everything from diffs that doesn't fit into a text of length n. Lines that end
// after n are removed, word diffs outside of their line are removed. n must be in the same unit
// as the ranges.
//
// Use Clip before painting diffs that might have been computed for an older version of a text.
func Clip(diffs []livediff.LineDiff, n int) []livediff.LineDiff {
	out := make([]livediff.LineDiff, 0, len(diffs))
	for _, ld := range diffs {
		if ld.Range.Location < 0 || ld.Range.Length < 0 || ld.Range.End() > n {
			continue
		}
		var wds []livediff.WordDiff
		for _, wd := range ld.WordDiffs {
			if wd.Range.Location < ld.Range.Location || wd.Range.Length < 0 || wd.Range.End() > ld.Range.End() {
				continue
			}
			wds = append(wds, wd)
		}
		ld.WordDiffs = wds
		ld.IsDifferent = len(wds) > 0
		out = append(out, ld)
	}
	return out
}

// Debouncer coalesces rapid triggers, e.g., keystrokes, into a single call.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that waits for delay after the last trigger.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules f to be called after the delay. Triggering again before the delay passed
// cancels the pending call and restarts the delay.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, f)
}

// Stop cancels a pending call. It reports whether a call was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	return d.timer.Stop()
}
