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

// Package pane keeps the highlighting of a two-pane editor up to date.
//
// A [Pair] holds the text of both panes. Whenever the text of one pane changes, the pane is
// compared with the other pane and repainted, and then the other pane is repainted explicitly,
// because its differences depend on the text that just changed.
package pane

import (
	"slices"
	"sync"

	"znkr.io/livediff"
)

// Side identifies one of the two panes.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Side
type Side int

const (
	Left  Side = iota // The source pane, unmatched lines are deletions
	Right             // The target pane, unmatched lines are additions
)

// Other returns the opposite side.
func (s Side) Other() Side { return 1 - s }

// Highlighter paints the differences of one pane.
//
// Highlight is called synchronously from [Pair.SetText] and [Pair.Refresh]. It must not call
// SetText or Refresh itself.
type Highlighter interface {
	Highlight(side Side, text string, diffs []livediff.LineDiff)
}

// Pair connects two panes.
//
// All methods are safe for concurrent use. If the text of a side changes while a comparison for
// that side is still running, the outdated result is dropped instead of painted.
type Pair struct {
	h    Highlighter
	opts []livediff.Option

	mu   sync.Mutex
	text [2]string
	gen  [2]uint64 // number of requested comparisons per side

	paint [2]sync.Mutex // serializes painting per side
}

// NewPair creates a pair of empty panes. opts are passed to [livediff.Compute] for both sides.
func NewPair(h Highlighter, opts ...livediff.Option) *Pair {
	return &Pair{h: h, opts: slices.Clone(opts)}
}

// Text returns the current text of side.
func (p *Pair) Text(side Side) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text[side]
}

// SetText replaces the text of side and repaints side first, then the other side.
func (p *Pair) SetText(side Side, text string) {
	p.mu.Lock()
	p.text[side] = text
	p.mu.Unlock()

	p.complete(p.request(side))
	p.complete(p.request(side.Other()))
}

// Refresh repaints both sides.
func (p *Pair) Refresh() {
	p.complete(p.request(Left))
	p.complete(p.request(Right))
}

type request struct {
	side        Side
	gen         uint64
	text, other string
}

func (p *Pair) request(side Side) request {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen[side]++
	return request{side, p.gen[side], p.text[side], p.text[side.Other()]}
}

func (p *Pair) complete(r request) {
	opts := p.opts
	if r.side == Right {
		opts = append(slices.Clip(opts), livediff.TargetView())
	}
	diffs := livediff.Compute(r.text, r.other, opts...)

	p.paint[r.side].Lock()
	defer p.paint[r.side].Unlock()
	p.mu.Lock()
	stale := r.gen != p.gen[r.side]
	p.mu.Unlock()
	if stale {
		return
	}
	p.h.Highlight(r.side, r.text, diffs)
}
