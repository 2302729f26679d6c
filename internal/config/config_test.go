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

package config_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/livediff"
	"znkr.io/livediff/internal/config"
	"znkr.io/livediff/render"
	"znkr.io/livediff/render/color"
)

const all = config.Engine | config.Context | config.Colors

func TestFromOptions(t *testing.T) {
	with := func(f func(cfg *config.Config)) config.Config {
		cfg := config.Default
		f(&cfg)
		return cfg
	}

	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "nil-option",
			opts: []config.Option{nil},
			want: config.Default,
		},
		{
			name: "thresholds",
			opts: []config.Option{
				livediff.CodeThreshold(0.8),
				livediff.ProseThreshold(0.1),
			},
			want: with(func(cfg *config.Config) {
				cfg.CodeThreshold = 0.8
				cfg.ProseThreshold = 0.1
			}),
		},
		{
			name: "thresholds-clamped",
			opts: []config.Option{
				livediff.CodeThreshold(1.5),
				livediff.ProseThreshold(math.NaN()),
			},
			want: with(func(cfg *config.Config) {
				cfg.CodeThreshold = 1
				cfg.ProseThreshold = 0
			}),
		},
		{
			name: "force-mode",
			opts: []config.Option{
				livediff.ForceMode(livediff.Code),
			},
			want: with(func(cfg *config.Config) {
				cfg.ForceMode = true
				cfg.Mode = livediff.Code
			}),
		},
		{
			name: "context-override",
			opts: []config.Option{
				render.Context(5),
				livediff.MergeAdjacent(),
				render.Context(-1),
			},
			want: with(func(cfg *config.Config) {
				cfg.Context = 0
				cfg.MergeAdjacent = true
			}),
		},
		{
			name: "everything",
			opts: []config.Option{
				livediff.CodeThreshold(0.6),
				livediff.ProseThreshold(0.4),
				livediff.Units(livediff.UTF16),
				livediff.Language("go"),
				livediff.ForceMode(livediff.Prose),
				livediff.MergeAdjacent(),
				livediff.TargetView(),
				render.Context(1),
				render.Colors(color.Modifications(4)),
			},
			want: config.Config{
				CodeThreshold:  0.6,
				ProseThreshold: 0.4,
				Unit:           livediff.UTF16,
				Language:       "go",
				ForceMode:      true,
				Mode:           livediff.Prose,
				MergeAdjacent:  true,
				TargetView:     true,
				Context:        1,
				Colors: func() config.ColorConfig {
					cc := color.Default()
					cc.Modification = "\033[4m"
					return cc
				}(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, all)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsDisallowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("FromOptions(...) didn't panic")
		}
		if got, want := r, "Option render.Colors not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{render.Colors()}, config.Engine)
}
