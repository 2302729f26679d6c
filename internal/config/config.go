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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// livediff.Option.
package config

import (
	"math"

	"znkr.io/livediff/internal/offsets"
	"znkr.io/livediff/internal/similarity"
	"znkr.io/livediff/internal/token"
)

// Config collects all configurable parameters for comparison and rendering functions in this
// module.
type Config struct {
	// Minimum similarity for a fuzzy line match in code and prose respectively.
	CodeThreshold  float64
	ProseThreshold float64

	// Unit of all ranges reported.
	Unit offsets.Unit

	// Language name or filename used to select keywords. If empty, the language is detected.
	Language string

	// If set, Mode is used instead of classifying the source text.
	ForceMode bool
	Mode      token.Mode

	// If set, adjacent modifications separated only by whitespace are merged.
	MergeAdjacent bool

	// If set, unmatched lines are reported as additions instead of deletions.
	TargetView bool

	// Context is the number of unchanged lines to show around changed lines when rendering.
	Context int

	// Colors for rendering.
	Colors ColorConfig
}

// ColorConfig holds ANSI escape sequences used to render diffs in terminals. An empty sequence
// disables coloring for the respective element.
type ColorConfig struct {
	LineNumber   string
	HunkHeader   string
	Addition     string
	Deletion     string
	Modification string
	Reset        string
}

// Default is the default configuration.
var Default = Config{
	CodeThreshold:  similarity.CodeThreshold,
	ProseThreshold: similarity.ProseThreshold,
	Unit:           offsets.Bytes,
	Language:       "",
	ForceMode:      false,
	Mode:           token.Prose,
	MergeAdjacent:  false,
	TargetView:     false,
	Context:        3,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	CodeThreshold Flag = 1 << iota
	ProseThreshold
	Unit
	Language
	ForceMode
	MergeAdjacent
	TargetView
	Context
	Colors
)

// Engine is the set of flags that influence the diff computation.
const Engine = CodeThreshold | ProseThreshold | Unit | Language | ForceMode | MergeAdjacent | TargetView

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	cfg.CodeThreshold = clamp(cfg.CodeThreshold)
	cfg.ProseThreshold = clamp(cfg.ProseThreshold)
	return cfg
}

func clamp(f float64) float64 {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

func printFlag(flag Flag) string {
	switch flag {
	case CodeThreshold:
		return "livediff.CodeThreshold"
	case ProseThreshold:
		return "livediff.ProseThreshold"
	case Unit:
		return "livediff.Units"
	case Language:
		return "livediff.Language"
	case ForceMode:
		return "livediff.ForceMode"
	case MergeAdjacent:
		return "livediff.MergeAdjacent"
	case TargetView:
		return "livediff.TargetView"
	case Context:
		return "render.Context"
	case Colors:
		return "render.Colors"
	default:
		panic("never reached")
	}
}
