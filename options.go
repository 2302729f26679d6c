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

package livediff

import "znkr.io/livediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// CodeThreshold sets the minimum similarity in [0, 1] for pairing two code lines that are not
// identical. The default is 0.5.
//
// Code similarity is the length of the longest common subsequence of the lines' tokens, divided
// by the number of tokens in the longer line.
func CodeThreshold(t float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CodeThreshold = t
		return config.CodeThreshold
	}
}

// ProseThreshold sets the minimum similarity in [0, 1] for pairing two prose lines that are not
// identical. The default is 0.3.
//
// Prose similarity is the number of distinct words the lines have in common, divided by the number
// of distinct words in both lines.
func ProseThreshold(t float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ProseThreshold = t
		return config.ProseThreshold
	}
}

// Units sets the unit for all reported ranges. The default is [Bytes].
//
// Editors that address text in UTF-16 code units (e.g., Cocoa, JavaScript based editors, the
// language server protocol) should use [UTF16].
func Units(u Unit) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Unit = u
		return config.Unit
	}
}

// Language sets the programming language used to recognize keywords in code. The language can be
// given as a name (e.g., "go", "JavaScript") or as a filename (e.g., "main.rs"). By default, the
// language is guessed from the source text.
func Language(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Language = name
		return config.Language
	}
}

// ForceMode disables classification and treats the texts as [Code] or [Prose].
func ForceMode(m Mode) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ForceMode = true
		cfg.Mode = m
		return config.ForceMode
	}
}

// MergeAdjacent reports modified tokens that are only separated by whitespace as a single
// [WordDiff] spanning all of them. By default, every modified token is reported on its own.
func MergeAdjacent() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MergeAdjacent = true
		return config.MergeAdjacent
	}
}

// TargetView reports lines without a corresponding line in the other text as [Addition] instead
// of [Deletion].
//
// Use this option when computing the highlighting for the target pane of a two-pane editor, i.e.,
// when calling Compute(target, source, TargetView()). Lines that only exist in the target text
// were added.
func TargetView() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.TargetView = true
		return config.TargetView
	}
}
