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

package render

import (
	"znkr.io/livediff"
	"znkr.io/livediff/internal/config"
	"znkr.io/livediff/render/color"
)

// Context sets the number of unchanged lines shown around changed lines in [Annotated]. The
// default is 3.
func Context(n int) livediff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Colors enables terminal colors using ANSI escape sequences. Without options, default colors are
// used, options override individual colors.
func Colors(opts ...color.Option) livediff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = color.Default()
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Colors
	}
}
