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

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"znkr.io/livediff"
	"znkr.io/livediff/render"
)

// settings is the configuration of all commands. It's read from an optional config file and then
// overridden by flags.
type settings struct {
	Thresholds struct {
		Code  *float64 `yaml:"code" toml:"code" json:"code"`
		Prose *float64 `yaml:"prose" toml:"prose" json:"prose"`
	} `yaml:"thresholds" toml:"thresholds" json:"thresholds"`
	Language string `yaml:"language" toml:"language" json:"language"`
	Mode     string `yaml:"mode" toml:"mode" json:"mode"`    // auto, code, or prose
	Units    string `yaml:"units" toml:"units" json:"units"` // bytes, runes, or utf16
	Merge    bool   `yaml:"merge" toml:"merge" json:"merge"`
	Context  *int   `yaml:"context" toml:"context" json:"context"`
	Width    int    `yaml:"width" toml:"width" json:"width"`
	Color    string `yaml:"color" toml:"color" json:"color"` // auto, always, or never
}

var unmarshalByExtension = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

func loadSettings(path string) (settings, error) {
	var s settings
	unmarshal, ok := unmarshalByExtension[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return s, fmt.Errorf("unknown config file format: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading config: %v", err)
	}
	if err := unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config %s: %v", path, err)
	}
	return s, nil
}

func addFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (.yaml, .yml, .toml, or .json)")
	f.Float64("code-threshold", 0, "minimum similarity to pair two code lines")
	f.Float64("prose-threshold", 0, "minimum similarity to pair two prose lines")
	f.String("lang", "", "programming language or filename used to select keywords")
	f.String("mode", "auto", "treat texts as auto, code, or prose")
	f.String("units", "bytes", "units of json ranges: bytes, runes, or utf16")
	f.Bool("merge", false, "merge modified words that are only separated by whitespace")
	f.Int("context", 3, "number of unchanged lines around changes")
	f.Int("width", 0, "width of the side by side output, defaults to $COLUMNS or 120")
	f.String("color", "auto", "use colors: auto, always, or never")
}

// resolve reads the config file, if any, and applies all flags that were set explicitly.
func resolve(cmd *cobra.Command) (settings, error) {
	f := cmd.Flags()
	var s settings
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if s, err = loadSettings(path); err != nil {
			return s, err
		}
	}
	if f.Changed("code-threshold") {
		v, _ := f.GetFloat64("code-threshold")
		s.Thresholds.Code = &v
	}
	if f.Changed("prose-threshold") {
		v, _ := f.GetFloat64("prose-threshold")
		s.Thresholds.Prose = &v
	}
	if f.Changed("lang") {
		s.Language, _ = f.GetString("lang")
	}
	if f.Changed("mode") {
		s.Mode, _ = f.GetString("mode")
	}
	if f.Changed("units") {
		s.Units, _ = f.GetString("units")
	}
	if f.Changed("merge") {
		s.Merge, _ = f.GetBool("merge")
	}
	if f.Changed("context") {
		v, _ := f.GetInt("context")
		s.Context = &v
	}
	if f.Changed("width") {
		s.Width, _ = f.GetInt("width")
	}
	if f.Changed("color") {
		s.Color, _ = f.GetString("color")
	}
	return s, nil
}

// engineOptions returns the options for livediff.Compute. Units are only applied if withUnits is
// set, because rendering requires byte offsets.
func (s settings) engineOptions(withUnits bool) ([]livediff.Option, error) {
	var opts []livediff.Option
	if s.Thresholds.Code != nil {
		opts = append(opts, livediff.CodeThreshold(*s.Thresholds.Code))
	}
	if s.Thresholds.Prose != nil {
		opts = append(opts, livediff.ProseThreshold(*s.Thresholds.Prose))
	}
	if s.Language != "" {
		opts = append(opts, livediff.Language(s.Language))
	}
	switch strings.ToLower(s.Mode) {
	case "", "auto":
	case "code":
		opts = append(opts, livediff.ForceMode(livediff.Code))
	case "prose":
		opts = append(opts, livediff.ForceMode(livediff.Prose))
	default:
		return nil, fmt.Errorf("unknown mode: %q", s.Mode)
	}
	var unit livediff.Unit
	switch strings.ToLower(s.Units) {
	case "", "bytes":
		unit = livediff.Bytes
	case "runes":
		unit = livediff.Runes
	case "utf16", "utf-16":
		unit = livediff.UTF16
	default:
		return nil, fmt.Errorf("unknown units: %q", s.Units)
	}
	if withUnits && unit != livediff.Bytes {
		opts = append(opts, livediff.Units(unit))
	}
	if s.Merge {
		opts = append(opts, livediff.MergeAdjacent())
	}
	return opts, nil
}

// renderOptions returns the options for render.Annotated. isTerminal reports whether the output
// goes to a terminal.
func (s settings) renderOptions(isTerminal bool) ([]livediff.Option, error) {
	opts, err := s.colorOptions(isTerminal)
	if err != nil {
		return nil, err
	}
	if s.Context != nil {
		opts = append(opts, render.Context(*s.Context))
	}
	return opts, nil
}

// colorOptions returns the options for render.SideBySide.
func (s settings) colorOptions(isTerminal bool) ([]livediff.Option, error) {
	switch strings.ToLower(s.Color) {
	case "", "auto":
		if isTerminal {
			return []livediff.Option{render.Colors()}, nil
		}
		return nil, nil
	case "always":
		return []livediff.Option{render.Colors()}, nil
	case "never":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown color setting: %q", s.Color)
	}
}

func (s settings) width() int {
	if s.Width > 0 {
		return s.Width
	}
	var cols int
	if _, err := fmt.Sscan(os.Getenv("COLUMNS"), &cols); err == nil && cols > 0 {
		return cols
	}
	return 120
}
