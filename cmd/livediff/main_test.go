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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/livediff"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	code, ctx := 0.7, 1
	var want settings
	want.Thresholds.Code = &code
	want.Language = "go"
	want.Mode = "code"
	want.Units = "utf16"
	want.Merge = true
	want.Context = &ctx
	want.Width = 80
	want.Color = "never"

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "config.yaml",
			content: `thresholds:
  code: 0.7
language: go
mode: code
units: utf16
merge: true
context: 1
width: 80
color: never
`,
		},
		{
			name: "config.toml",
			content: `language = "go"
mode = "code"
units = "utf16"
merge = true
context = 1
width = 80
color = "never"

[thresholds]
code = 0.7
`,
		},
		{
			name:    "config.json",
			content: `{"thresholds": {"code": 0.7}, "language": "go", "mode": "code", "units": "utf16", "merge": true, "context": 1, "width": 80, "color": "never"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadSettings(writeFile(t, tt.name, tt.content))
			if err != nil {
				t.Fatalf("loadSettings(...) failed: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("loadSettings(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	for _, path := range []string{
		writeFile(t, "config.ini", "mode = code"),
		writeFile(t, "broken.yaml", "thresholds: [1, 2"),
		filepath.Join(t.TempDir(), "missing.toml"),
	} {
		if _, err := loadSettings(path); err == nil {
			t.Errorf("loadSettings(%q) succeeded, want error", path)
		}
	}
}

func TestOptionErrors(t *testing.T) {
	for _, s := range []settings{
		{Mode: "poetry"},
		{Units: "bits"},
	} {
		if _, err := s.engineOptions(true); err == nil {
			t.Errorf("%+v.engineOptions(true) succeeded, want error", s)
		}
	}
	if _, err := (settings{Color: "rainbow"}).renderOptions(false); err == nil {
		t.Errorf("renderOptions succeeded for an unknown color setting, want error")
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("livediff %v failed: %v", args, err)
	}
	return out.String()
}

func TestShow(t *testing.T) {
	src := writeFile(t, "src.txt", "one\ntwo\nthree\nfour\nlet total = 0;\nsix")
	dst := writeFile(t, "dst.txt", "one\ntwo\nthree\nfour\nlet sum = 0;\nsix")

	want := "@@ 4,3 @@\n" +
		" 4 | four\n" +
		"~5 | let total = 0;\n" +
		"   |     ^^^^^\n" +
		" 6 | six\n"
	got := run(t, "show", "--color", "never", "--context", "1", "--mode", "code", src, dst)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("show output is different [-want,+got]:\n%s", diff)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "context: 0\ncolor: always\n")
	src := writeFile(t, "src.txt", "a\nlet total = 0;\nb")
	dst := writeFile(t, "dst.txt", "a\nlet sum = 0;\nb")

	want := "@@ 2,1 @@\n" +
		"~2 | let total = 0;\n" +
		"   |     ^^^^^\n"
	got := run(t, "show", "--config", cfg, "--color", "never", src, dst)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("show output is different [-want,+got]:\n%s", diff)
	}
}

func TestSide(t *testing.T) {
	src := writeFile(t, "src.txt", "same\nold line")
	dst := writeFile(t, "dst.txt", "same\nnew line\nextra")

	want := "  same     |   same\n" +
		"~ old line | ~ new line\n" +
		"           | + extra\n"
	got := run(t, "side", "--color", "never", "--width", "23", src, dst)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("side output is different [-want,+got]:\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	src := writeFile(t, "src.txt", "😀 quick fox")
	dst := writeFile(t, "dst.txt", "😀 slow fox")

	var got report
	if err := json.Unmarshal([]byte(run(t, "json", "--units", "utf16", src, dst)), &got); err != nil {
		t.Fatalf("parsing json output: %v", err)
	}
	want := report{
		Mode:   "Prose",
		Source: livediff.Compute("😀 quick fox", "😀 slow fox", livediff.Units(livediff.UTF16)),
		Target: livediff.Compute("😀 slow fox", "😀 quick fox", livediff.Units(livediff.UTF16), livediff.TargetView()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json output is different [-want,+got]:\n%s", diff)
	}
}
