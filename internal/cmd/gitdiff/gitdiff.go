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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It shows the word level differences of every changed file in a git diff, e.g.:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// Colors are enabled if LIVEDIFF_COLOR is set to a non-empty value. The language of every file is
// derived from its path.
package main

import (
	"fmt"
	"os"

	"znkr.io/livediff"
	"znkr.io/livediff/render"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	var ropts []livediff.Option
	if os.Getenv("LIVEDIFF_COLOR") != "" {
		ropts = append(ropts, render.Colors())
	}

	// Show the old file with deletions and modifications, followed by the new file with additions.
	lang := livediff.Language(path)
	oldDiffs := livediff.Compute(old, new, lang)
	newDiffs := livediff.Compute(new, old, lang, livediff.TargetView())

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	fmt.Printf("--- a/%s\n", path)
	fmt.Print(render.Annotated(old, oldDiffs, ropts...))
	fmt.Printf("+++ b/%s\n", path)
	fmt.Print(render.Annotated(new, newDiffs, ropts...))

	return nil
}

func readFile(name string) (string, error) {
	if name == "/dev/null" {
		return "", nil
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func short(hex string) string {
	return hex[:min(10, len(hex))]
}
