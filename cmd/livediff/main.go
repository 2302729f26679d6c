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

// Command livediff compares two text files line by line and word by word.
//
// Usage:
//
//	livediff show SRC DST   print the lines of SRC that differ from DST
//	livediff side SRC DST   print SRC and DST side by side
//	livediff json SRC DST   print the differences of both files as JSON
//	livediff watch SRC DST  like side, but updates whenever one of the files changes
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"znkr.io/livediff"
	"znkr.io/livediff/render"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "livediff [command]",
		Short:         "Compare two texts line by line and word by word",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addFlags(rootCmd)
	rootCmd.AddCommand(showCmd(), sideCmd(), jsonCmd(), watchCmd())
	return rootCmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show SRC DST",
		Short: "Print the lines of SRC that differ from DST",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := s.engineOptions(false)
			if err != nil {
				return err
			}
			ropts, err := s.renderOptions(isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			src, dst, err := readFiles(args[0], args[1])
			if err != nil {
				return err
			}
			diffs := livediff.Compute(src, dst, opts...)
			_, err = io.WriteString(cmd.OutOrStdout(), render.Annotated(src, diffs, ropts...))
			return err
		},
	}
}

func sideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "side SRC DST",
		Short: "Print SRC and DST side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := s.engineOptions(false)
			if err != nil {
				return err
			}
			copts, err := s.colorOptions(isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			src, dst, err := readFiles(args[0], args[1])
			if err != nil {
				return err
			}
			ldiffs := livediff.Compute(src, dst, opts...)
			rdiffs := livediff.Compute(dst, src, append(opts, livediff.TargetView())...)
			_, err = io.WriteString(cmd.OutOrStdout(), render.SideBySide(src, dst, ldiffs, rdiffs, s.width(), copts...))
			return err
		},
	}
}

// report is the output of the json command.
type report struct {
	Mode   string              `json:"mode"`
	Source []livediff.LineDiff `json:"source"`
	Target []livediff.LineDiff `json:"target"`
}

func jsonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json SRC DST",
		Short: "Print the differences of SRC and DST as JSON",
		Long: "Print the differences of SRC and DST as JSON. The source list contains the lines of SRC\n" +
			"compared with DST, the target list the lines of DST compared with SRC.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := s.engineOptions(true)
			if err != nil {
				return err
			}
			src, dst, err := readFiles(args[0], args[1])
			if err != nil {
				return err
			}
			mode := livediff.Classify(src)
			switch strings.ToLower(s.Mode) {
			case "code":
				mode = livediff.Code
			case "prose":
				mode = livediff.Prose
			}
			r := report{
				Mode:   mode.String(),
				Source: livediff.Compute(src, dst, opts...),
				Target: livediff.Compute(dst, src, append(opts, livediff.TargetView())...),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("writing json: %v", err)
			}
			return nil
		},
	}
}

func readFiles(src, dst string) (string, string, error) {
	x, err := os.ReadFile(src)
	if err != nil {
		return "", "", fmt.Errorf("reading source: %v", err)
	}
	y, err := os.ReadFile(dst)
	if err != nil {
		return "", "", fmt.Errorf("reading target: %v", err)
	}
	return string(x), string(y), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	return err == nil && stat.Mode()&os.ModeCharDevice != 0
}
