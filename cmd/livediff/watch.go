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
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"znkr.io/livediff"
	"znkr.io/livediff/pane"
	"znkr.io/livediff/render"
)

// Editors often write a file in several steps, wait for them to settle before reloading.
const debounceDelay = 50 * time.Millisecond

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch SRC DST",
		Short: "Show SRC and DST side by side and update whenever one of them changes",
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
			out := cmd.OutOrStdout()
			copts, err := s.colorOptions(isTerminal(out))
			if err != nil {
				return err
			}

			var paths [2]string
			for i, arg := range args {
				if paths[i], err = filepath.Abs(arg); err != nil {
					return fmt.Errorf("resolving %s: %v", arg, err)
				}
			}

			scr := &screen{w: out, width: s.width(), opts: copts, clear: isTerminal(out)}
			pair := pane.NewPair(scr, opts...)
			load := func(side pane.Side) error {
				start := time.Now()
				data, err := os.ReadFile(paths[side])
				if err != nil {
					return err
				}
				pair.SetText(side, string(data))
				scr.draw()
				log.Printf("Reloaded %v pane (%v)", side, time.Since(start))
				return nil
			}
			for _, side := range []pane.Side{pane.Left, pane.Right} {
				if err := load(side); err != nil {
					return fmt.Errorf("loading: %v", err)
				}
			}

			// Watch the directories instead of the files, editors often replace files on save.
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %v", err)
			}
			defer watcher.Close()
			for _, path := range paths {
				if dir := filepath.Dir(path); !slices.Contains(watcher.WatchList(), dir) {
					if err := watcher.Add(dir); err != nil {
						return fmt.Errorf("starting watch: %v", err)
					}
				}
			}
			log.Printf("Watching:\n    %v", strings.Join(watcher.WatchList(), "\n    "))

			debouncers := [2]*pane.Debouncer{
				pane.NewDebouncer(debounceDelay),
				pane.NewDebouncer(debounceDelay),
			}
			defer func() {
				for _, d := range debouncers {
					d.Stop()
				}
			}()

			// Setup signals to react to Ctrl-C.
			sigint := make(chan os.Signal, 1)
			signal.Notify(sigint, os.Interrupt)
			defer signal.Stop(sigint)

			for {
				select {
				case event := <-watcher.Events:
					// Absolutely no need to react to chmod.
					if event.Op == fsnotify.Chmod {
						continue
					}
					for _, side := range []pane.Side{pane.Left, pane.Right} {
						if event.Name != paths[side] {
							continue
						}
						debouncers[side].Trigger(func() {
							if err := load(side); err != nil {
								log.Printf("failed to reload %v pane: %v", side, err)
							}
						})
					}
				case err := <-watcher.Errors:
					return fmt.Errorf("watching: %v", err)
				case <-sigint:
					fmt.Print("\r") // remove Ctrl-C output characters
					log.Printf("Received Ctrl-C, shutting down")
					return nil
				}
			}
		},
	}
}

// screen draws both panes side by side.
type screen struct {
	w     io.Writer
	width int
	opts  []livediff.Option
	clear bool // clear the terminal before drawing

	mu    sync.Mutex
	text  [2]string
	diffs [2][]livediff.LineDiff
}

func (s *screen) Highlight(side pane.Side, text string, diffs []livediff.LineDiff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text[side], s.diffs[side] = text, diffs
}

func (s *screen) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	if s.clear {
		b.WriteString("\033[H\033[2J")
	}
	left, right := s.text[pane.Left], s.text[pane.Right]
	ldiffs := pane.Clip(s.diffs[pane.Left], len(left))
	rdiffs := pane.Clip(s.diffs[pane.Right], len(right))
	b.WriteString(render.SideBySide(left, right, ldiffs, rdiffs, s.width, s.opts...))
	if _, err := io.WriteString(s.w, b.String()); err != nil {
		log.Printf("failed to draw: %v", err)
	}
}
