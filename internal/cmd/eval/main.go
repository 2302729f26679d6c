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

// eval validates the comparison engine on the history of a git repository. For every changed file
// in every commit, it compares the old and new version of the file and checks that all ranges
// are within bounds, that every line is reported exactly once, and that comparing a file with
// itself reports no differences.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"znkr.io/livediff"
	"znkr.io/livediff/internal/cmd/eval/internal/git"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	var commitsDone, processed, failed atomic.Int64

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}
	defer repo.Close()

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %v", err)
	}
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		rand.Shuffle(len(commitIDs), func(i, j int) { commitIDs[i], commitIDs[j] = commitIDs[j], commitIDs[i] })
		commitIDs = commitIDs[:cfg.sample]
	}

	var stats *bufio.Writer
	if cfg.stats != "" {
		f, err := os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer f.Close()
		stats = bufio.NewWriter(f)
		stats.WriteString("commit_id,file,N,M,D,duration_ns\n")
	}
	var statsMu sync.Mutex

	// Render progress
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(max(1, len(commitIDs)))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d files/s) ", width, bar, 100*progress, commitsPerSec, procPerSec)
	}
	done := make(chan struct{})
	var ioWG sync.WaitGroup
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()
			case <-ticker.C:
				render()
			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()

	// Process commits.
	var g errgroup.Group
	g.SetLimit(max(1, cfg.parallel))
	for _, commitID := range commitIDs {
		g.Go(func() error {
			defer commitsDone.Add(1)
			files, err := repo.DiffTree(commitID)
			if err != nil {
				notes <- note{commitID, fmt.Sprintf("error processing commit: %v", err)}
				return nil
			}
			for _, file := range files {
				old, err := repo.Blob(file.OldID)
				if err != nil {
					return err
				}
				new, err := repo.Blob(file.NewID)
				if err != nil {
					return err
				}
				// Skip binary files.
				if strings.IndexByte(old, 0) >= 0 || strings.IndexByte(new, 0) >= 0 {
					continue
				}

				t := time.Now()
				diffs := livediff.Compute(old, new)
				duration := time.Since(t)

				for _, p := range check(old, new) {
					failed.Add(1)
					notes <- note{commitID + ":" + file.Name, p}
				}
				processed.Add(1)

				if stats != nil {
					d := 0
					for _, ld := range diffs {
						if ld.IsDifferent {
							d++
						}
					}
					statsMu.Lock()
					fmt.Fprintf(stats, "%s,%s,%d,%d,%d,%d\n", commitID, file.Name, countLines(old), countLines(new), d, duration.Nanoseconds())
					statsMu.Unlock()
				}
			}
			return nil
		})
	}
	err = g.Wait()

	// Shutdown
	close(done)
	ioWG.Wait()
	if err != nil {
		return fmt.Errorf("reading blobs: %v", err)
	}
	if stats != nil {
		if err := stats.Flush(); err != nil {
			return fmt.Errorf("writing stats: %v", err)
		}
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d invariant violations", n)
	}
	return nil
}
