// SPDX-License-Identifier: MIT

// Package karger provides the repeated-trial driver.
package karger

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/unionfind"
)

// SuggestedIterations returns ⌈n²·ln n⌉, the trial count after which a
// fixed minimum cut of an n-vertex graph is missed with probability at
// most 1/n. Graphs with fewer than three vertices need a single trial.
func SuggestedIterations(n int) int {
	if n < 3 {
		return 1
	}
	f := float64(n)

	return int(math.Ceil(f * f * math.Log(f)))
}

// ComputeMinCut builds a graph from adjacency rows and returns the smallest
// cut found in iterations trials.
func ComputeMinCut(rows []core.Row, iterations int, opts ...Option) (Cut, error) {
	if iterations <= 0 {
		return Cut{}, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	g, err := core.FromRows(rows)
	if err != nil {
		return Cut{}, err
	}

	return MinCut(g, iterations, opts...)
}

// MinCut runs exactly iterations independent contraction trials on g and
// returns the smallest cut seen. Among equal sizes the lowest trial index
// wins, which is the cut a sequential loop would have kept first.
//
// Steps:
//  1. Validate g and iterations; resolve options.
//  2. Snapshot g once (core.Arena) and build a pristine value-keyed
//     union-find; every trial clones it and allocates its own edge multiset,
//     so trials share nothing mutable.
//  3. Feed trial indices to a pool of workers; each keeps a local best.
//  4. Reduce the local bests by (Size, Trial).
//
// Graphs with fewer than two vertices or no edges return Size 0 without
// running trials.
//
// Complexity: O(iterations · n · E / workers) wall time, O(workers·(V+E)) memory.
func MinCut(g *core.Graph, iterations int, opts ...Option) (Cut, error) {
	if g == nil {
		return Cut{}, ErrGraphNil
	}
	if iterations <= 0 {
		return Cut{}, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	o := resolve(opts)
	if err := o.Ctx.Err(); err != nil {
		return Cut{}, err
	}

	a := g.Arena()
	pristine := unionfind.NewKeyed(a.Values)
	if a.Len() < 2 || len(a.Ends) == 0 {
		// Nothing to draw: run only purges loops and never touches the source.
		return newContraction(a, pristine, nil).run(nil)
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > iterations {
		workers = iterations
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		stop     = make(chan struct{})
		jobs     = make(chan int)
		bests    = make([]*Cut, workers)
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			close(stop)
		}
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var best *Cut
			for trial := range jobs {
				c, err := newContraction(a, pristine, o.OnMerge).run(o.source(trial))
				if err != nil {
					fail(fmt.Errorf("trial %d: %w", trial, err))
					continue
				}
				c.Trial = trial
				if o.OnTrial != nil {
					o.OnTrial(trial, c)
				}
				// Trials reach a worker in increasing order, so a strict
				// comparison keeps the earliest of equal cuts.
				if best == nil || c.Size < best.Size {
					kept := c
					best = &kept
				}
			}
			bests[w] = best
		}(w)
	}

feed:
	for trial := 0; trial < iterations; trial++ {
		select {
		case <-stop:
			break feed
		case <-o.Ctx.Done():
			fail(o.Ctx.Err())
			break feed
		case jobs <- trial:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Cut{}, firstErr
	}

	var best *Cut
	for _, c := range bests {
		if c == nil {
			continue
		}
		if best == nil || c.Size < best.Size || (c.Size == best.Size && c.Trial < best.Trial) {
			best = c
		}
	}

	return *best, nil
}

// source returns the random source for a trial.
func (o Options) source(trial int) Source {
	if o.SourceFactory != nil {
		return o.SourceFactory(trial)
	}

	return trialRNG(o.Seed, trial)
}
