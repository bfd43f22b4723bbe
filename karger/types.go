// SPDX-License-Identifier: MIT

// Package karger defines options, results and sentinel errors for
// contraction-based minimum cut computation.
package karger

import (
	"context"
	"errors"

	"github.com/katalvlaran/mincut/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("karger: graph is nil")

	// ErrInvalidIterations is returned when the trial count is not positive.
	ErrInvalidIterations = errors.New("karger: iterations must be positive")

	// ErrInvariantViolated reports broken contraction bookkeeping. It is a
	// programming fault, never a property of the input.
	ErrInvariantViolated = errors.New("karger: contraction invariant violated")

	// ErrUnknownEdge indicates a cut edge that does not exist in the graph.
	ErrUnknownEdge = errors.New("karger: cut edge not in graph")

	// ErrNotACut indicates that a set of edges does not separate the graph
	// the way the cut claims.
	ErrNotACut = errors.New("karger: edges do not form a cut")
)

// Source is the randomness consumed by contraction. *math/rand.Rand
// satisfies it. Intn must return a value in [0, n).
type Source interface {
	Intn(n int) int
}

// Cut is the outcome of one or more contraction trials.
type Cut struct {
	// Size is the number of crossing edges.
	Size int

	// Edges are the crossing edges in edge-ID order. len(Edges) == Size.
	Edges []core.Edge

	// Sides holds the vertex values of the two parts, each ascending.
	// Sides[0] contains the smallest vertex value of the graph.
	Sides [2][]int

	// Trial is the index of the trial that produced the cut (0-based).
	Trial int
}

// Option configures MinCut and Contract.
type Option func(*Options)

// Options holds configurable parameters for the trial driver.
type Options struct {
	// Ctx is checked between trials; a cancelled context stops the run and
	// MinCut returns Ctx.Err(). Trials already started run to completion.
	Ctx context.Context

	// Seed selects the per-trial random streams. 0 uses defaultRNGSeed.
	Seed int64

	// Workers bounds the number of concurrent trials. <= 0 means
	// runtime.GOMAXPROCS(0). Never more than the number of trials.
	Workers int

	// OnTrial, if non-nil, is called after every trial with its cut.
	// It may be called concurrently from several workers.
	OnTrial func(trial int, c Cut)

	// OnMerge, if non-nil, is called after every merge (and the self-loop
	// purge that follows it) with the number of super-vertices before and
	// after. Like OnTrial it may run on several workers at once.
	OnMerge func(before, after int)

	// SourceFactory, if non-nil, supplies the random source for each trial
	// instead of the seeded streams.
	SourceFactory func(trial int) Source
}

// DefaultOptions returns Options with:
//   - Background context
//   - Seed 0 (fixed default stream)
//   - Workers = GOMAXPROCS
//   - No hooks, seeded sources
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Seed:    0,
		Workers: 0,
	}
}

// WithContext sets the context checked between trials. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed sets the base seed for the per-trial random streams.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithOnTrial installs a per-trial hook.
func WithOnTrial(fn func(trial int, c Cut)) Option {
	return func(o *Options) { o.OnTrial = fn }
}

// WithOnMerge installs a per-merge hook.
func WithOnMerge(fn func(before, after int)) Option {
	return func(o *Options) { o.OnMerge = fn }
}

// WithSourceFactory replaces the seeded per-trial streams.
func WithSourceFactory(fn func(trial int) Source) Option {
	return func(o *Options) { o.SourceFactory = fn }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
