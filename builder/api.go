// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Constructor adds a topology to g using cfg. Implementations return errors
// and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies each constructor in order
// with the configuration resolved from bopts. All constructors share the same
// RNG, so later ones continue the stream of earlier ones.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildRows is BuildGraph followed by Graph.Rows, for callers that feed
// adjacency rows to karger.ComputeMinCut.
func BuildRows(bopts []BuilderOption, cons ...Constructor) ([]core.Row, error) {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return g.Rows(), nil
}
