// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderErrorf prefixes a failure with the constructor name and wraps err.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
