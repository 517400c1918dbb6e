// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the sparse builder.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Pruning policy: an accumulated entry is dropped when |v| <= eps. With the
//     default eps = 0 only exact zeros are dropped, which keeps the output
//     bit-for-bit deterministic for a given operator.
package matrix

import (
	"math"

	"go.uber.org/zap"
)

// DefaultEpsilon is the pruning tolerance: only exact zeros are dropped.
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates builder options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64     // >= 0; DefaultEpsilon
	logger *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the pruning tolerance for accumulated entries.
// Panics when eps is negative, NaN or infinite.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger attaches a logger for build statistics; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
