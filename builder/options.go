// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit via WithSeed or WithRand; no hidden globals.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// defaultWeight is the constant weight used when no generator is configured.
const defaultWeight int64 = 1

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	// idFn maps a node index to its label.
	idFn func(int) string
	// rng drives stochastic constructors and weights; nil means no randomness.
	rng *rand.Rand
	// weightFn produces one edge weight; it must return values ≥ 1.
	weightFn func(*rand.Rand) int64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) int64 { return defaultWeight },
	}
	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one weight and validates it.
func (c builderConfig) weight(method string) (int64, error) {
	w := c.weightFn(c.rng)
	if w < 1 {
		return 0, fmt.Errorf("%s: weight %d: %w", method, w, ErrBadWeight)
	}

	return w, nil
}

// WithIDScheme sets the node label generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix labels nodes prefix+index, e.g. "n0", "n1".
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string {
		return prefix + strconv.Itoa(i)
	})
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG for reproducible output.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformWeights draws integer weights uniformly from [lo, hi].
// Without an RNG it falls back to lo. Panics unless 1 ≤ lo ≤ hi.
func WithUniformWeights(lo, hi int64) BuilderOption {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("builder: WithUniformWeights requires 1 <= lo <= hi, got lo=%d hi=%d", lo, hi))
	}
	return WithWeightFn(func(r *rand.Rand) int64 {
		if r == nil || lo == hi {
			return lo
		}
		return lo + r.Int63n(hi-lo+1)
	})
}
