// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, edge weight distribution, and bipartite partition
// labels to keep builder implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds:
//   - rng:        *rand.Rand source for randomness (nil → deterministic).
//   - idFn:       IDFn to produce vertex identifiers from integer indices.
//   - weightFn:   WeightFn to produce edge weights given an RNG.
//   - leftPrefix, rightPrefix: partition labels for CompleteBipartite.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
// Option constructors validate and panic on meaningless inputs; constructors
// built on top of builderConfig (Constructor values) never panic at runtime.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// defaultLeftPrefix and defaultRightPrefix label the two sides of a
// CompleteBipartite graph when WithPartitionPrefix is not supplied.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders.
// It is not safe for concurrent mutation; each builder invocation should
// create its own config via newBuilderConfig.
type builderConfig struct {
	rng                     *rand.Rand // optional RNG; nil means deterministic behavior
	idFn                    IDFn       // function to generate vertex IDs from indices
	weightFn                WeightFn   // function to generate edge weights
	leftPrefix, rightPrefix string     // bipartite partition labels
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:         nil,
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values are allowed and interpreted as "use defaults".
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		if left != "" {
			c.leftPrefix = left
		}
		if right != "" {
			c.rightPrefix = right
		}
	}
}
