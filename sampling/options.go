// Package sampling: functional options for the random sampler.

package sampling

import "math/rand"

// Options configures Random.
//
// Fields:
//   - Seed — seed for a private math/rand source; ignored when Rng is set.
//   - Rng  — externally owned random source, for sharing one stream across
//     draws. The caller is responsible for not using it concurrently.
type Options struct {
	Seed int64
	Rng  *rand.Rand
}

// DefaultOptions returns the default configuration: seed 1, private source.
// Sampling is deterministic by default; pass WithSeed to vary the stream.
func DefaultOptions() Options { return Options{Seed: 1} }

// Option mutates Options.
type Option func(*Options)

// WithSeed seeds the sampler's private random source. The same seed always
// reproduces the same element.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an existing random source, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rng = rng }
}
