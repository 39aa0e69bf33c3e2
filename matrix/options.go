// SPDX-License-Identifier: MIT

// Package matrix: functional options for Allocate.
//
// Design goals:
//   - No global state: every limit is resolved per Allocate call.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).

package matrix

// DefaultMemoryLimit of 0 means "probe": the ceiling is taken from the runtime
// memory limit and the host's physical memory (see memory.go).
const DefaultMemoryLimit uint64 = 0

const panicMemoryLimitInvalid = "matrix: WithMemoryLimit: limit must be > 0"

// Option mutates allocation options.
type Option func(*Options)

// Options holds the resolved allocation policy.
type Options struct {
	memoryLimit uint64 // bytes; 0 → probe
}

// WithMemoryLimit caps the score matrix buffer at limit bytes.
// An explicit limit replaces probing entirely.
//
// Panics if limit is zero.
func WithMemoryLimit(limit uint64) Option {
	if limit == 0 {
		panic(panicMemoryLimitInvalid)
	}

	return func(o *Options) { o.memoryLimit = limit }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{memoryLimit: DefaultMemoryLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
