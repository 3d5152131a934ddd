// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

// Options represents the configuration shared by the hollow heap
// variants. Variants set their own defaults before applying any Option.
type Options struct {
	// Capacity is the number of nodes to allocate space for up front.
	Capacity int
	// RankDecrement is subtracted from the rank of a node (clamped at 0)
	// when DecreaseKey moves its payload to a new node.
	RankDecrement int
	// Stats, if non-nil, is updated by every operation.
	Stats *Stats
}

// Option represents an option that can be passed to New and the
// constructors of the other variants.
type Option func(*Options)

// Apply applies the supplied options.
func (o *Options) Apply(opts ...Option) {
	for _, fn := range opts {
		fn(o)
	}
	if o.RankDecrement < 0 {
		o.RankDecrement = 0
	}
}

// WithCapacity sets the number of nodes to preallocate.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// WithRankDecrement sets the amount by which DecreaseKey lowers the rank
// of the new node created for the decreased element.
func WithRankDecrement(d int) Option {
	return func(o *Options) {
		o.RankDecrement = d
	}
}

// WithStats installs a Stats instance that will be updated as the heap
// is used.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
