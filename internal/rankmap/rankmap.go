// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rankmap provides the rank indexed scratch maps used to
// consolidate the surviving trees of a hollow heap during delete-min.
// The zero value of the handle type H is used to denote an empty entry.
package rankmap

import (
	"slices"

	"cloudeng.io/hollowheap/internal/arena"
)

// Order determines the order in which Drain visits ranks.
type Order int

// Values for Order.
const (
	Descending Order = iota
	Ascending
)

// Map represents a rank to node map.
type Map[H comparable] interface {
	// Take removes and returns the entry for rank, if any.
	Take(rank int) (H, bool)
	// Put records h as the entry for rank, the entry must be empty.
	Put(rank int, h H)
	// Max returns the highest rank recorded since the last Drain, or -1.
	Max() int
	// Drain calls fn for every recorded entry in the specified order
	// and leaves the map empty.
	Drain(order Order, fn func(H))
	// Reset empties the map.
	Reset()
}

// Dense is a Map backed by a slice indexed by rank.
type Dense[H comparable] struct {
	slots       []H
	factor      int
	max         int
	clearInline bool
	dirty       bool
}

// NewDense returns a new Dense map with room for capacity ranks which
// grows by factor. If clearInline is true entries are zeroed as they
// are drained, otherwise they are zeroed in bulk by the next Reset, or
// by the first Put after a Drain if Reset is not called.
func NewDense[H comparable](capacity, factor int, clearInline bool) *Dense[H] {
	return &Dense[H]{
		slots:       make([]H, 0, capacity),
		factor:      factor,
		max:         -1,
		clearInline: clearInline,
	}
}

// Take implements Map.
func (d *Dense[H]) Take(rank int) (H, bool) {
	var zero H
	if rank > d.max {
		return zero, false
	}
	h := d.slots[rank]
	if h == zero {
		return zero, false
	}
	d.slots[rank] = zero
	return h, true
}

// Put implements Map.
func (d *Dense[H]) Put(rank int, h H) {
	if d.dirty {
		d.Reset()
	}
	var zero H
	for len(d.slots) <= rank {
		d.slots = arena.Append(d.slots, zero, d.factor)
	}
	d.slots[rank] = h
	if rank > d.max {
		d.max = rank
	}
}

// Max implements Map.
func (d *Dense[H]) Max() int {
	return d.max
}

// Drain implements Map.
func (d *Dense[H]) Drain(order Order, fn func(H)) {
	var zero H
	visit := func(i int) {
		h := d.slots[i]
		if h == zero {
			return
		}
		if d.clearInline {
			d.slots[i] = zero
		}
		fn(h)
	}
	if order == Descending {
		for i := d.max; i >= 0; i-- {
			visit(i)
		}
	} else {
		for i := 0; i <= d.max; i++ {
			visit(i)
		}
	}
	if !d.clearInline && d.max >= 0 {
		d.dirty = true
	}
	d.max = -1
}

// Reset implements Map.
func (d *Dense[H]) Reset() {
	if d.dirty {
		clear(d.slots)
		d.dirty = false
	}
	d.max = -1
}

// Sparse is a Map backed by a Go map.
type Sparse[H comparable] struct {
	entries map[int]H
	ranks   []int
	max     int
}

// NewSparse returns a new, empty, Sparse map.
func NewSparse[H comparable]() *Sparse[H] {
	return &Sparse[H]{
		entries: map[int]H{},
		max:     -1,
	}
}

// Take implements Map.
func (s *Sparse[H]) Take(rank int) (H, bool) {
	h, ok := s.entries[rank]
	if ok {
		delete(s.entries, rank)
	}
	return h, ok
}

// Put implements Map.
func (s *Sparse[H]) Put(rank int, h H) {
	s.entries[rank] = h
	if rank > s.max {
		s.max = rank
	}
}

// Max implements Map.
func (s *Sparse[H]) Max() int {
	return s.max
}

// Drain implements Map.
func (s *Sparse[H]) Drain(order Order, fn func(H)) {
	s.ranks = s.ranks[:0]
	for r := range s.entries {
		s.ranks = append(s.ranks, r)
	}
	slices.Sort(s.ranks)
	if order == Descending {
		slices.Reverse(s.ranks)
	}
	for _, r := range s.ranks {
		fn(s.entries[r])
	}
	s.Reset()
}

// Reset implements Map.
func (s *Sparse[H]) Reset() {
	clear(s.entries)
	s.max = -1
}
