// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload

import "cloudeng.io/algo/container/heap"

// Baseline is a Sortable backed by a min-max binary heap. It does not
// support DecreaseKey and is used as a point of comparison for the
// sort workload. Its key type is restricted to the types supported by
// the min-max heap.
type Baseline[K heap.Ordered, V any] struct {
	h *heap.MinMax[K, V]
}

// NewBaseline returns a new, empty, Baseline with room for n elements.
func NewBaseline[K heap.Ordered, V any](n int) *Baseline[K, V] {
	return &Baseline[K, V]{h: heap.NewMinMax[K, V](heap.WithSliceCap[K, V](n + 1))}
}

var _ Sortable[int, int] = (*Baseline[int, int])(nil)

// Insert implements Sortable.
func (b *Baseline[K, V]) Insert(key K, val V) {
	b.h.Push(key, val)
}

// FindMin implements Sortable.
func (b *Baseline[K, V]) FindMin() (V, bool) {
	if b.h.Len() == 0 {
		var zero V
		return zero, false
	}
	// Index 0 is the min-max heap's dummy root.
	return b.h.Vals[1], true
}

// DeleteMin implements Sortable.
func (b *Baseline[K, V]) DeleteMin() {
	if b.h.Len() > 0 {
		b.h.PopMin()
	}
}

// Empty implements Sortable.
func (b *Baseline[K, V]) Empty() bool {
	return b.h.Len() == 0
}
