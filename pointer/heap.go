// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pointer provides a hollow heap whose nodes are individually
// allocated and referred to by pointer. It trades the locality of the
// table based heap in the parent package for handles that remain usable
// without reference to a heap-owned table.
package pointer

import (
	"fmt"

	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/arena"
	"cloudeng.io/hollowheap/internal/rankmap"
)

// DefaultRankDecrement is the rank decrement used by New.
const DefaultRankDecrement = 1

// Node is an element of a Heap. A *Node is returned as the handle for
// every element pushed onto the heap.
type Node[K hollowheap.Ordered, V any] struct {
	key    K
	val    V
	child  *Node[K, V]
	next   *Node[K, V]
	second *Node[K, V]
	rank   int
	hollow bool
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Heap is a pointer based hollow heap.
type Heap[K hollowheap.Ordered, V any] struct {
	root    *Node[K, V]
	size    int
	nodes   int
	rankDec int
	stats   *hollowheap.Stats
	ranks   *rankmap.Dense[*Node[K, V]]
	work    []*Node[K, V]
}

var _ hollowheap.Queue[int, int, *Node[int, int]] = (*Heap[int, int])(nil)

// New returns a new, empty, Heap. The hollowheap.WithCapacity option
// determines the initial size of the scratch space used by DeleteMin.
func New[K hollowheap.Ordered, V any](opts ...hollowheap.Option) *Heap[K, V] {
	o := hollowheap.Options{
		Capacity:      32,
		RankDecrement: DefaultRankDecrement,
	}
	o.Apply(opts...)
	return &Heap[K, V]{
		rankDec: o.RankDecrement,
		stats:   o.Stats,
		ranks:   rankmap.NewDense[*Node[K, V]](16, 2, true),
		work:    make([]*Node[K, V], 0, max(o.Capacity, 1)),
	}
}

func (h *Heap[K, V]) link(u, v *Node[K, V]) *Node[K, V] {
	parent, child := v, u
	switch {
	case u.key < v.key:
		parent, child = u, v
	case v.key < u.key:
	default:
		if h.stats != nil {
			h.stats.TieLinks++
		}
		if u.rank < v.rank {
			parent, child = u, v
		}
	}
	if h.stats != nil {
		h.stats.Links++
	}
	child.next = parent.child
	parent.child = child
	return parent
}

func (h *Heap[K, V]) alloc(key K, val V) *Node[K, V] {
	h.nodes++
	return &Node[K, V]{key: key, val: val}
}

// Push adds val with priority key to the heap.
func (h *Heap[K, V]) Push(key K, val V) *Node[K, V] {
	n := h.alloc(key, val)
	h.size++
	if h.stats != nil {
		h.stats.Pushes++
	}
	if h.root == nil {
		h.root = n
		return n
	}
	h.root = h.link(h.root, n)
	return n
}

func lookup[K hollowheap.Ordered, V any](n *Node[K, V]) error {
	if n == nil {
		return fmt.Errorf("%w: nil", hollowheap.ErrInvalidHandle)
	}
	if n.hollow {
		return fmt.Errorf("%w: %p", hollowheap.ErrStaleHandle, n)
	}
	return nil
}

// DecreaseKey lowers the key of the element held by u to key and returns
// the node that holds the element from now on.
func (h *Heap[K, V]) DecreaseKey(u *Node[K, V], key K) (*Node[K, V], error) {
	if err := lookup(u); err != nil {
		return u, err
	}
	if !(key < u.key) {
		return u, fmt.Errorf("%w: %p", hollowheap.ErrKeyNotDecreased, u)
	}
	if h.stats != nil {
		h.stats.DecreaseKeys++
	}
	if u == h.root {
		u.key = key
		return u, nil
	}
	v := h.alloc(key, u.val)
	v.rank = max(u.rank-h.rankDec, 0)
	var zero V
	u.val = zero
	u.hollow = true
	prev := h.root
	h.root = h.link(prev, v)
	if h.root == prev {
		v.child = u
		u.second = v
	}
	return v, nil
}

// FindMin returns the value with the smallest key.
func (h *Heap[K, V]) FindMin() (V, bool) {
	if h.root == nil {
		var zero V
		return zero, false
	}
	return h.root.val, true
}

// Min returns the smallest key and its value.
func (h *Heap[K, V]) Min() (K, V, bool) {
	if h.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return h.root.key, h.root.val, true
}

// Get returns the key and value held by n. It returns false if n is not
// a live node.
func (h *Heap[K, V]) Get(n *Node[K, V]) (K, V, bool) {
	if err := lookup(n); err != nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return n.key, n.val, true
}

// Empty returns true if the heap contains no elements.
func (h *Heap[K, V]) Empty() bool {
	return h.root == nil
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return h.size
}

// Nodes returns the number of nodes allocated over the lifetime of the heap.
func (h *Heap[K, V]) Nodes() int {
	return h.nodes
}

// DeleteMin removes the element with the smallest key. It is a no-op
// for an empty heap.
func (h *Heap[K, V]) DeleteMin() {
	if h.root == nil {
		return
	}
	if h.stats != nil {
		h.stats.DeleteMins++
	}
	h.size--
	h.work = append(h.work[:0], h.root)
	for i := 0; i < len(h.work); i++ {
		parent := h.work[i]
		cur := parent.child
		for cur != nil {
			next := cur.next
			switch {
			case !cur.hollow:
				h.consolidate(cur)
			case cur.second == nil:
				h.work = arena.Append(h.work, cur, 2)
			case cur.second == parent:
				cur.second = nil
				next = nil
			default:
				cur.second = nil
				cur.next = nil
			}
			cur = next
		}
	}
	var zero V
	for i, n := range h.work {
		n.hollow = true
		n.child, n.next = nil, nil
		n.val = zero
		h.work[i] = nil
	}
	h.root = nil
	h.ranks.Drain(rankmap.Descending, func(n *Node[K, V]) {
		if h.root == nil {
			h.root = n
			return
		}
		h.root = h.link(h.root, n)
	})
}

func (h *Heap[K, V]) consolidate(n *Node[K, V]) {
	for {
		other, ok := h.ranks.Take(n.rank)
		if !ok {
			break
		}
		n = h.link(n, other)
		if h.stats != nil {
			h.stats.RankedLinks++
		}
		n.rank++
	}
	h.ranks.Put(n.rank, n)
}
