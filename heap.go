// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

import (
	"fmt"

	"cloudeng.io/hollowheap/internal/arena"
	"cloudeng.io/hollowheap/internal/rankmap"
)

// Handle refers to an element stored in a Heap. The zero Handle is never
// returned by Push or DecreaseKey.
type Handle uint32

const (
	none Handle = 0

	// DefaultRankDecrement is the rank decrement used by New.
	DefaultRankDecrement = 2

	defaultCapacity = 1024
	growthFactor    = 2
)

type node[K Ordered, V any] struct {
	key    K
	val    V
	child  Handle // first child.
	next   Handle // next sibling.
	second Handle // second parent, if any.
	rank   int
	hollow bool
}

// Heap is a hollow heap whose nodes are stored in a single growable table.
type Heap[K Ordered, V any] struct {
	nodes   *arena.Table[Handle, node[K, V]]
	root    Handle
	size    int
	rankDec int
	stats   *Stats
	ranks   *rankmap.Dense[Handle]
	work    []Handle
}

// New returns a new, empty, Heap.
func New[K Ordered, V any](opts ...Option) *Heap[K, V] {
	o := Options{
		Capacity:      defaultCapacity,
		RankDecrement: DefaultRankDecrement,
	}
	o.Apply(opts...)
	return &Heap[K, V]{
		nodes:   arena.NewTable[Handle, node[K, V]](o.Capacity, growthFactor),
		rankDec: o.RankDecrement,
		stats:   o.Stats,
		ranks:   rankmap.NewDense[Handle](16, growthFactor, true),
		work:    make([]Handle, 0, 32),
	}
}

// link makes the tree with the larger key a child of the other and
// returns the winner. Equal keys are resolved in favour of the lower rank.
func (h *Heap[K, V]) link(u, v Handle) Handle {
	nu, nv := h.nodes.At(u), h.nodes.At(v)
	parent, child := v, u
	pn, cn := nv, nu
	switch {
	case nu.key < nv.key:
		parent, child = u, v
		pn, cn = nu, nv
	case nv.key < nu.key:
	default:
		if h.stats != nil {
			h.stats.TieLinks++
		}
		if nu.rank < nv.rank {
			parent, child = u, v
			pn, cn = nu, nv
		}
	}
	if h.stats != nil {
		h.stats.Links++
	}
	cn.next = pn.child
	pn.child = child
	return parent
}

// Push adds val with priority key to the heap.
func (h *Heap[K, V]) Push(key K, val V) Handle {
	id, n := h.nodes.Alloc()
	n.key, n.val = key, val
	h.size++
	if h.stats != nil {
		h.stats.Pushes++
	}
	if h.root == none {
		h.root = id
		return id
	}
	h.root = h.link(h.root, id)
	return id
}

func (h *Heap[K, V]) lookup(id Handle) (*node[K, V], error) {
	if !h.nodes.Valid(id) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHandle, id)
	}
	n := h.nodes.At(id)
	if n.hollow {
		return nil, fmt.Errorf("%w: %v", ErrStaleHandle, id)
	}
	return n, nil
}

// DecreaseKey lowers the key of the element referred to by id to key and
// returns the handle to be used for that element from now on; id must not
// be used again. ErrKeyNotDecreased is returned, and the heap left
// unchanged, if key is not less than the element's current key.
func (h *Heap[K, V]) DecreaseKey(id Handle, key K) (Handle, error) {
	u, err := h.lookup(id)
	if err != nil {
		return id, err
	}
	if !(key < u.key) {
		return id, fmt.Errorf("%w: %v", ErrKeyNotDecreased, id)
	}
	if h.stats != nil {
		h.stats.DecreaseKeys++
	}
	if id == h.root {
		u.key = key
		return id, nil
	}
	val, rank := u.val, u.rank
	var zero V
	u.val = zero
	u.hollow = true

	vid, v := h.nodes.Alloc()
	v.key, v.val = key, val
	v.rank = max(rank-h.rankDec, 0)

	prev := h.root
	h.root = h.link(prev, vid)
	if h.root == prev {
		// The original node gains the new node as its second parent.
		h.nodes.At(vid).child = id
		h.nodes.At(id).second = vid
	}
	return vid, nil
}

// FindMin returns the value with the smallest key.
func (h *Heap[K, V]) FindMin() (V, bool) {
	if h.root == none {
		var zero V
		return zero, false
	}
	return h.nodes.At(h.root).val, true
}

// Min returns the smallest key and its value.
func (h *Heap[K, V]) Min() (K, V, bool) {
	if h.root == none {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := h.nodes.At(h.root)
	return n.key, n.val, true
}

// Get returns the key and value for the element referred to by id.
// It returns false if id is not a live handle.
func (h *Heap[K, V]) Get(id Handle) (K, V, bool) {
	n, err := h.lookup(id)
	if err != nil {
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
	return h.root == none
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return h.size
}

// Nodes returns the number of nodes allocated by the heap, including
// hollow and deleted nodes which are never reused.
func (h *Heap[K, V]) Nodes() int {
	return h.nodes.Len()
}
