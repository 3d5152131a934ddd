// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package toggle provides a hollow heap whose optimisations are each
// selected by a field of Config. It is intended for measuring the
// effect of each optimisation in isolation, the parent package should
// be used otherwise.
package toggle

import (
	"fmt"

	"cloudeng.io/hollowheap"
	"cloudeng.io/hollowheap/internal/arena"
	"cloudeng.io/hollowheap/internal/rankmap"
)

const none hollowheap.Handle = 0

type node[K hollowheap.Ordered, V any] struct {
	key    K
	val    V
	child  hollowheap.Handle
	next   hollowheap.Handle
	second hollowheap.Handle
	rank   int
	hollow bool
}

// Heap is a configurable hollow heap.
type Heap[K hollowheap.Ordered, V any] struct {
	cfg     Config
	factor  int
	order   rankmap.Order
	rankDec int
	nodes   *arena.Table[hollowheap.Handle, node[K, V]]
	root    hollowheap.Handle
	size    int
	stats   *hollowheap.Stats
	ranks   rankmap.Map[hollowheap.Handle]
	work    []hollowheap.Handle
}

var _ hollowheap.Queue[int, int, hollowheap.Handle] = (*Heap[int, int])(nil)

// New returns a new, empty, Heap configured by cfg. The supplied options
// are applied after cfg and so hollowheap.WithRankDecrement overrides
// cfg.RankDecrement.
func New[K hollowheap.Ordered, V any](cfg Config, opts ...hollowheap.Option) (*Heap[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	o := hollowheap.Options{
		Capacity:      1024,
		RankDecrement: cfg.RankDecrement,
	}
	o.Apply(opts...)
	h := &Heap[K, V]{
		cfg:     cfg,
		factor:  cfg.growthFactor(),
		rankDec: o.RankDecrement,
		stats:   o.Stats,
	}
	if cfg.Consolidation == Ascending {
		h.order = rankmap.Ascending
	}
	h.nodes = arena.NewTable[hollowheap.Handle, node[K, V]](o.Capacity, h.factor)
	if cfg.ReuseScratch {
		h.ranks = h.newRankMap()
		h.work = make([]hollowheap.Handle, 0, 32)
	}
	return h, nil
}

// MustNew is like New but panics on error.
func MustNew[K hollowheap.Ordered, V any](cfg Config, opts ...hollowheap.Option) *Heap[K, V] {
	h, err := New[K, V](cfg, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// Config returns the configuration used to create h.
func (h *Heap[K, V]) Config() Config {
	return h.cfg
}

func (h *Heap[K, V]) newRankMap() rankmap.Map[hollowheap.Handle] {
	if h.cfg.RankMap == SparseRanks {
		return rankmap.NewSparse[hollowheap.Handle]()
	}
	return rankmap.NewDense[hollowheap.Handle](16, h.factor, h.cfg.ClearRanksInline)
}

func (h *Heap[K, V]) link(u, v hollowheap.Handle) hollowheap.Handle {
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
		if h.cfg.TieBreakByRank && nu.rank < nv.rank {
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
func (h *Heap[K, V]) Push(key K, val V) hollowheap.Handle {
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

func (h *Heap[K, V]) lookup(id hollowheap.Handle) (*node[K, V], error) {
	if !h.nodes.Valid(id) {
		return nil, fmt.Errorf("%w: %v", hollowheap.ErrInvalidHandle, id)
	}
	n := h.nodes.At(id)
	if n.hollow {
		return nil, fmt.Errorf("%w: %v", hollowheap.ErrStaleHandle, id)
	}
	return n, nil
}

// DecreaseKey lowers the key of the element referred to by id and
// returns the handle to use for it from now on.
func (h *Heap[K, V]) DecreaseKey(id hollowheap.Handle, key K) (hollowheap.Handle, error) {
	u, err := h.lookup(id)
	if err != nil {
		return id, err
	}
	if !(key < u.key) {
		return id, fmt.Errorf("%w: %v", hollowheap.ErrKeyNotDecreased, id)
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
	if h.root = h.link(prev, vid); h.root == prev {
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
func (h *Heap[K, V]) Get(id hollowheap.Handle) (K, V, bool) {
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

// Nodes returns the number of nodes allocated by the heap.
func (h *Heap[K, V]) Nodes() int {
	return h.nodes.Len()
}

// Empty returns true if the heap contains no elements.
func (h *Heap[K, V]) Empty() bool {
	return h.root == none
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return h.size
}

// DeleteMin removes the element with the smallest key. It is a no-op
// for an empty heap.
func (h *Heap[K, V]) DeleteMin() {
	if h.root == none {
		return
	}
	if h.stats != nil {
		h.stats.DeleteMins++
	}
	h.size--
	ranks, work := h.ranks, h.work[:0]
	if ranks == nil {
		ranks = h.newRankMap()
	}
	ranks.Reset()
	work = append(work, h.root)
	for i := 0; i < len(work); i++ {
		parent := work[i]
		cur := h.nodes.At(parent).child
		for cur != none {
			n := h.nodes.At(cur)
			next := n.next
			switch {
			case !n.hollow:
				h.consolidate(ranks, cur)
			case n.second == none:
				work = arena.Append(work, cur, h.factor)
			case n.second == parent:
				n.second = none
				next = none
			default:
				n.second = none
				n.next = none
			}
			cur = next
		}
	}
	var zero V
	for _, id := range work {
		n := h.nodes.At(id)
		n.hollow = true
		n.child = none
		n.val = zero
	}
	if h.cfg.ReuseScratch {
		h.work = work
	}
	h.root = none
	ranks.Drain(h.order, func(id hollowheap.Handle) {
		if h.root == none {
			h.root = id
			return
		}
		h.root = h.link(h.root, id)
	})
}

func (h *Heap[K, V]) consolidate(ranks rankmap.Map[hollowheap.Handle], id hollowheap.Handle) {
	rank := h.nodes.At(id).rank
	for {
		other, ok := ranks.Take(rank)
		if !ok {
			break
		}
		id = h.link(id, other)
		if h.stats != nil {
			h.stats.RankedLinks++
		}
		n := h.nodes.At(id)
		n.rank++
		rank = n.rank
	}
	ranks.Put(rank, id)
}
