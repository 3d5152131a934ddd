// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hollowheap

import (
	"cloudeng.io/hollowheap/internal/arena"
	"cloudeng.io/hollowheap/internal/rankmap"
)

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
	h.work = append(h.work[:0], h.root)
	for i := 0; i < len(h.work); i++ {
		parent := h.work[i]
		cur := h.nodes.At(parent).child
		for cur != none {
			n := h.nodes.At(cur)
			next := n.next
			switch {
			case !n.hollow:
				h.consolidate(cur)
			case n.second == none:
				h.work = arena.Append(h.work, cur, growthFactor)
			case n.second == parent:
				// cur is the last child of parent, its next pointer
				// belongs to the sibling list of its other parent.
				n.second = none
				next = none
			default:
				n.second = none
				n.next = none
			}
			cur = next
		}
	}
	h.reclaim()

	h.root = none
	h.ranks.Drain(rankmap.Descending, func(id Handle) {
		if h.root == none {
			h.root = id
			return
		}
		h.root = h.link(h.root, id)
	})
}

// consolidate links id with every tree of equal rank recorded so far.
func (h *Heap[K, V]) consolidate(id Handle) {
	rank := h.nodes.At(id).rank
	for {
		other, ok := h.ranks.Take(rank)
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
	h.ranks.Put(rank, id)
}

// reclaim releases the payloads held by the nodes that were deleted.
func (h *Heap[K, V]) reclaim() {
	var zero V
	for _, id := range h.work {
		n := h.nodes.At(id)
		n.hollow = true
		n.child = none
		n.val = zero
	}
}
